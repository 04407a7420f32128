package client

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/gophchat/internal/common"
	pb "github.com/dmitrijs2005/gophchat/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	// inputs captured
	lastCreateReq *pb.AccountCreateRequest
	lastLoginReq  *pb.LoginRequest
	lastSendReq   *pb.MessageRequest
	lastListReq   *pb.ListAccountRequest
	lastDeleteReq *pb.DeleteAccountRequest
	lastRefresh   *pb.RefreshRequest

	// outputs preset
	createResp *pb.AccountCreateReply
	loginResp  *pb.LoginReply
	loginErr   error
	sendResp   *pb.MessageReply
	listResp   *pb.ListAccountReply
	deleteResp *pb.DeleteAccountReply
	stream     *fakeStream
}

func (f *fakePB) SendMessage(ctx context.Context, in *pb.MessageRequest, opts ...grpc.CallOption) (*pb.MessageReply, error) {
	f.lastSendReq = in
	return f.sendResp, nil
}

func (f *fakePB) DeliverMessages(ctx context.Context, in *pb.RefreshRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[pb.RefreshReply], error) {
	f.lastRefresh = in
	return f.stream, nil
}

func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginReply, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}

func (f *fakePB) CreateAccount(ctx context.Context, in *pb.AccountCreateRequest, opts ...grpc.CallOption) (*pb.AccountCreateReply, error) {
	f.lastCreateReq = in
	return f.createResp, nil
}

func (f *fakePB) ListAccounts(ctx context.Context, in *pb.ListAccountRequest, opts ...grpc.CallOption) (*pb.ListAccountReply, error) {
	f.lastListReq = in
	return f.listResp, nil
}

func (f *fakePB) DeleteAccount(ctx context.Context, in *pb.DeleteAccountRequest, opts ...grpc.CallOption) (*pb.DeleteAccountReply, error) {
	f.lastDeleteReq = in
	return f.deleteResp, nil
}

type fakeStream struct {
	grpc.ClientStream
	replies []*pb.RefreshReply
	err     error
}

func (s *fakeStream) Recv() (*pb.RefreshReply, error) {
	if len(s.replies) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r, nil
}

func newFakeClient(f *fakePB) *GRPCClient {
	return &GRPCClient{client: f}
}

func TestGRPCClient_CallsNeedSession(t *testing.T) {
	c := newFakeClient(&fakePB{})
	ctx := context.Background()

	assert.ErrorIs(t, c.SendMessage(ctx, "b", "hi"), ErrNotLoggedIn)
	_, err := c.ListAccounts(ctx, 0, "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, c.DeleteAccount(ctx), ErrNotLoggedIn)
	assert.ErrorIs(t, c.Listen(ctx, func(string) {}), ErrNotLoggedIn)
}

func TestGRPCClient_SessionFlow(t *testing.T) {
	f := &fakePB{
		createResp: &pb.AccountCreateReply{Version: 1, AuthToken: "tok", Fullname: "Aakash Mishra"},
		sendResp:   &pb.MessageReply{Version: 1},
		listResp:   &pb.ListAccountReply{Version: 1, AccountNames: "aakamishra, jwaldo"},
		deleteResp: &pb.DeleteAccountReply{Version: 1},
	}
	c := newFakeClient(f)
	ctx := context.Background()

	name, err := c.CreateAccount(ctx, "aakamishra", "hahaha", "Aakash Mishra")
	require.NoError(t, err)
	assert.Equal(t, "Aakash Mishra", name)
	assert.Equal(t, "aakamishra", c.Username())
	assert.Equal(t, int32(1), f.lastCreateReq.Version)

	require.NoError(t, c.SendMessage(ctx, "jwaldo", "hi!"))
	assert.Equal(t, &pb.MessageRequest{Version: 1, AuthToken: "tok", Username: "aakamishra", RecipientUsername: "jwaldo", Message: "hi!"}, f.lastSendReq)

	names, err := c.ListAccounts(ctx, 10, "a.*")
	require.NoError(t, err)
	assert.Equal(t, []string{"aakamishra", "jwaldo"}, names)
	assert.Equal(t, int32(10), f.lastListReq.NumberOfAccounts)

	require.NoError(t, c.DeleteAccount(ctx))
	assert.Equal(t, "tok", f.lastDeleteReq.AuthToken)
	assert.ErrorIs(t, c.SendMessage(ctx, "jwaldo", "again"), ErrNotLoggedIn)
}

func TestGRPCClient_ReplyCodes(t *testing.T) {
	ctx := context.Background()

	f := &fakePB{loginResp: &pb.LoginReply{Version: 1, ErrorCode: common.CodePasswordInvalid}}
	c := newFakeClient(f)
	_, err := c.Login(ctx, "a", "bad")
	assert.ErrorIs(t, err, common.ErrPasswordInvalid)
	assert.Empty(t, c.Username())

	f.loginResp = &pb.LoginReply{Version: 1, AuthToken: "tok"}
	_, err = c.Login(ctx, "a", "good")
	require.NoError(t, err)

	f.sendResp = &pb.MessageReply{Version: 1, ErrorCode: common.CodeInvalidRecipient}
	assert.ErrorIs(t, c.SendMessage(ctx, "nobody", "x"), common.ErrInvalidRecipient)

	f.listResp = &pb.ListAccountReply{Version: 1}
	names, err := c.ListAccounts(ctx, 0, "zzz")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestGRPCClient_TransportErrors(t *testing.T) {
	f := &fakePB{loginErr: status.Error(codes.Unavailable, "down")}
	c := newFakeClient(f)

	_, err := c.Login(context.Background(), "a", "p")
	assert.ErrorIs(t, err, ErrUnavailable)

	f.loginErr = status.Error(codes.Internal, "internal error")
	_, err = c.Login(context.Background(), "a", "p")
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(errors.Unwrap(err)))
}

func TestGRPCClient_Listen(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers until EOF", func(t *testing.T) {
		f := &fakePB{
			loginResp: &pb.LoginReply{AuthToken: "tok"},
			stream: &fakeStream{replies: []*pb.RefreshReply{
				{Version: 1, Message: "[a]: one"},
				{Version: 1, Message: "[a]: two"},
			}},
		}
		c := newFakeClient(f)
		_, err := c.Login(ctx, "b", "p")
		require.NoError(t, err)

		var got []string
		require.NoError(t, c.Listen(ctx, func(m string) { got = append(got, m) }))
		assert.Equal(t, []string{"[a]: one", "[a]: two"}, got)
		assert.Equal(t, &pb.RefreshRequest{Version: 1, AuthToken: "tok", Username: "b"}, f.lastRefresh)
	})

	t.Run("error code ends listening", func(t *testing.T) {
		f := &fakePB{
			loginResp: &pb.LoginReply{AuthToken: "tok"},
			stream: &fakeStream{replies: []*pb.RefreshReply{
				{Version: 1, Message: "[a]: one"},
				{Version: 1, ErrorCode: common.CodeInvalidToken},
			}},
		}
		c := newFakeClient(f)
		_, err := c.Login(ctx, "b", "p")
		require.NoError(t, err)

		var got []string
		err = c.Listen(ctx, func(m string) { got = append(got, m) })
		assert.ErrorIs(t, err, common.ErrInvalidToken)
		assert.Equal(t, []string{"[a]: one"}, got)
	})
}
