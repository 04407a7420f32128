package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/common"
	pb "github.com/dmitrijs2005/gophchat/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const version = int32(common.ProtocolVersion)

type GRPCClient struct {
	session
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.ChatServerClient
}

var _ Client = (*GRPCClient)(nil)

// NewGRPCClient prepares a client for endpointURL. No connection is made
// until the first call. opts are appended to the default dial options.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewChatServerClient(conn)
	return c, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Canceled:
		return context.Canceled
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) CreateAccount(ctx context.Context, username, password, fullname string) (string, error) {

	req := &pb.AccountCreateRequest{Version: version, Username: username, Password: password, Fullname: fullname}

	resp, err := s.client.CreateAccount(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	if err := common.ErrorFromCode(resp.ErrorCode); err != nil {
		return "", err
	}

	s.set(username, resp.AuthToken)
	return resp.Fullname, nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {

	req := &pb.LoginRequest{Version: version, Username: username, Password: password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	if err := common.ErrorFromCode(resp.ErrorCode); err != nil {
		return "", err
	}

	s.set(username, resp.AuthToken)
	return resp.Fullname, nil
}

func (s *GRPCClient) SendMessage(ctx context.Context, recipient, message string) error {
	username, token, err := s.get()
	if err != nil {
		return err
	}

	req := &pb.MessageRequest{Version: version, AuthToken: token, Username: username, RecipientUsername: recipient, Message: message}

	resp, err := s.client.SendMessage(ctx, req)
	if err != nil {
		return s.mapError(err)
	}
	return common.ErrorFromCode(resp.ErrorCode)
}

func (s *GRPCClient) ListAccounts(ctx context.Context, limit int, pattern string) ([]string, error) {
	username, token, err := s.get()
	if err != nil {
		return nil, err
	}

	req := &pb.ListAccountRequest{Version: version, AuthToken: token, Username: username, NumberOfAccounts: int32(limit), Regex: pattern}

	resp, err := s.client.ListAccounts(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	if err := common.ErrorFromCode(resp.ErrorCode); err != nil {
		return nil, err
	}
	return splitNames(resp.AccountNames), nil
}

func (s *GRPCClient) DeleteAccount(ctx context.Context) error {
	username, token, err := s.get()
	if err != nil {
		return err
	}

	resp, err := s.client.DeleteAccount(ctx, &pb.DeleteAccountRequest{Version: version, AuthToken: token, Username: username})
	if err != nil {
		return s.mapError(err)
	}
	if err := common.ErrorFromCode(resp.ErrorCode); err != nil {
		return err
	}

	s.clear()
	return nil
}

// Listen consumes the DeliverMessages stream.
func (s *GRPCClient) Listen(ctx context.Context, fn func(msg string)) error {
	username, token, err := s.get()
	if err != nil {
		return err
	}

	stream, err := s.client.DeliverMessages(ctx, &pb.RefreshRequest{Version: version, AuthToken: token, Username: username})
	if err != nil {
		return s.mapError(err)
	}

	for {
		reply, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return s.mapError(err)
		}
		if err := common.ErrorFromCode(reply.ErrorCode); err != nil {
			return err
		}
		fn(reply.Message)
	}
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func splitNames(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, common.AccountNamesSeparator)
}
