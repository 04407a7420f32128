package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/common"
	pb "github.com/dmitrijs2005/gophchat/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const version = int32(common.ProtocolVersion)

// replyCode turns a service error into the error_code of a reply. Faults
// outside the error taxonomy become a codes.Internal status instead.
func (s *GRPCServer) replyCode(ctx context.Context, method string, err error) (string, error) {
	code := common.ErrorCode(err)
	if code == common.CodeInternal {
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
		return "", status.Error(codes.Internal, "internal error")
	}
	return code, nil
}

func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.AccountCreateRequest) (*pb.AccountCreateReply, error) {

	sess, err := s.chat.CreateAccount(ctx, req.GetUsername(), req.GetPassword(), req.GetFullname())
	if err != nil {
		code, err := s.replyCode(ctx, "CreateAccount", err)
		if err != nil {
			return nil, err
		}
		return &pb.AccountCreateReply{Version: version, ErrorCode: code}, nil
	}

	s.logger.Info(ctx, "Account created", "username", req.GetUsername())
	return &pb.AccountCreateReply{Version: version, AuthToken: sess.Token, Fullname: sess.FullName}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginReply, error) {

	sess, err := s.chat.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		code, err := s.replyCode(ctx, "Login", err)
		if err != nil {
			return nil, err
		}
		return &pb.LoginReply{Version: version, ErrorCode: code}, nil
	}

	return &pb.LoginReply{Version: version, AuthToken: sess.Token, Fullname: sess.FullName}, nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.MessageRequest) (*pb.MessageReply, error) {

	err := s.chat.SendMessage(ctx, req.GetUsername(), req.GetAuthToken(), req.GetRecipientUsername(), req.GetMessage())
	code, err := s.replyCode(ctx, "SendMessage", err)
	if err != nil {
		return nil, err
	}

	return &pb.MessageReply{Version: version, ErrorCode: code}, nil
}

func (s *GRPCServer) ListAccounts(ctx context.Context, req *pb.ListAccountRequest) (*pb.ListAccountReply, error) {

	names, err := s.chat.ListAccounts(ctx, req.GetUsername(), req.GetAuthToken(), int(req.GetNumberOfAccounts()), req.GetRegex())
	if err != nil {
		code, err := s.replyCode(ctx, "ListAccounts", err)
		if err != nil {
			return nil, err
		}
		return &pb.ListAccountReply{Version: version, ErrorCode: code}, nil
	}

	return &pb.ListAccountReply{Version: version, AccountNames: strings.Join(names, common.AccountNamesSeparator)}, nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*pb.DeleteAccountReply, error) {

	err := s.chat.DeleteAccount(ctx, req.GetUsername(), req.GetAuthToken())
	code, err := s.replyCode(ctx, "DeleteAccount", err)
	if err != nil {
		return nil, err
	}

	if code == "" {
		s.logger.Info(ctx, "Account deleted", "username", req.GetUsername())
	}
	return &pb.DeleteAccountReply{Version: version, ErrorCode: code}, nil
}

// DeliverMessages streams one reply per message until the client goes
// away or the server stops. When the token stops validating a final reply
// carries the error code and the stream ends.
func (s *GRPCServer) DeliverMessages(req *pb.RefreshRequest, stream grpc.ServerStreamingServer[pb.RefreshReply]) error {
	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()
	stop := context.AfterFunc(s.runCtx, cancel)
	defer stop()

	var sendErr error
	err := s.chat.StreamMessages(ctx, req.GetUsername(), req.GetAuthToken(), func(msg string) error {
		sendErr = stream.Send(&pb.RefreshReply{Version: version, Message: msg})
		return sendErr
	})
	if err == nil {
		return nil
	}
	if sendErr != nil && errors.Is(err, sendErr) {
		s.logger.Debug(ctx, "delivery stream closed", "username", req.GetUsername(), "error", err)
		return err
	}

	code, err := s.replyCode(ctx, "DeliverMessages", err)
	if err != nil {
		return err
	}
	return stream.Send(&pb.RefreshReply{Version: version, ErrorCode: code})
}
