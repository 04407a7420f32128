package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/gophchat/internal/logging"
	pb "github.com/dmitrijs2005/gophchat/internal/proto"
	"github.com/dmitrijs2005/gophchat/internal/server/chat"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name chat.ChatServer reports to the health service.
const ServiceName = "chat.ChatServer"

type GRPCServer struct {
	pb.UnimplementedChatServerServer
	address string
	chat    chat.Operations
	logger  logging.Logger
	health  *health.Server

	// runCtx is cancelled on shutdown; open delivery streams watch it so
	// GracefulStop does not wait for them forever.
	runCtx context.Context
}

func NewGRPCServer(a string, l logging.Logger, cs chat.Operations) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		chat:    cs,
		health:  health.NewServer(),
		runCtx:  context.Background(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingInterceptor),
		grpc.ChainStreamInterceptor(s.streamLoggingInterceptor),
	)

	pb.RegisterChatServerServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	s.runCtx = ctx

	srv := s.newServer()

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
