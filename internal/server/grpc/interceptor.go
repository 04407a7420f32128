package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader carries the id the server assigned to a call.
const RequestIDHeader = "x-request-id"

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestID returns the id assigned to the current call, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func withRequestID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	// header delivery is best effort; in-process tests have no transport stream
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))
	return context.WithValue(ctx, requestIDKey, id), id
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	ctx, id := withRequestID(ctx)
	start := time.Now()

	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "rpc",
		"method", info.FullMethod,
		"request_id", id,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

type requestIDStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *requestIDStream) Context() context.Context { return s.ctx }

func (s *GRPCServer) streamLoggingInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx, id := withRequestID(ss.Context())
	start := time.Now()

	s.logger.Debug(ctx, "stream opened", "method", info.FullMethod, "request_id", id)

	err := handler(srv, &requestIDStream{ServerStream: ss, ctx: ctx})

	s.logger.Debug(ctx, "stream closed",
		"method", info.FullMethod,
		"request_id", id,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return err
}
