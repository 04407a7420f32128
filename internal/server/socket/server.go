// Package socket serves the chat operations over the raw "||" framed TCP
// protocol. Each connection is handled by its own goroutine. A frame ends
// with a read shorter than the frame buffer; see wire.ReadFrame.
package socket

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/server/chat"
	"github.com/dmitrijs2005/gophchat/internal/wire"
	"github.com/google/uuid"
)

// DefaultFrameSize is used when the configured frame size is not positive.
const DefaultFrameSize = 1024

type SocketServer struct {
	address   string
	frameSize int
	handler   *Handler
	logger    logging.Logger

	mu    sync.Mutex
	conns map[string]net.Conn
	wg    sync.WaitGroup
}

func NewSocketServer(a string, frameSize int, l logging.Logger, cs chat.Operations) *SocketServer {
	if frameSize <= 0 {
		frameSize = DefaultFrameSize
	}
	logger := l.With("module", "socket_server")
	return &SocketServer{
		address:   a,
		frameSize: frameSize,
		handler:   NewHandler(cs, logger),
		logger:    logger,
		conns:     make(map[string]net.Conn),
	}
}

func (s *SocketServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then closes every
// open connection and waits for their goroutines.
func (s *SocketServer) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping socket server...")
		_ = lis.Close()
		s.closeAll()
	}()

	s.logger.Info(ctx, "Starting socket server", "address", lis.Addr().String())

	for {
		conn, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.wg.Wait()
				return nil
			}
			s.logger.Error(ctx, "accept failed", "error", err)
			continue
		}

		id := uuid.NewString()
		if !s.track(ctx, id, conn) {
			_ = conn.Close()
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(id)
			s.serveConn(ctx, id, conn)
		}()
	}
}

// ActiveConnections reports the number of open client connections.
func (s *SocketServer) ActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// track registers conn unless the server is already shutting down.
func (s *SocketServer) track(ctx context.Context, id string, conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	s.conns[id] = conn
	return true
}

func (s *SocketServer) untrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.conns[id]; ok {
		_ = c.Close()
		delete(s.conns, id)
	}
}

func (s *SocketServer) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conns {
		_ = c.Close()
	}
}

func (s *SocketServer) serveConn(ctx context.Context, id string, conn net.Conn) {
	log := s.logger.With("conn_id", id, "remote", conn.RemoteAddr().String())
	log.Info(ctx, "connection opened")
	defer log.Info(ctx, "connection closed")

	buf := make([]byte, s.frameSize)
	for {
		frame, err := wire.ReadFrame(conn, buf)
		if errors.Is(err, wire.ErrFrameTooLarge) {
			log.Warn(ctx, "frame too large, dropping connection")
			return
		}
		if err != nil || len(frame) == 0 {
			return
		}

		reply, ok := s.handler.Handle(ctx, frame)
		if !ok {
			log.Debug(ctx, "unrecognized frame, dropping connection")
			return
		}

		if _, err := conn.Write(reply); err != nil {
			log.Warn(ctx, "write failed", "error", err)
			return
		}
	}
}
