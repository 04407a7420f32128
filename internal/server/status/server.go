// Package status exposes a small HTTP endpoint for operators: a liveness
// probe and a JSON snapshot of server counters.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/server/chat"
	"github.com/julienschmidt/httprouter"
)

const shutdownTimeout = 5 * time.Second

// StatsSource reports chat state counters.
type StatsSource interface {
	Stats() chat.Stats
}

// ConnCounter reports the number of open raw-socket connections.
type ConnCounter interface {
	ActiveConnections() int
}

// Stats is the body of GET /stats.
type Stats struct {
	chat.Stats
	SocketConnections int `json:"socket_connections"`
}

type StatusServer struct {
	address string
	logger  logging.Logger
	stats   StatsSource
	conns   ConnCounter
	router  *httprouter.Router
}

func NewStatusServer(a string, l logging.Logger, stats StatsSource, conns ConnCounter) *StatusServer {
	s := &StatusServer{
		address: a,
		logger:  l.With("module", "status_server"),
		stats:   stats,
		conns:   conns,
		router:  httprouter.New(),
	}
	s.setupRoutes()
	return s
}

func (s *StatusServer) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/stats", s.handleStats)
}

// Handler returns the routed handler. Useful with httptest.
func (s *StatusServer) Handler() http.Handler {
	return s.router
}

func (s *StatusServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.router, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping status server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting status server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *StatusServer) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (s *StatusServer) handleStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body := Stats{Stats: s.stats.Stats()}
	if s.conns != nil {
		body.SocketConnections = s.conns.ActiveConnections()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(r.Context(), "encoding stats", "error", err)
	}
}
