// Package server initializes and runs the chat server: it builds the chat
// service, starts the gRPC, raw-socket and status servers side by side and
// handles graceful shutdown on signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/server/chat"
	"github.com/dmitrijs2005/gophchat/internal/server/config"
	"github.com/dmitrijs2005/gophchat/internal/server/socket"
	"github.com/dmitrijs2005/gophchat/internal/server/status"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophchat/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	chatService *chat.Service
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := logging.New(c.LogFormat, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	return &App{config: c, logger: logger, chatService: chat.NewService(c)}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled, a signal arrives or one of the servers
// fails. A failing server stops the others.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	g, gctx := errgroup.WithContext(ctx)

	sock := socket.NewSocketServer(app.config.EndpointAddrSocket, app.config.SocketFrameSize, app.logger, app.chatService)
	g.Go(func() error {
		if err := sock.Run(gctx); err != nil {
			return fmt.Errorf("socket server: %w", err)
		}
		return nil
	})

	rpc := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.chatService)
	g.Go(func() error {
		if err := rpc.Run(gctx); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	if app.config.EndpointAddrStatus != "" {
		st := status.NewStatusServer(app.config.EndpointAddrStatus, app.logger, app.chatService, sock)
		g.Go(func() error {
			if err := st.Run(gctx); err != nil {
				return fmt.Errorf("status server: %w", err)
			}
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
