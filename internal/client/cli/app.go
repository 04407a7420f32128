package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    *syncWriter

	mu         sync.Mutex
	fullName   string
	stopListen context.CancelFunc
	listenDone chan struct{}
}

// syncWriter serializes writes from the REPL and the message listener.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// NewApp connects a chat client for the transport named in c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	cl, err := newClient(ctx, c)
	if err != nil {
		return nil, err
	}
	return newApp(c, cl, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: &syncWriter{w: out}}
}

func newClient(ctx context.Context, c *config.Config) (client.Client, error) {
	switch c.Transport {
	case config.TransportSocket:
		return client.NewSocketClient(ctx, c.ServerEndpointAddr, c.RefreshInterval)
	case config.TransportGRPC:
		return client.NewGRPCClient(c.ServerEndpointAddr)
	default:
		return nil, fmt.Errorf("unknown transport %q", c.Transport)
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.stopListening()

	a.printf("GophChat %s client (type 'help' for commands)\n", a.config.Transport)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.client.Username() != ""
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	name := a.client.Username()
	if name == "" {
		return ""
	}
	if a.fullName != "" {
		name = fmt.Sprintf("%s, %s", name, a.fullName)
	}
	return fmt.Sprintf("(%s)", name)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// startListening replaces any running listener with one for the current
// session. Messages are printed as they arrive.
func (a *App) startListening(ctx context.Context) {
	a.stopListening()

	lctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	a.mu.Lock()
	a.stopListen, a.listenDone = cancel, done
	a.mu.Unlock()

	go func() {
		defer close(done)
		err := a.client.Listen(lctx, func(msg string) {
			a.printf("\n%s\n", msg)
		})
		if err != nil && lctx.Err() == nil {
			a.printf("\nstopped receiving messages: %v\n", err)
		}
	}()
}

func (a *App) stopListening() {
	a.mu.Lock()
	cancel, done := a.stopListen, a.listenDone
	a.stopListen, a.listenDone = nil, nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
