package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/wire"
)

// replyBufferSize is the read buffer for replies. Delivery replies carry the
// whole inbox; longer ones are assembled by wire.ReadFrame.
const replyBufferSize = 64 * 1024

// DefaultRefreshInterval is the inbox poll period of SocketClient.Listen.
const DefaultRefreshInterval = time.Second

// SocketClient talks the "||" framed protocol over one TCP connection.
// Requests are serialized: one frame out, one frame back. A reply that does
// not decode closes the connection, since the stream is out of step.
type SocketClient struct {
	session
	endpointAddr    string
	refreshInterval time.Duration

	mu   sync.Mutex
	conn net.Conn
	buf  []byte
}

var _ Client = (*SocketClient)(nil)

// NewSocketClient dials endpointAddr. refreshInterval sets the Listen poll
// period; zero means DefaultRefreshInterval.
func NewSocketClient(ctx context.Context, endpointAddr string, refreshInterval time.Duration) (*SocketClient, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", endpointAddr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return newSocketClient(conn, endpointAddr, refreshInterval), nil
}

func newSocketClient(conn net.Conn, endpointAddr string, refreshInterval time.Duration) *SocketClient {
	if refreshInterval <= 0 {
		refreshInterval = DefaultRefreshInterval
	}
	return &SocketClient{
		endpointAddr:    endpointAddr,
		refreshInterval: refreshInterval,
		conn:            conn,
		buf:             make([]byte, replyBufferSize),
	}
}

// call writes req and decodes the matching reply.
func (c *SocketClient) call(ctx context.Context, req wire.Message) (wire.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.conn.SetDeadline(time.Time{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	// cancelling ctx unblocks the pending read or write
	stop := context.AfterFunc(ctx, func() { _ = c.conn.SetDeadline(time.Now()) })
	defer stop()

	if _, err := c.conn.Write(wire.Encode(req)); err != nil {
		return nil, c.ioError(ctx, err)
	}

	frame, err := wire.ReadFrame(c.conn, c.buf)
	if err != nil {
		return nil, c.ioError(ctx, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	op, err := wire.PeekOpcode(frame)
	if err != nil || op != req.Opcode() {
		_ = c.conn.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedReply, frame)
	}
	reply := wire.NewReply(op)
	if err := wire.Decode(frame, reply); err != nil {
		// the rest of this reply may still be unread
		_ = c.conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedReply, err)
	}
	return reply, nil
}

// ioError closes the connection, since a reply may still be in flight and
// the stream can no longer be trusted.
func (c *SocketClient) ioError(ctx context.Context, err error) error {
	_ = c.conn.Close()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *SocketClient) CreateAccount(ctx context.Context, username, password, fullname string) (string, error) {
	m, err := c.call(ctx, &wire.CreateAccountRequest{Version: common.ProtocolVersion, Username: username, Password: password, Fullname: fullname})
	if err != nil {
		return "", err
	}
	resp := m.(*wire.CreateAccountReply)
	if err := common.ErrorFromCode(resp.ErrorCode); err != nil {
		return "", err
	}

	c.set(username, resp.AuthToken)
	return resp.Fullname, nil
}

func (c *SocketClient) Login(ctx context.Context, username, password string) (string, error) {
	m, err := c.call(ctx, &wire.LoginRequest{Version: common.ProtocolVersion, Username: username, Password: password})
	if err != nil {
		return "", err
	}
	resp := m.(*wire.LoginReply)
	if err := common.ErrorFromCode(resp.ErrorCode); err != nil {
		return "", err
	}

	c.set(username, resp.AuthToken)
	return resp.Fullname, nil
}

func (c *SocketClient) SendMessage(ctx context.Context, recipient, message string) error {
	username, token, err := c.get()
	if err != nil {
		return err
	}

	m, err := c.call(ctx, &wire.SendMessageRequest{
		Version:           common.ProtocolVersion,
		AuthToken:         token,
		Username:          username,
		RecipientUsername: recipient,
		Message:           message,
	})
	if err != nil {
		return err
	}
	return common.ErrorFromCode(m.(*wire.SendMessageReply).ErrorCode)
}

func (c *SocketClient) ListAccounts(ctx context.Context, limit int, pattern string) ([]string, error) {
	username, token, err := c.get()
	if err != nil {
		return nil, err
	}

	m, err := c.call(ctx, &wire.ListAccountsRequest{
		Version:          common.ProtocolVersion,
		AuthToken:        token,
		Username:         username,
		NumberOfAccounts: limit,
		Regex:            pattern,
	})
	if err != nil {
		return nil, err
	}
	resp := m.(*wire.ListAccountsReply)
	if err := common.ErrorFromCode(resp.ErrorCode); err != nil {
		return nil, err
	}
	return splitNames(resp.AccountNames), nil
}

func (c *SocketClient) DeleteAccount(ctx context.Context) error {
	username, token, err := c.get()
	if err != nil {
		return err
	}

	m, err := c.call(ctx, &wire.DeleteAccountRequest{Version: common.ProtocolVersion, AuthToken: token, Username: username})
	if err != nil {
		return err
	}
	if err := common.ErrorFromCode(m.(*wire.DeleteAccountReply).ErrorCode); err != nil {
		return err
	}

	c.clear()
	return nil
}

// Refresh drains the inbox once. An empty inbox yields no messages and no
// error.
func (c *SocketClient) Refresh(ctx context.Context) ([]string, error) {
	username, token, err := c.get()
	if err != nil {
		return nil, err
	}

	m, err := c.call(ctx, &wire.RefreshRequest{Version: common.ProtocolVersion, AuthToken: token, Username: username})
	if err != nil {
		return nil, err
	}
	resp := m.(*wire.RefreshReply)
	err = common.ErrorFromCode(resp.ErrorCode)
	if errors.Is(err, common.ErrNoNewMessages) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return strings.Split(resp.Message, common.MessagesSeparator), nil
}

// Listen polls Refresh every refresh interval. A poll in progress is
// finished before Listen returns, keeping the connection usable.
func (c *SocketClient) Listen(ctx context.Context, fn func(msg string)) error {
	ticker := time.NewTicker(c.refreshInterval)
	defer ticker.Stop()

	for {
		msgs, err := c.Refresh(context.WithoutCancel(ctx))
		if err != nil {
			return err
		}
		for _, m := range msgs {
			fn(m)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (c *SocketClient) Close() error {
	return c.conn.Close()
}
