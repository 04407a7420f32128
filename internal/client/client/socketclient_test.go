package client

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedServer answers each request frame with the next canned reply and
// records what it received.
func scriptedServer(t *testing.T, replies ...string) (*SocketClient, <-chan string) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	received := make(chan string, len(replies)+1)

	go func() {
		defer serverConn.Close()
		buf := make([]byte, 1024)
		for _, r := range replies {
			n, err := serverConn.Read(buf)
			if err != nil {
				return
			}
			received <- string(buf[:n])
			if _, err := serverConn.Write([]byte(r)); err != nil {
				return
			}
		}
	}()

	c := newSocketClient(clientConn, "pipe", 10*time.Millisecond)
	t.Cleanup(func() { _ = c.Close() })
	return c, received
}

func TestSocketClient_SessionFlow(t *testing.T) {
	ctx := context.Background()
	c, received := scriptedServer(t,
		"0||1||||tok||Aakash Mishra",
		"2||1||",
		"3||1||||aakamishra, jwaldo",
		"5||1||[jwaldo]: hi\n[jwaldo]: there||",
		"5||1||||NoNewMessages",
		"4||1||",
	)

	name, err := c.CreateAccount(ctx, "aakamishra", "hahaha", "Aakash Mishra")
	require.NoError(t, err)
	assert.Equal(t, "Aakash Mishra", name)
	assert.Equal(t, "0||1||aakamishra||hahaha||Aakash Mishra", <-received)

	require.NoError(t, c.SendMessage(ctx, "jwaldo", "hi!"))
	assert.Equal(t, "2||1||tok||aakamishra||jwaldo||hi!", <-received)

	names, err := c.ListAccounts(ctx, 0, ".*")
	require.NoError(t, err)
	assert.Equal(t, []string{"aakamishra", "jwaldo"}, names)
	assert.Equal(t, "3||1||tok||aakamishra||0||.*", <-received)

	msgs, err := c.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"[jwaldo]: hi", "[jwaldo]: there"}, msgs)
	assert.Equal(t, "5||1||tok||aakamishra", <-received)

	msgs, err = c.Refresh(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
	<-received

	require.NoError(t, c.DeleteAccount(ctx))
	assert.Equal(t, "4||1||tok||aakamishra", <-received)
	assert.Empty(t, c.Username())
}

func TestSocketClient_ReplyCodes(t *testing.T) {
	ctx := context.Background()
	c, _ := scriptedServer(t,
		"1||1||PasswordInvalid||||",
		"1||1||||tok||J",
		"2||1||InvalidRecipient",
	)

	_, err := c.Login(ctx, "jwaldo", "bad")
	assert.ErrorIs(t, err, common.ErrPasswordInvalid)
	assert.ErrorIs(t, c.SendMessage(ctx, "x", "y"), ErrNotLoggedIn)

	_, err = c.Login(ctx, "jwaldo", "good")
	require.NoError(t, err)
	assert.ErrorIs(t, c.SendMessage(ctx, "nobody", "y"), common.ErrInvalidRecipient)
}

func TestSocketClient_UnexpectedReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "other opcode", reply: "3||1||||a"},
		{name: "field count", reply: "1||1||||tok||J||extra"},
		{name: "not a frame", reply: "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := scriptedServer(t, tt.reply, "1||1||||tok||J")

			_, err := c.Login(context.Background(), "a", "p")
			assert.ErrorIs(t, err, ErrUnexpectedReply)

			// the connection is closed instead of reading the next reply
			_, err = c.Login(context.Background(), "a", "p")
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestSocketClient_ReplyLongerThanBuffer(t *testing.T) {
	ctx := context.Background()
	batch := make([]string, 0, 3000)
	for i := 0; i < cap(batch); i++ {
		batch = append(batch, fmt.Sprintf("[jwaldo]: message %d", i))
	}
	c, _ := scriptedServer(t,
		"1||1||||tok||J",
		"5||1||"+strings.Join(batch, "\n")+"||",
		"5||1||||NoNewMessages",
	)

	_, err := c.Login(ctx, "aakamishra", "p")
	require.NoError(t, err)

	msgs, err := c.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, batch, msgs)

	msgs, err = c.Refresh(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestSocketClient_ServerGone(t *testing.T) {
	c, _ := scriptedServer(t)

	_, err := c.Login(context.Background(), "a", "p")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSocketClient_ContextCancel(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()
	go func() {
		// read the request, never answer
		_, _ = serverConn.Read(make([]byte, 1024))
	}()

	c := newSocketClient(clientConn, "pipe", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Login(ctx, "a", "p")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSocketClient_Listen(t *testing.T) {
	c, _ := scriptedServer(t,
		"1||1||||tok||B",
		"5||1||[a]: one||",
		"5||1||||NoNewMessages",
		"5||1||[a]: two||",
		"5||1||||InvalidToken",
	)
	_, err := c.Login(context.Background(), "b", "p")
	require.NoError(t, err)

	var got []string
	err = c.Listen(context.Background(), func(m string) { got = append(got, m) })
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.Equal(t, []string{"[a]: one", "[a]: two"}, got)
}
