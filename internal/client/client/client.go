package client

import (
	"context"
	"sync"
)

// Client is the transport-neutral chat API used by the CLI.
//
// CreateAccount and Login start a session; the other calls act on behalf of
// the logged-in user. Both return the display name stored by the server.
type Client interface {
	Close() error
	CreateAccount(ctx context.Context, username, password, fullname string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	SendMessage(ctx context.Context, recipient, message string) error
	ListAccounts(ctx context.Context, limit int, pattern string) ([]string, error)
	DeleteAccount(ctx context.Context) error
	// Listen calls fn for every message delivered to the current user until
	// ctx is done. It returns the server error if the session stops being
	// valid.
	Listen(ctx context.Context, fn func(msg string)) error
	Username() string
}

// session holds the credentials of the logged-in user. Listen runs next to
// ordinary calls, hence the lock.
type session struct {
	mu       sync.RWMutex
	username string
	token    string
}

func (s *session) set(username, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username, s.token = username, token
}

func (s *session) clear() {
	s.set("", "")
}

func (s *session) get() (string, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", "", ErrNotLoggedIn
	}
	return s.username, s.token, nil
}

func (s *session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}
