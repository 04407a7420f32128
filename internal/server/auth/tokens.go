// Package auth issues and validates the opaque session tokens handed out by
// CreateAccount and Login.
package auth

import (
	"crypto/subtle"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
)

// TokenSize is the number of random bytes behind a token; the hex encoded
// value is twice as long.
const TokenSize = 32

// Token is the single active credential of a user.
type Token struct {
	Value    string
	IssuedAt time.Time
}

// GenerateToken returns a fresh random hex token.
func GenerateToken() (string, error) {
	return common.MakeRandHexString(TokenSize)
}

// TokenStore keeps one token per username. It is not safe for concurrent
// use; the chat service guards it with its metadata lock.
type TokenStore struct {
	tokens   map[string]Token
	validity time.Duration
	now      func() time.Time
}

// NewTokenStore creates a store whose tokens stay valid for validity after
// issuance. now supplies the current time; nil means time.Now in UTC.
func NewTokenStore(validity time.Duration, now func() time.Time) *TokenStore {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &TokenStore{
		tokens:   make(map[string]Token),
		validity: validity,
		now:      now,
	}
}

// Issue generates a token for username, replacing any previous one.
func (s *TokenStore) Issue(username string) (string, error) {
	value, err := GenerateToken()
	if err != nil {
		return "", err
	}
	s.tokens[username] = Token{Value: value, IssuedAt: s.now()}
	return value, nil
}

// Validate returns common.ErrInvalidToken unless token is the current token
// of username and is not older than the configured validity.
func (s *TokenStore) Validate(username, token string) error {
	stored, ok := s.tokens[username]
	if !ok {
		return common.ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(stored.Value), []byte(token)) != 1 {
		return common.ErrInvalidToken
	}
	if s.now().Sub(stored.IssuedAt) > s.validity {
		return common.ErrInvalidToken
	}
	return nil
}

// Revoke forgets the token of username.
func (s *TokenStore) Revoke(username string) {
	delete(s.tokens, username)
}

// Lookup returns the stored token of username.
func (s *TokenStore) Lookup(username string) (Token, bool) {
	t, ok := s.tokens[username]
	return t, ok
}
