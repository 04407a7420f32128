// Package chat implements the transport-independent chat operations on top
// of the account, token and inbox stores.
//
// State is guarded by two locks. metaMu covers accounts and tokens, inboxMu
// covers inboxes. When both are needed metaMu is always taken first.
package chat

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/cryptox"
	"github.com/dmitrijs2005/gophchat/internal/server/accounts"
	"github.com/dmitrijs2005/gophchat/internal/server/auth"
	"github.com/dmitrijs2005/gophchat/internal/server/config"
	"github.com/dmitrijs2005/gophchat/internal/server/inbox"
	"github.com/dmitrijs2005/gophchat/internal/wire"
)

// Session is returned by CreateAccount and Login.
type Session struct {
	Token    string
	FullName string
}

// Stats is a point-in-time view of the server state.
type Stats struct {
	Accounts        int `json:"accounts"`
	PendingMessages int `json:"pending_messages"`
}

//go:generate mockgen -destination=mock/operations_mock.go -package=mock . Operations

// Operations is the surface the transports adapt. *Service implements it.
type Operations interface {
	CreateAccount(ctx context.Context, username, password, fullname string) (*Session, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	SendMessage(ctx context.Context, username, token, recipient, body string) error
	ListAccounts(ctx context.Context, username, token string, limit int, pattern string) ([]string, error)
	DeleteAccount(ctx context.Context, username, token string) error
	DeliverMessages(ctx context.Context, username, token string) ([]string, error)
	StreamMessages(ctx context.Context, username, token string, send func(msg string) error) error
	Stats() Stats
}

type Service struct {
	metaMu   sync.Mutex
	accounts *accounts.Store
	tokens   *auth.TokenStore

	inboxMu sync.Mutex
	inboxes *inbox.Store

	listLimit    int
	pollInterval time.Duration
	now          func() time.Time
}

// DefaultPollInterval is used when the config leaves the delivery poll
// interval unset.
const DefaultPollInterval = 200 * time.Millisecond

// Option customizes a Service.
type Option func(*Service)

// WithPollInterval overrides the streaming delivery poll interval.
func WithPollInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// WithClock replaces the wall clock used for token issue and expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		accounts:     accounts.NewStore(),
		inboxes:      inbox.NewStore(),
		listLimit:    cfg.ListAccountsLimit,
		pollInterval: cfg.DeliveryPollInterval,
		now:          func() time.Time { return time.Now().UTC() },
	}
	if s.pollInterval <= 0 {
		s.pollInterval = DefaultPollInterval
	}
	for _, o := range opts {
		o(s)
	}
	s.tokens = auth.NewTokenStore(cfg.TokenValidityDuration, s.now)
	return s
}

var _ Operations = (*Service)(nil)

// wellFormed reports whether v can travel inside a socket frame.
func wellFormed(v string) bool {
	return utf8.ValidString(v) && !strings.Contains(v, wire.Delimiter)
}

// checkBody rejects message bodies the socket transport could not deliver.
// The codes match what a socket client gets for the same bytes.
func checkBody(body string) error {
	if !utf8.ValidString(body) {
		return common.ErrBytesInvalid
	}
	if strings.Contains(body, wire.Delimiter) {
		return fmt.Errorf("%w: delimiter in message body", common.ErrArgCountMismatch)
	}
	return nil
}

func (s *Service) CreateAccount(ctx context.Context, username, password, fullname string) (*Session, error) {
	if username == "" || !wellFormed(username) || !wellFormed(fullname) {
		return nil, common.ErrUsernameInvalid
	}

	s.metaMu.Lock()
	exists := s.accounts.Exists(username)
	s.metaMu.Unlock()
	if exists {
		return nil, common.ErrUsernameExists
	}

	if !wellFormed(password) {
		return nil, common.ErrInvalidPassword
	}

	// argon2 is slow, keep it outside the lock
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %v", common.ErrorInternal, err)
	}

	s.metaMu.Lock()
	defer s.metaMu.Unlock()

	err = s.accounts.Create(&accounts.Account{
		Username:  username,
		Password:  hash,
		FullName:  fullname,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		_ = s.accounts.Delete(username)
		return nil, fmt.Errorf("%w: issuing token: %v", common.ErrorInternal, err)
	}

	s.inboxMu.Lock()
	s.inboxes.Open(username)
	s.inboxMu.Unlock()

	return &Session{Token: token, FullName: fullname}, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	s.metaMu.Lock()
	acc, err := s.accounts.Get(username)
	s.metaMu.Unlock()
	if err != nil {
		return nil, common.ErrUsernameInvalid
	}

	if !acc.Password.Matches(password) {
		return nil, common.ErrPasswordInvalid
	}

	s.metaMu.Lock()
	defer s.metaMu.Unlock()

	// the account may have been deleted while the password was checked
	if !s.accounts.Exists(username) {
		return nil, common.ErrUsernameInvalid
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		return nil, fmt.Errorf("%w: issuing token: %v", common.ErrorInternal, err)
	}

	return &Session{Token: token, FullName: acc.FullName}, nil
}

// validate checks the token. Callers hold metaMu.
func (s *Service) validate(username, token string) error {
	return s.tokens.Validate(username, token)
}

func (s *Service) SendMessage(ctx context.Context, username, token, recipient, body string) error {
	if err := checkBody(body); err != nil {
		return err
	}

	s.metaMu.Lock()
	err := s.validate(username, token)
	s.metaMu.Unlock()
	if err != nil {
		return err
	}

	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()

	return s.inboxes.Push(recipient, fmt.Sprintf(common.MessagePrefixFormat, username, body))
}

// ListAccounts returns the usernames matching pattern in creation order.
// The result holds at most the configured limit, or limit if it is
// positive and smaller.
func (s *Service) ListAccounts(ctx context.Context, username, token string, limit int, pattern string) ([]string, error) {
	s.metaMu.Lock()
	defer s.metaMu.Unlock()

	if err := s.validate(username, token); err != nil {
		return nil, err
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPatternInvalid, err)
	}

	capped := s.listLimit
	if limit > 0 && (capped <= 0 || limit < capped) {
		capped = limit
	}

	names := make([]string, 0)
	s.accounts.Each(func(name string) bool {
		if re.MatchString(name) {
			names = append(names, name)
		}
		return capped <= 0 || len(names) < capped
	})

	return names, nil
}

// DeleteAccount removes the account, its token and its inbox. metaMu is
// held for the whole removal so no operation observes a partial state.
func (s *Service) DeleteAccount(ctx context.Context, username, token string) error {
	s.metaMu.Lock()
	defer s.metaMu.Unlock()

	if err := s.validate(username, token); err != nil {
		return err
	}

	if err := s.accounts.Delete(username); err != nil {
		return fmt.Errorf("%w: deleting account: %v", common.ErrorInternal, err)
	}
	s.tokens.Revoke(username)

	s.inboxMu.Lock()
	s.inboxes.Remove(username)
	s.inboxMu.Unlock()

	return nil
}

// DeliverMessages takes every queued message at once.
func (s *Service) DeliverMessages(ctx context.Context, username, token string) ([]string, error) {
	s.metaMu.Lock()
	defer s.metaMu.Unlock()

	if err := s.validate(username, token); err != nil {
		return nil, err
	}

	s.inboxMu.Lock()
	msgs := s.inboxes.Drain(username)
	s.inboxMu.Unlock()

	if len(msgs) == 0 {
		return nil, common.ErrNoNewMessages
	}
	return msgs, nil
}

// pop validates the token and takes the oldest message, if any.
func (s *Service) pop(username, token string) (string, bool, error) {
	s.metaMu.Lock()
	defer s.metaMu.Unlock()

	if err := s.validate(username, token); err != nil {
		return "", false, err
	}

	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()

	msg, ok := s.inboxes.Pop(username)
	return msg, ok, nil
}

// StreamMessages pushes queued messages to send one by one until ctx is
// done. Between polls it waits for the configured interval. It returns
// common.ErrInvalidToken as soon as the token stops validating and the
// send error if send fails; a message whose send failed is not requeued.
func (s *Service) StreamMessages(ctx context.Context, username, token string, send func(msg string) error) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		for {
			if err := ctx.Err(); err != nil {
				return nil
			}

			msg, ok, err := s.pop(username, token)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			if err := send(msg); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Service) Stats() Stats {
	s.metaMu.Lock()
	defer s.metaMu.Unlock()

	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()

	return Stats{Accounts: s.accounts.Len(), PendingMessages: s.inboxes.Pending()}
}
