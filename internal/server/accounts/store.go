// Package accounts holds registered chat accounts in creation order.
package accounts

import (
	"github.com/dmitrijs2005/gophchat/internal/common"
)

// Store maps usernames to accounts and remembers insertion order. It is not
// safe for concurrent use; the chat service guards it with its metadata
// lock.
type Store struct {
	byName map[string]*Account
	order  []string
}

func NewStore() *Store {
	return &Store{byName: make(map[string]*Account)}
}

// Create adds a. It fails with common.ErrUsernameExists if the username is
// taken.
func (s *Store) Create(a *Account) error {
	if _, ok := s.byName[a.Username]; ok {
		return common.ErrUsernameExists
	}
	s.byName[a.Username] = a
	s.order = append(s.order, a.Username)
	return nil
}

// Get returns the account of username or common.ErrorNotFound.
func (s *Store) Get(username string) (*Account, error) {
	a, ok := s.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return a, nil
}

// Exists reports whether username is registered.
func (s *Store) Exists(username string) bool {
	_, ok := s.byName[username]
	return ok
}

// Delete removes username. It fails with common.ErrorNotFound if absent.
func (s *Store) Delete(username string) error {
	if _, ok := s.byName[username]; !ok {
		return common.ErrorNotFound
	}
	delete(s.byName, username)
	for i, name := range s.order {
		if name == username {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Each calls fn for every username in creation order until fn returns false.
func (s *Store) Each(fn func(username string) bool) {
	for _, name := range s.order {
		if !fn(name) {
			return
		}
	}
}

// Len returns the number of accounts.
func (s *Store) Len() int {
	return len(s.byName)
}
