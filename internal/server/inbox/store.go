// Package inbox keeps the per-recipient queues of undelivered messages.
package inbox

import "github.com/dmitrijs2005/gophchat/internal/common"

// Store maps recipients to FIFO queues of formatted messages. It is not safe
// for concurrent use; the chat service guards it with its inbox lock.
type Store struct {
	queues map[string][]string
}

func NewStore() *Store {
	return &Store{queues: make(map[string][]string)}
}

// Open creates an empty inbox for username, discarding any previous one.
func (s *Store) Open(username string) {
	s.queues[username] = []string{}
}

// Remove drops the inbox of username together with its pending messages.
func (s *Store) Remove(username string) {
	delete(s.queues, username)
}

// Exists reports whether username has an inbox.
func (s *Store) Exists(username string) bool {
	_, ok := s.queues[username]
	return ok
}

// Push appends msg to the inbox of username. It fails with
// common.ErrInvalidRecipient if there is no such inbox.
func (s *Store) Push(username, msg string) error {
	q, ok := s.queues[username]
	if !ok {
		return common.ErrInvalidRecipient
	}
	s.queues[username] = append(q, msg)
	return nil
}

// Pop removes and returns the oldest message of username.
func (s *Store) Pop(username string) (string, bool) {
	q := s.queues[username]
	if len(q) == 0 {
		return "", false
	}
	msg := q[0]
	q[0] = ""
	s.queues[username] = q[1:]
	return msg, true
}

// Drain removes and returns every pending message of username, oldest
// first. The inbox itself stays open.
func (s *Store) Drain(username string) []string {
	q, ok := s.queues[username]
	if !ok || len(q) == 0 {
		return nil
	}
	s.queues[username] = []string{}
	return q
}

// Len returns the number of pending messages for username.
func (s *Store) Len(username string) int {
	return len(s.queues[username])
}

// Pending returns the number of pending messages across all inboxes.
func (s *Store) Pending() int {
	n := 0
	for _, q := range s.queues {
		n += len(q)
	}
	return n
}
