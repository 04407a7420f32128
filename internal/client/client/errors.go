package client

import "errors"

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrUnexpectedReply = errors.New("unexpected reply")
)
