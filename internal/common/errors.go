// Package common defines shared constants and sentinel errors used across
// client and server layers of GophChat. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Wire decode errors (raw-socket transport only).
	ErrBytesInvalid     = errors.New("bytes not decodable")
	ErrArgCountMismatch = errors.New("incorrect number of arguments")
	ErrArgTypeMismatch  = errors.New("argument type mismatch")

	// Auth errors.
	ErrInvalidToken    = errors.New("invalid token")
	ErrUsernameInvalid = errors.New("username invalid")
	ErrPasswordInvalid = errors.New("password invalid")

	// Domain errors.
	ErrUsernameExists   = errors.New("username already exists")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidRecipient = errors.New("invalid recipient")
	ErrPatternInvalid   = errors.New("pattern invalid")
	ErrNoNewMessages    = errors.New("no new messages")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)

// Reply codes carried in the error_code field of every reply.
const (
	CodeBytesInvalid     = "BytesInvalid"
	CodeArgCountMismatch = "ArgCountMismatch"
	CodeArgTypeMismatch  = "ArgTypeMismatch"
	CodeInvalidToken     = "InvalidToken"
	CodeUsernameInvalid  = "UsernameInvalid"
	CodePasswordInvalid  = "PasswordInvalid"
	CodeUsernameExists   = "UsernameExists"
	CodeInvalidPassword  = "InvalidPassword"
	CodeInvalidRecipient = "InvalidRecipient"
	CodePatternInvalid   = "PatternInvalid"
	CodeNoNewMessages    = "NoNewMessages"
	CodeInternal         = "Internal"
)

var codes = []struct {
	err  error
	code string
}{
	{ErrBytesInvalid, CodeBytesInvalid},
	{ErrArgCountMismatch, CodeArgCountMismatch},
	{ErrArgTypeMismatch, CodeArgTypeMismatch},
	{ErrInvalidToken, CodeInvalidToken},
	{ErrUsernameInvalid, CodeUsernameInvalid},
	{ErrPasswordInvalid, CodePasswordInvalid},
	{ErrUsernameExists, CodeUsernameExists},
	{ErrInvalidPassword, CodeInvalidPassword},
	{ErrInvalidRecipient, CodeInvalidRecipient},
	{ErrPatternInvalid, CodePatternInvalid},
	{ErrNoNewMessages, CodeNoNewMessages},
	{ErrorInternal, CodeInternal},
}

// ErrorCode returns the reply code for err. A nil error maps to the empty
// code; errors outside the taxonomy map to CodeInternal.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// ErrorFromCode is the inverse of ErrorCode. Unknown non-empty codes are
// wrapped into ErrorInternal so that callers still see a failure.
func ErrorFromCode(code string) error {
	if code == "" {
		return nil
	}
	for _, c := range codes {
		if c.code == code {
			return c.err
		}
	}
	return &UnknownCodeError{Code: code}
}

// UnknownCodeError is returned by ErrorFromCode for codes this build does
// not know about.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return "unknown error code: " + e.Code
}

func (e *UnknownCodeError) Unwrap() error {
	return ErrorInternal
}
