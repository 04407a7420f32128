package accounts

import (
	"time"

	"github.com/dmitrijs2005/gophchat/internal/cryptox"
)

// Account is a registered chat user. Username is the immutable key.
type Account struct {
	Username  string
	Password  cryptox.PasswordHash
	FullName  string
	CreatedAt time.Time
}
