// Package cryptox wraps the password hashing used by the account store.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters.
const (
	argonTime    = 2
	argonMemory  = 19 * 1024
	argonThreads = 1
	keyLength    = 32
	SaltLength   = 16
)

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, keyLength)
}

// PasswordHash is a salted password verifier.
type PasswordHash struct {
	Salt []byte
	Key  []byte
}

// HashPassword derives a verifier for password using a fresh random salt.
func HashPassword(password string) (PasswordHash, error) {
	salt := common.GenerateRandByteArray(SaltLength)
	if salt == nil {
		return PasswordHash{}, common.ErrorInternal
	}
	return PasswordHash{Salt: salt, Key: DeriveKey([]byte(password), salt)}, nil
}

// Matches reports whether candidate is the password h was derived from.
// The comparison runs in constant time.
func (h PasswordHash) Matches(candidate string) bool {
	return subtle.ConstantTimeCompare(h.Key, DeriveKey([]byte(candidate), h.Salt)) == 1
}
