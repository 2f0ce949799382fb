// Package password hashes and checks dashboard passwords with bcrypt.
package password

import (
	"errors"

	"grocery-admin/internal/domain/user"
	"grocery-admin/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errors.New("password hashing failed")
	ErrMismatch        = errors.New("password does not match")
	ErrInvalidPassword = errors.New("invalid password")
)

// Cost matches existing users.password_hash values.
const Cost = 12

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	if len(plain) > user.MaxPasswordLength {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

// Compare returns ErrMismatch for a wrong password and ErrInvalidPassword for
// empty input or a stored value that is not a bcrypt hash.
func Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Mark(err, ErrInvalidPassword)
	}
}
