package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)

const (
	MinPasswordLength = 8
	// bcrypt ignores input past this length
	MaxPasswordLength = 72
	maxEmailLength    = 254
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// Emails are compared case-insensitively, so they are stored lower-cased.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > maxEmailLength || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Password holds a plaintext password only for the length of a login.
type Password struct {
	value string
}

func (p Password) String() string { return "[redacted]" }

func NewPassword(s string) (Password, error) {
	switch {
	case len(s) < MinPasswordLength:
		return Password{}, ErrPasswordTooWeak
	case len(s) > MaxPasswordLength:
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
