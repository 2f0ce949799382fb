package auth

import (
	"log/slog"

	"grocery-admin/internal/domain/user"
)

// Credentials is a login attempt. It never prints its password.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := user.NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }

func (c Credentials) String() string {
	return c.email.Value() + ":[redacted]"
}

func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", c.email.Value()))
}
