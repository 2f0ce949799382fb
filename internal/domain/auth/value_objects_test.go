//go:build unit

package auth_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"grocery-admin/internal/domain/auth"
	"grocery-admin/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	c, err := auth.NewCredentials("  Ops@Grocery.TEST ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "ops@grocery.test", c.Email().Value())
	assert.Equal(t, "password123", c.Password().Value())

	_, err = auth.NewCredentials("not-an-email", "password123")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)

	_, err = auth.NewCredentials("ops@grocery.test", "short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

func TestCredentialsNeverLeakPassword(t *testing.T) {
	c, err := auth.NewCredentials("ops@grocery.test", "hunter2hunter2")
	require.NoError(t, err)

	assert.NotContains(t, fmt.Sprint(c), "hunter2")
	assert.NotContains(t, fmt.Sprintf("%+v", c), "hunter2")

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("login", "credentials", c)
	assert.Contains(t, buf.String(), "ops@grocery.test")
	assert.NotContains(t, buf.String(), "hunter2")
}
