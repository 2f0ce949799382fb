package queries

import (
	"context"

	"grocery-admin/internal/infra"
	"grocery-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	// GetCurrentUser loads the account behind an access token. A token outlives
	// deactivation, so the active flag is checked on every call.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail matches case-insensitively and also returns the stored password hash.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueries struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueries{store: store}
}

func (q *userQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	account, err := q.store.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, errs.Wrap(err, "failed to load current user")
	case !account.IsActive:
		return nil, ErrUserInactive
	}
	return account, nil
}
