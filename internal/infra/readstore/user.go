package readstore

import (
	"context"

	"grocery-admin/internal/infra"
	"grocery-admin/internal/infra/db"
	"grocery-admin/internal/pkg/pgconv"
	"grocery-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	findUserByIDSQL = `
SELECT id, email, name, role, email_verified, is_active
FROM users
WHERE id = $1`

	findUserByEmailSQL = `
SELECT id, email, name, role, email_verified, is_active, password_hash
FROM users
WHERE lower(email) = lower($1)`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var u queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.EmailVerified, &u.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &u, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		u    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.EmailVerified, &u.IsActive, &hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &u, hash, nil
}
