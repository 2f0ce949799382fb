package repository

import (
	"context"
	"time"

	"grocery-admin/internal/infra"
	"grocery-admin/internal/infra/db"

	"github.com/google/uuid"
)

const updateUserLastLoginSQL = `
UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, updateUserLastLoginSQL, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
