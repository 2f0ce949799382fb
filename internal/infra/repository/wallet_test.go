//go:build unit

package repository

import (
	"context"
	"testing"

	"grocery-admin/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWalletRepository_FindByOwner(t *testing.T) {
	tests := []struct {
		name     string
		scanErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "no wallet", scanErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", scanErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner := uuid.New()
			mockDB := new(MockDBTX)
			mockDB.On("QueryRow", mock.Anything, findWalletSQL, []interface{}{owner}).Return(errRow{err: tt.scanErr})

			w, err := NewWalletRepository(mockDB).FindByOwner(context.Background(), owner)

			assert.Nil(t, w)
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}
