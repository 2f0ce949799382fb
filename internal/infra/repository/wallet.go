package repository

import (
	"context"

	"grocery-admin/internal/infra"
	"grocery-admin/internal/infra/db"
	"grocery-admin/internal/pkg/pgconv"
	"grocery-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

const findWalletSQL = `
SELECT owner_id, owner_type, owner_name, available_balance::text, bank_verified
FROM wallets
WHERE owner_id = $1
FOR SHARE`

// WalletRepository reads balances owned by the wallet service. It never writes.
type WalletRepository struct {
	db db.DBTX
}

func NewWalletRepository(db db.DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*shared.WalletSnapshot, error) {
	var (
		w         shared.WalletSnapshot
		available string
	)
	err := r.db.QueryRow(ctx, findWalletSQL, ownerID).Scan(
		&w.OwnerID, &w.OwnerType, &w.OwnerName, &available, &w.BankVerified,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("wallet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find wallet", err)
	}

	w.AvailableBalance, err = pgconv.DecimalFromText(available)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode wallet balance", err)
	}
	return &w, nil
}
