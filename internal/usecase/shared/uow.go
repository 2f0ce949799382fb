package shared

import (
	"context"
	"time"

	"grocery-admin/internal/domain/offer"
	"grocery-admin/internal/domain/payout"
	"grocery-admin/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one database transaction.
type Tx interface {
	Offers() OfferRepository
	Payouts() PayoutRepository
	Wallets() WalletReader
	Notifications() NotificationRepository
	Users() UserRepository
	DB() db.DBTX
}

type OfferRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	Create(ctx context.Context, o *offer.Offer) error
	Update(ctx context.Context, o *offer.Offer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PayoutRepository interface {
	Create(ctx context.Context, r *payout.Request) error
	// FindForUpdate locks the row until the transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*payout.Request, error)
	// UpdateTransition persists r only if the stored status still equals from.
	UpdateTransition(ctx context.Context, r *payout.Request, from payout.Status) error
}

// WalletSnapshot is the read-only view of a wallet this service may consult.
type WalletSnapshot struct {
	OwnerID          uuid.UUID
	OwnerType        string
	OwnerName        string
	AvailableBalance decimal.Decimal
	BankVerified     bool
}

type WalletReader interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*WalletSnapshot, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
