package repository

import (
	"context"
	"time"

	"grocery-admin/internal/domain/payout"
	"grocery-admin/internal/infra"
	"grocery-admin/internal/infra/db"
	"grocery-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertPayoutSQL = `
INSERT INTO payout_requests (id, amount, status, requester_type, requester_id, requester_name,
                             bank_verified, transaction_ref, rejection_reason, created_at, updated_at)
VALUES ($1, $2::numeric, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	findPayoutForUpdateSQL = `
SELECT id, amount::text, status, requester_type, requester_id, requester_name, bank_verified,
       transaction_ref, rejection_reason, created_at, approved_at, transferred_at,
       completed_at, rejected_at, updated_at
FROM payout_requests
WHERE id = $1
FOR UPDATE`

	// status = $2 turns the write into a compare-and-set on the status read
	// before the transition was applied.
	updatePayoutTransitionSQL = `
UPDATE payout_requests
SET status = $3, transaction_ref = $4, rejection_reason = $5, approved_at = $6,
    transferred_at = $7, completed_at = $8, rejected_at = $9, updated_at = $10
WHERE id = $1 AND status = $2`
)

type PayoutRepository struct {
	db db.DBTX
}

func NewPayoutRepository(db db.DBTX) *PayoutRepository {
	return &PayoutRepository{db: db}
}

func (r *PayoutRepository) Create(ctx context.Context, p *payout.Request) error {
	_, err := r.db.Exec(ctx, insertPayoutSQL,
		p.ID(),
		p.Amount().String(),
		p.Status().String(),
		p.RequesterType().String(),
		p.RequesterID(),
		p.RequesterName(),
		p.BankVerified(),
		pgconv.StringPtrToPgtype(p.TransactionRef()),
		pgconv.StringPtrToPgtype(p.RejectionReason()),
		p.CreatedAt(),
		p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payout request", err)
	}
	return nil
}

func (r *PayoutRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*payout.Request, error) {
	var (
		s                                      payout.Snapshot
		amount                                 string
		transactionRef, rejectionReason        pgtype.Text
		approvedAt, transferredAt, completedAt pgtype.Timestamptz
		rejectedAt                             pgtype.Timestamptz
		createdAt, updatedAt                   time.Time
	)
	err := r.db.QueryRow(ctx, findPayoutForUpdateSQL, id).Scan(
		&s.ID, &amount, &s.Status, &s.RequesterType, &s.RequesterID, &s.RequesterName, &s.BankVerified,
		&transactionRef, &rejectionReason, &createdAt, &approvedAt, &transferredAt,
		&completedAt, &rejectedAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payout request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payout request", err)
	}

	s.Amount, err = pgconv.DecimalFromText(amount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payout amount", err)
	}
	s.TransactionRef = pgconv.StringPtrFromPgtype(transactionRef)
	s.RejectionReason = pgconv.StringPtrFromPgtype(rejectionReason)
	s.CreatedAt = createdAt.UTC()
	s.ApprovedAt = pgconv.TimePtrFromPgtype(approvedAt)
	s.TransferredAt = pgconv.TimePtrFromPgtype(transferredAt)
	s.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	s.RejectedAt = pgconv.TimePtrFromPgtype(rejectedAt)
	s.UpdatedAt = updatedAt.UTC()

	p, err := payout.Reconstruct(s)
	if err != nil {
		return nil, infra.WrapRepoErr("stored payout request is invalid", err)
	}
	return p, nil
}

// UpdateTransition reports KindConflict when the stored status is no longer from.
func (r *PayoutRepository) UpdateTransition(ctx context.Context, p *payout.Request, from payout.Status) error {
	tag, err := r.db.Exec(ctx, updatePayoutTransitionSQL,
		p.ID(),
		from.String(),
		p.Status().String(),
		pgconv.StringPtrToPgtype(p.TransactionRef()),
		pgconv.StringPtrToPgtype(p.RejectionReason()),
		pgconv.TimePtrToPgtype(p.ApprovedAt()),
		pgconv.TimePtrToPgtype(p.TransferredAt()),
		pgconv.TimePtrToPgtype(p.CompletedAt()),
		pgconv.TimePtrToPgtype(p.RejectedAt()),
		p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payout request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payout request status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
