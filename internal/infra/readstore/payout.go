package readstore

import (
	"context"
	"time"

	"grocery-admin/internal/infra"
	"grocery-admin/internal/infra/db"
	"grocery-admin/internal/pkg/pgconv"
	"grocery-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	payoutSelect = `
SELECT id, amount::text AS amount, status, requester_type, requester_id, requester_name,
       bank_verified, transaction_ref, rejection_reason, created_at, approved_at,
       transferred_at, completed_at, rejected_at, updated_at
FROM payout_requests`

	findPayoutByIDSQL = payoutSelect + ` WHERE id = $1`
	findAllPayoutsSQL = payoutSelect + ` ORDER BY created_at DESC`

	payoutStatusTotalsSQL = `
SELECT status, count(*)::int AS count, coalesce(sum(amount), 0)::text AS total_amount
FROM payout_requests
GROUP BY status`
)

type payoutRecord struct {
	ID              uuid.UUID          `db:"id"`
	Amount          string             `db:"amount"`
	Status          string             `db:"status"`
	RequesterType   string             `db:"requester_type"`
	RequesterID     uuid.UUID          `db:"requester_id"`
	RequesterName   string             `db:"requester_name"`
	BankVerified    bool               `db:"bank_verified"`
	TransactionRef  pgtype.Text        `db:"transaction_ref"`
	RejectionReason pgtype.Text        `db:"rejection_reason"`
	CreatedAt       time.Time          `db:"created_at"`
	ApprovedAt      pgtype.Timestamptz `db:"approved_at"`
	TransferredAt   pgtype.Timestamptz `db:"transferred_at"`
	CompletedAt     pgtype.Timestamptz `db:"completed_at"`
	RejectedAt      pgtype.Timestamptz `db:"rejected_at"`
	UpdatedAt       time.Time          `db:"updated_at"`
}

type statusTotalRecord struct {
	Status      string `db:"status"`
	Count       int32  `db:"count"`
	TotalAmount string `db:"total_amount"`
}

type PayoutReadStore struct {
	db db.DBTX
}

func NewPayoutReadStore(db db.DBTX) *PayoutReadStore {
	return &PayoutReadStore{db: db}
}

func (s *PayoutReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PayoutView, error) {
	rows, err := s.db.Query(ctx, findPayoutByIDSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payout request", err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[payoutRecord])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payout request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan payout request", err)
	}
	return toPayoutView(rec)
}

func (s *PayoutReadStore) FindAll(ctx context.Context) ([]*queries.PayoutView, error) {
	rows, err := s.db.Query(ctx, findAllPayoutsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payout requests", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[payoutRecord])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan payout requests", err)
	}

	views := make([]*queries.PayoutView, 0, len(recs))
	for _, rec := range recs {
		v, err := toPayoutView(rec)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// StatusTotals only reports statuses that have at least one request.
func (s *PayoutReadStore) StatusTotals(ctx context.Context) ([]queries.PayoutStatusTotal, error) {
	rows, err := s.db.Query(ctx, payoutStatusTotalsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate payout requests", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[statusTotalRecord])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan payout totals", err)
	}

	totals := make([]queries.PayoutStatusTotal, 0, len(recs))
	for _, rec := range recs {
		amount, err := pgconv.DecimalFromText(rec.TotalAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode payout total", err)
		}
		totals = append(totals, queries.PayoutStatusTotal{
			Status:      rec.Status,
			Count:       int(rec.Count),
			TotalAmount: amount,
		})
	}
	return totals, nil
}

func toPayoutView(rec payoutRecord) (*queries.PayoutView, error) {
	amount, err := pgconv.DecimalFromText(rec.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payout amount", err)
	}
	return &queries.PayoutView{
		ID:              rec.ID,
		Amount:          amount,
		Status:          rec.Status,
		RequesterType:   rec.RequesterType,
		RequesterID:     rec.RequesterID,
		RequesterName:   rec.RequesterName,
		BankVerified:    rec.BankVerified,
		TransactionRef:  pgconv.StringPtrFromPgtype(rec.TransactionRef),
		RejectionReason: pgconv.StringPtrFromPgtype(rec.RejectionReason),
		CreatedAt:       rec.CreatedAt.UTC(),
		ApprovedAt:      pgconv.TimePtrFromPgtype(rec.ApprovedAt),
		TransferredAt:   pgconv.TimePtrFromPgtype(rec.TransferredAt),
		CompletedAt:     pgconv.TimePtrFromPgtype(rec.CompletedAt),
		RejectedAt:      pgconv.TimePtrFromPgtype(rec.RejectedAt),
		UpdatedAt:       rec.UpdatedAt.UTC(),
	}, nil
}
