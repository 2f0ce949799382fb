package repository

import (
	"context"
	"time"

	"grocery-admin/internal/domain/offer"
	"grocery-admin/internal/infra"
	"grocery-admin/internal/infra/db"
	"grocery-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findOfferForUpdateSQL = `
SELECT id, title, description, tag, discount_type, discount_value::text, scope, scope_ref_id,
       start_date, end_date, is_active, display_order, created_at, updated_at
FROM offers
WHERE id = $1
FOR UPDATE`

	insertOfferSQL = `
INSERT INTO offers (id, title, description, tag, discount_type, discount_value, scope, scope_ref_id,
                    start_date, end_date, is_active, display_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9, $10, $11, $12, $13, $14)`

	updateOfferSQL = `
UPDATE offers
SET title = $2, description = $3, tag = $4, discount_type = $5, discount_value = $6::numeric,
    scope = $7, scope_ref_id = $8, start_date = $9, end_date = $10, is_active = $11,
    display_order = $12, updated_at = $13
WHERE id = $1`

	deleteOfferSQL = `DELETE FROM offers WHERE id = $1`
)

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(db db.DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

// FindByID loads and row-locks the offer for the rest of the transaction.
func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	var (
		attrs                offer.Attributes
		offerID              uuid.UUID
		description, tag     pgtype.Text
		discountValue        string
		scopeRef             pgtype.UUID
		endDate              pgtype.Timestamptz
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, findOfferForUpdateSQL, id).Scan(
		&offerID, &attrs.Title, &description, &tag, &attrs.DiscountType, &discountValue,
		&attrs.Scope, &scopeRef, &attrs.StartDate, &endDate, &attrs.IsActive,
		&attrs.DisplayOrder, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}

	attrs.DiscountValue, err = pgconv.DecimalFromText(discountValue)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode discount value", err)
	}
	attrs.Description = pgconv.StringPtrFromPgtype(description)
	attrs.Tag = pgconv.StringPtrFromPgtype(tag)
	attrs.ScopeRefID = pgconv.UUIDPtrFromPgtype(scopeRef)
	attrs.StartDate = attrs.StartDate.UTC()
	attrs.EndDate = pgconv.TimePtrFromPgtype(endDate)

	o, err := offer.ReconstructOffer(offerID, attrs, createdAt.UTC(), updatedAt.UTC())
	if err != nil {
		return nil, infra.WrapRepoErr("stored offer is invalid", err)
	}
	return o, nil
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	_, err := r.db.Exec(ctx, insertOfferSQL, append(offerArgs(o), o.CreatedAt(), o.UpdatedAt())...)
	if err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	tag, err := r.db.Exec(ctx, updateOfferSQL, append(offerArgs(o), o.UpdatedAt())...)
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteOfferSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// offerArgs returns the editable columns in statement order ($1..$12).
func offerArgs(o *offer.Offer) []any {
	return []any{
		o.ID(),
		o.Title().String(),
		pgconv.StringPtrToPgtype(o.Description()),
		pgconv.StringPtrToPgtype(o.Tag()),
		o.Discount().Type().String(),
		o.Discount().Value().String(),
		o.Target().Scope().String(),
		pgconv.UUIDPtrToPgtype(o.Target().ReferenceID()),
		o.StartDate(),
		pgconv.TimePtrToPgtype(o.EndDate()),
		o.IsActive(),
		o.DisplayOrder(),
	}
}
