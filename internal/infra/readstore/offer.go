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
	offerSelect = `
SELECT id, title, description, tag, discount_type, discount_value::text AS discount_value, scope,
       scope_ref_id, start_date, end_date, is_active, display_order, created_at, updated_at
FROM offers`

	findOfferByIDSQL = offerSelect + ` WHERE id = $1`
	findAllOffersSQL = offerSelect + ` ORDER BY display_order, created_at`
)

type offerRecord struct {
	ID            uuid.UUID          `db:"id"`
	Title         string             `db:"title"`
	Description   pgtype.Text        `db:"description"`
	Tag           pgtype.Text        `db:"tag"`
	DiscountType  string             `db:"discount_type"`
	DiscountValue string             `db:"discount_value"`
	Scope         string             `db:"scope"`
	ScopeRefID    pgtype.UUID        `db:"scope_ref_id"`
	StartDate     time.Time          `db:"start_date"`
	EndDate       pgtype.Timestamptz `db:"end_date"`
	IsActive      bool               `db:"is_active"`
	DisplayOrder  int32              `db:"display_order"`
	CreatedAt     time.Time          `db:"created_at"`
	UpdatedAt     time.Time          `db:"updated_at"`
}

// OfferReadStore returns offers without DateStatus; the query service
// classifies them against its clock.
type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(db db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: db}
}

func (s *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	rows, err := s.db.Query(ctx, findOfferByIDSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[offerRecord])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan offer", err)
	}
	return toOfferView(rec)
}

func (s *OfferReadStore) FindAll(ctx context.Context) ([]*queries.OfferView, error) {
	rows, err := s.db.Query(ctx, findAllOffersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[offerRecord])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan offers", err)
	}

	views := make([]*queries.OfferView, 0, len(recs))
	for _, rec := range recs {
		v, err := toOfferView(rec)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toOfferView(rec offerRecord) (*queries.OfferView, error) {
	value, err := pgconv.DecimalFromText(rec.DiscountValue)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode discount value", err)
	}
	return &queries.OfferView{
		ID:            rec.ID,
		Title:         rec.Title,
		Description:   pgconv.StringPtrFromPgtype(rec.Description),
		Tag:           pgconv.StringPtrFromPgtype(rec.Tag),
		DiscountType:  rec.DiscountType,
		DiscountValue: value,
		Scope:         rec.Scope,
		ScopeRefID:    pgconv.UUIDPtrFromPgtype(rec.ScopeRefID),
		StartDate:     rec.StartDate.UTC(),
		EndDate:       pgconv.TimePtrFromPgtype(rec.EndDate),
		IsActive:      rec.IsActive,
		DisplayOrder:  int(rec.DisplayOrder),
		CreatedAt:     rec.CreatedAt.UTC(),
		UpdatedAt:     rec.UpdatedAt.UTC(),
	}, nil
}
