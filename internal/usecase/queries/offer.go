package queries

import (
	"context"
	"strings"
	"time"

	"grocery-admin/internal/domain/offer"
	"grocery-admin/internal/infra"
	"grocery-admin/internal/pkg/clock"
	"grocery-admin/internal/pkg/errs"
	"grocery-admin/internal/pkg/listing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=../../../tests/mock/queries/queries.go -package=queriesmock grocery-admin/internal/usecase/queries OfferQueries,PayoutQueries,UserQueries

var ErrOfferNotFound = errs.ErrOfferNotFound

type OfferListParams struct {
	Search       string
	DateStatus   string
	DiscountType string
	Scope        string
	SortKey      string
	SortDir      string
	Page         int
	PageSize     int
}

type OfferListResult struct {
	Items []*OfferView
	Page
}

type OfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	FindAll(ctx context.Context) ([]*OfferView, error)
}

type OfferQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	List(ctx context.Context, params OfferListParams) (*OfferListResult, error)
}

type offerQueriesImpl struct {
	store OfferReadStore
	clock clock.Clock
}

func NewOfferQueries(store OfferReadStore, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{store: store, clock: clk}
}

const offerDefaultSort = "display_order"

var offerSchema = listing.Schema[*OfferView]{
	Search: map[string]func(*OfferView) string{
		"title":       func(v *OfferView) string { return v.Title },
		"description": func(v *OfferView) string { return deref(v.Description) },
		"tag":         func(v *OfferView) string { return deref(v.Tag) },
	},
	Attrs: map[string]func(*OfferView) string{
		"date_status":   func(v *OfferView) string { return v.DateStatus },
		"discount_type": func(v *OfferView) string { return v.DiscountType },
		"scope":         func(v *OfferView) string { return v.Scope },
	},
	Numbers: map[string]func(*OfferView) decimal.Decimal{
		"display_order":  func(v *OfferView) decimal.Decimal { return decimal.NewFromInt(int64(v.DisplayOrder)) },
		"discount_value": func(v *OfferView) decimal.Decimal { return v.DiscountValue },
	},
	Times: map[string]func(*OfferView) *time.Time{
		"start_date": func(v *OfferView) *time.Time { return &v.StartDate },
		"end_date":   func(v *OfferView) *time.Time { return v.EndDate },
		"created_at": func(v *OfferView) *time.Time { return &v.CreatedAt },
	},
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	classify(v, q.clock.Now())
	return v, nil
}

func (q *offerQueriesImpl) List(ctx context.Context, params OfferListParams) (*OfferListResult, error) {
	if err := validateOfferFilters(params); err != nil {
		return nil, err
	}

	rows, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	for _, v := range rows {
		classify(v, now)
	}

	sortKey := params.SortKey
	if sortKey == "" {
		sortKey = offerDefaultSort
	}
	page, pageSize := normalizePage(params.Page, params.PageSize)
	res := listing.Apply(rows, offerSchema, listing.Params{
		Search: params.Search,
		Filters: map[string]string{
			"date_status":   params.DateStatus,
			"discount_type": params.DiscountType,
			"scope":         params.Scope,
		},
		SortKey:  sortKey,
		SortDir:  listing.ParseSortDirection(params.SortDir),
		Page:     page,
		PageSize: pageSize,
	})

	return &OfferListResult{
		Items: res.Items,
		Page: Page{
			Page:       page,
			PageSize:   pageSize,
			TotalCount: res.TotalCount,
			TotalPages: listing.TotalPages(res.TotalCount, pageSize),
		},
	}, nil
}

func classify(v *OfferView, now time.Time) {
	v.DateStatus = offer.ClassifyDateStatus(now, v.IsActive, v.StartDate, v.EndDate).String()
}

func validateOfferFilters(p OfferListParams) error {
	if isSet(p.DateStatus) {
		if _, err := offer.NewDateStatus(p.DateStatus); err != nil {
			return errs.Mark(err, errs.ErrInvalidListFilter)
		}
	}
	if isSet(p.DiscountType) {
		if _, err := offer.NewDiscountType(p.DiscountType); err != nil {
			return errs.Mark(err, errs.ErrInvalidListFilter)
		}
	}
	if isSet(p.Scope) {
		if _, err := offer.NewScope(p.Scope); err != nil {
			return errs.Mark(err, errs.ErrInvalidListFilter)
		}
	}
	return nil
}

func isSet(filter string) bool {
	return filter != "" && !strings.EqualFold(filter, listing.AllSentinel)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
