package queries

import (
	"context"
	"time"

	"grocery-admin/internal/domain/payout"
	"grocery-admin/internal/infra"
	"grocery-admin/internal/pkg/errs"
	"grocery-admin/internal/pkg/listing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPayoutNotFound = errs.ErrPayoutNotFound

type PayoutListParams struct {
	Search        string
	Status        string
	RequesterType string
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	SortKey       string
	SortDir       string
	Page          int
	PageSize      int
}

type PayoutListResult struct {
	Items []*PayoutView
	Page
}

type PayoutReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PayoutView, error)
	FindAll(ctx context.Context) ([]*PayoutView, error)
	StatusTotals(ctx context.Context) ([]PayoutStatusTotal, error)
}

type PayoutQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PayoutView, error)
	List(ctx context.Context, params PayoutListParams) (*PayoutListResult, error)
	Summary(ctx context.Context) (*PayoutSummary, error)
}

type payoutQueriesImpl struct {
	store PayoutReadStore
}

func NewPayoutQueries(store PayoutReadStore) PayoutQueries {
	return &payoutQueriesImpl{store: store}
}

var payoutSchema = listing.Schema[*PayoutView]{
	Search: map[string]func(*PayoutView) string{
		"requester_name":  func(v *PayoutView) string { return v.RequesterName },
		"transaction_ref": func(v *PayoutView) string { return deref(v.TransactionRef) },
	},
	Attrs: map[string]func(*PayoutView) string{
		"status":         func(v *PayoutView) string { return v.Status },
		"requester_type": func(v *PayoutView) string { return v.RequesterType },
	},
	Numbers: map[string]func(*PayoutView) decimal.Decimal{
		"amount": func(v *PayoutView) decimal.Decimal { return v.Amount },
	},
	Times: map[string]func(*PayoutView) *time.Time{
		"created_at":   func(v *PayoutView) *time.Time { return &v.CreatedAt },
		"updated_at":   func(v *PayoutView) *time.Time { return &v.UpdatedAt },
		"completed_at": func(v *PayoutView) *time.Time { return v.CompletedAt },
	},
}

func (q *payoutQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PayoutView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, err
	}
	withActions(v)
	return v, nil
}

func (q *payoutQueriesImpl) List(ctx context.Context, params PayoutListParams) (*PayoutListResult, error) {
	if err := validatePayoutFilters(params); err != nil {
		return nil, err
	}

	rows, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range rows {
		withActions(v)
	}

	sortKey, sortDir := params.SortKey, params.SortDir
	if sortKey == "" {
		sortKey, sortDir = "created_at", string(listing.SortDesc)
	}
	page, pageSize := normalizePage(params.Page, params.PageSize)

	lp := listing.Params{
		Search: params.Search,
		Filters: map[string]string{
			"status":         params.Status,
			"requester_type": params.RequesterType,
		},
		SortKey:  sortKey,
		SortDir:  listing.ParseSortDirection(sortDir),
		Page:     page,
		PageSize: pageSize,
	}
	if params.MinAmount != nil || params.MaxAmount != nil {
		lp.NumberRanges = map[string]listing.NumberRange{
			"amount": {Min: params.MinAmount, Max: params.MaxAmount},
		}
	}
	if params.CreatedFrom != nil || params.CreatedTo != nil {
		lp.TimeRanges = map[string]listing.TimeRange{
			"created_at": {From: params.CreatedFrom, To: params.CreatedTo},
		}
	}

	res := listing.Apply(rows, payoutSchema, lp)
	return &PayoutListResult{
		Items: res.Items,
		Page: Page{
			Page:       page,
			PageSize:   pageSize,
			TotalCount: res.TotalCount,
			TotalPages: listing.TotalPages(res.TotalCount, pageSize),
		},
	}, nil
}

// Summary reports count and amount per status, listing every status even when
// it has no requests.
func (q *payoutQueriesImpl) Summary(ctx context.Context) (*PayoutSummary, error) {
	totals, err := q.store.StatusTotals(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]PayoutStatusTotal, len(totals))
	for _, t := range totals {
		byStatus[t.Status] = t
	}

	summary := &PayoutSummary{
		Statuses:    make([]PayoutStatusTotal, 0, len(payout.Statuses)),
		TotalAmount: decimal.Zero,
	}
	for _, s := range payout.Statuses {
		t, ok := byStatus[s.String()]
		if !ok {
			t = PayoutStatusTotal{Status: s.String(), TotalAmount: decimal.Zero}
		}
		summary.Statuses = append(summary.Statuses, t)
		summary.TotalCount += t.Count
		summary.TotalAmount = summary.TotalAmount.Add(t.TotalAmount)
	}
	return summary, nil
}

func withActions(v *PayoutView) {
	actions := payout.ActionsFor(payout.Status(v.Status), v.BankVerified)
	v.AvailableActions = make([]string, len(actions))
	for i, a := range actions {
		v.AvailableActions[i] = a.String()
	}
}

func validatePayoutFilters(p PayoutListParams) error {
	if isSet(p.Status) {
		if _, err := payout.NewStatus(p.Status); err != nil {
			return errs.Mark(err, errs.ErrInvalidListFilter)
		}
	}
	if isSet(p.RequesterType) {
		if _, err := payout.NewRequesterType(p.RequesterType); err != nil {
			return errs.Mark(err, errs.ErrInvalidListFilter)
		}
	}
	if p.MinAmount != nil && p.MaxAmount != nil && p.MinAmount.GreaterThan(*p.MaxAmount) {
		return errs.Mark(errs.New("min_amount is greater than max_amount"), errs.ErrInvalidListFilter)
	}
	if p.CreatedFrom != nil && p.CreatedTo != nil && p.CreatedFrom.After(*p.CreatedTo) {
		return errs.Mark(errs.New("created_from is after created_to"), errs.ErrInvalidListFilter)
	}
	return nil
}
