package request

import (
	"time"

	"grocery-admin/internal/pkg/errs"
	"grocery-admin/internal/usecase/commands"
	"grocery-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type CreatePayoutRequest struct {
	RequesterID   uuid.UUID       `json:"requester_id" binding:"required"`
	RequesterType string          `json:"requester_type,omitempty" binding:"omitempty,oneof=vendor delivery_boy"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r *CreatePayoutRequest) ToInput() commands.CreatePayoutInput {
	return commands.CreatePayoutInput{
		RequesterID:   r.RequesterID,
		RequesterType: r.RequesterType,
		Amount:        r.Amount,
	}
}

type RejectPayoutRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type TransferPayoutRequest struct {
	TransactionRef string `json:"transaction_ref" binding:"max=100"`
}

type PayoutListQuery struct {
	Search        string `form:"search"`
	Status        string `form:"status"`
	RequesterType string `form:"requester_type"`
	MinAmount     string `form:"min_amount"`
	MaxAmount     string `form:"max_amount"`
	CreatedFrom   string `form:"created_from"`
	CreatedTo     string `form:"created_to"`
	Sort          string `form:"sort" binding:"omitempty,oneof=created_at updated_at completed_at amount requester_name status"`
	Order         string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToParams parses the range bounds. A bare date in created_to covers that whole day.
func (q *PayoutListQuery) ToParams() (queries.PayoutListParams, error) {
	p := queries.PayoutListParams{
		Search:        q.Search,
		Status:        q.Status,
		RequesterType: q.RequesterType,
		SortKey:       q.Sort,
		SortDir:       q.Order,
		Page:          q.Page,
		PageSize:      q.PageSize,
	}

	var err error
	if p.MinAmount, err = parseAmount(q.MinAmount); err != nil {
		return p, err
	}
	if p.MaxAmount, err = parseAmount(q.MaxAmount); err != nil {
		return p, err
	}
	if p.CreatedFrom, err = parseBound(q.CreatedFrom, false); err != nil {
		return p, err
	}
	if p.CreatedTo, err = parseBound(q.CreatedTo, true); err != nil {
		return p, err
	}
	return p, nil
}

func parseAmount(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid amount bound"), errs.ErrInvalidListFilter)
	}
	return &d, nil
}

func parseBound(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid date bound"), errs.ErrInvalidListFilter)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
