package response

import (
	"time"

	"grocery-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PayoutResponse struct {
	ID               uuid.UUID       `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	RequesterType    string          `json:"requester_type"`
	RequesterID      uuid.UUID       `json:"requester_id"`
	RequesterName    string          `json:"requester_name"`
	BankVerified     bool            `json:"bank_verified"`
	TransactionRef   *string         `json:"transaction_ref,omitempty"`
	RejectionReason  *string         `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
	TransferredAt    *time.Time      `json:"transferred_at,omitempty"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
	RejectedAt       *time.Time      `json:"rejected_at,omitempty"`
	UpdatedAt        time.Time       `json:"updated_at"`
	AvailableActions []string        `json:"available_actions"`
}

type PayoutListResponse struct {
	Items      []PayoutResponse `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

type PayoutStatusTotal struct {
	Status      string          `json:"status"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type PayoutSummaryResponse struct {
	Statuses    []PayoutStatusTotal `json:"statuses"`
	TotalCount  int                 `json:"total_count"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
}

func NewPayoutResponse(v *queries.PayoutView) (*PayoutResponse, error) {
	var r PayoutResponse
	if err := copier.Copy(&r, v); err != nil {
		return nil, err
	}
	if r.AvailableActions == nil {
		r.AvailableActions = []string{}
	}
	return &r, nil
}

func NewPayoutListResponse(res *queries.PayoutListResult) (*PayoutListResponse, error) {
	items, err := mapAll[queries.PayoutView, PayoutResponse](res.Items)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].AvailableActions == nil {
			items[i].AvailableActions = []string{}
		}
	}
	return &PayoutListResponse{Items: items, Pagination: newPagination(res.Page)}, nil
}

func NewPayoutSummaryResponse(s *queries.PayoutSummary) (*PayoutSummaryResponse, error) {
	var r PayoutSummaryResponse
	if err := copier.Copy(&r, s); err != nil {
		return nil, err
	}
	if r.Statuses == nil {
		r.Statuses = []PayoutStatusTotal{}
	}
	return &r, nil
}
