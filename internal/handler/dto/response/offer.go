package response

import (
	"time"

	"grocery-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OfferResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   *string         `json:"description,omitempty"`
	Tag           *string         `json:"tag,omitempty"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Scope         string          `json:"scope"`
	ScopeRefID    *uuid.UUID      `json:"scope_ref_id,omitempty"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	IsActive      bool            `json:"is_active"`
	DisplayOrder  int             `json:"display_order"`
	DateStatus    string          `json:"date_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OfferListResponse struct {
	Items      []OfferResponse `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

func NewOfferResponse(v *queries.OfferView) (*OfferResponse, error) {
	var r OfferResponse
	if err := copier.Copy(&r, v); err != nil {
		return nil, err
	}
	return &r, nil
}

func NewOfferListResponse(res *queries.OfferListResult) (*OfferListResponse, error) {
	items, err := mapAll[queries.OfferView, OfferResponse](res.Items)
	if err != nil {
		return nil, err
	}
	return &OfferListResponse{Items: items, Pagination: newPagination(res.Page)}, nil
}
