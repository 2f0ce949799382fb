package request

import (
	"time"

	"grocery-admin/internal/usecase/commands"
	"grocery-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountValue is range-checked by the domain because the rule depends on the discount type.
type CreateOfferRequest struct {
	Title         string          `json:"title" binding:"required,max=120"`
	Description   *string         `json:"description,omitempty" binding:"omitempty,max=500"`
	Tag           *string         `json:"tag,omitempty" binding:"omitempty,max=40"`
	DiscountType  string          `json:"discount_type" binding:"required,oneof=percentage flat bogo"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	Scope         string          `json:"scope" binding:"required,oneof=all category vendor product"`
	ScopeRefID    *uuid.UUID      `json:"scope_ref_id,omitempty"`
	StartDate     time.Time       `json:"start_date" binding:"required"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	IsActive      *bool           `json:"is_active,omitempty"`
	DisplayOrder  int             `json:"display_order" binding:"min=0"`
}

func (r *CreateOfferRequest) ToInput() commands.OfferInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return commands.OfferInput{
		Title:         r.Title,
		Description:   r.Description,
		Tag:           r.Tag,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		Scope:         r.Scope,
		ScopeRefID:    r.ScopeRefID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		IsActive:      active,
		DisplayOrder:  r.DisplayOrder,
	}
}

// UpdateOfferRequest is a partial update. Omitted fields keep their stored value.
type UpdateOfferRequest struct {
	Title         *string          `json:"title,omitempty" binding:"omitnil,min=1,max=120"`
	Description   *string          `json:"description,omitempty" binding:"omitempty,max=500"`
	Tag           *string          `json:"tag,omitempty" binding:"omitempty,max=40"`
	DiscountType  *string          `json:"discount_type,omitempty" binding:"omitnil,oneof=percentage flat bogo"`
	DiscountValue *decimal.Decimal `json:"discount_value,omitempty"`
	Scope         *string          `json:"scope,omitempty" binding:"omitnil,oneof=all category vendor product"`
	ScopeRefID    *uuid.UUID       `json:"scope_ref_id,omitempty"`
	StartDate     *time.Time       `json:"start_date,omitempty"`
	EndDate       *time.Time       `json:"end_date,omitempty"`
	ClearEndDate  bool             `json:"clear_end_date,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	DisplayOrder  *int             `json:"display_order,omitempty" binding:"omitempty,min=0"`
}

func (r *UpdateOfferRequest) ToPatch() commands.OfferPatch {
	return commands.OfferPatch{
		Title:         r.Title,
		Description:   r.Description,
		Tag:           r.Tag,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		Scope:         r.Scope,
		ScopeRefID:    r.ScopeRefID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		ClearEndDate:  r.ClearEndDate,
		IsActive:      r.IsActive,
		DisplayOrder:  r.DisplayOrder,
	}
}

type SetOfferActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type OfferListQuery struct {
	Search       string `form:"search"`
	DateStatus   string `form:"date_status"`
	DiscountType string `form:"discount_type"`
	Scope        string `form:"scope"`
	Sort         string `form:"sort" binding:"omitempty,oneof=display_order title discount_value start_date end_date created_at"`
	Order        string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

func (q *OfferListQuery) ToParams() queries.OfferListParams {
	return queries.OfferListParams{
		Search:       q.Search,
		DateStatus:   q.DateStatus,
		DiscountType: q.DiscountType,
		Scope:        q.Scope,
		SortKey:      q.Sort,
		SortDir:      q.Order,
		Page:         q.Page,
		PageSize:     q.PageSize,
	}
}
