//go:build unit || e2e

package builder

import (
	"time"

	"grocery-admin/internal/domain/offer"
	reqdto "grocery-admin/internal/handler/dto/request"
	"grocery-admin/internal/usecase/commands"
	"grocery-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ID            uuid.UUID
	Title         string
	Description   *string
	Tag           *string
	DiscountType  string
	DiscountValue decimal.Decimal
	Scope         string
	ScopeRefID    *uuid.UUID
	StartDate     time.Time
	EndDate       *time.Time
	IsActive      bool
	DisplayOrder  int
	Now           time.Time
}

func NewOfferBuilder() *OfferBuilder {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	end := now.AddDate(0, 0, 5)
	description := "Flat 20% off on fresh fruits"
	tag := "SUMMER"
	return &OfferBuilder{
		ID:            uuid.New(),
		Title:         "Summer Fruit Fest",
		Description:   &description,
		Tag:           &tag,
		DiscountType:  "percentage",
		DiscountValue: decimal.NewFromInt(20),
		Scope:         "all",
		StartDate:     now.AddDate(0, 0, -1),
		EndDate:       &end,
		IsActive:      true,
		DisplayOrder:  1,
		Now:           now,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) Attributes() offer.Attributes {
	return offer.Attributes{
		Title:         b.Title,
		Description:   b.Description,
		Tag:           b.Tag,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		Scope:         b.Scope,
		ScopeRefID:    b.ScopeRefID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		IsActive:      b.IsActive,
		DisplayOrder:  b.DisplayOrder,
	}
}

// Build methods
func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	return offer.NewOffer(b.Attributes(), b.Now)
}

func (b *OfferBuilder) BuildStored() (*offer.Offer, error) {
	return offer.ReconstructOffer(b.ID, b.Attributes(), b.Now, b.Now)
}

func (b *OfferBuilder) BuildCommandInput() commands.OfferInput {
	return commands.OfferInput{
		Title:         b.Title,
		Description:   b.Description,
		Tag:           b.Tag,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		Scope:         b.Scope,
		ScopeRefID:    b.ScopeRefID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		IsActive:      b.IsActive,
		DisplayOrder:  b.DisplayOrder,
	}
}

func (b *OfferBuilder) BuildCreateRequestDTO() reqdto.CreateOfferRequest {
	active := b.IsActive
	return reqdto.CreateOfferRequest{
		Title:         b.Title,
		Description:   b.Description,
		Tag:           b.Tag,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		Scope:         b.Scope,
		ScopeRefID:    b.ScopeRefID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		IsActive:      &active,
		DisplayOrder:  b.DisplayOrder,
	}
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		Tag:           b.Tag,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		Scope:         b.Scope,
		ScopeRefID:    b.ScopeRefID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		IsActive:      b.IsActive,
		DisplayOrder:  b.DisplayOrder,
		DateStatus:    offer.ClassifyDateStatus(b.Now, b.IsActive, b.StartDate, b.EndDate).String(),
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}

// Fluent builder methods
func (b *OfferBuilder) WithID(id uuid.UUID) *OfferBuilder {
	b.ID = id
	return b
}

func (b *OfferBuilder) WithTitle(title string) *OfferBuilder {
	b.Title = title
	return b
}

func (b *OfferBuilder) WithDiscount(kind string, value decimal.Decimal) *OfferBuilder {
	b.DiscountType = kind
	b.DiscountValue = value
	return b
}

func (b *OfferBuilder) WithScope(scope string, ref *uuid.UUID) *OfferBuilder {
	b.Scope = scope
	b.ScopeRefID = ref
	return b
}

func (b *OfferBuilder) WithWindow(start time.Time, end *time.Time) *OfferBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *OfferBuilder) WithDisplayOrder(order int) *OfferBuilder {
	b.DisplayOrder = order
	return b
}

func (b *OfferBuilder) WithNow(now time.Time) *OfferBuilder {
	b.Now = now
	return b
}

func (b *OfferBuilder) AsInactive() *OfferBuilder {
	b.IsActive = false
	return b
}

func (b *OfferBuilder) AsOpenEnded() *OfferBuilder {
	b.EndDate = nil
	return b
}
