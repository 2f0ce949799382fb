package offer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Attributes are the editable fields of an offer.
type Attributes struct {
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
}

type Offer struct {
	id           uuid.UUID
	title        Title
	description  *string
	tag          *string
	discount     Discount
	target       Target
	startDate    time.Time
	endDate      *time.Time
	isActive     bool
	displayOrder int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewOffer(attrs Attributes, now time.Time) (*Offer, error) {
	o := &Offer{
		id:        uuid.New(),
		createdAt: now,
	}
	if err := o.apply(attrs); err != nil {
		return nil, err
	}
	o.updatedAt = now
	return o, nil
}

func ReconstructOffer(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) (*Offer, error) {
	o := &Offer{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	if err := o.apply(attrs); err != nil {
		return nil, err
	}
	return o, nil
}

// Update replaces every editable field. On error the offer is left unchanged.
func (o *Offer) Update(attrs Attributes, now time.Time) error {
	next := *o
	if err := next.apply(attrs); err != nil {
		return err
	}
	next.updatedAt = now
	*o = next
	return nil
}

func (o *Offer) SetActive(active bool, now time.Time) {
	if o.isActive == active {
		return
	}
	o.isActive = active
	o.updatedAt = now
}

func (o *Offer) DateStatus(now time.Time) DateStatus {
	return ClassifyDateStatus(now, o.isActive, o.startDate, o.endDate)
}

func (o *Offer) Attributes() Attributes {
	return Attributes{
		Title:         o.title.String(),
		Description:   o.description,
		Tag:           o.tag,
		DiscountType:  o.discount.Type().String(),
		DiscountValue: o.discount.Value(),
		Scope:         o.target.Scope().String(),
		ScopeRefID:    o.target.ReferenceID(),
		StartDate:     o.startDate,
		EndDate:       o.endDate,
		IsActive:      o.isActive,
		DisplayOrder:  o.displayOrder,
	}
}

func (o *Offer) apply(attrs Attributes) error {
	title, err := NewTitle(attrs.Title)
	if err != nil {
		return err
	}
	description, err := optionalText(attrs.Description, MaxDescriptionLength, ErrDescriptionTooLong)
	if err != nil {
		return err
	}
	tag, err := optionalText(attrs.Tag, MaxTagLength, ErrTagTooLong)
	if err != nil {
		return err
	}
	discount, err := NewDiscount(attrs.DiscountType, attrs.DiscountValue)
	if err != nil {
		return err
	}
	target, err := NewTarget(attrs.Scope, attrs.ScopeRefID)
	if err != nil {
		return err
	}
	if attrs.EndDate != nil && attrs.EndDate.Before(attrs.StartDate) {
		return ErrInvalidDateRange
	}
	if attrs.DisplayOrder < 0 {
		return ErrNegativeDisplayOrder
	}

	var end *time.Time
	if attrs.EndDate != nil {
		e := *attrs.EndDate
		end = &e
	}

	o.title = title
	o.description = description
	o.tag = tag
	o.discount = discount
	o.target = target
	o.startDate = attrs.StartDate
	o.endDate = end
	o.isActive = attrs.IsActive
	o.displayOrder = attrs.DisplayOrder
	return nil
}

func (o *Offer) ID() uuid.UUID        { return o.id }
func (o *Offer) Title() Title         { return o.title }
func (o *Offer) Description() *string { return o.description }
func (o *Offer) Tag() *string         { return o.tag }
func (o *Offer) Discount() Discount   { return o.discount }
func (o *Offer) Target() Target       { return o.target }
func (o *Offer) StartDate() time.Time { return o.startDate }
func (o *Offer) EndDate() *time.Time  { return o.endDate }
func (o *Offer) IsActive() bool       { return o.isActive }
func (o *Offer) DisplayOrder() int    { return o.displayOrder }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time { return o.updatedAt }
