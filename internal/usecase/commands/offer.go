package commands

import (
	"context"
	"time"

	"grocery-admin/internal/domain/offer"
	"grocery-admin/internal/infra"
	"grocery-admin/internal/pkg/clock"
	"grocery-admin/internal/pkg/errs"
	"grocery-admin/internal/pkg/patch"
	"grocery-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=../../../tests/mock/commands/commands.go -package=commandsmock grocery-admin/internal/usecase/commands AuthCommands,OfferCommands,PayoutCommands

type OfferInput struct {
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

// OfferPatch leaves nil fields untouched. ClearEndDate makes the offer open ended.
type OfferPatch struct {
	Title         *string
	Description   *string
	Tag           *string
	DiscountType  *string
	DiscountValue *decimal.Decimal
	Scope         *string
	ScopeRefID    *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	ClearEndDate  bool
	IsActive      *bool
	DisplayOrder  *int
}

type OfferCommands interface {
	Create(ctx context.Context, in OfferInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p OfferPatch) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type offerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock) OfferCommands {
	return &offerCommandsImpl{uow: uow, clock: clk}
}

func (uc *offerCommandsImpl) Create(ctx context.Context, in OfferInput) (uuid.UUID, error) {
	o, err := offer.NewOffer(offer.Attributes(in), uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Create(ctx, o)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return o.ID(), nil
}

func (uc *offerCommandsImpl) Update(ctx context.Context, id uuid.UUID, p OfferPatch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := findOffer(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := o.Update(p.merge(o.Attributes()), uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return tx.Offers().Update(ctx, o)
	})
}

func (uc *offerCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := findOffer(ctx, tx, id)
		if err != nil {
			return err
		}
		o.SetActive(active, uc.clock.Now())
		return tx.Offers().Update(ctx, o)
	})
}

func (uc *offerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Offers().Delete(ctx, id)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrOfferNotFound
		}
		return err
	})
}

func findOffer(ctx context.Context, tx shared.Tx, id uuid.UUID) (*offer.Offer, error) {
	o, err := tx.Offers().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOfferNotFound
		}
		return nil, err
	}
	return o, nil
}

func (p OfferPatch) merge(cur offer.Attributes) offer.Attributes {
	next := offer.Attributes{
		Title:         patch.Coalesce(p.Title, cur.Title),
		Description:   patch.OptionalString(p.Description, cur.Description),
		Tag:           patch.OptionalString(p.Tag, cur.Tag),
		DiscountType:  patch.Coalesce(p.DiscountType, cur.DiscountType),
		DiscountValue: patch.Coalesce(p.DiscountValue, cur.DiscountValue),
		Scope:         patch.Coalesce(p.Scope, cur.Scope),
		ScopeRefID:    cur.ScopeRefID,
		StartDate:     patch.Coalesce(p.StartDate, cur.StartDate),
		EndDate:       cur.EndDate,
		IsActive:      patch.Coalesce(p.IsActive, cur.IsActive),
		DisplayOrder:  patch.Coalesce(p.DisplayOrder, cur.DisplayOrder),
	}
	if p.ScopeRefID != nil {
		next.ScopeRefID = p.ScopeRefID
	}
	switch {
	case p.ClearEndDate:
		next.EndDate = nil
	case p.EndDate != nil:
		next.EndDate = p.EndDate
	}
	return next
}
