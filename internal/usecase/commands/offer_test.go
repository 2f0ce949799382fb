//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"grocery-admin/internal/domain/offer"
	"grocery-admin/internal/pkg/clock"
	"grocery-admin/internal/pkg/errs"
	"grocery-admin/internal/usecase/commands"
	"grocery-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfferCommands(now time.Time) (*memStore, *clock.FakeClock, commands.OfferCommands) {
	store := newMemStore()
	clk := clock.NewFakeClock(now)
	return store, clk, commands.NewOfferCommands(&fakeUoW{store: store}, clk)
}

func seedOffer(t *testing.T, store *memStore, b *builder.OfferBuilder) *offer.Offer {
	t.Helper()
	o, err := b.BuildStored()
	require.NoError(t, err)
	store.offers[o.ID()] = o
	return o
}

func TestOfferCommands_Create(t *testing.T) {
	t.Run("stores a valid offer", func(t *testing.T) {
		b := builder.NewOfferBuilder()
		store, _, uc := newOfferCommands(b.Now)

		id, err := uc.Create(context.Background(), b.BuildCommandInput())
		require.NoError(t, err)

		stored, ok := store.offers[id]
		require.True(t, ok)
		assert.Equal(t, "Summer Fruit Fest", stored.Title().String())
		assert.Equal(t, b.Now, stored.CreatedAt())
	})

	t.Run("invalid input is a validation error", func(t *testing.T) {
		b := builder.NewOfferBuilder().WithDiscount("percentage", decimal.NewFromInt(120))
		store, _, uc := newOfferCommands(b.Now)

		_, err := uc.Create(context.Background(), b.BuildCommandInput())

		require.Error(t, err)
		assert.True(t, errs.Is(err, offer.ErrInvalidPercentage))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Empty(t, store.offers)
	})
}

func TestOfferCommands_Update(t *testing.T) {
	t.Run("patches only the given fields", func(t *testing.T) {
		b := builder.NewOfferBuilder()
		store, clk, uc := newOfferCommands(b.Now)
		o := seedOffer(t, store, b)
		clk.Advance(time.Hour)

		title := "Monsoon Veggie Week"
		order := 4
		err := uc.Update(context.Background(), o.ID(), commands.OfferPatch{
			Title:        &title,
			DisplayOrder: &order,
		})
		require.NoError(t, err)

		got := store.offers[o.ID()]
		assert.Equal(t, title, got.Title().String())
		assert.Equal(t, 4, got.DisplayOrder())
		assert.True(t, got.Discount().Value().Equal(decimal.NewFromInt(20)))
		assert.Equal(t, b.EndDate, got.EndDate())
		assert.Equal(t, b.Now.Add(time.Hour), got.UpdatedAt())
	})

	t.Run("clear end date makes the offer open ended", func(t *testing.T) {
		b := builder.NewOfferBuilder()
		store, _, uc := newOfferCommands(b.Now)
		o := seedOffer(t, store, b)

		err := uc.Update(context.Background(), o.ID(), commands.OfferPatch{ClearEndDate: true})
		require.NoError(t, err)

		assert.Nil(t, store.offers[o.ID()].EndDate())
	})

	t.Run("rejected patch leaves the offer unchanged", func(t *testing.T) {
		b := builder.NewOfferBuilder()
		store, _, uc := newOfferCommands(b.Now)
		o := seedOffer(t, store, b)

		before := b.Now.AddDate(0, 0, -10)
		title := "Should not stick"
		err := uc.Update(context.Background(), o.ID(), commands.OfferPatch{
			Title:   &title,
			EndDate: &before,
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, offer.ErrInvalidDateRange))
		assert.Equal(t, "Summer Fruit Fest", store.offers[o.ID()].Title().String())
	})

	t.Run("unknown offer", func(t *testing.T) {
		_, _, uc := newOfferCommands(time.Now())

		err := uc.Update(context.Background(), uuid.New(), commands.OfferPatch{})

		require.ErrorIs(t, err, errs.ErrOfferNotFound)
	})
}

func TestOfferCommands_SetActive(t *testing.T) {
	b := builder.NewOfferBuilder()
	store, _, uc := newOfferCommands(b.Now)
	o := seedOffer(t, store, b)

	require.NoError(t, uc.SetActive(context.Background(), o.ID(), false))

	got := store.offers[o.ID()]
	assert.False(t, got.IsActive())
	assert.Equal(t, offer.StatusInactive, got.DateStatus(b.Now))
}

func TestOfferCommands_Delete(t *testing.T) {
	b := builder.NewOfferBuilder()
	store, _, uc := newOfferCommands(b.Now)
	o := seedOffer(t, store, b)

	require.NoError(t, uc.Delete(context.Background(), o.ID()))
	assert.Empty(t, store.offers)

	err := uc.Delete(context.Background(), o.ID())
	require.ErrorIs(t, err, errs.ErrOfferNotFound)
}
