package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"grocery-admin/internal/domain/payout"
	"grocery-admin/internal/infra"
	"grocery-admin/internal/pkg/clock"
	"grocery-admin/internal/pkg/errs"
	"grocery-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrRequesterTypeMismatch = errs.New("requester type does not match wallet owner")

type CreatePayoutInput struct {
	RequesterID   uuid.UUID
	RequesterType string
	Amount        decimal.Decimal
}

type TransitionInput struct {
	PayoutID       uuid.UUID
	Action         payout.Action
	Reason         string
	TransactionRef string
	ActorID        uuid.UUID
}

type PayoutCommands interface {
	Create(ctx context.Context, in CreatePayoutInput) (uuid.UUID, error)
	Transition(ctx context.Context, in TransitionInput) error
}

type payoutCommandsImpl struct {
	uow     shared.UnitOfWork
	locker  shared.Locker
	clock   clock.Clock
	lockTTL time.Duration
}

func NewPayoutCommands(uow shared.UnitOfWork, locker shared.Locker, clk clock.Clock, lockTTL time.Duration) PayoutCommands {
	return &payoutCommandsImpl{
		uow:     uow,
		locker:  locker,
		clock:   clk,
		lockTTL: lockTTL,
	}
}

func (uc *payoutCommandsImpl) Create(ctx context.Context, in CreatePayoutInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		wallet, err := tx.Wallets().FindByOwner(ctx, in.RequesterID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrWalletNotFound
			}
			return err
		}
		if in.RequesterType != "" && in.RequesterType != wallet.OwnerType {
			return errs.Mark(ErrRequesterTypeMismatch, errs.ErrDomainValidation)
		}

		now := uc.clock.Now()
		r, err := payout.NewRequest(wallet.OwnerType, wallet.OwnerID, wallet.OwnerName, in.Amount, wallet.AvailableBalance, wallet.BankVerified, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Payouts().Create(ctx, r); err != nil {
			return err
		}

		payload, err := newPayoutEvent(r, "", "", nil, now).marshal()
		if err != nil {
			return errs.Wrap(err, "failed to encode payout event")
		}
		if err := tx.Notifications().CreateJob(ctx, JobKindPayoutRequested, PayoutTopic(r.Status()), payload, now); err != nil {
			return err
		}
		id = r.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Transition applies one reviewer action. The review lock keeps two operators
// off the same request, and the conditional update catches anything that slips
// past an expired lock.
func (uc *payoutCommandsImpl) Transition(ctx context.Context, in TransitionInput) error {
	release, err := uc.locker.Acquire(ctx, reviewLockKey(in.PayoutID), uc.lockTTL)
	if err != nil {
		if errors.Is(err, shared.ErrLockHeld) {
			return errs.ErrReviewInProgress
		}
		return errs.Wrap(err, "failed to acquire review lock")
	}
	defer release()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Payouts().FindForUpdate(ctx, in.PayoutID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrPayoutNotFound
			}
			return err
		}

		from := r.Status()
		now := uc.clock.Now()
		if err := r.Apply(in.Action, payout.Input{Reason: in.Reason, TransactionRef: in.TransactionRef}, now); err != nil {
			return err
		}

		if err := tx.Payouts().UpdateTransition(ctx, r, from); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrConcurrentReview
			}
			return err
		}

		actor := in.ActorID
		payload, err := newPayoutEvent(r, in.Action, from, &actor, now).marshal()
		if err != nil {
			return errs.Wrap(err, "failed to encode payout event")
		}
		if err := tx.Notifications().CreateJob(ctx, JobKindPayoutStatusChanged, PayoutTopic(r.Status()), payload, now); err != nil {
			return err
		}

		slog.Info("payout transitioned",
			"payout_id", r.ID(),
			"action", in.Action,
			"from", from,
			"to", r.Status(),
			"actor_id", in.ActorID)
		return nil
	})
}

func reviewLockKey(id uuid.UUID) string {
	return "payout:review:" + id.String()
}
