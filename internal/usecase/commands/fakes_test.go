//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"grocery-admin/internal/domain/offer"
	"grocery-admin/internal/domain/payout"
	"grocery-admin/internal/infra"
	"grocery-admin/internal/infra/db"
	"grocery-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type job struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

// memStore backs an in-memory unit of work. Writes are not rolled back on error.
type memStore struct {
	offers     map[uuid.UUID]*offer.Offer
	payouts    map[uuid.UUID]payout.Snapshot
	wallets    map[uuid.UUID]*shared.WalletSnapshot
	jobs       []job
	lastLogins map[uuid.UUID]time.Time

	// bumpBeforeUpdate simulates another writer committing between the read
	// and the conditional update.
	bumpBeforeUpdate payout.Status
	loginErr         error
}

func newMemStore() *memStore {
	return &memStore{
		offers:     map[uuid.UUID]*offer.Offer{},
		payouts:    map[uuid.UUID]payout.Snapshot{},
		wallets:    map[uuid.UUID]*shared.WalletSnapshot{},
		lastLogins: map[uuid.UUID]time.Time{},
	}
}

type fakeUoW struct {
	store *memStore
	calls int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.calls++
	return fn(ctx, fakeTx{u.store})
}

type fakeTx struct{ s *memStore }

func (t fakeTx) Offers() shared.OfferRepository               { return offerRepo(t) }
func (t fakeTx) Payouts() shared.PayoutRepository             { return payoutRepo(t) }
func (t fakeTx) Wallets() shared.WalletReader                 { return walletRepo(t) }
func (t fakeTx) Notifications() shared.NotificationRepository { return notificationRepo(t) }
func (t fakeTx) Users() shared.UserRepository                 { return userRepo(t) }
func (t fakeTx) DB() db.DBTX                                  { return nil }

type offerRepo fakeTx

func (r offerRepo) FindByID(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	o, ok := r.s.offers[id]
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return o, nil
}

func (r offerRepo) Create(_ context.Context, o *offer.Offer) error {
	r.s.offers[o.ID()] = o
	return nil
}

func (r offerRepo) Update(_ context.Context, o *offer.Offer) error {
	if _, ok := r.s.offers[o.ID()]; !ok {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	r.s.offers[o.ID()] = o
	return nil
}

func (r offerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.offers[id]; !ok {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	delete(r.s.offers, id)
	return nil
}

type payoutRepo fakeTx

func (r payoutRepo) Create(_ context.Context, p *payout.Request) error {
	r.s.payouts[p.ID()] = p.Snapshot()
	return nil
}

func (r payoutRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*payout.Request, error) {
	snap, ok := r.s.payouts[id]
	if !ok {
		return nil, infra.WrapRepoErr("payout not found", nil, infra.KindNotFound)
	}
	return payout.Reconstruct(snap)
}

func (r payoutRepo) UpdateTransition(_ context.Context, p *payout.Request, from payout.Status) error {
	stored := r.s.payouts[p.ID()]
	if r.s.bumpBeforeUpdate != "" {
		stored.Status = r.s.bumpBeforeUpdate.String()
		r.s.payouts[p.ID()] = stored
	}
	if stored.Status != from.String() {
		return infra.WrapRepoErr("payout status changed", nil, infra.KindConflict)
	}
	r.s.payouts[p.ID()] = p.Snapshot()
	return nil
}

type walletRepo fakeTx

func (r walletRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) (*shared.WalletSnapshot, error) {
	w, ok := r.s.wallets[ownerID]
	if !ok {
		return nil, infra.WrapRepoErr("wallet not found", nil, infra.KindNotFound)
	}
	return w, nil
}

type notificationRepo fakeTx

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.s.jobs = append(r.s.jobs, job{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

type userRepo fakeTx

func (r userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	if r.s.loginErr != nil {
		return r.s.loginErr
	}
	r.s.lastLogins[userID] = at
	return nil
}

type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	released []string
	err      error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[string]bool{}}
}

func (l *fakeLocker) Acquire(_ context.Context, key string, _ time.Duration) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	if l.held[key] {
		return nil, shared.ErrLockHeld
	}
	l.held[key] = true
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
		l.released = append(l.released, key)
	}, nil
}
