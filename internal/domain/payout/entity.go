package payout

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"grocery-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount         = errors.New("payout amount must be greater than 0")
	ErrInsufficientBalance   = errors.New("payout amount exceeds available wallet balance")
	ErrRequesterNameRequired = errors.New("requester name is required")
	ErrRequesterIDRequired   = errors.New("requester id is required")
)

type Request struct {
	id              uuid.UUID
	amount          decimal.Decimal
	status          Status
	requesterType   RequesterType
	requesterID     uuid.UUID
	requesterName   string
	bankVerified    bool
	transactionRef  *string
	rejectionReason *string
	createdAt       time.Time
	approvedAt      *time.Time
	transferredAt   *time.Time
	completedAt     *time.Time
	rejectedAt      *time.Time
	updatedAt       time.Time
}

// NewRequest opens a pending cashout. available is the wallet's available balance
// at the time of the request.
func NewRequest(requesterType string, requesterID uuid.UUID, requesterName string, amount, available decimal.Decimal, bankVerified bool, now time.Time) (*Request, error) {
	rt, err := NewRequesterType(requesterType)
	if err != nil {
		return nil, err
	}
	if requesterID == uuid.Nil {
		return nil, ErrRequesterIDRequired
	}
	name := strings.TrimSpace(requesterName)
	if name == "" {
		return nil, ErrRequesterNameRequired
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if amount.GreaterThan(available) {
		return nil, ErrInsufficientBalance
	}

	return &Request{
		id:            uuid.New(),
		amount:        amount,
		status:        StatusPending,
		requesterType: rt,
		requesterID:   requesterID,
		requesterName: name,
		bankVerified:  bankVerified,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Snapshot is the persisted shape of a request.
type Snapshot struct {
	ID              uuid.UUID
	Amount          decimal.Decimal
	Status          string
	RequesterType   string
	RequesterID     uuid.UUID
	RequesterName   string
	BankVerified    bool
	TransactionRef  *string
	RejectionReason *string
	CreatedAt       time.Time
	ApprovedAt      *time.Time
	TransferredAt   *time.Time
	CompletedAt     *time.Time
	RejectedAt      *time.Time
	UpdatedAt       time.Time
}

func Reconstruct(s Snapshot) (*Request, error) {
	status, err := NewStatus(s.Status)
	if err != nil {
		return nil, err
	}
	rt, err := NewRequesterType(s.RequesterType)
	if err != nil {
		return nil, err
	}
	return &Request{
		id:              s.ID,
		amount:          s.Amount,
		status:          status,
		requesterType:   rt,
		requesterID:     s.RequesterID,
		requesterName:   s.RequesterName,
		bankVerified:    s.BankVerified,
		transactionRef:  s.TransactionRef,
		rejectionReason: s.RejectionReason,
		createdAt:       s.CreatedAt,
		approvedAt:      s.ApprovedAt,
		transferredAt:   s.TransferredAt,
		completedAt:     s.CompletedAt,
		rejectedAt:      s.RejectedAt,
		updatedAt:       s.UpdatedAt,
	}, nil
}

func (r *Request) Snapshot() Snapshot {
	return Snapshot{
		ID:              r.id,
		Amount:          r.amount,
		Status:          r.status.String(),
		RequesterType:   r.requesterType.String(),
		RequesterID:     r.requesterID,
		RequesterName:   r.requesterName,
		BankVerified:    r.bankVerified,
		TransactionRef:  r.transactionRef,
		RejectionReason: r.rejectionReason,
		CreatedAt:       r.createdAt,
		ApprovedAt:      r.approvedAt,
		TransferredAt:   r.transferredAt,
		CompletedAt:     r.completedAt,
		RejectedAt:      r.rejectedAt,
		UpdatedAt:       r.updatedAt,
	}
}

func (r *Request) Approve(now time.Time) error {
	return r.Apply(ActionApprove, Input{}, now)
}

func (r *Request) Reject(reason string, now time.Time) error {
	return r.Apply(ActionReject, Input{Reason: reason}, now)
}

func (r *Request) MarkProcessing(now time.Time) error {
	return r.Apply(ActionMarkProcessing, Input{}, now)
}

func (r *Request) InitiateTransfer(transactionRef string, now time.Time) error {
	return r.Apply(ActionInitiateTransfer, Input{TransactionRef: transactionRef}, now)
}

func (r *Request) Complete(now time.Time) error {
	return r.Apply(ActionComplete, Input{}, now)
}

// Apply runs action through the transition table. A blocked action returns an
// error marked ErrActionUnavailable and leaves r untouched.
func (r *Request) Apply(action Action, in Input, now time.Time) error {
	t, ok := transitions[action]
	if !ok {
		return ErrInvalidAction
	}
	if err := r.check(t); err != nil {
		return err
	}
	if t.requires != nil {
		if err := t.requires(in); err != nil {
			return err
		}
	}

	stamp := now
	switch t.to {
	case StatusApproved:
		r.approvedAt = &stamp
	case StatusRejected:
		reason := strings.TrimSpace(in.Reason)
		r.rejectionReason = &reason
		r.rejectedAt = &stamp
	case StatusTransferred:
		ref := strings.TrimSpace(in.TransactionRef)
		r.transactionRef = &ref
		r.transferredAt = &stamp
	case StatusCompleted:
		r.completedAt = &stamp
	}
	r.status = t.to
	r.updatedAt = now
	return nil
}

func (r *Request) check(t transition) error {
	if !slices.Contains(t.from, r.status) {
		return errs.Mark(fmt.Errorf("payout is %s", r.status), ErrActionUnavailable)
	}
	if t.guard != nil {
		return t.guard(r)
	}
	return nil
}

// Can reports whether action is enabled for the current record. Operator input
// such as a rejection reason is checked only when the action is applied.
func (r *Request) Can(action Action) bool {
	t, ok := transitions[action]
	if !ok {
		return false
	}
	return r.check(t) == nil
}

func (r *Request) AvailableActions() []Action {
	return ActionsFor(r.status, r.bankVerified)
}

func (r *Request) ID() uuid.UUID                { return r.id }
func (r *Request) Amount() decimal.Decimal      { return r.amount }
func (r *Request) Status() Status               { return r.status }
func (r *Request) RequesterType() RequesterType { return r.requesterType }
func (r *Request) RequesterID() uuid.UUID       { return r.requesterID }
func (r *Request) RequesterName() string        { return r.requesterName }
func (r *Request) BankVerified() bool           { return r.bankVerified }
func (r *Request) TransactionRef() *string      { return r.transactionRef }
func (r *Request) RejectionReason() *string     { return r.rejectionReason }
func (r *Request) CreatedAt() time.Time         { return r.createdAt }
func (r *Request) ApprovedAt() *time.Time       { return r.approvedAt }
func (r *Request) TransferredAt() *time.Time    { return r.transferredAt }
func (r *Request) CompletedAt() *time.Time      { return r.completedAt }
func (r *Request) RejectedAt() *time.Time       { return r.rejectedAt }
func (r *Request) UpdatedAt() time.Time         { return r.updatedAt }
