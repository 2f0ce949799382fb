//go:build unit || e2e

package builder

import (
	"time"

	"grocery-admin/internal/domain/payout"
	"grocery-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutBuilder struct {
	ID              uuid.UUID
	Amount          decimal.Decimal
	Available       decimal.Decimal
	Status          string
	RequesterType   string
	RequesterID     uuid.UUID
	RequesterName   string
	BankVerified    bool
	TransactionRef  *string
	RejectionReason *string
	Now             time.Time
}

func NewPayoutBuilder() *PayoutBuilder {
	return &PayoutBuilder{
		ID:            uuid.New(),
		Amount:        decimal.RequireFromString("2500.00"),
		Available:     decimal.RequireFromString("10000.00"),
		Status:        "pending",
		RequesterType: "delivery_boy",
		RequesterID:   uuid.New(),
		RequesterName: "Ramesh Kumar",
		BankVerified:  true,
		Now:           time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *PayoutBuilder) With(mutate func(*PayoutBuilder)) *PayoutBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PayoutBuilder) BuildDomain() (*payout.Request, error) {
	return payout.NewRequest(b.RequesterType, b.RequesterID, b.RequesterName, b.Amount, b.Available, b.BankVerified, b.Now)
}

// BuildStored reconstructs a request already sitting in Status, with the
// timestamps that status implies.
func (b *PayoutBuilder) BuildStored() (*payout.Request, error) {
	return payout.Reconstruct(b.BuildSnapshot())
}

func (b *PayoutBuilder) BuildSnapshot() payout.Snapshot {
	s := payout.Snapshot{
		ID:              b.ID,
		Amount:          b.Amount,
		Status:          b.Status,
		RequesterType:   b.RequesterType,
		RequesterID:     b.RequesterID,
		RequesterName:   b.RequesterName,
		BankVerified:    b.BankVerified,
		TransactionRef:  b.TransactionRef,
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.Now.Add(-72 * time.Hour),
		UpdatedAt:       b.Now.Add(-time.Hour),
	}
	approved := b.Now.Add(-48 * time.Hour)
	transferred := b.Now.Add(-24 * time.Hour)
	switch b.Status {
	case "approved", "processing":
		s.ApprovedAt = &approved
	case "transferred":
		s.ApprovedAt = &approved
		s.TransferredAt = &transferred
		if s.TransactionRef == nil {
			ref := "UTR-000123"
			s.TransactionRef = &ref
		}
	case "completed":
		s.ApprovedAt = &approved
		s.TransferredAt = &transferred
		completed := b.Now.Add(-time.Hour)
		s.CompletedAt = &completed
	case "rejected":
		rejected := b.Now.Add(-time.Hour)
		s.RejectedAt = &rejected
		if s.RejectionReason == nil {
			reason := "bank details mismatch"
			s.RejectionReason = &reason
		}
	}
	return s
}

func (b *PayoutBuilder) BuildView() *queries.PayoutView {
	s := b.BuildSnapshot()
	status := payout.Status(s.Status)
	actions := payout.ActionsFor(status, s.BankVerified)
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return &queries.PayoutView{
		ID:               s.ID,
		Amount:           s.Amount,
		Status:           s.Status,
		RequesterType:    s.RequesterType,
		RequesterID:      s.RequesterID,
		RequesterName:    s.RequesterName,
		BankVerified:     s.BankVerified,
		TransactionRef:   s.TransactionRef,
		RejectionReason:  s.RejectionReason,
		CreatedAt:        s.CreatedAt,
		ApprovedAt:       s.ApprovedAt,
		TransferredAt:    s.TransferredAt,
		CompletedAt:      s.CompletedAt,
		RejectedAt:       s.RejectedAt,
		UpdatedAt:        s.UpdatedAt,
		AvailableActions: names,
	}
}

// Fluent builder methods
func (b *PayoutBuilder) WithID(id uuid.UUID) *PayoutBuilder {
	b.ID = id
	return b
}

func (b *PayoutBuilder) WithAmount(amount string) *PayoutBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

func (b *PayoutBuilder) WithAvailable(available string) *PayoutBuilder {
	b.Available = decimal.RequireFromString(available)
	return b
}

func (b *PayoutBuilder) WithStatus(status string) *PayoutBuilder {
	b.Status = status
	return b
}

func (b *PayoutBuilder) WithRequester(kind, name string) *PayoutBuilder {
	b.RequesterType = kind
	b.RequesterName = name
	return b
}

func (b *PayoutBuilder) WithNow(now time.Time) *PayoutBuilder {
	b.Now = now
	return b
}

func (b *PayoutBuilder) AsUnverified() *PayoutBuilder {
	b.BankVerified = false
	return b
}
