package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferView represents read-optimized offer data. DateStatus is filled in by
// the query service at read time.
type OfferView struct {
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

// PayoutView represents read-optimized payout request data
type PayoutView struct {
	ID               uuid.UUID       `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	RequesterType    string          `json:"requester_type"`
	RequesterID      uuid.UUID       `json:"requester_id"`
	RequesterName    string          `json:"requester_name"`
	BankVerified     bool            `json:"bank_verified"`
	TransactionRef   *string         `json:"transaction_ref,omitempty"`
	RejectionReason  *string         `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
	TransferredAt    *time.Time      `json:"transferred_at,omitempty"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
	RejectedAt       *time.Time      `json:"rejected_at,omitempty"`
	UpdatedAt        time.Time       `json:"updated_at"`
	AvailableActions []string        `json:"available_actions"`
}

type PayoutStatusTotal struct {
	Status      string          `json:"status"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type PayoutSummary struct {
	Statuses    []PayoutStatusTotal `json:"statuses"`
	TotalCount  int                 `json:"total_count"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	IsActive      bool      `json:"is_active"`
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Page describes a 1-indexed page of a listing.
type Page struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// normalizePage clamps paging input; pageSize 0 means the default.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return page, pageSize
}
