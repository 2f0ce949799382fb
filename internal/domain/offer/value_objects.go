package offer

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 500
	MaxTagLength         = 40
)

var (
	ErrEmptyTitle             = errors.New("title cannot be empty")
	ErrTitleTooLong           = errors.New("title exceeds maximum length")
	ErrDescriptionTooLong     = errors.New("description exceeds maximum length")
	ErrTagTooLong             = errors.New("tag exceeds maximum length")
	ErrInvalidPercentage      = errors.New("percentage discount must be greater than 0 and at most 100")
	ErrInvalidFlatAmount      = errors.New("flat discount must be greater than 0")
	ErrScopeReferenceRequired = errors.New("scope reference is required for a non-global scope")
	ErrInvalidDateRange       = errors.New("end date must not be before start date")
	ErrNegativeDisplayOrder   = errors.New("display order cannot be negative")
)

var hundred = decimal.NewFromInt(100)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: t}, nil
}

func (t Title) String() string { return t.value }

// optionalText trims s and returns nil when nothing is left.
func optionalText(s *string, limit int, tooLong error) (*string, error) {
	if s == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(t) > limit {
		return nil, tooLong
	}
	return &t, nil
}

type Discount struct {
	kind  DiscountType
	value decimal.Decimal
}

func NewDiscount(kind string, value decimal.Decimal) (Discount, error) {
	dt, err := NewDiscountType(kind)
	if err != nil {
		return Discount{}, err
	}

	switch dt {
	case DiscountPercentage:
		if !value.IsPositive() || value.GreaterThan(hundred) {
			return Discount{}, ErrInvalidPercentage
		}
	case DiscountFlat:
		if !value.IsPositive() {
			return Discount{}, ErrInvalidFlatAmount
		}
	case DiscountBOGO:
		value = decimal.Zero
	}

	return Discount{kind: dt, value: value}, nil
}

func (d Discount) Type() DiscountType     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }

type Target struct {
	scope       Scope
	referenceID *uuid.UUID
}

func NewTarget(scope string, referenceID *uuid.UUID) (Target, error) {
	sc, err := NewScope(scope)
	if err != nil {
		return Target{}, err
	}
	if sc == ScopeAll {
		return Target{scope: sc}, nil
	}
	if referenceID == nil || *referenceID == uuid.Nil {
		return Target{}, ErrScopeReferenceRequired
	}
	id := *referenceID
	return Target{scope: sc, referenceID: &id}, nil
}

func (t Target) Scope() Scope            { return t.scope }
func (t Target) ReferenceID() *uuid.UUID { return t.referenceID }
