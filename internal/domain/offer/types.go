package offer

import "errors"

var (
	ErrInvalidDiscountType = errors.New("invalid discount type")
	ErrInvalidScope        = errors.New("invalid offer scope")
	ErrInvalidDateStatus   = errors.New("invalid date status")
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
	DiscountBOGO       DiscountType = "bogo"
)

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFlat, DiscountBOGO:
		return true
	}
	return false
}

func (t DiscountType) String() string { return string(t) }

func NewDiscountType(s string) (DiscountType, error) {
	t := DiscountType(s)
	if !t.IsValid() {
		return "", ErrInvalidDiscountType
	}
	return t, nil
}

type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeCategory Scope = "category"
	ScopeVendor   Scope = "vendor"
	ScopeProduct  Scope = "product"
)

func (s Scope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeCategory, ScopeVendor, ScopeProduct:
		return true
	}
	return false
}

func (s Scope) String() string { return string(s) }

func NewScope(s string) (Scope, error) {
	sc := Scope(s)
	if !sc.IsValid() {
		return "", ErrInvalidScope
	}
	return sc, nil
}

// DateStatus is derived from the active flag and date window; it is never stored.
type DateStatus string

const (
	StatusInactive DateStatus = "inactive"
	StatusUpcoming DateStatus = "upcoming"
	StatusRunning  DateStatus = "running"
	StatusExpired  DateStatus = "expired"
)

func (s DateStatus) IsValid() bool {
	switch s {
	case StatusInactive, StatusUpcoming, StatusRunning, StatusExpired:
		return true
	}
	return false
}

func (s DateStatus) String() string { return string(s) }

func NewDateStatus(s string) (DateStatus, error) {
	ds := DateStatus(s)
	if !ds.IsValid() {
		return "", ErrInvalidDateStatus
	}
	return ds, nil
}
