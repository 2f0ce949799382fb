package payout

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid payout status")
	ErrInvalidRequesterType = errors.New("invalid requester type")
	ErrInvalidAction        = errors.New("invalid payout action")
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusProcessing  Status = "processing"
	StatusTransferred Status = "transferred"
	StatusCompleted   Status = "completed"
	StatusRejected    Status = "rejected"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{
	StatusPending,
	StatusApproved,
	StatusProcessing,
	StatusTransferred,
	StatusCompleted,
	StatusRejected,
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusProcessing, StatusTransferred, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

func (s Status) String() string { return string(s) }

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type RequesterType string

const (
	RequesterVendor      RequesterType = "vendor"
	RequesterDeliveryBoy RequesterType = "delivery_boy"
)

func (t RequesterType) IsValid() bool {
	return t == RequesterVendor || t == RequesterDeliveryBoy
}

func (t RequesterType) String() string { return string(t) }

func NewRequesterType(s string) (RequesterType, error) {
	rt := RequesterType(s)
	if !rt.IsValid() {
		return "", ErrInvalidRequesterType
	}
	return rt, nil
}

type Action string

const (
	ActionApprove          Action = "approve"
	ActionReject           Action = "reject"
	ActionMarkProcessing   Action = "mark_processing"
	ActionInitiateTransfer Action = "initiate_transfer"
	ActionComplete         Action = "complete"
)

func (a Action) String() string { return string(a) }

func NewAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := transitions[a]; !ok {
		return "", ErrInvalidAction
	}
	return a, nil
}
