package payout

import (
	"errors"
	"slices"
	"strings"

	"grocery-admin/internal/pkg/errs"
)

// ErrActionUnavailable marks every blocked transition: wrong status or a failed
// record guard. Missing operator input is marked errs.ErrDomainValidation instead.
var ErrActionUnavailable = errors.New("payout action unavailable")

// Unmarked; the guards add the category mark on return.
var (
	ErrBankNotVerified         = errors.New("bank account is not verified")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrTransactionRefRequired  = errors.New("transaction reference is required")
)

// Input carries the operator-supplied values some actions need.
type Input struct {
	Reason         string
	TransactionRef string
}

type transition struct {
	from []Status
	to   Status
	// guard checks preconditions that depend on the record itself.
	guard func(r *Request) error
	// requires checks operator input.
	requires func(in Input) error
}

var transitions = map[Action]transition{
	ActionApprove: {
		from:  []Status{StatusPending},
		to:    StatusApproved,
		guard: requireBankVerified,
	},
	ActionReject: {
		from:     []Status{StatusPending},
		to:       StatusRejected,
		requires: requireReason,
	},
	ActionMarkProcessing: {
		from: []Status{StatusApproved},
		to:   StatusProcessing,
	},
	ActionInitiateTransfer: {
		from:     []Status{StatusApproved, StatusProcessing},
		to:       StatusTransferred,
		requires: requireTransactionRef,
	},
	ActionComplete: {
		from: []Status{StatusTransferred},
		to:   StatusCompleted,
	},
}

// actionOrder fixes the order AvailableActions reports in.
var actionOrder = []Action{
	ActionApprove,
	ActionReject,
	ActionMarkProcessing,
	ActionInitiateTransfer,
	ActionComplete,
}

// Next returns the status action leads to from s, ignoring guards.
func Next(s Status, action Action) (Status, bool) {
	t, ok := transitions[action]
	if !ok || !slices.Contains(t.from, s) {
		return "", false
	}
	return t.to, true
}

// ActionsFor lists the actions enabled for a request in status s, in a stable
// order. It serves read models that never load the full aggregate.
func ActionsFor(s Status, bankVerified bool) []Action {
	probe := &Request{status: s, bankVerified: bankVerified}
	actions := make([]Action, 0, 2)
	for _, a := range actionOrder {
		if probe.Can(a) {
			actions = append(actions, a)
		}
	}
	return actions
}

func requireBankVerified(r *Request) error {
	if !r.bankVerified {
		return errs.Mark(ErrBankNotVerified, ErrActionUnavailable)
	}
	return nil
}

func requireReason(in Input) error {
	if strings.TrimSpace(in.Reason) == "" {
		return errs.Mark(ErrRejectionReasonRequired, errs.ErrDomainValidation)
	}
	return nil
}

func requireTransactionRef(in Input) error {
	if strings.TrimSpace(in.TransactionRef) == "" {
		return errs.Mark(ErrTransactionRefRequired, errs.ErrDomainValidation)
	}
	return nil
}
