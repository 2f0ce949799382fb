package commands

import (
	"encoding/json"
	"time"

	"grocery-admin/internal/domain/payout"

	"github.com/google/uuid"
)

const (
	JobKindPayoutRequested     = "payout_requested"
	JobKindPayoutStatusChanged = "payout_status_changed"
)

// PayoutEvent is the outbox payload for payout lifecycle changes. Wallet
// balances are adjusted by whoever consumes these.
type PayoutEvent struct {
	PayoutID        uuid.UUID  `json:"payout_id"`
	RequesterID     uuid.UUID  `json:"requester_id"`
	RequesterType   string     `json:"requester_type"`
	Amount          string     `json:"amount"`
	Action          string     `json:"action,omitempty"`
	FromStatus      string     `json:"from_status,omitempty"`
	ToStatus        string     `json:"to_status"`
	TransactionRef  *string    `json:"transaction_ref,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ActorID         *uuid.UUID `json:"actor_id,omitempty"`
	OccurredAt      time.Time  `json:"occurred_at"`
}

// PayoutTopic is the routing key for events about a payout now in status s.
func PayoutTopic(s payout.Status) string {
	return "payout." + s.String()
}

func newPayoutEvent(r *payout.Request, action payout.Action, from payout.Status, actorID *uuid.UUID, at time.Time) PayoutEvent {
	return PayoutEvent{
		PayoutID:        r.ID(),
		RequesterID:     r.RequesterID(),
		RequesterType:   r.RequesterType().String(),
		Amount:          r.Amount().StringFixed(2),
		Action:          string(action),
		FromStatus:      string(from),
		ToStatus:        r.Status().String(),
		TransactionRef:  r.TransactionRef(),
		RejectionReason: r.RejectionReason(),
		ActorID:         actorID,
		OccurredAt:      at,
	}
}

func (e PayoutEvent) marshal() ([]byte, error) {
	return json.Marshal(e)
}
