package offer

import "time"

// ClassifyDateStatus maps an offer's active flag and date window to its lifecycle
// state. Rules are checked in order: inactive, upcoming, running, expired. Both
// boundaries are inclusive and a nil end means the offer never expires.
func ClassifyDateStatus(now time.Time, isActive bool, start time.Time, end *time.Time) DateStatus {
	if !isActive {
		return StatusInactive
	}
	if now.Before(start) {
		return StatusUpcoming
	}
	if end == nil || !now.After(*end) {
		return StatusRunning
	}
	return StatusExpired
}
