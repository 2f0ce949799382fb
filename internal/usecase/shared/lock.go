package shared

import (
	"context"
	"time"

	"grocery-admin/internal/pkg/errs"
)

var ErrLockHeld = errs.New("lock is held by another owner")

// Locker hands out short-lived exclusive locks keyed by name. Acquire returns
// ErrLockHeld when someone else owns the key.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}
