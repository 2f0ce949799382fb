package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"grocery-admin/internal/pkg/errs"
	"grocery-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "lock:"

// Deletes the key only while it still carries our token, so an expired lock
// that someone else re-acquired is left alone.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// RedisLocker hands out locks shared by every instance of the service.
type RedisLocker struct {
	client redis.UniversalClient
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	k := lockKeyPrefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, k, token, ttl).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to acquire lock")
	}
	if !ok {
		return nil, shared.ErrLockHeld
	}

	release := func() {
		// the caller's context may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{k}, token).Err(); err != nil {
			slog.Warn("failed to release lock", "key", k, "error", err.Error())
		}
	}
	return release, nil
}

// LocalLocker is the single-instance fallback used when Redis is not configured.
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]localLock
	next  uint64
	clock func() time.Time
}

type localLock struct {
	token     uint64
	expiresAt time.Time
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]localLock),
		clock: time.Now,
	}
}

func (l *LocalLocker) Acquire(_ context.Context, key string, ttl time.Duration) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if cur, ok := l.held[key]; ok && now.Before(cur.expiresAt) {
		return nil, shared.ErrLockHeld
	}

	l.next++
	token := l.next
	l.held[key] = localLock{token: token, expiresAt: now.Add(ttl)}

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if cur, ok := l.held[key]; ok && cur.token == token {
			delete(l.held, key)
		}
	}, nil
}
