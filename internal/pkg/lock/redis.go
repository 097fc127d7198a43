package lock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockPrefix = "ngabsen:lock:"

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by another instance is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker shared by every instance pointing at the same
// Redis. The TTL bounds how long a crashed holder blocks the key.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		wait:   ttl,
		retry:  50 * time.Millisecond,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (UnlockFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	fullKey := lockPrefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, fullKey, token, l.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("failed to acquire lock %q: %w", key, err)
		}
		if ok {
			var once sync.Once
			return func() {
				once.Do(func() { l.release(fullKey, token) })
			}, nil
		}

		timer := time.NewTimer(l.retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w %q: %w", ErrLockTimeout, key, ctx.Err())
		case <-timer.C:
		}
	}
}

func (l *RedisLocker) release(fullKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil {
		slog.Error("failed to release lock", "key", fullKey, "error", err)
	}
}
