package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisLocker_ExclusiveAndReleases(t *testing.T) {
	client := newTestRedis(t)
	l := NewRedisLocker(client, time.Second)
	l.wait = 100 * time.Millisecond
	key := "test:" + uuid.NewString()

	unlock, err := l.Lock(context.Background(), key)
	require.NoError(t, err)

	_, err = l.Lock(context.Background(), key)
	assert.ErrorIs(t, err, ErrLockTimeout)

	unlock()

	unlock, err = l.Lock(context.Background(), key)
	require.NoError(t, err)
	unlock()
}

func TestRedisLocker_DoesNotReleaseForeignToken(t *testing.T) {
	client := newTestRedis(t)
	l := NewRedisLocker(client, time.Second)
	key := "test:" + uuid.NewString()

	require.NoError(t, client.Set(context.Background(), lockPrefix+key, "someone-else", time.Second).Err())
	l.release(lockPrefix+key, "my-token")

	val, err := client.Get(context.Background(), lockPrefix+key).Result()
	require.NoError(t, err)
	assert.Equal(t, "someone-else", val)
}
