package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locker interface {
	TryLock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string) error
	IsLocked(ctx context.Context, key string) (bool, error)
}

func newRedisLocker(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r, err := NewRedis(testContext(t), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestLockers(t *testing.T) {
	redisLocker, _ := newRedisLocker(t)

	lockers := map[string]locker{
		"memory": NewMemory(),
		"redis":  redisLocker,
	}

	for name, l := range lockers {
		t.Run(name, func(t *testing.T) {
			ctx := testContext(t)

			ok, err := l.TryLock(ctx, "p1")
			require.NoError(t, err)
			assert.True(t, ok)

			// повторный захват того же ключа отклоняется
			ok, err = l.TryLock(ctx, "p1")
			require.NoError(t, err)
			assert.False(t, ok)

			// другой ключ не блокируется
			ok, err = l.TryLock(ctx, "p2")
			require.NoError(t, err)
			assert.True(t, ok)

			require.NoError(t, l.Unlock(ctx, "p1"))
			busy, err := l.IsLocked(ctx, "p1")
			require.NoError(t, err)
			assert.False(t, busy)

			ok, err = l.TryLock(ctx, "p1")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestMemory_Concurrent(t *testing.T) {
	m := NewMemory()
	var acquired atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := m.TryLock(context.Background(), "same"); ok {
				acquired.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), acquired.Load())
}

func TestRedis_ForeignUnlockIgnored(t *testing.T) {
	first, mr := newRedisLocker(t)
	second, err := NewRedis(testContext(t), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	ok, err := first.TryLock(testContext(t), "p1")
	require.NoError(t, err)
	require.True(t, ok)

	// чужой экземпляр не может снять маркер
	require.NoError(t, second.Unlock(testContext(t), "p1"))
	busy, err := first.IsLocked(testContext(t), "p1")
	require.NoError(t, err)
	assert.True(t, busy)
}

func TestRedis_TTL(t *testing.T) {
	r, mr := newRedisLocker(t)
	r.SetTTL(time.Second)

	ok, err := r.TryLock(testContext(t), "p1")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	ok, err = r.TryLock(testContext(t), "p1")
	require.NoError(t, err)
	assert.True(t, ok)
}
