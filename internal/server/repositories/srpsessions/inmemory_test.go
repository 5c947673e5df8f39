package srpsessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCache_TakeAndDelete_SingleUse(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCache()

	session := &models.SRPSession{ID: "s1", UID: "u1", Email: "a@example.com"}
	require.NoError(t, cache.Put(ctx, session, time.Minute))

	got, err := cache.TakeAndDelete(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UID)

	_, err = cache.TakeAndDelete(ctx, "s1")
	assert.ErrorIs(t, err, common.ErrNotFound, "second take must miss")
}

func TestInMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCache()

	now := time.Now()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Put(ctx, &models.SRPSession{ID: "s1"}, time.Minute))

	now = now.Add(2 * time.Minute)
	_, err := cache.TakeAndDelete(ctx, "s1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInMemoryCache_PutSweepsExpired(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCache()

	now := time.Now()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Put(ctx, &models.SRPSession{ID: "old"}, time.Minute))
	now = now.Add(2 * time.Minute)
	require.NoError(t, cache.Put(ctx, &models.SRPSession{ID: "new"}, time.Minute))

	cache.mu.Lock()
	_, oldPresent := cache.entries["old"]
	cache.mu.Unlock()
	assert.False(t, oldPresent, "expired entry must be swept on Put")
}

func TestInMemoryCache_ConcurrentTakeExactlyOneWinner(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCache()
	require.NoError(t, cache.Put(ctx, &models.SRPSession{ID: "s1"}, time.Minute))

	const goroutines = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.TakeAndDelete(ctx, "s1"); err == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count, "exactly one concurrent take must succeed")
}
