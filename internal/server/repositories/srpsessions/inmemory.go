package srpsessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
)

type entry struct {
	session   *models.SRPSession
	expiresAt time.Time
}

// InMemoryCache is a mutex-guarded Cache. Expired entries are dropped lazily
// on Put and never returned by TakeAndDelete.
type InMemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *InMemoryCache) Put(ctx context.Context, session *models.SRPSession, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for id, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, id)
		}
	}

	stored := *session
	c.entries[session.ID] = entry{session: &stored, expiresAt: now.Add(ttl)}
	return nil
}

func (c *InMemoryCache) TakeAndDelete(ctx context.Context, id string) (*models.SRPSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	delete(c.entries, id)

	if c.now().After(e.expiresAt) {
		return nil, common.ErrNotFound
	}
	out := *e.session
	return &out, nil
}
