// Package srpsessions provides the short-TTL cache holding in-flight SRP
// handshakes. The contract that matters is TakeAndDelete being atomic: two
// concurrent completions racing the same session id see exactly one winner.
package srpsessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/server/models"
)

type Cache interface {
	Put(ctx context.Context, session *models.SRPSession, ttl time.Duration) error

	// TakeAndDelete atomically fetches and removes a session. A missing or
	// expired session yields common.ErrNotFound; an expired entry is never
	// returned.
	TakeAndDelete(ctx context.Context, id string) (*models.SRPSession, error)
}
