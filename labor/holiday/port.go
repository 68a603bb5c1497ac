package holiday

import (
	"context"
	"time"
)

// Source returns the holidays of a year. Remote sources may fail.
type Source interface {
	Fetch(ctx context.Context, year int) ([]Holiday, error)
}

// Cache stores holiday lists per year
type Cache interface {
	// Get returns ok=false on a miss
	Get(ctx context.Context, year int) (holidays []Holiday, ok bool, err error)

	Set(ctx context.Context, year int, holidays []Holiday, ttl time.Duration) error
}
