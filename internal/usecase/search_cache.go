package usecase

import (
	"context"
	"time"
)

// SearchCache stores aggregated (unscored) search results. Implementations
// are expected to degrade to no-ops when the backing store is unavailable.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
