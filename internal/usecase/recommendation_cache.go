package usecase

import (
	"context"
	"time"
)

// RecommendationCache holds assembled tier results for a short TTL so repeat
// dashboard loads skip rescoring the catalog. Implementations must degrade to
// a no-op when the backing store is unavailable.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
