package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ShoppingSearchClient defines the interface for the shopping-search API.
// Price bounds are optional; both must be set for the range to be applied.
type ShoppingSearchClient interface {
	SearchProducts(ctx context.Context, query string, minPrice, maxPrice *float64) (*ShoppingSearchResponse, error)
}

// CompletionClient defines the interface for the hosted language-model API.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
