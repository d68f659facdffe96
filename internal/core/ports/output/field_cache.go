package ports

import "context"

// FieldCache stores rendered field images keyed by domain and render options
type FieldCache interface {
	// Get returns domain.ErrCacheMiss when nothing is stored under key
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error

	// Health check
	Ping(ctx context.Context) error
}
