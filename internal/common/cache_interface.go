package common

import "time"

// CacheInterface is the contract shared by the in-memory and Redis caches.
// The backend is picked at startup via CACHE_BACKEND.
type CacheInterface interface {
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the cached value and true, or nil and false on a miss.
	Get(key string) (interface{}, bool)

	Delete(key string)

	// GetOrSet returns the cached value or runs loader and caches what it
	// returns.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any underlying connections.
	Close() error
}
