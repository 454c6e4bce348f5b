package cache

import "context"

// Cache is a string key/value store used to memoize market data between
// advisory runs. A miss and an expired entry are indistinguishable to
// callers.
type Cache interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores value under key, honoring the implementation's TTL policy.
	Set(ctx context.Context, key string, value string) error
}
