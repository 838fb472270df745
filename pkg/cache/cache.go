// Package cache provides the content-response cache used by the public
// read endpoints and the GitHub activity proxy.
//
// Values are opaque payload bytes (usually marshaled JSON) so the cache
// never has to know about model types. Every operation takes a context
// because the backing store is Redis and calls go over the network.
package cache

import "context"

// Cache is the interface the content handlers program against.
type Cache interface {
	// Get retrieves a payload by key. The boolean reports whether the
	// key was present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a payload with the default TTL.
	Set(ctx context.Context, key string, value []byte)

	// SetWithTTL stores a payload with a custom TTL in seconds.
	SetWithTTL(ctx context.Context, key string, value []byte, ttlSeconds int)

	// Delete removes a single key. Missing keys are ignored.
	Delete(ctx context.Context, key string)

	// DeletePrefix removes every key with the given prefix. Used for
	// write-path invalidation of list and item entries together.
	DeletePrefix(ctx context.Context, prefix string)
}
