// Package store pairs a byte-store Provider with a coder.Coder to persist
// encoded values. A stored entry holds exactly one value, so the store runs
// the coder in the outer context: the entry boundary delimits the value and
// no self-delimiting framing is spent.
package store

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs. Implementations must be safe
// for concurrent use and byte-for-byte transparent: Get must return exactly
// the []byte previously passed to Set for the same key, with no prepended
// metadata, transcoding or mutation, or decoded values will not round-trip.
type Provider interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
	// IO/remote failures return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. Cost may be ignored by stores
	// without admission control. ok=false means the store rejected the write
	// under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
