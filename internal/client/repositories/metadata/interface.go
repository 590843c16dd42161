// Package metadata is the on-device key/value store. Values are opaque
// blobs; a missing key reads as nil with a nil error.
package metadata

import (
	"context"
)

// Repository is the durable key/value storage the account directory persists
// into: get, multi-get, set and delete. Get is the single-key read; the
// directory itself loads everything with one MultiGet.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// MultiGet returns the values of the keys that exist. Absent keys are
	// left out of the map.
	MultiGet(ctx context.Context, keys []string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
