// Package metadata persists small key/value facts about the vault itself,
// such as the registration marker.
package metadata

import "context"

// Repository is a key/value store over the metadata table. Get returns
// (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
