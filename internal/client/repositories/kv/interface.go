// Package kv is the client-side key-value store: one table of opaque values
// addressed by string keys, the role browser local storage played.
package kv

import "context"

// Repository is a flat key-value store.
//
// Get returns (nil, nil) for a missing key. Every failure is a
// *common.StorageError.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
