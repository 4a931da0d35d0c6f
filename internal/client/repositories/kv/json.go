package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed marks a stored value that does not decode.
var ErrMalformed = errors.New("malformed stored value")

// GetJSON decodes the value under key into dst. It reports false when the
// key is absent and leaves dst untouched.
func GetJSON(ctx context.Context, r Repository, key string, dst any) (bool, error) {
	b, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if b == nil {
		return false, nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, r Repository, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.Set(ctx, key, b)
}
