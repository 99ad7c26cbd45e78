package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON decodes the value stored under key into a T. ok is false when
// the key is absent.
func GetJSON[T any](ctx context.Context, r Repository, key string) (v T, ok bool, err error) {
	raw, err := r.Get(ctx, key)
	if err != nil || raw == nil {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("failed to decode kv[%s]: %w", key, err)
	}
	return v, true, nil
}

// SetJSON stores v under key as JSON.
func SetJSON(ctx context.Context, r Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode kv[%s]: %w", key, err)
	}
	return r.Set(ctx, key, raw)
}
