// Package kv is the generic key-value persistence helper of the client:
// raw byte values addressed by string keys, plus JSON helpers on top.
package kv

import (
	"context"
)

// Repository stores opaque values by key. Get on a missing key returns
// (nil, nil); Delete on a missing key is a no-op.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
