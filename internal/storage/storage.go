// Package storage provides the durable key-value surface backing the cart
// and variant selection state. Backends are best-effort: callers tolerate
// write failures and treat unreadable values as absent.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound signals that no value has ever been written for a key.
var ErrKeyNotFound = errors.New("storage: key not found")

// KV is a small durable key-value store. Values are opaque byte payloads;
// serialization is the caller's concern.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
