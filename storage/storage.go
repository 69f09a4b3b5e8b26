// Package storage provides the key-value backends that hold the hotel's JSON buckets.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// UpdateFunc receives the current value of a key (nil and false when absent) and
// returns the value to store. Returning ErrSkipWrite leaves the key untouched.
type UpdateFunc func(current []byte, exists bool) ([]byte, error)

// ErrSkipWrite lets an UpdateFunc abort without writing and without failing Update.
var ErrSkipWrite = errors.New("storage: skip write")

// Backend stores opaque values under string keys.
// Update must apply fn atomically with respect to other writers of the same key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}
