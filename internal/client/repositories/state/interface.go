// Package state persists small pieces of client state (the serialized
// session user, the pending-verification user id) as key/value rows in
// the local sqlite database.
package state

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
