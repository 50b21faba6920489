package db

import (
	"context"
	"fmt"
	"sync"
)

type TxContextKey struct{}

// mutexTransactor serializes transactions with one exclusive lock. The
// registry is small enough that a single lock for all activities is fine.
type mutexTransactor struct {
	mu sync.Mutex
}

func NewMutexTransactor() Transactor {
	return &mutexTransactor{}
}

func (t *mutexTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested call: the lock is already held by this goroutine's transaction.
	if InTransaction(ctx, t) {
		return fn(ctx)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ctxWithTx := context.WithValue(ctx, TxContextKey{}, t)

	if err := fn(ctxWithTx); err != nil {
		return fmt.Errorf("transaction function failed: %w", err)
	}

	return nil
}

// InTransaction reports whether ctx carries a transaction started by tx.
func InTransaction(ctx context.Context, tx Transactor) bool {
	held, ok := ctx.Value(TxContextKey{}).(Transactor)
	return ok && held == tx
}
