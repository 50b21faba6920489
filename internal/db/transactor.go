package db

import "context"

// Transactor allows you to run repository calls as a single critical section
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
