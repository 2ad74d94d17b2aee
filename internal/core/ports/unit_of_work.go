package ports

import "context"

// UnitOfWork groups multiple repository writes into an all-or-nothing commit.
// Repositories participating in the transaction must use the context passed
// to fn so their operations join the same session.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
