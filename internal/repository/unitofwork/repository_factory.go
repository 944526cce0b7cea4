package unitofwork

import (
	"context"
	"fmt"
)

type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}

// WithinTransaction runs fn inside one transaction. Repositories taken from the
// unit of work passed to fn share it; any error from fn rolls everything back.
func WithinTransaction(ctx context.Context, f RepositoryFactory, fn func(uow UnitOfWork) error) error {
	uow := f.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(uow); err != nil {
		if rbErr := uow.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	return uow.Commit()
}
