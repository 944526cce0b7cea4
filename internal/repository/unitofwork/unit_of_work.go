package unitofwork

import (
	"context"

	"wine-club-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CollectionRepository() contract.CollectionRepository
	CuratedNoteRepository() contract.CuratedNoteRepository
	ScanLogRepository() contract.ScanLogRepository
}
