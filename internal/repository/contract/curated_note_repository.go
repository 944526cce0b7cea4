package contract

import (
	"context"

	"wine-club-be/internal/entity"
	"wine-club-be/internal/repository/specification"
)

type CuratedNoteRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CuratedNote, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CuratedNote, error)
	// Upsert inserts the note or replaces the row with the same wine name.
	Upsert(ctx context.Context, note *entity.CuratedNote) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
