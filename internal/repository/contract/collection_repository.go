package contract

import (
	"context"

	"wine-club-be/internal/entity"
	"wine-club-be/internal/repository/specification"
)

type CollectionRepository interface {
	Create(ctx context.Context, entry *entity.CollectionEntry) error
	// Delete removes the entries matching specs and reports how many rows were removed.
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollectionEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollectionEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
