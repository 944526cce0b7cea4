package contract

import (
	"context"

	"wine-club-be/internal/entity"
	"wine-club-be/internal/repository/specification"
)

type ScanLogRepository interface {
	Create(ctx context.Context, log *entity.ScanLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScanLog, error)
}
