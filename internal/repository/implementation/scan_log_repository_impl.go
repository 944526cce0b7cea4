package implementation

import (
	"context"

	"wine-club-be/internal/entity"
	"wine-club-be/internal/mapper"
	"wine-club-be/internal/model"
	"wine-club-be/internal/repository/contract"
	"wine-club-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ScanLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScanLogMapper
}

func NewScanLogRepository(db *gorm.DB) contract.ScanLogRepository {
	return &ScanLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewScanLogMapper(),
	}
}

func (r *ScanLogRepositoryImpl) Create(ctx context.Context, log *entity.ScanLog) error {
	m, err := r.mapper.ToModel(log)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ScanLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScanLog, error) {
	var models []*model.ScanLog
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
