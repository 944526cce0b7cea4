package implementation

import (
	"context"
	"errors"

	"wine-club-be/internal/entity"
	"wine-club-be/internal/mapper"
	"wine-club-be/internal/model"
	"wine-club-be/internal/repository/contract"
	"wine-club-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CuratedNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CuratedNoteMapper
}

func NewCuratedNoteRepository(db *gorm.DB) contract.CuratedNoteRepository {
	return &CuratedNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewCuratedNoteMapper(),
	}
}

func (r *CuratedNoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CuratedNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CuratedNote, error) {
	var models []*model.CuratedNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CuratedNoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CuratedNote, error) {
	var m model.CuratedNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CuratedNoteRepositoryImpl) Upsert(ctx context.Context, note *entity.CuratedNote) error {
	m := r.mapper.ToModel(note)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "wine_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"notes", "rating", "potency", "acidity", "sweetness", "tannins", "fruitiness",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *CuratedNoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CuratedNote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
