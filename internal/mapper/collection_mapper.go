package mapper

import (
	"wine-club-be/internal/entity"
	"wine-club-be/internal/model"
)

type CollectionMapper struct{}

func NewCollectionMapper() *CollectionMapper {
	return &CollectionMapper{}
}

func (m *CollectionMapper) ToEntity(c *model.CollectionEntry) *entity.CollectionEntry {
	if c == nil {
		return nil
	}
	return &entity.CollectionEntry{
		Id:         c.Id,
		UserId:     c.UserId,
		WineName:   c.WineName,
		Varietal:   c.Varietal,
		Region:     c.Region,
		Vintage:    c.Vintage,
		Rating:     c.Rating,
		Notes:      c.Notes,
		Potency:    c.Potency,
		Acidity:    c.Acidity,
		Sweetness:  c.Sweetness,
		Tannins:    c.Tannins,
		Fruitiness: c.Fruitiness,
		DateAdded:  c.DateAdded,
	}
}

func (m *CollectionMapper) ToModel(c *entity.CollectionEntry) *model.CollectionEntry {
	if c == nil {
		return nil
	}
	return &model.CollectionEntry{
		Id:         c.Id,
		UserId:     c.UserId,
		WineName:   c.WineName,
		Varietal:   c.Varietal,
		Region:     c.Region,
		Vintage:    c.Vintage,
		Rating:     c.Rating,
		Notes:      c.Notes,
		Potency:    c.Potency,
		Acidity:    c.Acidity,
		Sweetness:  c.Sweetness,
		Tannins:    c.Tannins,
		Fruitiness: c.Fruitiness,
		DateAdded:  c.DateAdded,
	}
}

func (m *CollectionMapper) ToEntities(entries []*model.CollectionEntry) []*entity.CollectionEntry {
	entities := make([]*entity.CollectionEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
