package mapper

import (
	"wine-club-be/internal/entity"
	"wine-club-be/internal/model"
)

type CuratedNoteMapper struct{}

func NewCuratedNoteMapper() *CuratedNoteMapper {
	return &CuratedNoteMapper{}
}

func (m *CuratedNoteMapper) ToEntity(n *model.CuratedNote) *entity.CuratedNote {
	if n == nil {
		return nil
	}
	return &entity.CuratedNote{
		Id:         n.Id,
		WineName:   n.WineName,
		Notes:      n.Notes,
		Rating:     n.Rating,
		Potency:    n.Potency,
		Acidity:    n.Acidity,
		Sweetness:  n.Sweetness,
		Tannins:    n.Tannins,
		Fruitiness: n.Fruitiness,
		CreatedAt:  n.CreatedAt,
	}
}

func (m *CuratedNoteMapper) ToModel(n *entity.CuratedNote) *model.CuratedNote {
	if n == nil {
		return nil
	}
	return &model.CuratedNote{
		Id:         n.Id,
		WineName:   n.WineName,
		Notes:      n.Notes,
		Rating:     n.Rating,
		Potency:    n.Potency,
		Acidity:    n.Acidity,
		Sweetness:  n.Sweetness,
		Tannins:    n.Tannins,
		Fruitiness: n.Fruitiness,
		CreatedAt:  n.CreatedAt,
	}
}

func (m *CuratedNoteMapper) ToEntities(notes []*model.CuratedNote) []*entity.CuratedNote {
	entities := make([]*entity.CuratedNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
