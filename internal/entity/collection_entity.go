package entity

import (
	"time"

	"github.com/google/uuid"
)

type CollectionEntry struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	WineName   string
	Varietal   string
	Region     string
	Vintage    string
	Rating     *string
	Notes      *string
	Potency    *int
	Acidity    *int
	Sweetness  *int
	Tannins    *int
	Fruitiness *int
	DateAdded  time.Time
}

// FlavorProfile returns the stored axes, topping up any missing one with the neutral midpoint.
func (e *CollectionEntry) FlavorProfile() FlavorVector {
	axis := func(v *int) int {
		if v == nil {
			return NeutralFlavorAxis
		}
		return *v
	}
	return FlavorVector{
		Potency:    axis(e.Potency),
		Acidity:    axis(e.Acidity),
		Sweetness:  axis(e.Sweetness),
		Tannins:    axis(e.Tannins),
		Fruitiness: axis(e.Fruitiness),
	}
}
