package dto

import (
	"time"

	"github.com/google/uuid"
)

type FlavorProfileRequest struct {
	Potency    int `json:"potency" validate:"min=1,max=5"`
	Acidity    int `json:"acidity" validate:"min=1,max=5"`
	Sweetness  int `json:"sweetness" validate:"min=1,max=5"`
	Tannins    int `json:"tannins" validate:"min=1,max=5"`
	Fruitiness int `json:"fruitiness" validate:"min=1,max=5"`
}

// AddCollectionRequest is a WineResult sent back by the client.
type AddCollectionRequest struct {
	Name          string                `json:"name" validate:"required,max=255"`
	Varietal      string                `json:"varietal" validate:"max=255"`
	Region        string                `json:"region" validate:"max=255"`
	Vintage       string                `json:"vintage" validate:"max=32"`
	Notes         string                `json:"notes"`
	Rating        string                `json:"rating" validate:"max=32"`
	FlavorProfile *FlavorProfileRequest `json:"flavorProfile"`
	Failed        bool                  `json:"failed"`
}

type CollectionEntryResponse struct {
	Id            uuid.UUID             `json:"id"`
	WineName      string                `json:"wine_name"`
	Varietal      string                `json:"varietal"`
	Region        string                `json:"region"`
	Vintage       string                `json:"vintage"`
	Rating        *string               `json:"rating"`
	Notes         *string               `json:"notes"`
	FlavorProfile FlavorProfileResponse `json:"flavorProfile"`
	DateAdded     time.Time             `json:"date_added"`
}

// CollectionMutationResponse carries the refreshed collection after an add or remove.
type CollectionMutationResponse struct {
	Entry      *CollectionEntryResponse   `json:"entry,omitempty"`
	Collection []*CollectionEntryResponse `json:"collection"`
}
