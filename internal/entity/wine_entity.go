package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// NeutralFlavorAxis is the midpoint used whenever an axis has no value.
	NeutralFlavorAxis = 3
	MinFlavorAxis     = 1
	MaxFlavorAxis     = 5

	UnknownField   = "Unknown"
	NoVintage      = "N/A"
	RatingPending  = "TBD"
	RatingNotRated = "N/A"
)

// FlavorVector is the five-axis tasting profile on a 1-5 scale.
type FlavorVector struct {
	Potency    int `json:"potency"`
	Acidity    int `json:"acidity"`
	Sweetness  int `json:"sweetness"`
	Tannins    int `json:"tannins"`
	Fruitiness int `json:"fruitiness"`
}

func NeutralFlavorVector() FlavorVector {
	return FlavorVector{
		Potency:    NeutralFlavorAxis,
		Acidity:    NeutralFlavorAxis,
		Sweetness:  NeutralFlavorAxis,
		Tannins:    NeutralFlavorAxis,
		Fruitiness: NeutralFlavorAxis,
	}
}

// WineCandidate is the unverified identification returned by the model.
// Optional fields are nil when the model did not supply them.
type WineCandidate struct {
	Name          string
	Varietal      *string
	Region        *string
	Vintage       *string
	Notes         *string
	FlavorProfile *FlavorVector
}

// CuratedNote is a curator-authored override row. Axes are nil when the curator left them blank.
type CuratedNote struct {
	Id         uuid.UUID
	WineName   string
	Notes      string
	Rating     string
	Potency    *int
	Acidity    *int
	Sweetness  *int
	Tannins    *int
	Fruitiness *int
	CreatedAt  time.Time
}

type CuratedStatus string

const (
	CuratedStatusMatched      CuratedStatus = "matched"
	CuratedStatusNotReviewed  CuratedStatus = "not_reviewed"
	CuratedStatusLookupFailed CuratedStatus = "lookup_failed"
)

// WineResult is the final, displayable identification.
type WineResult struct {
	Name          string
	Varietal      string
	Region        string
	Vintage       string
	Notes         string
	Rating        string
	FlavorProfile FlavorVector
	CuratedStatus CuratedStatus
	Failed        bool
}
