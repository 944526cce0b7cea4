package wine

import (
	"errors"
	"fmt"
	"strings"

	"wine-club-be/internal/entity"
)

const (
	DefaultCuratorName = "Frank"

	noNotesPlaceholder = "No additional notes available."
	errorResultName    = "Error analyzing wine"
)

// Merger combines a candidate with an optional curated note, field by field.
type Merger struct {
	closingRemark string
}

func NewMerger(curatorName string) *Merger {
	if strings.TrimSpace(curatorName) == "" {
		curatorName = DefaultCuratorName
	}
	return &Merger{
		closingRemark: fmt.Sprintf("%s says: \"I haven't tasted this one yet! Bring a bottle to the next meeting.\"", curatorName),
	}
}

// Merge builds the final result.
//
// A curated match wins in full: its notes are used as stored and its axes are topped up with the
// neutral midpoint, never with candidate data. The candidate vector is used only without a match.
func (m *Merger) Merge(c entity.WineCandidate, note *entity.CuratedNote) entity.WineResult {
	res := entity.WineResult{
		Name:          c.Name,
		Varietal:      orDefault(c.Varietal, entity.UnknownField),
		Region:        orDefault(c.Region, entity.UnknownField),
		Vintage:       orDefault(c.Vintage, entity.NoVintage),
		Rating:        entity.RatingPending,
		CuratedStatus: entity.CuratedStatusNotReviewed,
	}

	if note != nil {
		res.CuratedStatus = entity.CuratedStatusMatched
		if strings.TrimSpace(note.Rating) != "" {
			res.Rating = note.Rating
		}
	}

	if note != nil {
		res.Notes = note.Notes
	} else {
		res.Notes = m.fallbackNotes(c.Notes)
	}

	switch {
	case note != nil:
		res.FlavorProfile = curatedFlavor(note)
	case c.FlavorProfile != nil:
		res.FlavorProfile = *c.FlavorProfile
	default:
		res.FlavorProfile = entity.NeutralFlavorVector()
	}

	return res
}

func (m *Merger) fallbackNotes(candidateNotes *string) string {
	notes := noNotesPlaceholder
	if candidateNotes != nil && strings.TrimSpace(*candidateNotes) != "" {
		notes = *candidateNotes
	}
	return notes + "\n\n" + m.closingRemark
}

// ErrorResult is the displayable record returned in place of a result when identification fails.
func ErrorResult(cause error) entity.WineResult {
	return entity.WineResult{
		Name:          errorResultName,
		Varietal:      entity.UnknownField,
		Region:        entity.UnknownField,
		Vintage:       entity.NoVintage,
		Notes:         errorExplanation(cause),
		Rating:        entity.RatingNotRated,
		FlavorProfile: entity.NeutralFlavorVector(),
		Failed:        true,
	}
}

func errorExplanation(cause error) string {
	switch {
	case errors.Is(cause, ErrMalformedModelOutput):
		return "The AI service returned an answer we could not read. Please try again with a clearer photo of the label."
	default:
		return "There was an error connecting to the AI service. Please try again."
	}
}

func curatedFlavor(note *entity.CuratedNote) entity.FlavorVector {
	return entity.FlavorVector{
		Potency:    curatedAxis(note.Potency),
		Acidity:    curatedAxis(note.Acidity),
		Sweetness:  curatedAxis(note.Sweetness),
		Tannins:    curatedAxis(note.Tannins),
		Fruitiness: curatedAxis(note.Fruitiness),
	}
}

func curatedAxis(v *int) int {
	if v == nil || *v < entity.MinFlavorAxis || *v > entity.MaxFlavorAxis {
		return entity.NeutralFlavorAxis
	}
	return *v
}

func orDefault(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}
