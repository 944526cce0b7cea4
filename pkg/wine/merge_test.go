package wine

import (
	"errors"
	"testing"

	"wine-club-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

const closingRemark = `Frank says: "I haven't tasted this one yet! Bring a bottle to the next meeting."`

func TestMerger_NoCuratedMatch(t *testing.T) {
	m := NewMerger("")

	t.Run("candidate profile kept and rating pending", func(t *testing.T) {
		profile := entity.FlavorVector{Potency: 2, Acidity: 5, Sweetness: 1, Tannins: 1, Fruitiness: 4}
		res := m.Merge(entity.WineCandidate{
			Name:          "Cloudy Bay Sauvignon Blanc",
			Varietal:      strPtr("Sauvignon Blanc"),
			Region:        strPtr("Marlborough"),
			Vintage:       strPtr("2022"),
			Notes:         strPtr("Passionfruit and cut grass."),
			FlavorProfile: &profile,
		}, nil)

		assert.Equal(t, "Cloudy Bay Sauvignon Blanc", res.Name)
		assert.Equal(t, "Sauvignon Blanc", res.Varietal)
		assert.Equal(t, "Marlborough", res.Region)
		assert.Equal(t, "2022", res.Vintage)
		assert.Equal(t, entity.RatingPending, res.Rating)
		assert.Equal(t, profile, res.FlavorProfile)
		assert.Equal(t, "Passionfruit and cut grass.\n\n"+closingRemark, res.Notes)
		assert.Equal(t, entity.CuratedStatusNotReviewed, res.CuratedStatus)
		assert.False(t, res.Failed)
	})

	t.Run("missing fields use defaults", func(t *testing.T) {
		res := m.Merge(entity.WineCandidate{Name: "Mystery Red"}, nil)

		assert.Equal(t, entity.UnknownField, res.Varietal)
		assert.Equal(t, entity.UnknownField, res.Region)
		assert.Equal(t, "N/A", res.Vintage)
		assert.Equal(t, "TBD", res.Rating)
		assert.Equal(t, entity.NeutralFlavorVector(), res.FlavorProfile)
		assert.Equal(t, "No additional notes available.\n\n"+closingRemark, res.Notes)
	})

	t.Run("missing vintage keeps candidate profile", func(t *testing.T) {
		profile := entity.FlavorVector{Potency: 4, Acidity: 3, Sweetness: 2, Tannins: 4, Fruitiness: 5}
		res := m.Merge(entity.WineCandidate{Name: "House Red", FlavorProfile: &profile}, nil)

		assert.Equal(t, "N/A", res.Vintage)
		assert.Equal(t, profile, res.FlavorProfile)
	})
}

func TestMerger_CuratedMatch(t *testing.T) {
	m := NewMerger("Frank")
	candidateProfile := entity.FlavorVector{Potency: 2, Acidity: 2, Sweetness: 2, Tannins: 2, Fruitiness: 2}
	candidate := entity.WineCandidate{
		Name:          "Opus One",
		Varietal:      strPtr("Bordeaux Blend"),
		Region:        strPtr("Napa Valley"),
		Vintage:       strPtr("2018"),
		Notes:         strPtr("Model tasting notes."),
		FlavorProfile: &candidateProfile,
	}

	t.Run("curated row replaces notes rating and profile", func(t *testing.T) {
		note := opusOneNote()
		res := m.Merge(candidate, note)

		assert.Equal(t, note.Notes, res.Notes)
		assert.NotContains(t, res.Notes, "Model tasting notes.")
		assert.Equal(t, "5/5", res.Rating)
		assert.Equal(t, entity.FlavorVector{Potency: 5, Acidity: 4, Sweetness: 1, Tannins: 5, Fruitiness: 4}, res.FlavorProfile)
		assert.Equal(t, entity.CuratedStatusMatched, res.CuratedStatus)
		assert.Equal(t, "Opus One", res.Name)
		assert.Equal(t, "2018", res.Vintage)
	})

	t.Run("partial curated axes topped up with neutral", func(t *testing.T) {
		note := &entity.CuratedNote{WineName: "Opus One", Notes: "Curated.", Rating: "4/5", Potency: intPtr(5), Tannins: intPtr(4)}
		res := m.Merge(candidate, note)

		assert.Equal(t, entity.FlavorVector{Potency: 5, Acidity: 3, Sweetness: 3, Tannins: 4, Fruitiness: 3}, res.FlavorProfile)
	})

	t.Run("curated row without axes is all neutral", func(t *testing.T) {
		note := &entity.CuratedNote{WineName: "Opus One", Notes: "Curated.", Rating: "4/5"}
		res := m.Merge(candidate, note)

		assert.Equal(t, entity.NeutralFlavorVector(), res.FlavorProfile)
		assert.NotEqual(t, candidateProfile, res.FlavorProfile)
	})

	t.Run("blank curated notes are kept without the curator remark", func(t *testing.T) {
		note := &entity.CuratedNote{WineName: "Opus One", Notes: "", Rating: "4/5"}
		res := m.Merge(candidate, note)

		assert.Empty(t, res.Notes)
		assert.NotContains(t, res.Notes, "Model tasting notes.")
		assert.NotContains(t, res.Notes, closingRemark)
		assert.Equal(t, "4/5", res.Rating)
	})

	t.Run("blank curated rating stays pending", func(t *testing.T) {
		note := &entity.CuratedNote{WineName: "Opus One", Notes: "Curated."}
		res := m.Merge(candidate, note)

		assert.Equal(t, entity.RatingPending, res.Rating)
	})
}

func TestMerger_CuratorName(t *testing.T) {
	res := NewMerger("Rosa").Merge(entity.WineCandidate{Name: "Mystery Red"}, nil)
	assert.Contains(t, res.Notes, `Rosa says: "I haven't tasted this one yet!`)
}

func TestErrorResult(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		notes string
	}{
		{
			name:  "inference unavailable",
			cause: ErrInferenceUnavailable,
			notes: "There was an error connecting to the AI service. Please try again.",
		},
		{
			name:  "malformed output",
			cause: &MalformedOutputError{Raw: "nope", Err: errors.New("invalid character")},
			notes: "The AI service returned an answer we could not read. Please try again with a clearer photo of the label.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ErrorResult(tt.cause)

			assert.True(t, res.Failed)
			assert.Equal(t, "Error analyzing wine", res.Name)
			assert.Equal(t, entity.UnknownField, res.Varietal)
			assert.Equal(t, entity.UnknownField, res.Region)
			assert.Equal(t, "N/A", res.Vintage)
			assert.Equal(t, "N/A", res.Rating)
			assert.Equal(t, entity.NeutralFlavorVector(), res.FlavorProfile)
			assert.Equal(t, tt.notes, res.Notes)
		})
	}
}
