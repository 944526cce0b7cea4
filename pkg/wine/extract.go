package wine

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"wine-club-be/internal/entity"

	"github.com/go-playground/validator/v10"
)

var (
	fenceMarker    = regexp.MustCompile("(?i)```(?:json)?[ \t]*\r?\n?")
	errMissingName = errors.New("required field \"name\" is missing or empty")
	validate       = validator.New()
)

// StripCodeFences removes every ``` marker (with an optional json tag) and trims the result.
func StripCodeFences(raw string) string {
	return strings.TrimSpace(fenceMarker.ReplaceAllString(raw, ""))
}

// ExtractCandidate parses the model reply into a WineCandidate.
// It never substitutes a default object: unparsable text or a missing name yields a *MalformedOutputError.
func ExtractCandidate(raw string) (entity.WineCandidate, error) {
	clean := StripCodeFences(raw)

	var payload candidatePayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return entity.WineCandidate{}, &MalformedOutputError{Raw: raw, Err: err}
	}

	name := payload.Name.stringValue()
	if name == nil {
		return entity.WineCandidate{}, &MalformedOutputError{Raw: raw, Err: errMissingName}
	}

	return entity.WineCandidate{
		Name:          *name,
		Varietal:      payload.Varietal.value(),
		Region:        payload.Region.value(),
		Vintage:       payload.Vintage.value(),
		Notes:         payload.Notes.value(),
		FlavorProfile: payload.FlavorProfile.vector(),
	}, nil
}

type candidatePayload struct {
	Name          textField      `json:"name"`
	Varietal      textField      `json:"varietal"`
	Region        textField      `json:"region"`
	Vintage       textField      `json:"vintage"`
	Notes         textField      `json:"notes"`
	FlavorProfile *flavorPayload `json:"flavorProfile"`
}

// textField accepts a JSON string or number. Any other JSON type leaves it unset.
type textField struct {
	text   string
	set    bool
	quoted bool
}

func (f *textField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch {
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f.text, f.set, f.quoted = s, true, true
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		f.text, f.set = string(b), true
	}
	return nil
}

func (f textField) value() *string {
	if !f.set {
		return nil
	}
	s := strings.TrimSpace(f.text)
	if s == "" {
		return nil
	}
	return &s
}

// stringValue is value restricted to JSON strings; a numeric name is not a name.
func (f textField) stringValue() *string {
	if !f.quoted {
		return nil
	}
	return f.value()
}

type flavorPayload struct {
	Potency    axisField `json:"potency"`
	Acidity    axisField `json:"acidity"`
	Sweetness  axisField `json:"sweetness"`
	Tannins    axisField `json:"tannins"`
	Fruitiness axisField `json:"fruitiness"`
}

// flavorAxes is validated as a unit: every axis present and in range, or no vector at all.
type flavorAxes struct {
	Potency    *int `validate:"required,min=1,max=5"`
	Acidity    *int `validate:"required,min=1,max=5"`
	Sweetness  *int `validate:"required,min=1,max=5"`
	Tannins    *int `validate:"required,min=1,max=5"`
	Fruitiness *int `validate:"required,min=1,max=5"`
}

func (p *flavorPayload) vector() *entity.FlavorVector {
	if p == nil {
		return nil
	}
	axes := flavorAxes{
		Potency:    p.Potency.value,
		Acidity:    p.Acidity.value,
		Sweetness:  p.Sweetness.value,
		Tannins:    p.Tannins.value,
		Fruitiness: p.Fruitiness.value,
	}
	if err := validate.Struct(axes); err != nil {
		return nil
	}
	return &entity.FlavorVector{
		Potency:    *axes.Potency,
		Acidity:    *axes.Acidity,
		Sweetness:  *axes.Sweetness,
		Tannins:    *axes.Tannins,
		Fruitiness: *axes.Fruitiness,
	}
}

// axisField accepts an integral JSON number or a numeric string. Anything else leaves it nil.
type axisField struct {
	value *int
}

func (a *axisField) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if f != math.Trunc(f) {
		return nil
	}
	n := int(f)
	a.value = &n
	return nil
}
