package wine

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"wine-club-be/internal/entity"
	"wine-club-be/internal/repository/specification"

	"golang.org/x/text/cases"
)

// CuratedNoteSource is the read side of the curated notes table.
type CuratedNoteSource interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CuratedNote, error)
}

// Matcher finds the curator override for a candidate name.
//
// A curated row matches when its wine name contains the candidate name, compared with Unicode
// case folding. When several rows match, the shortest curated name wins (the closest fit to the
// candidate), then the case-folded name in lexical order, then the row id. The same input always
// resolves to the same row regardless of store ordering.
type Matcher struct {
	source CuratedNoteSource
}

func NewMatcher(source CuratedNoteSource) *Matcher {
	return &Matcher{source: source}
}

// Match returns the chosen note and true, or nil and false when nothing matches.
// A blank name skips the lookup. Store failures wrap ErrCuratedLookup.
func (m *Matcher) Match(ctx context.Context, candidateName string) (*entity.CuratedNote, bool, error) {
	needle := strings.TrimSpace(candidateName)
	if needle == "" {
		return nil, false, nil
	}

	rows, err := m.source.FindAll(ctx, specification.WineNameContains{Name: needle})
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrCuratedLookup, err)
	}

	note := pickCuratedNote(needle, rows)
	return note, note != nil, nil
}

func pickCuratedNote(needle string, rows []*entity.CuratedNote) *entity.CuratedNote {
	fold := cases.Fold()
	key := fold.String(needle)

	type candidate struct {
		note   *entity.CuratedNote
		folded string
	}
	matches := make([]candidate, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		folded := fold.String(strings.TrimSpace(row.WineName))
		if strings.Contains(folded, key) {
			matches = append(matches, candidate{note: row, folded: folded})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	slices.SortStableFunc(matches, func(a, b candidate) int {
		if c := cmp.Compare(len(a.folded), len(b.folded)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.folded, b.folded); c != 0 {
			return c
		}
		return cmp.Compare(a.note.Id.String(), b.note.Id.String())
	})
	return matches[0].note
}
