package wine

import (
	"context"
	"errors"

	"wine-club-be/internal/entity"
	"wine-club-be/internal/repository/specification"
	"wine-club-be/pkg/llm"

	"github.com/google/uuid"
)

type fakeVision struct {
	reply string
	err   error

	calls     int
	lastImage llm.Image
	lastOpts  llm.Options
}

func (f *fakeVision) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeVision) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeVision) Describe(ctx context.Context, prompt string, image llm.Image, options ...llm.Option) (string, error) {
	f.calls++
	f.lastImage = image
	f.lastOpts = llm.Options{}
	for _, o := range options {
		o(&f.lastOpts)
	}
	return f.reply, f.err
}

type fakeSource struct {
	rows  []*entity.CuratedNote
	err   error
	calls int
}

func (f *fakeSource) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CuratedNote, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func opusOneNote() *entity.CuratedNote {
	return &entity.CuratedNote{
		Id:         uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		WineName:   "Opus One",
		Notes:      "Frank's favorite splurge. Decant for an hour.",
		Rating:     "5/5",
		Potency:    intPtr(5),
		Acidity:    intPtr(4),
		Sweetness:  intPtr(1),
		Tannins:    intPtr(5),
		Fruitiness: intPtr(4),
	}
}
