package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"wine-club-be/internal/config"
	"wine-club-be/internal/entity"
	"wine-club-be/internal/repository/unitofwork"
	"wine-club-be/pkg/database"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
)

// curatedNoteRecord is one entry of the seed file.
type curatedNoteRecord struct {
	WineName   string `json:"wine_name" validate:"required"`
	Notes      string `json:"notes"`
	Rating     string `json:"rating"`
	Potency    *int   `json:"potency" validate:"omitempty,min=1,max=5"`
	Acidity    *int   `json:"acidity" validate:"omitempty,min=1,max=5"`
	Sweetness  *int   `json:"sweetness" validate:"omitempty,min=1,max=5"`
	Tannins    *int   `json:"tannins" validate:"omitempty,min=1,max=5"`
	Fruitiness *int   `json:"fruitiness" validate:"omitempty,min=1,max=5"`
}

func loadCuratedNotes(r io.Reader) ([]*entity.CuratedNote, error) {
	var records []curatedNoteRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	validate := validator.New()
	notes := make([]*entity.CuratedNote, 0, len(records))
	for i, rec := range records {
		rec.WineName = strings.TrimSpace(rec.WineName)
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, rec.WineName, err)
		}
		notes = append(notes, &entity.CuratedNote{
			WineName:   rec.WineName,
			Notes:      rec.Notes,
			Rating:     rec.Rating,
			Potency:    rec.Potency,
			Acidity:    rec.Acidity,
			Sweetness:  rec.Sweetness,
			Tannins:    rec.Tannins,
			Fruitiness: rec.Fruitiness,
		})
	}
	return notes, nil
}

func main() {
	cfg := config.Load()

	path := cfg.Wine.CuratedSeedPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	color.Cyan("🍷 Seeding curated notes from %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		color.Red("Failed to open seed file: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	notes, err := loadCuratedNotes(f)
	if err != nil {
		color.Red("Invalid seed file: %v", err)
		os.Exit(1)
	}

	db, err := database.NewGormDB(cfg.Database.GormConfig())
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer database.Close(db)

	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)

	// All notes land together or not at all.
	err = unitofwork.WithinTransaction(ctx, factory, func(uow unitofwork.UnitOfWork) error {
		repo := uow.CuratedNoteRepository()
		for _, n := range notes {
			if err := repo.Upsert(ctx, n); err != nil {
				return fmt.Errorf("%s: %w", n.WineName, err)
			}
			color.Green("  ✓ %s", n.WineName)
		}
		return nil
	})
	if err != nil {
		color.Red("Seeding rolled back: %v", err)
		os.Exit(1)
	}

	total, err := factory.NewUnitOfWork(ctx).CuratedNoteRepository().Count(ctx)
	if err != nil {
		color.Yellow("Could not count curated notes: %v", err)
	} else {
		color.Cyan("Curated notes in store: %d", total)
	}

	color.Green("✅ Seeding completed (%d notes)", len(notes))
}
