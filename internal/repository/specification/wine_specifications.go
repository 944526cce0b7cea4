package specification

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// WineNameContains matches curated rows whose wine_name contains Name, ignoring case.
// LIKE metacharacters in Name are matched literally.
type WineNameContains struct {
	Name string
}

func (s WineNameContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(s.Name) + "%"
	return db.Where("wine_name ILIKE ?", pattern)
}

// ByWineName filters by exact wine name (case-insensitive)
type ByWineName struct {
	Name string
}

func (s ByWineName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(wine_name) = LOWER(?)", s.Name)
}

// NewestAddedFirst orders collection entries by date_added descending, id as tiebreaker
type NewestAddedFirst struct{}

func (s NewestAddedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("date_added DESC").Order("id DESC")
}
