package model

import (
	"time"

	"github.com/google/uuid"
)

// CuratedNote is a row of the curator's tasting notes table.
type CuratedNote struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WineName   string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Notes      string    `gorm:"type:text"`
	Rating     string    `gorm:"type:varchar(32)"`
	Potency    *int      `gorm:"type:smallint"`
	Acidity    *int      `gorm:"type:smallint"`
	Sweetness  *int      `gorm:"type:smallint"`
	Tannins    *int      `gorm:"type:smallint"`
	Fruitiness *int      `gorm:"type:smallint"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (CuratedNote) TableName() string {
	return "franks_notes"
}
