package model

import (
	"time"

	"github.com/google/uuid"
)

type CollectionEntry struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	WineName   string    `gorm:"type:varchar(255);not null"`
	Varietal   string    `gorm:"type:varchar(255)"`
	Region     string    `gorm:"type:varchar(255)"`
	Vintage    string    `gorm:"type:varchar(32)"`
	Rating     *string   `gorm:"type:varchar(32)"`
	Notes      *string   `gorm:"type:text"`
	Potency    *int      `gorm:"type:smallint"`
	Acidity    *int      `gorm:"type:smallint"`
	Sweetness  *int      `gorm:"type:smallint"`
	Tannins    *int      `gorm:"type:smallint"`
	Fruitiness *int      `gorm:"type:smallint"`
	DateAdded  time.Time `gorm:"autoCreateTime;index"`
}

func (CollectionEntry) TableName() string {
	return "user_collections"
}
