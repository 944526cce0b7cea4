package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ScanLog struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId        *uuid.UUID     `gorm:"type:uuid;index"`
	WineName      string         `gorm:"type:varchar(255)"`
	Outcome       string         `gorm:"type:varchar(32);not null"`
	CuratedStatus string         `gorm:"type:varchar(32)"`
	DurationMs    int64          `gorm:"not null;default:0"`
	Result        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index"`
}

func (ScanLog) TableName() string {
	return "scan_logs"
}
