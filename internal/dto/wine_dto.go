package dto

import (
	"time"

	"github.com/google/uuid"
)

type FlavorProfileResponse struct {
	Potency    int `json:"potency"`
	Acidity    int `json:"acidity"`
	Sweetness  int `json:"sweetness"`
	Tannins    int `json:"tannins"`
	Fruitiness int `json:"fruitiness"`
}

// WineResultResponse keeps the field names the mobile and web clients already read.
type WineResultResponse struct {
	Name          string                `json:"name"`
	Varietal      string                `json:"varietal"`
	Region        string                `json:"region"`
	Vintage       string                `json:"vintage"`
	Notes         string                `json:"notes"`
	Rating        string                `json:"rating"`
	FlavorProfile FlavorProfileResponse `json:"flavorProfile"`
	CuratedStatus string                `json:"curatedStatus,omitempty"`
	Failed        bool                  `json:"failed,omitempty"`
}

type AnalyzeWineResponse struct {
	ScanId *uuid.UUID         `json:"scan_id"` // nil when identification failed
	Result WineResultResponse `json:"result"`
}

type ScanLogResponse struct {
	Id            uuid.UUID           `json:"id"`
	WineName      string              `json:"wine_name"`
	Outcome       string              `json:"outcome"`
	CuratedStatus string              `json:"curated_status,omitempty"`
	DurationMs    int64               `json:"duration_ms"`
	Result        *WineResultResponse `json:"result,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

type ListScansRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// ScanEventMessage is published on the in-process bus after every identification attempt.
type ScanEventMessage struct {
	ScanId        uuid.UUID          `json:"scan_id"`
	UserId        *uuid.UUID         `json:"user_id,omitempty"`
	WineName      string             `json:"wine_name"`
	Outcome       string             `json:"outcome"`
	CuratedStatus string             `json:"curated_status,omitempty"`
	DurationMs    int64              `json:"duration_ms"`
	Result        WineResultResponse `json:"result"`
	OccurredAt    time.Time          `json:"occurred_at"`
}
