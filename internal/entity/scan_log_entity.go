package entity

import (
	"time"

	"github.com/google/uuid"
)

type ScanOutcome string

const (
	ScanOutcomeIdentified           ScanOutcome = "identified"
	ScanOutcomeInferenceUnavailable ScanOutcome = "inference_unavailable"
	ScanOutcomeMalformedOutput      ScanOutcome = "malformed_output"
)

// ScanLog records one identification attempt.
type ScanLog struct {
	Id            uuid.UUID
	UserId        *uuid.UUID
	WineName      string
	Outcome       ScanOutcome
	CuratedStatus CuratedStatus
	DurationMs    int64
	Result        *WineResult
	CreatedAt     time.Time
}
