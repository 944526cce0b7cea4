package mapper

import (
	"encoding/json"

	"wine-club-be/internal/entity"
	"wine-club-be/internal/model"

	"gorm.io/datatypes"
)

type ScanLogMapper struct{}

func NewScanLogMapper() *ScanLogMapper {
	return &ScanLogMapper{}
}

// resultSnapshot is the jsonb shape of the merged result stored with each scan.
type resultSnapshot struct {
	Name          string              `json:"name"`
	Varietal      string              `json:"varietal"`
	Region        string              `json:"region"`
	Vintage       string              `json:"vintage"`
	Notes         string              `json:"notes"`
	Rating        string              `json:"rating"`
	FlavorProfile entity.FlavorVector `json:"flavorProfile"`
	CuratedStatus string              `json:"curatedStatus,omitempty"`
	Failed        bool                `json:"failed,omitempty"`
}

func (m *ScanLogMapper) ToEntity(s *model.ScanLog) *entity.ScanLog {
	if s == nil {
		return nil
	}

	var result *entity.WineResult
	if len(s.Result) > 0 {
		var snap resultSnapshot
		if err := json.Unmarshal(s.Result, &snap); err == nil {
			result = &entity.WineResult{
				Name:          snap.Name,
				Varietal:      snap.Varietal,
				Region:        snap.Region,
				Vintage:       snap.Vintage,
				Notes:         snap.Notes,
				Rating:        snap.Rating,
				FlavorProfile: snap.FlavorProfile,
				CuratedStatus: entity.CuratedStatus(snap.CuratedStatus),
				Failed:        snap.Failed,
			}
		}
	}

	return &entity.ScanLog{
		Id:            s.Id,
		UserId:        s.UserId,
		WineName:      s.WineName,
		Outcome:       entity.ScanOutcome(s.Outcome),
		CuratedStatus: entity.CuratedStatus(s.CuratedStatus),
		DurationMs:    s.DurationMs,
		Result:        result,
		CreatedAt:     s.CreatedAt,
	}
}

func (m *ScanLogMapper) ToModel(s *entity.ScanLog) (*model.ScanLog, error) {
	if s == nil {
		return nil, nil
	}

	var raw datatypes.JSON
	if s.Result != nil {
		b, err := json.Marshal(resultSnapshot{
			Name:          s.Result.Name,
			Varietal:      s.Result.Varietal,
			Region:        s.Result.Region,
			Vintage:       s.Result.Vintage,
			Notes:         s.Result.Notes,
			Rating:        s.Result.Rating,
			FlavorProfile: s.Result.FlavorProfile,
			CuratedStatus: string(s.Result.CuratedStatus),
			Failed:        s.Result.Failed,
		})
		if err != nil {
			return nil, err
		}
		raw = datatypes.JSON(b)
	}

	return &model.ScanLog{
		Id:            s.Id,
		UserId:        s.UserId,
		WineName:      s.WineName,
		Outcome:       string(s.Outcome),
		CuratedStatus: string(s.CuratedStatus),
		DurationMs:    s.DurationMs,
		Result:        raw,
		CreatedAt:     s.CreatedAt,
	}, nil
}

func (m *ScanLogMapper) ToEntities(logs []*model.ScanLog) []*entity.ScanLog {
	entities := make([]*entity.ScanLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
