package service

import (
	"context"
	"time"

	"wine-club-be/internal/dto"
	"wine-club-be/internal/entity"
	"wine-club-be/internal/pkg/logger"
	"wine-club-be/internal/repository/memory"
	"wine-club-be/internal/repository/specification"
	"wine-club-be/internal/repository/unitofwork"
	"wine-club-be/pkg/session"
	"wine-club-be/pkg/wine"

	"github.com/google/uuid"
)

const (
	wineModule       = "WINE_SERVICE"
	defaultScanLimit = 20
)

// WineIdentifier runs the identification pipeline on one image.
type WineIdentifier interface {
	Identify(ctx context.Context, payload []byte, declaredMime string) (*wine.Identification, error)
}

type IWineService interface {
	// Analyze identifies one label photo. s may be nil for anonymous callers.
	Analyze(ctx context.Context, s *session.Session, image []byte, declaredMime string) (*dto.AnalyzeWineResponse, error)
	ListScans(ctx context.Context, s *session.Session, req *dto.ListScansRequest) ([]*dto.ScanLogResponse, error)
}

type wineService struct {
	identifier WineIdentifier
	scans      *memory.ScanStore
	publisher  IScanPublisherService
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewWineService(
	identifier WineIdentifier,
	scans *memory.ScanStore,
	publisher IScanPublisherService,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IWineService {
	return &wineService{
		identifier: identifier,
		scans:      scans,
		publisher:  publisher,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (w *wineService) Analyze(ctx context.Context, s *session.Session, image []byte, declaredMime string) (*dto.AnalyzeWineResponse, error) {
	if len(image) == 0 {
		return nil, wine.ErrNoImageProvided
	}

	var userId *uuid.UUID
	if s != nil {
		if !w.scans.BeginScan(s.UserID) {
			return nil, ErrScanInProgress
		}
		defer w.scans.EndScan(s.UserID)

		id := s.UserID
		userId = &id
		ctx = session.WithSession(ctx, s)
	}

	ident, err := w.identifier.Identify(ctx, image, declaredMime)
	if err != nil && !wine.IsDisplayable(err) {
		return nil, err
	}

	scanId := uuid.New()
	result := toWineResultResponse(ident.Result)
	w.publishScan(ctx, scanId, userId, ident, result)

	res := &dto.AnalyzeWineResponse{Result: result}
	if err == nil && userId != nil {
		w.scans.SaveResult(*userId, scanId, ident.Result)
		res.ScanId = &scanId
	}
	return res, nil
}

func (w *wineService) publishScan(ctx context.Context, scanId uuid.UUID, userId *uuid.UUID, ident *wine.Identification, result dto.WineResultResponse) {
	msg := dto.ScanEventMessage{
		ScanId:        scanId,
		UserId:        userId,
		Outcome:       string(ident.Outcome),
		CuratedStatus: string(ident.Result.CuratedStatus),
		DurationMs:    ident.Duration.Milliseconds(),
		Result:        result,
		OccurredAt:    time.Now(),
	}
	if ident.Candidate != nil {
		msg.WineName = ident.Candidate.Name
	}

	// Scan logging never fails the identification.
	if err := w.publisher.PublishScan(context.WithoutCancel(ctx), msg); err != nil {
		w.log.Warn(wineModule, "Failed to publish scan event", map[string]interface{}{
			"scan_id": scanId.String(),
			"error":   err.Error(),
		})
	}
}

func (w *wineService) ListScans(ctx context.Context, s *session.Session, req *dto.ListScansRequest) ([]*dto.ScanLogResponse, error) {
	if s == nil {
		return nil, ErrNoSession
	}

	limit := defaultScanLimit
	if req != nil && req.Limit > 0 {
		limit = req.Limit
	}

	uow := w.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.ScanLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: s.UserID},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ScanLogResponse, 0, len(logs))
	for _, l := range logs {
		item := &dto.ScanLogResponse{
			Id:            l.Id,
			WineName:      l.WineName,
			Outcome:       string(l.Outcome),
			CuratedStatus: string(l.CuratedStatus),
			DurationMs:    l.DurationMs,
			CreatedAt:     l.CreatedAt,
		}
		if l.Result != nil {
			r := toWineResultResponse(*l.Result)
			item.Result = &r
		}
		res = append(res, item)
	}
	return res, nil
}

func toWineResultResponse(r entity.WineResult) dto.WineResultResponse {
	return dto.WineResultResponse{
		Name:          r.Name,
		Varietal:      r.Varietal,
		Region:        r.Region,
		Vintage:       r.Vintage,
		Notes:         r.Notes,
		Rating:        r.Rating,
		FlavorProfile: toFlavorProfileResponse(r.FlavorProfile),
		CuratedStatus: string(r.CuratedStatus),
		Failed:        r.Failed,
	}
}

func fromWineResultResponse(r dto.WineResultResponse) entity.WineResult {
	return entity.WineResult{
		Name:     r.Name,
		Varietal: r.Varietal,
		Region:   r.Region,
		Vintage:  r.Vintage,
		Notes:    r.Notes,
		Rating:   r.Rating,
		FlavorProfile: entity.FlavorVector{
			Potency:    r.FlavorProfile.Potency,
			Acidity:    r.FlavorProfile.Acidity,
			Sweetness:  r.FlavorProfile.Sweetness,
			Tannins:    r.FlavorProfile.Tannins,
			Fruitiness: r.FlavorProfile.Fruitiness,
		},
		CuratedStatus: entity.CuratedStatus(r.CuratedStatus),
		Failed:        r.Failed,
	}
}

func toFlavorProfileResponse(v entity.FlavorVector) dto.FlavorProfileResponse {
	return dto.FlavorProfileResponse{
		Potency:    v.Potency,
		Acidity:    v.Acidity,
		Sweetness:  v.Sweetness,
		Tannins:    v.Tannins,
		Fruitiness: v.Fruitiness,
	}
}
