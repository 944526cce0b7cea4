package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wine-club-be/internal/dto"
	"wine-club-be/internal/entity"
	"wine-club-be/internal/pkg/logger"
	"wine-club-be/internal/repository/memory"
	"wine-club-be/pkg/session"
	"wine-club-be/pkg/wine"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identifiedOpusOne() *wine.Identification {
	return &wine.Identification{
		Result: entity.WineResult{
			Name:          "Opus One",
			Varietal:      "Bordeaux Blend",
			Region:        "Napa Valley",
			Vintage:       "2018",
			Notes:         "Curated notes.",
			Rating:        "5/5",
			FlavorProfile: entity.FlavorVector{Potency: 5, Acidity: 4, Sweetness: 1, Tannins: 5, Fruitiness: 4},
			CuratedStatus: entity.CuratedStatusMatched,
		},
		Candidate: &entity.WineCandidate{Name: "Opus One"},
		Outcome:   entity.ScanOutcomeIdentified,
		Duration:  1200 * time.Millisecond,
	}
}

type wineServiceFixture struct {
	svc        IWineService
	identifier *fakeIdentifier
	scans      *memory.ScanStore
	publisher  *fakeScanPublisher
	factory    *fakeFactory
}

func newWineServiceFixture(identifier *fakeIdentifier) *wineServiceFixture {
	f := &wineServiceFixture{
		identifier: identifier,
		scans:      memory.NewScanStore(time.Minute, time.Minute),
		publisher:  &fakeScanPublisher{},
		factory:    newFakeFactory(),
	}
	f.svc = NewWineService(f.identifier, f.scans, f.publisher, f.factory, logger.NewNopLogger())
	return f
}

func TestWineService_Analyze(t *testing.T) {
	f := newWineServiceFixture(&fakeIdentifier{ident: identifiedOpusOne()})
	s := &session.Session{UserID: uuid.New()}

	res, err := f.svc.Analyze(context.Background(), s, []byte("jpeg"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "Opus One", res.Result.Name)
	assert.Equal(t, "5/5", res.Result.Rating)
	assert.Equal(t, dto.FlavorProfileResponse{Potency: 5, Acidity: 4, Sweetness: 1, Tannins: 5, Fruitiness: 4}, res.Result.FlavorProfile)
	assert.Equal(t, "matched", res.Result.CuratedStatus)
	require.NotNil(t, res.ScanId)

	stored, ok := f.scans.GetResult(s.UserID, *res.ScanId)
	require.True(t, ok)
	assert.Equal(t, "Opus One", stored.Name)

	require.Len(t, f.publisher.msgs, 1)
	msg := f.publisher.msgs[0]
	assert.Equal(t, *res.ScanId, msg.ScanId)
	assert.Equal(t, "identified", msg.Outcome)
	assert.Equal(t, "Opus One", msg.WineName)
	assert.Equal(t, int64(1200), msg.DurationMs)
	require.NotNil(t, msg.UserId)
	assert.Equal(t, s.UserID, *msg.UserId)

	assert.True(t, f.scans.BeginScan(s.UserID), "guard released after the scan")
}

func TestWineService_AnalyzeAnonymous(t *testing.T) {
	f := newWineServiceFixture(&fakeIdentifier{ident: identifiedOpusOne()})

	res, err := f.svc.Analyze(context.Background(), nil, []byte("jpeg"), "")
	require.NoError(t, err)
	assert.Nil(t, res.ScanId)
	assert.Equal(t, "Opus One", res.Result.Name)
	require.Len(t, f.publisher.msgs, 1)
	assert.Nil(t, f.publisher.msgs[0].UserId)
}

func TestWineService_AnalyzeNoImage(t *testing.T) {
	f := newWineServiceFixture(&fakeIdentifier{})

	_, err := f.svc.Analyze(context.Background(), &session.Session{UserID: uuid.New()}, nil, "")
	assert.ErrorIs(t, err, wine.ErrNoImageProvided)
	assert.Equal(t, 0, f.identifier.calls)
	assert.Empty(t, f.publisher.msgs)
}

func TestWineService_AnalyzeDisplayableFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	failed := &wine.Identification{
		Result:  wine.ErrorResult(wine.ErrInferenceUnavailable),
		Outcome: entity.ScanOutcomeInferenceUnavailable,
	}
	f := newWineServiceFixture(&fakeIdentifier{ident: failed, err: errors.Join(wine.ErrInferenceUnavailable, cause)})
	s := &session.Session{UserID: uuid.New()}

	res, err := f.svc.Analyze(context.Background(), s, []byte("jpeg"), "")
	require.NoError(t, err)
	assert.True(t, res.Result.Failed)
	assert.Equal(t, "Error analyzing wine", res.Result.Name)
	assert.Nil(t, res.ScanId, "failed scans cannot be added to the collection")

	require.Len(t, f.publisher.msgs, 1)
	assert.Equal(t, "inference_unavailable", f.publisher.msgs[0].Outcome)
}

func TestWineService_AnalyzeTerminalError(t *testing.T) {
	f := newWineServiceFixture(&fakeIdentifier{err: errors.New("unexpected")})

	_, err := f.svc.Analyze(context.Background(), &session.Session{UserID: uuid.New()}, []byte("jpeg"), "")
	assert.Error(t, err)
	assert.Empty(t, f.publisher.msgs)
}

func TestWineService_OneScanPerSession(t *testing.T) {
	identifier := &fakeIdentifier{
		ident:   identifiedOpusOne(),
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	f := newWineServiceFixture(identifier)
	s := &session.Session{UserID: uuid.New()}

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.Analyze(context.Background(), s, []byte("jpeg"), "")
		done <- err
	}()
	<-identifier.started

	_, err := f.svc.Analyze(context.Background(), s, []byte("jpeg"), "")
	assert.ErrorIs(t, err, ErrScanInProgress)

	close(identifier.release)
	require.NoError(t, <-done)
}

func TestWineService_PublishFailureDoesNotFailScan(t *testing.T) {
	f := newWineServiceFixture(&fakeIdentifier{ident: identifiedOpusOne()})
	f.publisher.err = errors.New("bus closed")

	res, err := f.svc.Analyze(context.Background(), &session.Session{UserID: uuid.New()}, []byte("jpeg"), "")
	require.NoError(t, err)
	assert.NotNil(t, res.ScanId)
}

func TestWineService_ListScans(t *testing.T) {
	f := newWineServiceFixture(&fakeIdentifier{})
	me, other := uuid.New(), uuid.New()
	result := entity.WineResult{Name: "Opus One", Rating: "5/5"}
	f.factory.scanLogs.logs = []*entity.ScanLog{
		{Id: uuid.New(), UserId: &me, WineName: "Opus One", Outcome: entity.ScanOutcomeIdentified, Result: &result},
		{Id: uuid.New(), UserId: &other, WineName: "Caymus", Outcome: entity.ScanOutcomeIdentified},
	}

	res, err := f.svc.ListScans(context.Background(), &session.Session{UserID: me}, &dto.ListScansRequest{})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Opus One", res[0].WineName)
	require.NotNil(t, res[0].Result)
	assert.Equal(t, "5/5", res[0].Result.Rating)

	_, err = f.svc.ListScans(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNoSession)
}
