package memory

import (
	"time"

	"wine-club-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ScanStore holds the per-user in-flight guard and recently identified results.
type ScanStore struct {
	inFlight *cache.Cache
	results  *cache.Cache
}

// NewScanStore keeps results for resultTTL. guardTTL bounds how long a crashed scan can block a user.
func NewScanStore(resultTTL, guardTTL time.Duration) *ScanStore {
	return &ScanStore{
		inFlight: cache.New(guardTTL, time.Minute),
		results:  cache.New(resultTTL, 10*time.Minute),
	}
}

// BeginScan reports false when the user already has a scan running.
func (s *ScanStore) BeginScan(userId uuid.UUID) bool {
	return s.inFlight.Add(userId.String(), struct{}{}, cache.DefaultExpiration) == nil
}

func (s *ScanStore) EndScan(userId uuid.UUID) {
	s.inFlight.Delete(userId.String())
}

func (s *ScanStore) SaveResult(userId, scanId uuid.UUID, result entity.WineResult) {
	s.results.Set(resultKey(userId, scanId), result, cache.DefaultExpiration)
}

// GetResult only returns results saved for the same user.
func (s *ScanStore) GetResult(userId, scanId uuid.UUID) (entity.WineResult, bool) {
	if x, found := s.results.Get(resultKey(userId, scanId)); found {
		return x.(entity.WineResult), true
	}
	return entity.WineResult{}, false
}

func (s *ScanStore) DeleteResult(userId, scanId uuid.UUID) {
	s.results.Delete(resultKey(userId, scanId))
}

func resultKey(userId, scanId uuid.UUID) string {
	return userId.String() + ":" + scanId.String()
}
