package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"wine-club-be/internal/dto"
	"wine-club-be/internal/entity"
	"wine-club-be/internal/repository/contract"
	"wine-club-be/internal/repository/specification"
	"wine-club-be/internal/repository/unitofwork"
	"wine-club-be/pkg/events"
	"wine-club-be/pkg/wine"

	"github.com/google/uuid"
)

// --- unit of work ---

type fakeFactory struct {
	collections *fakeCollectionRepo
	scanLogs    *fakeScanLogRepo
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		collections: &fakeCollectionRepo{},
		scanLogs:    &fakeScanLogRepo{},
	}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUoW{f: f}
}

type fakeUoW struct {
	f *fakeFactory
}

func (u *fakeUoW) Begin(ctx context.Context) error { return nil }
func (u *fakeUoW) Commit() error                   { return nil }
func (u *fakeUoW) Rollback() error                 { return nil }

func (u *fakeUoW) CollectionRepository() contract.CollectionRepository   { return u.f.collections }
func (u *fakeUoW) CuratedNoteRepository() contract.CuratedNoteRepository { return nil }
func (u *fakeUoW) ScanLogRepository() contract.ScanLogRepository         { return u.f.scanLogs }

// --- collection repository ---

type fakeCollectionRepo struct {
	mu        sync.Mutex
	entries   []*entity.CollectionEntry
	createErr error
	deleteErr error
	findCalls int
	clock     time.Time
}

// matches understands the specifications the services use.
func matches(e *entity.CollectionEntry, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			if e.Id != spec.ID {
				return false
			}
		case specification.UserOwnedBy:
			if e.UserId != spec.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeCollectionRepo) Create(ctx context.Context, entry *entity.CollectionEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if r.clock.IsZero() {
		r.clock = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	r.clock = r.clock.Add(time.Minute)
	if entry.Id == uuid.Nil {
		entry.Id = uuid.New()
	}
	entry.DateAdded = r.clock
	copied := *entry
	r.entries = append(r.entries, &copied)
	return nil
}

func (r *fakeCollectionRepo) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	kept := r.entries[:0]
	var removed int64
	for _, e := range r.entries {
		if matches(e, specs) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return removed, nil
}

func (r *fakeCollectionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollectionEntry, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeCollectionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollectionEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	out := make([]*entity.CollectionEntry, 0)
	for _, e := range r.entries {
		if matches(e, specs) {
			copied := *e
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateAdded.After(out[j].DateAdded) })
	return out, nil
}

func (r *fakeCollectionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

// --- scan log repository ---

type fakeScanLogRepo struct {
	mu        sync.Mutex
	logs      []*entity.ScanLog
	err       error
	failFirst int
	creates   int
}

func (r *fakeScanLogRepo) Create(ctx context.Context, log *entity.ScanLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.err != nil {
		return r.err
	}
	if r.creates <= r.failFirst {
		return errors.New("connection reset")
	}
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeScanLogRepo) createCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.creates
}

func (r *fakeScanLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScanLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var userID *uuid.UUID
	for _, s := range specs {
		if spec, ok := s.(specification.UserOwnedBy); ok {
			id := spec.UserID
			userID = &id
		}
	}
	out := make([]*entity.ScanLog, 0)
	for _, l := range r.logs {
		if userID == nil || (l.UserId != nil && *l.UserId == *userID) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeScanLogRepo) snapshot() []*entity.ScanLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.ScanLog(nil), r.logs...)
}

// --- cache ---

type fakeCollectionCache struct {
	mu          sync.Mutex
	lists       map[uuid.UUID][]*entity.CollectionEntry
	invalidated int
	getErr      error
}

func newFakeCollectionCache() *fakeCollectionCache {
	return &fakeCollectionCache{lists: make(map[uuid.UUID][]*entity.CollectionEntry)}
}

func (c *fakeCollectionCache) Get(ctx context.Context, userId uuid.UUID) ([]*entity.CollectionEntry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	list, ok := c.lists[userId]
	return list, ok, nil
}

func (c *fakeCollectionCache) Set(ctx context.Context, userId uuid.UUID, entries []*entity.CollectionEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[userId] = entries
	return nil
}

func (c *fakeCollectionCache) Invalidate(ctx context.Context, userId uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	delete(c.lists, userId)
	return nil
}

// --- events ---

type fakeEvents struct {
	mu        sync.Mutex
	published []events.Event
	err       error
}

func (f *fakeEvents) Publish(ctx context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, event)
	return f.err
}

func (f *fakeEvents) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.published))
	for i, e := range f.published {
		out[i] = e.EventType()
	}
	return out
}

// --- identification ---

type fakeIdentifier struct {
	ident   *wine.Identification
	err     error
	started chan struct{}
	release chan struct{}
	calls   int
}

func (f *fakeIdentifier) Identify(ctx context.Context, payload []byte, declaredMime string) (*wine.Identification, error) {
	f.calls++
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.ident, f.err
}

type fakeScanPublisher struct {
	mu   sync.Mutex
	msgs []dto.ScanEventMessage
	err  error
}

func (f *fakeScanPublisher) PublishScan(ctx context.Context, msg dto.ScanEventMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	return f.err
}

var errStoreDown = errors.New("store down")
