package service

import (
	"context"
	"fmt"
	"strings"

	"wine-club-be/internal/dto"
	"wine-club-be/internal/entity"
	"wine-club-be/internal/pkg/logger"
	"wine-club-be/internal/repository/cache"
	"wine-club-be/internal/repository/memory"
	"wine-club-be/internal/repository/specification"
	"wine-club-be/internal/repository/unitofwork"
	"wine-club-be/pkg/events"
	"wine-club-be/pkg/session"

	"github.com/google/uuid"
)

const collectionModule = "COLLECTION"

type ICollectionService interface {
	List(ctx context.Context, s *session.Session) ([]*dto.CollectionEntryResponse, error)
	Add(ctx context.Context, s *session.Session, req *dto.AddCollectionRequest) (*dto.CollectionMutationResponse, error)
	AddFromScan(ctx context.Context, s *session.Session, scanId uuid.UUID) (*dto.CollectionMutationResponse, error)
	Remove(ctx context.Context, s *session.Session, id uuid.UUID) (*dto.CollectionMutationResponse, error)
}

type collectionService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      cache.CollectionCache
	scans      *memory.ScanStore
	events     events.Publisher
	log        logger.ILogger
}

func NewCollectionService(
	uowFactory unitofwork.RepositoryFactory,
	collectionCache cache.CollectionCache,
	scans *memory.ScanStore,
	eventPublisher events.Publisher,
	log logger.ILogger,
) ICollectionService {
	return &collectionService{
		uowFactory: uowFactory,
		cache:      collectionCache,
		scans:      scans,
		events:     eventPublisher,
		log:        log,
	}
}

func (c *collectionService) List(ctx context.Context, s *session.Session) ([]*dto.CollectionEntryResponse, error) {
	if s == nil {
		return nil, ErrNoSession
	}

	entries, err := c.load(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	return toCollectionResponses(entries), nil
}

func (c *collectionService) Add(ctx context.Context, s *session.Session, req *dto.AddCollectionRequest) (*dto.CollectionMutationResponse, error) {
	if s == nil {
		return nil, ErrNoSession
	}
	if req.Failed {
		return nil, ErrUnidentifiedWine
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrBlankWineName
	}

	entry := &entity.CollectionEntry{
		UserId:   s.UserID,
		WineName: name,
		Varietal: req.Varietal,
		Region:   req.Region,
		Vintage:  req.Vintage,
		Rating:   optionalText(req.Rating),
		Notes:    optionalText(req.Notes),
	}
	if fp := req.FlavorProfile; fp != nil {
		entry.Potency = &fp.Potency
		entry.Acidity = &fp.Acidity
		entry.Sweetness = &fp.Sweetness
		entry.Tannins = &fp.Tannins
		entry.Fruitiness = &fp.Fruitiness
	}

	return c.create(ctx, s, entry)
}

func (c *collectionService) AddFromScan(ctx context.Context, s *session.Session, scanId uuid.UUID) (*dto.CollectionMutationResponse, error) {
	if s == nil {
		return nil, ErrNoSession
	}

	result, ok := c.scans.GetResult(s.UserID, scanId)
	if !ok {
		return nil, ErrScanNotFound
	}
	if result.Failed {
		return nil, ErrUnidentifiedWine
	}

	fp := result.FlavorProfile
	entry := &entity.CollectionEntry{
		UserId:     s.UserID,
		WineName:   result.Name,
		Varietal:   result.Varietal,
		Region:     result.Region,
		Vintage:    result.Vintage,
		Rating:     optionalText(result.Rating),
		Notes:      optionalText(result.Notes),
		Potency:    &fp.Potency,
		Acidity:    &fp.Acidity,
		Sweetness:  &fp.Sweetness,
		Tannins:    &fp.Tannins,
		Fruitiness: &fp.Fruitiness,
	}

	res, err := c.create(ctx, s, entry)
	if err != nil {
		return nil, err
	}
	c.scans.DeleteResult(s.UserID, scanId)
	return res, nil
}

func (c *collectionService) create(ctx context.Context, s *session.Session, entry *entity.CollectionEntry) (*dto.CollectionMutationResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CollectionRepository().Create(ctx, entry); err != nil {
		c.log.Error(collectionModule, "Failed to add collection entry", map[string]interface{}{
			"user_id":   s.UserID.String(),
			"wine_name": entry.WineName,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}

	c.log.Info(collectionModule, "Collection entry added", map[string]interface{}{
		"user_id":  s.UserID.String(),
		"entry_id": entry.Id.String(),
	})
	c.afterMutation(ctx, s.UserID, events.New(events.TypeCollectionEntryAdded, map[string]interface{}{
		"user_id":   s.UserID.String(),
		"entry_id":  entry.Id.String(),
		"wine_name": entry.WineName,
	}))

	added := toCollectionResponse(entry)
	return &dto.CollectionMutationResponse{
		Entry:      added,
		Collection: c.refreshed(ctx, s.UserID),
	}, nil
}

// Remove only deletes entries owned by the caller. An id owned by someone else reads as not found.
func (c *collectionService) Remove(ctx context.Context, s *session.Session, id uuid.UUID) (*dto.CollectionMutationResponse, error) {
	if s == nil {
		return nil, ErrNoSession
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	removed, err := uow.CollectionRepository().Delete(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: s.UserID},
	)
	if err != nil {
		c.log.Error(collectionModule, "Failed to remove collection entry", map[string]interface{}{
			"user_id":  s.UserID.String(),
			"entry_id": id.String(),
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if removed == 0 {
		return nil, ErrCollectionEntryNotFound
	}

	c.log.Info(collectionModule, "Collection entry removed", map[string]interface{}{
		"user_id":  s.UserID.String(),
		"entry_id": id.String(),
	})
	c.afterMutation(ctx, s.UserID, events.New(events.TypeCollectionEntryRemoved, map[string]interface{}{
		"user_id":  s.UserID.String(),
		"entry_id": id.String(),
	}))

	return &dto.CollectionMutationResponse{
		Collection: c.refreshed(ctx, s.UserID),
	}, nil
}

func (c *collectionService) load(ctx context.Context, userId uuid.UUID) ([]*entity.CollectionEntry, error) {
	entries, hit, err := c.cache.Get(ctx, userId)
	if err != nil {
		c.log.Warn(collectionModule, "Collection cache read failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
	if hit {
		return entries, nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	entries, err = uow.CollectionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NewestAddedFirst{},
	)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, userId, entries); err != nil {
		c.log.Warn(collectionModule, "Collection cache write failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
	return entries, nil
}

func (c *collectionService) afterMutation(ctx context.Context, userId uuid.UUID, event events.Event) {
	if err := c.cache.Invalidate(ctx, userId); err != nil {
		c.log.Warn(collectionModule, "Collection cache invalidation failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
	if err := c.events.Publish(ctx, event); err != nil {
		c.log.Warn(collectionModule, "Failed to publish collection event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}

// refreshed reloads the whole list. The mutation already committed, so a read failure is only logged.
func (c *collectionService) refreshed(ctx context.Context, userId uuid.UUID) []*dto.CollectionEntryResponse {
	entries, err := c.load(ctx, userId)
	if err != nil {
		c.log.Warn(collectionModule, "Failed to reload collection after mutation", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil
	}
	return toCollectionResponses(entries)
}

func toCollectionResponse(e *entity.CollectionEntry) *dto.CollectionEntryResponse {
	return &dto.CollectionEntryResponse{
		Id:            e.Id,
		WineName:      e.WineName,
		Varietal:      e.Varietal,
		Region:        e.Region,
		Vintage:       e.Vintage,
		Rating:        e.Rating,
		Notes:         e.Notes,
		FlavorProfile: toFlavorProfileResponse(e.FlavorProfile()),
		DateAdded:     e.DateAdded,
	}
}

func toCollectionResponses(entries []*entity.CollectionEntry) []*dto.CollectionEntryResponse {
	res := make([]*dto.CollectionEntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, toCollectionResponse(e))
	}
	return res
}

func optionalText(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
