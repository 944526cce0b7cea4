package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wine-club-be/internal/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CollectionCache stores a user's full collection list. It is dropped on every mutation, never patched.
type CollectionCache interface {
	Get(ctx context.Context, userId uuid.UUID) ([]*entity.CollectionEntry, bool, error)
	Set(ctx context.Context, userId uuid.UUID, entries []*entity.CollectionEntry) error
	Invalidate(ctx context.Context, userId uuid.UUID) error
}

type redisCollectionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCollectionCache(rdb *redis.Client, ttl time.Duration) CollectionCache {
	return &redisCollectionCache{rdb: rdb, ttl: ttl}
}

type cachedEntry struct {
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"user_id"`
	WineName   string    `json:"wine_name"`
	Varietal   string    `json:"varietal"`
	Region     string    `json:"region"`
	Vintage    string    `json:"vintage"`
	Rating     *string   `json:"rating,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	Potency    *int      `json:"potency,omitempty"`
	Acidity    *int      `json:"acidity,omitempty"`
	Sweetness  *int      `json:"sweetness,omitempty"`
	Tannins    *int      `json:"tannins,omitempty"`
	Fruitiness *int      `json:"fruitiness,omitempty"`
	DateAdded  time.Time `json:"date_added"`
}

func collectionKey(userId uuid.UUID) string {
	return fmt.Sprintf("wine:collection:%s", userId)
}

func (c *redisCollectionCache) Get(ctx context.Context, userId uuid.UUID) ([]*entity.CollectionEntry, bool, error) {
	raw, err := c.rdb.Get(ctx, collectionKey(userId)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var cached []cachedEntry
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, err
	}

	entries := make([]*entity.CollectionEntry, len(cached))
	for i, e := range cached {
		entries[i] = &entity.CollectionEntry{
			Id:         e.Id,
			UserId:     e.UserId,
			WineName:   e.WineName,
			Varietal:   e.Varietal,
			Region:     e.Region,
			Vintage:    e.Vintage,
			Rating:     e.Rating,
			Notes:      e.Notes,
			Potency:    e.Potency,
			Acidity:    e.Acidity,
			Sweetness:  e.Sweetness,
			Tannins:    e.Tannins,
			Fruitiness: e.Fruitiness,
			DateAdded:  e.DateAdded,
		}
	}
	return entries, true, nil
}

func (c *redisCollectionCache) Set(ctx context.Context, userId uuid.UUID, entries []*entity.CollectionEntry) error {
	cached := make([]cachedEntry, len(entries))
	for i, e := range entries {
		cached[i] = cachedEntry{
			Id:         e.Id,
			UserId:     e.UserId,
			WineName:   e.WineName,
			Varietal:   e.Varietal,
			Region:     e.Region,
			Vintage:    e.Vintage,
			Rating:     e.Rating,
			Notes:      e.Notes,
			Potency:    e.Potency,
			Acidity:    e.Acidity,
			Sweetness:  e.Sweetness,
			Tannins:    e.Tannins,
			Fruitiness: e.Fruitiness,
			DateAdded:  e.DateAdded,
		}
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, collectionKey(userId), raw, c.ttl).Err()
}

func (c *redisCollectionCache) Invalidate(ctx context.Context, userId uuid.UUID) error {
	return c.rdb.Del(ctx, collectionKey(userId)).Err()
}

type noopCollectionCache struct{}

// NewNoopCollectionCache always misses. Used when Redis is unreachable.
func NewNoopCollectionCache() CollectionCache {
	return noopCollectionCache{}
}

func (noopCollectionCache) Get(context.Context, uuid.UUID) ([]*entity.CollectionEntry, bool, error) {
	return nil, false, nil
}

func (noopCollectionCache) Set(context.Context, uuid.UUID, []*entity.CollectionEntry) error {
	return nil
}

func (noopCollectionCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
