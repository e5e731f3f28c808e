package cache

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
	basecache "github.com/riskibarqy/mock-draft/internal/platform/cache"
)

const (
	playerListKey    = "player:list"
	playerIDsPrefix  = "player:ids:"
	customADPListKey = "custom_adp:list"
)

// PlayerRepository caches the player catalogue. Every session creation loads
// the full list, so the hot path never reaches the backing store while the
// entry is fresh.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, playerListKey, func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return slices.Clone(items), nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	sorted := slices.Clone(playerIDs)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	key := playerIDsPrefix + strings.Join(sorted, ",")

	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.GetByIDs(ctx, sorted)
		if err != nil {
			return nil, err
		}
		return slices.Clone(items), nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

// CustomADPRepository caches the override map and drops it on every write.
type CustomADPRepository struct {
	next  player.CustomADPRepository
	cache *basecache.Store
}

func NewCustomADPRepository(next player.CustomADPRepository, cache *basecache.Store) *CustomADPRepository {
	return &CustomADPRepository{next: next, cache: cache}
}

func (r *CustomADPRepository) List(ctx context.Context) (map[string]float64, error) {
	items, err := basecache.Load(ctx, r.cache, customADPListKey, func(ctx context.Context) (map[string]float64, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return maps.Clone(items), nil
	})
	if err != nil {
		return nil, err
	}
	return maps.Clone(items), nil
}

func (r *CustomADPRepository) Upsert(ctx context.Context, playerID string, adp float64) error {
	defer r.cache.Delete(ctx, customADPListKey)
	return r.next.Upsert(ctx, playerID, adp)
}

func (r *CustomADPRepository) Delete(ctx context.Context, playerID string) error {
	defer r.cache.Delete(ctx, customADPListKey)
	return r.next.Delete(ctx, playerID)
}

func (r *CustomADPRepository) Clear(ctx context.Context) error {
	defer r.cache.Delete(ctx, customADPListKey)
	return r.next.Clear(ctx)
}
