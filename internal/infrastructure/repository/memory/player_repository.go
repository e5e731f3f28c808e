package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	index   map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}

	return &PlayerRepository{
		players: slices.Clone(players),
		index:   index,
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.players), nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.index[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

// Replace swaps the catalogue, used when a players file is reloaded.
func (r *PlayerRepository) Replace(players []player.Player) {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}

	r.mu.Lock()
	r.players = slices.Clone(players)
	r.index = index
	r.mu.Unlock()
}

type CustomADPRepository struct {
	mu    sync.RWMutex
	items map[string]float64
}

func NewCustomADPRepository() *CustomADPRepository {
	return &CustomADPRepository{items: make(map[string]float64)}
}

func (r *CustomADPRepository) List(_ context.Context) (map[string]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]float64, len(r.items))
	for id, adp := range r.items {
		out[id] = adp
	}
	return out, nil
}

func (r *CustomADPRepository) Upsert(_ context.Context, playerID string, adp float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[playerID] = adp
	return nil
}

func (r *CustomADPRepository) Delete(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, playerID)
	return nil
}

func (r *CustomADPRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.items)
	return nil
}
