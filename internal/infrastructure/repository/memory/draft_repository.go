package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/trade"
)

type DraftRepository struct {
	mu    sync.RWMutex
	items map[string]draft.SavedDraft
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{items: make(map[string]draft.SavedDraft)}
}

func (r *DraftRepository) Save(_ context.Context, saved draft.SavedDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[saved.ID] = cloneSavedDraft(saved)
	return nil
}

func (r *DraftRepository) Get(_ context.Context, id string) (draft.SavedDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return draft.SavedDraft{}, fmt.Errorf("%w: id=%s", draft.ErrSavedDraftNotFound, id)
	}
	return cloneSavedDraft(item), nil
}

// List returns saved drafts newest first.
func (r *DraftRepository) List(_ context.Context) ([]draft.SavedDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]draft.SavedDraft, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, cloneSavedDraft(item))
	}
	slices.SortFunc(out, func(a, b draft.SavedDraft) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *DraftRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: id=%s", draft.ErrSavedDraftNotFound, id)
	}
	delete(r.items, id)
	return nil
}

func cloneSavedDraft(item draft.SavedDraft) draft.SavedDraft {
	copied := item
	copied.Snapshot = cloneSnapshot(item.Snapshot)
	return copied
}

func cloneSnapshot(s draft.Snapshot) draft.Snapshot {
	copied := s
	copied.DraftHistory = slices.Clone(s.DraftHistory)
	copied.Trades = cloneTrades(s.Trades)
	copied.RoundPlan = maps.Clone(s.RoundPlan)
	if s.Teams != nil {
		copied.Teams = make(map[string]draft.SnapshotTeam, len(s.Teams))
		for key, team := range s.Teams {
			team.PlayerIDs = slices.Clone(team.PlayerIDs)
			copied.Teams[key] = team
		}
	}
	return copied
}

func cloneTrades(items []trade.Trade) []trade.Trade {
	if items == nil {
		return nil
	}
	out := make([]trade.Trade, 0, len(items))
	for _, t := range items {
		t.RoundsA = slices.Clone(t.RoundsA)
		t.RoundsB = slices.Clone(t.RoundsB)
		out = append(out, t)
	}
	return out
}

type PresetRepository struct {
	mu    sync.RWMutex
	items []draft.Preset
}

func NewPresetRepository(presets []draft.Preset) *PresetRepository {
	r := &PresetRepository{}
	for _, p := range presets {
		r.items = append(r.items, clonePreset(p))
	}
	return r
}

func (r *PresetRepository) List(_ context.Context) ([]draft.Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]draft.Preset, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, clonePreset(p))
	}
	return out, nil
}

// Get matches preset names case-insensitively.
func (r *PresetRepository) Get(_ context.Context, name string) (draft.Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return clonePreset(p), nil
		}
	}
	return draft.Preset{}, fmt.Errorf("%w: name=%s", draft.ErrPresetNotFound, name)
}

func clonePreset(p draft.Preset) draft.Preset {
	copied := p
	copied.TeamNames = slices.Clone(p.TeamNames)
	copied.Trades = cloneTrades(p.Trades)
	if p.UserTeam != nil {
		user := *p.UserTeam
		copied.UserTeam = &user
	}
	if p.Exclusions != nil {
		copied.Exclusions = make(map[int][]string, len(p.Exclusions))
		for teamID, names := range p.Exclusions {
			copied.Exclusions[teamID] = slices.Clone(names)
		}
	}
	return copied
}
