package player

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

var (
	ErrNotFound        = errors.New("player not found")
	ErrDuplicatePlayer = errors.New("duplicate player id")
	ErrInvalidPlayer   = errors.New("invalid player")
)

const defaultReplacementRank = 30

// DefaultReplacementRanks is the positional depth treated as replacement level.
func DefaultReplacementRanks() map[Position]int {
	return map[Position]int{
		PositionQuarterback:   10,
		PositionRunningBack:   30,
		PositionWideReceiver:  30,
		PositionTightEnd:      10,
		PositionLinebacker:    30,
		PositionDefensiveBack: 30,
	}
}

type PoolConfig struct {
	NumTeams         int
	ReplacementRanks map[Position]int
}

// Pool owns every Player record of a draft and the available/drafted split.
// It is not safe for concurrent use.
type Pool struct {
	numTeams     int
	ranks        map[Position]int
	players      []*Player
	byID         map[string]*Player
	available    []*Player
	overrides    map[string]float64
	useOverrides bool
}

func NewPool(cfg PoolConfig) *Pool {
	ranks := cfg.ReplacementRanks
	if len(ranks) == 0 {
		ranks = DefaultReplacementRanks()
	}
	numTeams := cfg.NumTeams
	if numTeams < 1 {
		numTeams = 1
	}

	return &Pool{
		numTeams:  numTeams,
		ranks:     maps.Clone(ranks),
		byID:      make(map[string]*Player),
		overrides: make(map[string]float64),
	}
}

// Load replaces the master list; every player becomes available.
func (p *Pool) Load(players []Player) error {
	loaded := make([]*Player, 0, len(players))
	byID := make(map[string]*Player, len(players))
	for i, raw := range players {
		if err := raw.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPlayer, err)
		}
		item := normalize(raw, i, p.numTeams)
		if _, exists := byID[item.ID]; exists {
			return fmt.Errorf("%w: id=%s", ErrDuplicatePlayer, item.ID)
		}
		byID[item.ID] = item
		loaded = append(loaded, item)
	}

	p.players = loaded
	p.byID = byID
	p.applyADP()
	p.available = slices.Clone(p.players)
	p.sortAvailable()

	return nil
}

func (p *Pool) Get(playerID string) (*Player, bool) {
	item, ok := p.byID[playerID]
	return item, ok
}

func (p *Pool) Len() int {
	return len(p.players)
}

// All returns every player ordered by effective ADP.
func (p *Pool) All() []*Player {
	out := slices.Clone(p.players)
	slices.SortFunc(out, compareByADP)
	return out
}

// Available returns undrafted players ordered by effective ADP.
func (p *Pool) Available() []*Player {
	return slices.Clone(p.available)
}

// Drafted returns drafted players in pick order.
func (p *Pool) Drafted() []*Player {
	out := make([]*Player, 0, len(p.players)-len(p.available))
	for _, item := range p.players {
		if item.drafted {
			out = append(out, item)
		}
	}
	slices.SortFunc(out, func(a, b *Player) int {
		return cmp.Compare(a.draftedAt, b.draftedAt)
	})
	return out
}

func (p *Pool) MarkDrafted(playerID string, teamID, pick int) error {
	item, ok := p.byID[playerID]
	if !ok {
		return fmt.Errorf("%w: id=%s", ErrNotFound, playerID)
	}
	if item.drafted {
		return fmt.Errorf("%w: id=%s is not available", ErrNotFound, playerID)
	}

	idx := slices.Index(p.available, item)
	if idx < 0 {
		return fmt.Errorf("%w: id=%s is not in the available list", ErrNotFound, playerID)
	}
	p.available = slices.Delete(p.available, idx, idx+1)

	item.drafted = true
	item.draftedBy = teamID
	item.draftedAt = pick

	return nil
}

func (p *Pool) MarkAvailable(playerID string) error {
	item, ok := p.byID[playerID]
	if !ok {
		return fmt.Errorf("%w: id=%s", ErrNotFound, playerID)
	}
	if !item.drafted {
		return fmt.Errorf("%w: id=%s is not drafted", ErrNotFound, playerID)
	}

	item.drafted = false
	item.draftedBy = NoTeam
	item.draftedAt = 0

	pos, _ := slices.BinarySearchFunc(p.available, item, compareByADP)
	p.available = slices.Insert(p.available, pos, item)

	return nil
}

// Reset returns every player to the available list.
func (p *Pool) Reset() {
	for _, item := range p.players {
		item.drafted = false
		item.draftedBy = NoTeam
		item.draftedAt = 0
	}
	p.available = slices.Clone(p.players)
	p.sortAvailable()
}

// ReapplyCustomADP replaces the override map and recomputes effective values.
func (p *Pool) ReapplyCustomADP(overrides map[string]float64) {
	p.overrides = make(map[string]float64, len(overrides))
	for id, adp := range overrides {
		if adp > 0 {
			p.overrides[id] = adp
		}
	}
	p.recompute()
}

// SetADPMode switches between original ADP and the override map.
func (p *Pool) SetADPMode(useOverrides bool) {
	p.useOverrides = useOverrides
	p.recompute()
}

func (p *Pool) UsingCustomADP() bool {
	return p.useOverrides
}

func (p *Pool) CustomADP() map[string]float64 {
	return maps.Clone(p.overrides)
}

func (p *Pool) recompute() {
	p.applyADP()
	p.sortAvailable()
}

func (p *Pool) applyADP() {
	for _, item := range p.players {
		item.ADP = item.OriginalADP
		if p.useOverrides {
			if adp, ok := p.overrides[item.ID]; ok {
				item.ADP = adp
			}
		}
		item.refreshDerived(p.numTeams)
	}
	p.computeVAR()
}

func (p *Pool) sortAvailable() {
	slices.SortFunc(p.available, compareByADP)
}

func (p *Pool) computeVAR() {
	groups := make(map[Position][]*Player)
	for _, item := range p.players {
		groups[item.Position] = append(groups[item.Position], item)
	}

	for pos, group := range groups {
		slices.SortStableFunc(group, func(a, b *Player) int {
			return cmp.Compare(b.ProjectedPoints, a.ProjectedPoints)
		})

		rank, ok := p.ranks[pos]
		if !ok {
			rank = defaultReplacementRank
		}
		if rank < 1 || len(group) < rank {
			for _, item := range group {
				item.VAR = 0
			}
			continue
		}

		replacement := group[rank-1].ProjectedPoints
		for _, item := range group {
			item.VAR = int(math.Round(item.ProjectedPoints - replacement))
		}
	}
}

func compareByADP(a, b *Player) int {
	if c := cmp.Compare(a.ADP, b.ADP); c != 0 {
		return c
	}
	return cmp.Compare(a.order, b.order)
}
