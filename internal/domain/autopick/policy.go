package autopick

import (
	"errors"
	"math/rand"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
)

var ErrNoPlayersAvailable = errors.New("no players available")

// Pool is the read side of the player pool the policy ranks from.
type Pool interface {
	Available() []*player.Player
}

// Rosters answers what a team still needs and may still draft.
type Rosters interface {
	TeamNeeds(teamID, pick int) []player.Position
	CanDraft(teamID int, pos player.Position) bool
}

// Policy picks players for computer-controlled teams.
type Policy struct {
	cfg Config
	rng *rand.Rand
}

func NewPolicy(cfg Config, rng *rand.Rand) *Policy {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Policy{cfg: cfg, rng: rng}
}

func (p *Policy) Config() Config {
	return p.cfg
}

// WithConfig returns a policy with a new config drawing from the same rng.
func (p *Policy) WithConfig(cfg Config) *Policy {
	return &Policy{cfg: cfg, rng: p.rng}
}

// SelectPick chooses a player for teamID at overall pick number pick.
func (p *Policy) SelectPick(pool Pool, rosters Rosters, teamID, pick int) (*player.Player, error) {
	eligible := p.eligible(pool.Available(), rosters, teamID)
	if len(eligible) == 0 {
		return nil, ErrNoPlayersAvailable
	}

	for _, pin := range p.cfg.Pins {
		if pick > pin.ThroughPick {
			continue
		}
		key := nameKey(pin.Name)
		for _, candidate := range eligible {
			if nameKey(candidate.Name) == key {
				return candidate, nil
			}
		}
	}

	if pick <= p.cfg.BestAvailableThrough {
		return eligible[0], nil
	}

	var candidates []*player.Player
	if pick <= p.cfg.NeedsIgnoredAfter {
		for _, need := range rosters.TeamNeeds(teamID, pick) {
			taken := 0
			for _, candidate := range eligible {
				if taken >= p.cfg.NeedDepth {
					break
				}
				if candidate.Position == need {
					candidates = append(candidates, candidate)
					taken++
				}
			}
		}
	}
	if len(candidates) == 0 {
		candidates = eligible[:min(p.cfg.FallbackDepth, len(eligible))]
	}

	return p.choose(candidates), nil
}

func (p *Policy) choose(candidates []*player.Player) *player.Player {
	if p.rng.Float64() < p.cfg.TopChoiceProbability {
		return candidates[0]
	}
	width := min(p.cfg.RandomWidth, len(candidates))
	if width < 1 {
		return candidates[0]
	}
	return candidates[p.rng.Intn(width)]
}

func (p *Policy) eligible(available []*player.Player, rosters Rosters, teamID int) []*player.Player {
	excluded := p.cfg.Exclusions[teamID]
	out := make([]*player.Player, 0, len(available))
	for _, candidate := range available {
		if !rosters.CanDraft(teamID, candidate.Position) {
			continue
		}
		if _, skip := excluded[nameKey(candidate.Name)]; skip {
			continue
		}
		out = append(out, candidate)
	}
	return out
}
