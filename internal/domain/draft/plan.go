package draft

import (
	"fmt"
	"maps"
	"slices"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
)

// SetRoundTarget notes the round the user hopes to take a player in.
func (e *Engine) SetRoundTarget(playerID string, round int) error {
	if _, ok := e.pool.Get(playerID); !ok {
		return fmt.Errorf("%w: id=%s", ErrNotFound, playerID)
	}
	if round < 1 || round > e.settings.NumRounds {
		return fmt.Errorf("%w: round=%d", ErrInvalidRound, round)
	}
	e.plan[playerID] = round
	return nil
}

func (e *Engine) ClearRoundTarget(playerID string) {
	delete(e.plan, playerID)
}

func (e *Engine) RoundPlan() map[string]int {
	return maps.Clone(e.plan)
}

// PlannedForRound lists still-available players targeted for a round,
// ordered by ADP.
func (e *Engine) PlannedForRound(round int) []*player.Player {
	out := make([]*player.Player, 0)
	for _, p := range e.pool.Available() {
		if e.plan[p.ID] == round {
			out = append(out, p)
		}
	}
	return slices.Clip(out)
}
