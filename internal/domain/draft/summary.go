package draft

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
)

// valueThreshold is the ADP gap that counts as a value pick or a reach.
const valueThreshold = 5.0

// PickValue compares where a player went with their ADP. Positive Delta
// means the player fell past ADP.
type PickValue struct {
	Entry HistoryEntry
	Delta float64
}

type TeamSummary struct {
	TeamID         int
	Name           string
	Picks          []HistoryEntry
	PositionCounts map[player.Position]int
	AverageADP     float64
}

type Summary struct {
	PicksMade      int
	ValuePicks     []PickValue
	Reaches        []PickValue
	PositionCounts map[player.Position]int
	UserTeam       *TeamSummary
}

func (e *Engine) Summary() Summary {
	s := Summary{
		PicksMade:      len(e.history),
		PositionCounts: make(map[player.Position]int),
	}

	for _, entry := range e.history {
		s.PositionCounts[entry.Player.Position]++

		delta := float64(entry.Pick) - entry.Player.ADP
		switch {
		case delta >= valueThreshold:
			s.ValuePicks = append(s.ValuePicks, PickValue{Entry: entry, Delta: delta})
		case delta <= -valueThreshold:
			s.Reaches = append(s.Reaches, PickValue{Entry: entry, Delta: delta})
		}
	}

	slices.SortStableFunc(s.ValuePicks, func(a, b PickValue) int { return cmp.Compare(b.Delta, a.Delta) })
	slices.SortStableFunc(s.Reaches, func(a, b PickValue) int { return cmp.Compare(a.Delta, b.Delta) })

	if e.userTeam != player.NoTeam {
		team := e.TeamSummary(e.userTeam)
		s.UserTeam = &team
	}
	return s
}

func (e *Engine) TeamSummary(teamID int) TeamSummary {
	out := TeamSummary{
		TeamID:         teamID,
		Name:           e.rosters.Name(teamID),
		PositionCounts: make(map[player.Position]int),
	}

	var adpTotal float64
	for _, entry := range e.history {
		if entry.TeamID != teamID {
			continue
		}
		out.Picks = append(out.Picks, entry)
		out.PositionCounts[entry.Player.Position]++
		adpTotal += entry.Player.ADP
	}
	if len(out.Picks) > 0 {
		out.AverageADP = adpTotal / float64(len(out.Picks))
	}
	return out
}
