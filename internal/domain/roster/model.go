package roster

import (
	"github.com/riskibarqy/mock-draft/internal/domain/player"
)

// Limits caps how many players of a position one team may roster.
type Limits struct {
	PerPosition map[player.Position]int
	Default     int
}

func DefaultLimits() Limits {
	return Limits{
		PerPosition: map[player.Position]int{
			player.PositionQuarterback:   4,
			player.PositionRunningBack:   9,
			player.PositionWideReceiver:  9,
			player.PositionTightEnd:      3,
			player.PositionLinebacker:    4,
			player.PositionDefensiveBack: 4,
		},
		Default: 10,
	}
}

func (l Limits) For(pos player.Position) int {
	if limit, ok := l.PerPosition[pos]; ok {
		return limit
	}
	return l.Default
}

// NeedRule marks a position as needed while the team holds fewer than Below
// players of it and the current pick is past AfterPick.
type NeedRule struct {
	Position  player.Position
	Below     int
	AfterPick int
}

func DefaultNeeds() []NeedRule {
	return []NeedRule{
		{Position: player.PositionQuarterback, Below: 1},
		{Position: player.PositionRunningBack, Below: 2},
		{Position: player.PositionWideReceiver, Below: 2},
		{Position: player.PositionTightEnd, Below: 1},
		{Position: player.PositionQuarterback, Below: 2, AfterPick: 50},
		{Position: player.PositionRunningBack, Below: 4, AfterPick: 30},
		{Position: player.PositionWideReceiver, Below: 4, AfterPick: 30},
		{Position: player.PositionTightEnd, Below: 2, AfterPick: 80},
		{Position: player.PositionLinebacker, Below: 2, AfterPick: 90},
		{Position: player.PositionDefensiveBack, Below: 2, AfterPick: 90},
	}
}

// Team is one draft participant. Roster partitions Picks by position and
// holds the same pointers the player pool owns.
type Team struct {
	ID     int
	Name   string
	Picks  []*player.Player
	Roster map[player.Position][]*player.Player
}

func (t *Team) Count(pos player.Position) int {
	return len(t.Roster[pos])
}
