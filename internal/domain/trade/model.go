package trade

import (
	"errors"
	"slices"
)

type Kind string

const (
	KindPick   Kind = "pick"
	KindRounds Kind = "rounds"
)

var (
	ErrSelfTrade     = errors.New("a team cannot trade with itself")
	ErrDuplicatePick = errors.New("cannot trade a pick for itself")
	ErrInvalidTeam   = errors.New("invalid trade team")
	ErrInvalidPick   = errors.New("invalid trade pick")
	ErrInvalidRound  = errors.New("invalid trade round")
	ErrInvalidKind   = errors.New("invalid trade kind")
)

// Trade swaps either two single picks or two sets of rounds between teams.
// Field names follow the saved-draft JSON layout and the preset YAML.
type Trade struct {
	Kind    Kind  `json:"type" yaml:"type"`
	TeamA   int   `json:"team1" yaml:"team1"`
	TeamB   int   `json:"team2" yaml:"team2"`
	PickA   int   `json:"pick1,omitempty" yaml:"pick1"`
	PickB   int   `json:"pick2,omitempty" yaml:"pick2"`
	RoundsA []int `json:"team1Rounds,omitempty" yaml:"team1Rounds"`
	RoundsB []int `json:"team2Rounds,omitempty" yaml:"team2Rounds"`
}

// ownerAfter applies the trade to the current holder of a pick.
func (t Trade) ownerAfter(current, round, pick int) int {
	switch t.Kind {
	case KindPick:
		if pick == t.PickA {
			return t.TeamB
		}
		if pick == t.PickB {
			return t.TeamA
		}
	case KindRounds:
		if current == t.TeamA && slices.Contains(t.RoundsA, round) {
			return t.TeamB
		}
		if current == t.TeamB && slices.Contains(t.RoundsB, round) {
			return t.TeamA
		}
	}
	return current
}

// Involves reports whether the team is a party to the trade.
func (t Trade) Involves(teamID int) bool {
	return t.TeamA == teamID || t.TeamB == teamID
}
