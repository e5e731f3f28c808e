package draft

import (
	"fmt"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/domain/roster"
)

const (
	maxTeams  = 32
	maxRounds = 40
)

// Settings fixes the shape of one draft.
type Settings struct {
	NumTeams           int
	NumRounds          int
	ThirdRoundReversal bool
	// StrictTurns rejects user picks while a computer team is on the clock.
	StrictTurns  bool
	TimerSeconds int
	TeamNames    []string

	Limits           roster.Limits
	Needs            []roster.NeedRule
	ReplacementRanks map[player.Position]int
}

func DefaultTeamNames() []string {
	return []string{"KARWAN", "JOEY", "PETER", "ERIC", "JERWAN", "STAN", "PAT", "ME", "JOHNSON", "LUAN"}
}

func DefaultSettings() Settings {
	return Settings{
		NumTeams:           10,
		NumRounds:          16,
		ThirdRoundReversal: true,
		StrictTurns:        true,
		TimerSeconds:       90,
		TeamNames:          DefaultTeamNames(),
		Limits:             roster.DefaultLimits(),
		Needs:              roster.DefaultNeeds(),
		ReplacementRanks:   player.DefaultReplacementRanks(),
	}
}

func (s Settings) Validate() error {
	if s.NumTeams < 2 || s.NumTeams > maxTeams {
		return fmt.Errorf("%w: teams must be between 2 and %d, got %d", ErrInvalidSettings, maxTeams, s.NumTeams)
	}
	if s.NumRounds < 1 || s.NumRounds > maxRounds {
		return fmt.Errorf("%w: rounds must be between 1 and %d, got %d", ErrInvalidSettings, maxRounds, s.NumRounds)
	}
	if s.TimerSeconds < 0 {
		return fmt.Errorf("%w: timer must not be negative", ErrInvalidSettings)
	}
	return nil
}

func (s Settings) TotalPicks() int {
	return s.NumTeams * s.NumRounds
}
