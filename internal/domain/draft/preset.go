package draft

import (
	"context"
	"slices"

	"github.com/riskibarqy/mock-draft/internal/domain/trade"
)

// Preset is a named starting configuration: team names, the user's team,
// opening trades and players each computer team refuses to draft.
type Preset struct {
	Name       string           `yaml:"name" json:"name"`
	TeamNames  []string         `yaml:"teamNames" json:"teamNames"`
	UserTeam   *int             `yaml:"userTeam" json:"userTeam,omitempty"`
	Trades     []trade.Trade    `yaml:"trades" json:"trades"`
	Exclusions map[int][]string `yaml:"exclusions" json:"exclusions"`
}

type PresetRepository interface {
	List(ctx context.Context) ([]Preset, error)
	Get(ctx context.Context, name string) (Preset, error)
}

// ApplyPreset configures a draft that has not started yet. The user team is
// selected last, which starts the draft.
func (e *Engine) ApplyPreset(p Preset) error {
	if e.state != StateAwaitingTeamSelection {
		return ErrAlreadyStarted
	}

	for i, name := range p.TeamNames {
		_ = e.rosters.Rename(i, name)
	}

	e.trades.Clear()
	for _, t := range p.Trades {
		if _, err := e.trades.Append(t); err != nil {
			e.trades.Clear()
			return err
		}
	}

	e.preset = p.Name
	e.setExclusions(p.Exclusions)

	if p.UserTeam != nil {
		return e.SelectUserSlot(*p.UserTeam)
	}
	return nil
}

// setExclusions hands the per-team exclusions to the computer policy and
// keeps a copy for snapshots.
func (e *Engine) setExclusions(byTeam map[int][]string) {
	e.exclusions = cloneExclusions(byTeam)
	e.policy = e.policy.WithConfig(e.policy.Config().WithExclusions(e.exclusions))
}

func cloneExclusions(byTeam map[int][]string) map[int][]string {
	if len(byTeam) == 0 {
		return nil
	}
	out := make(map[int][]string, len(byTeam))
	for teamID, names := range byTeam {
		out[teamID] = slices.Clone(names)
	}
	return out
}
