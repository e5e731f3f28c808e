package roster

import (
	"errors"
	"fmt"
	"slices"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
)

var (
	ErrInvalidTeam          = errors.New("invalid team")
	ErrPositionLimitReached = errors.New("position limit reached")
)

// Manager tracks every team's picks and enforces position limits.
type Manager struct {
	teams  []*Team
	limits Limits
	needs  []NeedRule
}

// NewManager creates numTeams empty teams. Missing names fall back to
// "Team N"; a zero Limits or nil needs use the defaults.
func NewManager(numTeams int, names []string, limits Limits, needs []NeedRule) *Manager {
	if limits.PerPosition == nil && limits.Default == 0 {
		limits = DefaultLimits()
	}
	if needs == nil {
		needs = DefaultNeeds()
	}

	teams := make([]*Team, numTeams)
	for i := range teams {
		name := fmt.Sprintf("Team %d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		teams[i] = &Team{ID: i, Name: name, Roster: make(map[player.Position][]*player.Player)}
	}

	return &Manager{teams: teams, limits: limits, needs: slices.Clone(needs)}
}

func (m *Manager) NumTeams() int {
	return len(m.teams)
}

func (m *Manager) Team(teamID int) (*Team, error) {
	if teamID < 0 || teamID >= len(m.teams) {
		return nil, fmt.Errorf("%w: team=%d", ErrInvalidTeam, teamID)
	}
	return m.teams[teamID], nil
}

func (m *Manager) Teams() []*Team {
	return slices.Clone(m.teams)
}

// Name returns the team's display name or "" for an unknown id.
func (m *Manager) Name(teamID int) string {
	team, err := m.Team(teamID)
	if err != nil {
		return ""
	}
	return team.Name
}

func (m *Manager) Rename(teamID int, name string) error {
	team, err := m.Team(teamID)
	if err != nil {
		return err
	}
	if name != "" {
		team.Name = name
	}
	return nil
}

func (m *Manager) Limits() Limits {
	return m.limits
}

func (m *Manager) CanDraft(teamID int, pos player.Position) bool {
	team, err := m.Team(teamID)
	if err != nil {
		return false
	}
	return team.Count(pos) < m.limits.For(pos)
}

func (m *Manager) AddPick(teamID int, p *player.Player) error {
	team, err := m.Team(teamID)
	if err != nil {
		return err
	}
	if team.Count(p.Position) >= m.limits.For(p.Position) {
		return fmt.Errorf("%w: team=%d position=%s max=%d", ErrPositionLimitReached, teamID, p.Position, m.limits.For(p.Position))
	}

	team.Picks = append(team.Picks, p)
	team.Roster[p.Position] = append(team.Roster[p.Position], p)
	return nil
}

// RemovePick drops a player from a team. Unknown players are ignored.
func (m *Manager) RemovePick(teamID int, playerID string) {
	team, err := m.Team(teamID)
	if err != nil {
		return
	}

	idx := slices.IndexFunc(team.Picks, func(p *player.Player) bool { return p.ID == playerID })
	if idx < 0 {
		return
	}
	removed := team.Picks[idx]
	team.Picks = slices.Delete(team.Picks, idx, idx+1)

	group := team.Roster[removed.Position]
	if j := slices.Index(group, removed); j >= 0 {
		group = slices.Delete(group, j, j+1)
	}
	if len(group) == 0 {
		delete(team.Roster, removed.Position)
	} else {
		team.Roster[removed.Position] = group
	}
}

// TeamNeeds lists positions the team should target at this pick, in rule
// order without duplicates.
func (m *Manager) TeamNeeds(teamID, pick int) []player.Position {
	team, err := m.Team(teamID)
	if err != nil {
		return nil
	}

	out := make([]player.Position, 0, 4)
	for _, rule := range m.needs {
		if pick <= rule.AfterPick {
			continue
		}
		if team.Count(rule.Position) >= rule.Below {
			continue
		}
		if slices.Contains(out, rule.Position) {
			continue
		}
		out = append(out, rule.Position)
	}
	return out
}

func (m *Manager) Reset() {
	for _, team := range m.teams {
		team.Picks = nil
		team.Roster = make(map[player.Position][]*player.Player)
	}
}
