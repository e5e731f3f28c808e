package roster

import (
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
)

func newPlayer(id string, pos player.Position) *player.Player {
	return &player.Player{ID: id, Name: id, Position: pos}
}

func TestManager_NamesFallBack(t *testing.T) {
	m := NewManager(3, []string{"ME", ""}, Limits{}, nil)

	if got := m.Name(0); got != "ME" {
		t.Fatalf("expected ME, got %s", got)
	}
	if got := m.Name(1); got != "Team 2" {
		t.Fatalf("expected fallback name, got %s", got)
	}
	if got := m.Name(2); got != "Team 3" {
		t.Fatalf("expected fallback name, got %s", got)
	}
	if got := m.Name(3); got != "" {
		t.Fatalf("expected empty name for unknown team, got %s", got)
	}
}

func TestManager_EnforcesPositionLimits(t *testing.T) {
	m := NewManager(2, nil, DefaultLimits(), nil)

	for i := 0; i < 3; i++ {
		if err := m.AddPick(0, newPlayer(fmt.Sprintf("te-%d", i), player.PositionTightEnd)); err != nil {
			t.Fatalf("add te %d: %v", i, err)
		}
	}
	if m.CanDraft(0, player.PositionTightEnd) {
		t.Fatalf("expected tight end limit reached")
	}
	if !m.CanDraft(1, player.PositionTightEnd) {
		t.Fatalf("limit must be per team")
	}

	err := m.AddPick(0, newPlayer("te-3", player.PositionTightEnd))
	if !errors.Is(err, ErrPositionLimitReached) {
		t.Fatalf("expected ErrPositionLimitReached, got %v", err)
	}
	team, _ := m.Team(0)
	if len(team.Picks) != 3 || team.Count(player.PositionTightEnd) != 3 {
		t.Fatalf("rejected pick must not change roster")
	}

	if err := m.AddPick(5, newPlayer("qb", player.PositionQuarterback)); !errors.Is(err, ErrInvalidTeam) {
		t.Fatalf("expected ErrInvalidTeam, got %v", err)
	}
}

func TestManager_DefaultLimitForOtherPositions(t *testing.T) {
	limits := DefaultLimits()
	if got := limits.For(player.PositionKicker); got != 10 {
		t.Fatalf("expected default limit 10, got %d", got)
	}
	if got := limits.For(player.PositionQuarterback); got != 4 {
		t.Fatalf("expected qb limit 4, got %d", got)
	}
}

func TestManager_RemovePick(t *testing.T) {
	m := NewManager(1, nil, Limits{}, nil)
	rb := newPlayer("rb", player.PositionRunningBack)
	wr := newPlayer("wr", player.PositionWideReceiver)
	_ = m.AddPick(0, rb)
	_ = m.AddPick(0, wr)

	m.RemovePick(0, "missing")
	m.RemovePick(0, "rb")

	team, _ := m.Team(0)
	if len(team.Picks) != 1 || team.Picks[0] != wr {
		t.Fatalf("unexpected picks after remove: %+v", team.Picks)
	}
	if _, ok := team.Roster[player.PositionRunningBack]; ok {
		t.Fatalf("expected empty position group to be removed")
	}
}

func TestManager_TeamNeeds(t *testing.T) {
	tests := []struct {
		name   string
		roster []player.Position
		pick   int
		want   string
	}{
		{name: "empty early", pick: 5, want: "[QB RB WR TE]"},
		{name: "empty late", pick: 95, want: "[QB RB WR TE LB DB]"},
		{
			name:   "starters filled before pick 30",
			roster: []player.Position{"QB", "RB", "RB", "WR", "WR", "TE"},
			pick:   25,
			want:   "[]",
		},
		{
			name:   "depth after pick 30",
			roster: []player.Position{"QB", "RB", "RB", "WR", "WR", "TE"},
			pick:   31,
			want:   "[RB WR]",
		},
		{
			name:   "backup qb after pick 50",
			roster: []player.Position{"QB", "RB", "RB", "RB", "RB", "WR", "WR", "WR", "WR", "TE"},
			pick:   51,
			want:   "[QB]",
		},
		{
			name:   "backup te after pick 80",
			roster: []player.Position{"QB", "QB", "RB", "RB", "RB", "RB", "WR", "WR", "WR", "WR", "TE"},
			pick:   81,
			want:   "[TE]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewManager(1, nil, Limits{}, nil)
			for i, pos := range tc.roster {
				if err := m.AddPick(0, newPlayer(fmt.Sprintf("p%d", i), pos)); err != nil {
					t.Fatalf("add pick: %v", err)
				}
			}
			if got := fmt.Sprint(m.TeamNeeds(0, tc.pick)); got != tc.want {
				t.Fatalf("got=%s want=%s", got, tc.want)
			}
		})
	}
}

func TestManager_Reset(t *testing.T) {
	m := NewManager(2, nil, Limits{}, nil)
	_ = m.AddPick(1, newPlayer("qb", player.PositionQuarterback))

	m.Reset()

	for _, team := range m.Teams() {
		if len(team.Picks) != 0 || len(team.Roster) != 0 {
			t.Fatalf("team %d not reset", team.ID)
		}
	}
}
