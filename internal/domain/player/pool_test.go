package player

import (
	"errors"
	"fmt"
	"testing"
)

func samplePlayers() []Player {
	return []Player{
		{ID: "p-chase", Name: "Ja'Marr Chase", Position: PositionWideReceiver, Team: "CIN", ADP: 1.2},
		{ID: "p-bijan", Name: "Bijan Robinson", Position: PositionRunningBack, Team: "ATL", ADP: 2.4},
		{ID: "p-burrow", Name: "Joe Burrow", Position: PositionQuarterback, Team: "CIN", ADP: 25},
		{ID: "p-kelce", Name: "Travis Kelce", Position: PositionTightEnd, Team: "KC", ADP: 40},
		{ID: "p-tie-a", Name: "Tie A", Position: PositionWideReceiver, Team: "NYJ", ADP: 50},
		{ID: "p-tie-b", Name: "Tie B", Position: PositionWideReceiver, Team: "NYG", ADP: 50},
		{ID: "p-unknown", Name: "Deep Sleeper", Position: PositionLinebacker, Team: "FA"},
	}
}

func loadedPool(t *testing.T) *Pool {
	t.Helper()

	pool := NewPool(PoolConfig{NumTeams: 10})
	if err := pool.Load(samplePlayers()); err != nil {
		t.Fatalf("load pool: %v", err)
	}
	return pool
}

func ids(players []*Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}

func TestPool_LoadSortsByADPAndAppliesDefaults(t *testing.T) {
	pool := loadedPool(t)

	got := ids(pool.Available())
	want := []string{"p-chase", "p-bijan", "p-burrow", "p-kelce", "p-tie-a", "p-tie-b", "p-unknown"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("unexpected order: got=%v want=%v", got, want)
	}

	sleeper, _ := pool.Get("p-unknown")
	if sleeper.ADP != DefaultADP || sleeper.OriginalADP != DefaultADP {
		t.Fatalf("expected default adp, got adp=%v original=%v", sleeper.ADP, sleeper.OriginalADP)
	}
	if sleeper.FirstName != "Deep" || sleeper.LastName != "Sleeper" {
		t.Fatalf("unexpected name split: %q %q", sleeper.FirstName, sleeper.LastName)
	}

	burrow, _ := pool.Get("p-burrow")
	if burrow.Tier != 3 {
		t.Fatalf("expected tier 3 for adp 25, got %d", burrow.Tier)
	}
	if burrow.ProjectedRank != "QB3" {
		t.Fatalf("expected projected rank QB3, got %s", burrow.ProjectedRank)
	}
	// 300 * (1 - 25/200) = 262.5 -> 263
	if burrow.ProjectedPoints != 263 {
		t.Fatalf("expected projected points 263, got %v", burrow.ProjectedPoints)
	}
}

func TestPool_LoadRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		players []Player
		wantErr error
	}{
		{
			name:    "duplicate id",
			players: []Player{{ID: "a", Name: "A", Position: PositionQuarterback}, {ID: "a", Name: "B", Position: PositionRunningBack}},
			wantErr: ErrDuplicatePlayer,
		},
		{
			name:    "unknown position",
			players: []Player{{ID: "a", Name: "A", Position: "GK"}},
			wantErr: ErrInvalidPlayer,
		},
		{
			name:    "missing id",
			players: []Player{{Name: "A", Position: PositionQuarterback}},
			wantErr: ErrInvalidPlayer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewPool(PoolConfig{NumTeams: 10}).Load(tc.players)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestPool_MarkDraftedAndAvailable(t *testing.T) {
	pool := loadedPool(t)

	if err := pool.MarkDrafted("p-bijan", 3, 1); err != nil {
		t.Fatalf("mark drafted: %v", err)
	}
	bijan, _ := pool.Get("p-bijan")
	if team, ok := bijan.DraftedBy(); !ok || team != 3 || bijan.DraftedAt() != 1 {
		t.Fatalf("unexpected draft state: team=%d ok=%v at=%d", team, ok, bijan.DraftedAt())
	}
	for _, p := range pool.Available() {
		if p.ID == "p-bijan" {
			t.Fatalf("drafted player still available")
		}
	}

	if err := pool.MarkDrafted("p-bijan", 4, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for drafted player, got %v", err)
	}
	if err := pool.MarkDrafted("missing", 4, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}

	if err := pool.MarkAvailable("p-bijan"); err != nil {
		t.Fatalf("mark available: %v", err)
	}
	if got := ids(pool.Available())[1]; got != "p-bijan" {
		t.Fatalf("expected player to re-enter by adp at index 1, got %s", got)
	}
	if _, ok := bijan.DraftedBy(); ok {
		t.Fatalf("expected drafted-by cleared")
	}
	if err := pool.MarkAvailable("p-bijan"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for undrafted player, got %v", err)
	}
}

func TestPool_TiesKeepInputOrderAfterUndo(t *testing.T) {
	pool := loadedPool(t)

	if err := pool.MarkDrafted("p-tie-a", 0, 1); err != nil {
		t.Fatalf("mark drafted: %v", err)
	}
	if err := pool.MarkAvailable("p-tie-a"); err != nil {
		t.Fatalf("mark available: %v", err)
	}

	got := ids(pool.Available())
	if got[4] != "p-tie-a" || got[5] != "p-tie-b" {
		t.Fatalf("expected tie order preserved, got %v", got)
	}
}

func TestPool_ADPModeRoundTripRestoresValues(t *testing.T) {
	pool := loadedPool(t)
	if err := pool.MarkDrafted("p-kelce", 2, 5); err != nil {
		t.Fatalf("mark drafted: %v", err)
	}

	type derived struct {
		adp  float64
		tier int
		vr   int
		rank string
	}
	snapshot := func() map[string]derived {
		out := make(map[string]derived)
		for _, p := range pool.All() {
			out[p.ID] = derived{adp: p.ADP, tier: p.Tier, vr: p.VAR, rank: p.ProjectedRank}
		}
		return out
	}
	before := snapshot()
	availableBefore := ids(pool.Available())

	pool.ReapplyCustomADP(map[string]float64{"p-burrow": 0.5, "p-kelce": 90})
	pool.SetADPMode(true)

	burrow, _ := pool.Get("p-burrow")
	kelce, _ := pool.Get("p-kelce")
	if burrow.ADP != 0.5 || kelce.ADP != 90 {
		t.Fatalf("expected overrides applied, got burrow=%v kelce=%v", burrow.ADP, kelce.ADP)
	}
	if first := pool.Available()[0].ID; first != "p-burrow" {
		t.Fatalf("expected override to re-sort available list, first=%s", first)
	}
	if burrow.Tier != 1 {
		t.Fatalf("expected tier recomputed from override, got %d", burrow.Tier)
	}

	pool.SetADPMode(false)
	after := snapshot()
	for id, want := range before {
		if got := after[id]; got != want {
			t.Fatalf("player %s not restored: got=%+v want=%+v", id, got, want)
		}
	}
	if fmt.Sprint(ids(pool.Available())) != fmt.Sprint(availableBefore) {
		t.Fatalf("available order not restored: got=%v want=%v", ids(pool.Available()), availableBefore)
	}
	if !kelce.Drafted() {
		t.Fatalf("mode switch must not change draft state")
	}
}

func TestPool_VARUsesReplacementRank(t *testing.T) {
	players := make([]Player, 0, 12)
	for i := 0; i < 12; i++ {
		players = append(players, Player{
			ID:              fmt.Sprintf("qb-%02d", i),
			Name:            fmt.Sprintf("QB %02d", i),
			Position:        PositionQuarterback,
			ADP:             float64(i + 1),
			ProjectedPoints: float64(400 - i*10),
		})
	}
	players = append(players, Player{ID: "te-1", Name: "Lone TE", Position: PositionTightEnd, ADP: 30, ProjectedPoints: 200})

	pool := NewPool(PoolConfig{NumTeams: 10})
	if err := pool.Load(players); err != nil {
		t.Fatalf("load pool: %v", err)
	}

	// replacement is the 10th best QB: 400 - 9*10 = 310
	top, _ := pool.Get("qb-00")
	if top.VAR != 90 {
		t.Fatalf("expected VAR 90, got %d", top.VAR)
	}
	last, _ := pool.Get("qb-11")
	if last.VAR != -20 {
		t.Fatalf("expected VAR -20, got %d", last.VAR)
	}
	te, _ := pool.Get("te-1")
	if te.VAR != 0 {
		t.Fatalf("expected VAR 0 for undersized group, got %d", te.VAR)
	}
}

func TestPool_ResetMakesEveryoneAvailable(t *testing.T) {
	pool := loadedPool(t)
	_ = pool.MarkDrafted("p-chase", 0, 1)
	_ = pool.MarkDrafted("p-burrow", 1, 2)

	pool.Reset()

	if len(pool.Available()) != pool.Len() {
		t.Fatalf("expected all players available after reset")
	}
	if len(pool.Drafted()) != 0 {
		t.Fatalf("expected no drafted players after reset")
	}
}
