package trade

import (
	"errors"
	"testing"

	"github.com/riskibarqy/mock-draft/internal/domain/draftorder"
)

func ownerOf(t *testing.T, l *Ledger, order draftorder.Order, pick int) int {
	t.Helper()

	round, slot := draftorder.RoundAndSlotFor(pick, order.NumTeams())
	natural, err := order.TeamAt(round, slot)
	if err != nil {
		t.Fatalf("team at pick %d: %v", pick, err)
	}
	return l.Resolve(natural, round, pick)
}

func TestLedger_RoundTradeMovesExpectedPicks(t *testing.T) {
	order, err := draftorder.Compute(10, 16, true)
	if err != nil {
		t.Fatalf("compute order: %v", err)
	}
	ledger := NewLedger(10, 16)
	if _, err := ledger.RecordRoundTrade(7, []int{1, 4, 7}, 6, []int{2, 3, 8}); err != nil {
		t.Fatalf("record trade: %v", err)
	}

	for _, pick := range []int{8, 38, 63} {
		if got := ownerOf(t, ledger, order, pick); got != 6 {
			t.Fatalf("pick %d: expected team 6, got %d", pick, got)
		}
	}
	for _, pick := range []int{14, 24, 77} {
		if got := ownerOf(t, ledger, order, pick); got != 7 {
			t.Fatalf("pick %d: expected team 7, got %d", pick, got)
		}
	}
	// team 6's own round 1 pick is untouched
	if got := ownerOf(t, ledger, order, 7); got != 6 {
		t.Fatalf("pick 7: expected team 6, got %d", got)
	}
	if got := ownerOf(t, ledger, order, 18); got != 7 {
		t.Fatalf("pick 18: expected natural team 7, got %d", got)
	}
}

func TestLedger_PickTrade(t *testing.T) {
	ledger := NewLedger(10, 16)
	if _, err := ledger.RecordPickTrade(0, 1, 9, 10); err != nil {
		t.Fatalf("record trade: %v", err)
	}

	if got := ledger.Resolve(0, 1, 1); got != 9 {
		t.Fatalf("pick 1: expected team 9, got %d", got)
	}
	if got := ledger.Resolve(9, 1, 10); got != 0 {
		t.Fatalf("pick 10: expected team 0, got %d", got)
	}
	if got := ledger.Resolve(9, 2, 11); got != 9 {
		t.Fatalf("pick 11: expected team 9, got %d", got)
	}
}

func TestLedger_LaterTradesApplyOnTop(t *testing.T) {
	ledger := NewLedger(10, 16)
	// team 7 sends round 1 to team 6, then team 6 flips it on to team 2
	if _, err := ledger.RecordRoundTrade(7, []int{1}, 6, []int{2}); err != nil {
		t.Fatalf("record first trade: %v", err)
	}
	if _, err := ledger.RecordRoundTrade(6, []int{1}, 2, []int{5}); err != nil {
		t.Fatalf("record second trade: %v", err)
	}

	if got := ledger.Resolve(7, 1, 8); got != 2 {
		t.Fatalf("pick 8: expected team 2, got %d", got)
	}
	// team 6's own round 1 pick also went to team 2
	if got := ledger.Resolve(6, 1, 7); got != 2 {
		t.Fatalf("pick 7: expected team 2, got %d", got)
	}

	// a pick trade recorded last overrides the round trades
	if _, err := ledger.RecordPickTrade(4, 8, 5, 20); err != nil {
		t.Fatalf("record pick trade: %v", err)
	}
	if got := ledger.Resolve(7, 1, 8); got != 5 {
		t.Fatalf("pick 8: expected team 5, got %d", got)
	}
}

func TestLedger_Validation(t *testing.T) {
	tests := []struct {
		name    string
		record  func(l *Ledger) error
		wantErr error
	}{
		{
			name:    "self trade",
			record:  func(l *Ledger) error { _, err := l.RecordPickTrade(3, 4, 3, 17); return err },
			wantErr: ErrSelfTrade,
		},
		{
			name:    "same pick",
			record:  func(l *Ledger) error { _, err := l.RecordPickTrade(3, 4, 2, 4); return err },
			wantErr: ErrDuplicatePick,
		},
		{
			name:    "pick out of range",
			record:  func(l *Ledger) error { _, err := l.RecordPickTrade(3, 0, 2, 4); return err },
			wantErr: ErrInvalidPick,
		},
		{
			name:    "team out of range",
			record:  func(l *Ledger) error { _, err := l.RecordPickTrade(10, 1, 2, 4); return err },
			wantErr: ErrInvalidTeam,
		},
		{
			name:    "empty rounds",
			record:  func(l *Ledger) error { _, err := l.RecordRoundTrade(1, nil, 2, []int{3}); return err },
			wantErr: ErrInvalidRound,
		},
		{
			name:    "duplicate round",
			record:  func(l *Ledger) error { _, err := l.RecordRoundTrade(1, []int{3, 3}, 2, []int{4}); return err },
			wantErr: ErrInvalidRound,
		},
		{
			name:    "round out of range",
			record:  func(l *Ledger) error { _, err := l.RecordRoundTrade(1, []int{17}, 2, []int{4}); return err },
			wantErr: ErrInvalidRound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ledger := NewLedger(10, 16)
			if err := tc.record(ledger); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if ledger.Len() != 0 {
				t.Fatalf("rejected trade must not be recorded")
			}
		})
	}
}

func TestLedger_LoadAndClear(t *testing.T) {
	ledger := NewLedger(10, 16)
	err := ledger.Load([]Trade{
		{TeamA: 7, RoundsA: []int{1, 4, 7}, TeamB: 6, RoundsB: []int{2, 3, 8}},
		{TeamA: 0, PickA: 1, TeamB: 9, PickB: 10},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	trades := ledger.Trades()
	if len(trades) != 2 || trades[0].Kind != KindRounds || trades[1].Kind != KindPick {
		t.Fatalf("unexpected trades: %+v", trades)
	}

	if err := ledger.Load([]Trade{{Kind: KindPick, TeamA: 1, PickA: 1, TeamB: 1, PickB: 2}}); !errors.Is(err, ErrSelfTrade) {
		t.Fatalf("expected ErrSelfTrade, got %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("failed load must keep existing trades")
	}

	ledger.Clear()
	if ledger.Len() != 0 {
		t.Fatalf("expected empty ledger after clear")
	}
}

func TestDescribe(t *testing.T) {
	names := []string{"KARWAN", "JOEY", "PETER", "ERIC", "JERWAN", "STAN", "PAT", "ME", "JOHNSON", "LUAN"}
	lookup := func(id int) string { return names[id] }

	rounds := Trade{Kind: KindRounds, TeamA: 7, RoundsA: []int{1, 4, 7}, TeamB: 6, RoundsB: []int{2, 3, 8}}
	if got := Describe(rounds, lookup); got != "ME trades R1, R4, R7 to PAT for R2, R3, R8" {
		t.Fatalf("unexpected description: %s", got)
	}

	pick := Trade{Kind: KindPick, TeamA: 0, PickA: 1, TeamB: 9, PickB: 10}
	if got := Describe(pick, nil); got != "Team 1 sends pick 1 to Team 10 for pick 10" {
		t.Fatalf("unexpected description: %s", got)
	}
}

func TestLedger_AppendInfersKind(t *testing.T) {
	ledger := NewLedger(10, 16)

	got, err := ledger.Append(Trade{TeamA: 7, RoundsA: []int{1}, TeamB: 6, RoundsB: []int{2}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if got.Kind != KindRounds {
		t.Fatalf("expected rounds trade, got %s", got.Kind)
	}

	if _, err := ledger.Append(Trade{Kind: "swap", TeamA: 1, TeamB: 2}); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("expected one trade, got %d", ledger.Len())
	}
}
