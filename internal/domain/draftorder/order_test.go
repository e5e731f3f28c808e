package draftorder

import (
	"errors"
	"fmt"
	"testing"
)

func TestCompute_TenTeamsWithThirdRoundReversal(t *testing.T) {
	order, err := Compute(10, 5, true)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	forward := "[0 1 2 3 4 5 6 7 8 9]"
	backward := "[9 8 7 6 5 4 3 2 1 0]"
	want := []string{forward, backward, backward, forward, backward}
	for r := 1; r <= 5; r++ {
		if got := fmt.Sprint(order.Round(r)); got != want[r-1] {
			t.Fatalf("round %d: got=%s want=%s", r, got, want[r-1])
		}
	}
}

func TestCompute_PlainSnake(t *testing.T) {
	order, err := Compute(4, 4, false)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	want := []string{"[0 1 2 3]", "[3 2 1 0]", "[0 1 2 3]", "[3 2 1 0]"}
	for r := 1; r <= 4; r++ {
		if got := fmt.Sprint(order.Round(r)); got != want[r-1] {
			t.Fatalf("round %d: got=%s want=%s", r, got, want[r-1])
		}
	}
}

func TestCompute_ReversalFlagIgnoredWithTwoRounds(t *testing.T) {
	with, _ := Compute(6, 2, true)
	without, _ := Compute(6, 2, false)
	for r := 1; r <= 2; r++ {
		if fmt.Sprint(with.Round(r)) != fmt.Sprint(without.Round(r)) {
			t.Fatalf("round %d differs with flag on", r)
		}
	}
}

func TestCompute_RejectsInvalidSize(t *testing.T) {
	if _, err := Compute(0, 16, true); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := Compute(10, 0, true); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestPickMappingIsInverse(t *testing.T) {
	for _, numTeams := range []int{1, 8, 10, 12} {
		for pick := 1; pick <= numTeams*16; pick++ {
			round, slot := RoundAndSlotFor(pick, numTeams)
			if slot < 1 || slot > numTeams {
				t.Fatalf("teams=%d pick=%d: slot %d out of range", numTeams, pick, slot)
			}
			if got := PickNumberFor(round, slot, numTeams); got != pick {
				t.Fatalf("teams=%d pick=%d: round trip gave %d", numTeams, pick, got)
			}
		}
	}
}

func TestTeamAtAndSlotOf(t *testing.T) {
	order, _ := Compute(10, 16, true)

	tests := []struct {
		round int
		slot  int
		team  int
	}{
		{round: 1, slot: 1, team: 0},
		{round: 1, slot: 8, team: 7},
		{round: 2, slot: 3, team: 7},
		{round: 3, slot: 3, team: 7},
		{round: 4, slot: 8, team: 7},
		{round: 16, slot: 10, team: 9},
	}
	for _, tc := range tests {
		team, err := order.TeamAt(tc.round, tc.slot)
		if err != nil {
			t.Fatalf("team at r%d s%d: %v", tc.round, tc.slot, err)
		}
		if team != tc.team {
			t.Fatalf("team at r%d s%d: got=%d want=%d", tc.round, tc.slot, team, tc.team)
		}
		slot, err := order.SlotOf(tc.round, tc.team)
		if err != nil || slot != tc.slot {
			t.Fatalf("slot of r%d team %d: got=%d err=%v want=%d", tc.round, tc.team, slot, err, tc.slot)
		}
	}

	if _, err := order.TeamAt(17, 1); !errors.Is(err, ErrInvalidRound) {
		t.Fatalf("expected ErrInvalidRound, got %v", err)
	}
	if _, err := order.TeamAt(1, 11); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if _, err := order.SlotOf(1, 10); !errors.Is(err, ErrInvalidTeam) {
		t.Fatalf("expected ErrInvalidTeam, got %v", err)
	}
}

func TestPicksFor(t *testing.T) {
	order, _ := Compute(10, 4, true)
	if got := fmt.Sprint(order.PicksFor(7)); got != "[8 13 23 38]" {
		t.Fatalf("unexpected picks: %s", got)
	}
}

func TestLabel(t *testing.T) {
	if got := Label(1, 10); got != "R1.01" {
		t.Fatalf("got %s", got)
	}
	if got := Label(38, 10); got != "R4.08" {
		t.Fatalf("got %s", got)
	}
	if got := Label(160, 10); got != "R16.10" {
		t.Fatalf("got %s", got)
	}
}
