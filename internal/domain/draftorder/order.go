package draftorder

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize  = errors.New("invalid draft size")
	ErrInvalidRound = errors.New("invalid round")
	ErrInvalidSlot  = errors.New("invalid slot")
	ErrInvalidTeam  = errors.New("invalid team")
)

// Order holds the natural team id for every (round, slot). Trades are
// resolved on top of it and never change it.
type Order struct {
	numTeams int
	rounds   [][]int
}

// Compute builds a snake order. Round 1 runs slot 1..n, round 2 reverses it.
// With thirdRoundReversal round 3 repeats round 2's direction; every later
// round flips the previous one.
func Compute(numTeams, numRounds int, thirdRoundReversal bool) (Order, error) {
	if numTeams < 1 || numRounds < 1 {
		return Order{}, fmt.Errorf("%w: teams=%d rounds=%d", ErrInvalidSize, numTeams, numRounds)
	}

	rounds := make([][]int, numRounds)
	reversed := false
	for r := 1; r <= numRounds; r++ {
		switch {
		case r == 1:
			reversed = false
		case r == 3 && thirdRoundReversal:
			// same direction as round 2
		default:
			reversed = !reversed
		}

		teams := make([]int, numTeams)
		for slot := 1; slot <= numTeams; slot++ {
			if reversed {
				teams[slot-1] = numTeams - slot
			} else {
				teams[slot-1] = slot - 1
			}
		}
		rounds[r-1] = teams
	}

	return Order{numTeams: numTeams, rounds: rounds}, nil
}

func (o Order) NumTeams() int {
	return o.numTeams
}

func (o Order) NumRounds() int {
	return len(o.rounds)
}

func (o Order) TotalPicks() int {
	return o.numTeams * len(o.rounds)
}

// TeamAt returns the natural team picking at (round, slot).
func (o Order) TeamAt(round, slot int) (int, error) {
	if round < 1 || round > len(o.rounds) {
		return 0, fmt.Errorf("%w: round=%d", ErrInvalidRound, round)
	}
	if slot < 1 || slot > o.numTeams {
		return 0, fmt.Errorf("%w: slot=%d", ErrInvalidSlot, slot)
	}
	return o.rounds[round-1][slot-1], nil
}

// SlotOf returns the slot the team naturally holds in a round.
func (o Order) SlotOf(round, teamID int) (int, error) {
	if round < 1 || round > len(o.rounds) {
		return 0, fmt.Errorf("%w: round=%d", ErrInvalidRound, round)
	}
	for i, team := range o.rounds[round-1] {
		if team == teamID {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: team=%d", ErrInvalidTeam, teamID)
}

// Round returns a copy of the team ids for one round in slot order.
func (o Order) Round(round int) []int {
	if round < 1 || round > len(o.rounds) {
		return nil
	}
	out := make([]int, o.numTeams)
	copy(out, o.rounds[round-1])
	return out
}

// PicksFor lists the overall pick numbers a team naturally owns.
func (o Order) PicksFor(teamID int) []int {
	out := make([]int, 0, len(o.rounds))
	for r := 1; r <= len(o.rounds); r++ {
		slot, err := o.SlotOf(r, teamID)
		if err != nil {
			continue
		}
		out = append(out, PickNumberFor(r, slot, o.numTeams))
	}
	return out
}

func PickNumberFor(round, slot, numTeams int) int {
	return (round-1)*numTeams + slot
}

func RoundAndSlotFor(pick, numTeams int) (round, slot int) {
	if numTeams < 1 || pick < 1 {
		return 0, 0
	}
	round = (pick + numTeams - 1) / numTeams
	slot = (pick-1)%numTeams + 1
	return round, slot
}

// Label renders a pick as "R1.05".
func Label(pick, numTeams int) string {
	round, slot := RoundAndSlotFor(pick, numTeams)
	return fmt.Sprintf("R%d.%02d", round, slot)
}
