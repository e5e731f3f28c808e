package trade

import (
	"fmt"
	"slices"
)

// Ledger keeps trades in the order they were recorded. Later trades are
// applied on top of earlier ones.
type Ledger struct {
	numTeams  int
	numRounds int
	trades    []Trade
}

func NewLedger(numTeams, numRounds int) *Ledger {
	return &Ledger{numTeams: numTeams, numRounds: numRounds}
}

func (l *Ledger) RecordPickTrade(teamA, pickA, teamB, pickB int) (Trade, error) {
	t := Trade{Kind: KindPick, TeamA: teamA, TeamB: teamB, PickA: pickA, PickB: pickB}
	if err := l.validate(t); err != nil {
		return Trade{}, err
	}
	l.trades = append(l.trades, t)
	return t, nil
}

func (l *Ledger) RecordRoundTrade(teamA int, roundsA []int, teamB int, roundsB []int) (Trade, error) {
	t := Trade{
		Kind:    KindRounds,
		TeamA:   teamA,
		TeamB:   teamB,
		RoundsA: slices.Clone(roundsA),
		RoundsB: slices.Clone(roundsB),
	}
	if err := l.validate(t); err != nil {
		return Trade{}, err
	}
	l.trades = append(l.trades, t)
	return t, nil
}

// Resolve returns the team that owns a pick after every recorded trade.
func (l *Ledger) Resolve(naturalTeamID, round, pick int) int {
	owner := naturalTeamID
	for _, t := range l.trades {
		owner = t.ownerAfter(owner, round, pick)
	}
	return owner
}

func (l *Ledger) Trades() []Trade {
	out := make([]Trade, 0, len(l.trades))
	for _, t := range l.trades {
		t.RoundsA = slices.Clone(t.RoundsA)
		t.RoundsB = slices.Clone(t.RoundsB)
		out = append(out, t)
	}
	return out
}

func (l *Ledger) Len() int {
	return len(l.trades)
}

func (l *Ledger) Clear() {
	l.trades = nil
}

// Append records a previously serialized trade, inferring its kind when
// missing.
func (l *Ledger) Append(t Trade) (Trade, error) {
	t = withKind(t)
	if err := l.validate(t); err != nil {
		return Trade{}, err
	}
	t.RoundsA = slices.Clone(t.RoundsA)
	t.RoundsB = slices.Clone(t.RoundsB)
	l.trades = append(l.trades, t)
	return t, nil
}

// Load replaces the ledger with previously recorded trades. Nothing is
// replaced when any trade is invalid.
func (l *Ledger) Load(trades []Trade) error {
	loaded := make([]Trade, 0, len(trades))
	for i, t := range trades {
		t = withKind(t)
		if err := l.validate(t); err != nil {
			return fmt.Errorf("trade %d: %w", i, err)
		}
		t.RoundsA = slices.Clone(t.RoundsA)
		t.RoundsB = slices.Clone(t.RoundsB)
		loaded = append(loaded, t)
	}
	l.trades = loaded
	return nil
}

func withKind(t Trade) Trade {
	if t.Kind != "" {
		return t
	}
	t.Kind = KindPick
	if len(t.RoundsA) > 0 || len(t.RoundsB) > 0 {
		t.Kind = KindRounds
	}
	return t
}

func (l *Ledger) validate(t Trade) error {
	if err := l.validateTeam(t.TeamA); err != nil {
		return err
	}
	if err := l.validateTeam(t.TeamB); err != nil {
		return err
	}
	if t.TeamA == t.TeamB {
		return fmt.Errorf("%w: team=%d", ErrSelfTrade, t.TeamA)
	}

	switch t.Kind {
	case KindPick:
		total := l.numTeams * l.numRounds
		for _, pick := range []int{t.PickA, t.PickB} {
			if pick < 1 || pick > total {
				return fmt.Errorf("%w: pick=%d total=%d", ErrInvalidPick, pick, total)
			}
		}
		if t.PickA == t.PickB {
			return fmt.Errorf("%w: pick=%d", ErrDuplicatePick, t.PickA)
		}
	case KindRounds:
		if err := l.validateRounds(t.RoundsA); err != nil {
			return fmt.Errorf("team %d: %w", t.TeamA, err)
		}
		if err := l.validateRounds(t.RoundsB); err != nil {
			return fmt.Errorf("team %d: %w", t.TeamB, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, t.Kind)
	}

	return nil
}

func (l *Ledger) validateTeam(teamID int) error {
	if teamID < 0 || teamID >= l.numTeams {
		return fmt.Errorf("%w: team=%d", ErrInvalidTeam, teamID)
	}
	return nil
}

func (l *Ledger) validateRounds(rounds []int) error {
	if len(rounds) == 0 {
		return fmt.Errorf("%w: no rounds given", ErrInvalidRound)
	}
	seen := make(map[int]struct{}, len(rounds))
	for _, round := range rounds {
		if round < 1 || round > l.numRounds {
			return fmt.Errorf("%w: round=%d", ErrInvalidRound, round)
		}
		if _, ok := seen[round]; ok {
			return fmt.Errorf("%w: duplicate round=%d", ErrInvalidRound, round)
		}
		seen[round] = struct{}{}
	}
	return nil
}
