package trade

import (
	"fmt"
	"strings"
)

// Describe renders a trade for display, e.g.
// "ME trades R1, R4, R7 to PAT for R2, R3, R8".
func Describe(t Trade, names func(int) string) string {
	if names == nil {
		names = func(id int) string { return fmt.Sprintf("Team %d", id+1) }
	}

	switch t.Kind {
	case KindRounds:
		return fmt.Sprintf("%s trades %s to %s for %s",
			names(t.TeamA), roundList(t.RoundsA), names(t.TeamB), roundList(t.RoundsB))
	default:
		return fmt.Sprintf("%s sends pick %d to %s for pick %d",
			names(t.TeamA), t.PickA, names(t.TeamB), t.PickB)
	}
}

func roundList(rounds []int) string {
	parts := make([]string, 0, len(rounds))
	for _, r := range rounds {
		parts = append(parts, fmt.Sprintf("R%d", r))
	}
	return strings.Join(parts, ", ")
}
