package autopick

import "strings"

// Pin forces a named player to be taken by any computer team on the clock
// at or before ThroughPick.
type Pin struct {
	Name        string
	ThroughPick int
}

type Config struct {
	Pins []Pin

	// BestAvailableThrough is the last pick that ignores team needs.
	BestAvailableThrough int
	// NeedDepth is how many players per needed position become candidates.
	NeedDepth int
	// NeedsIgnoredAfter switches back to best-available ranking late in a draft.
	NeedsIgnoredAfter int
	// FallbackDepth is the candidate count when needs yield nothing.
	FallbackDepth int

	TopChoiceProbability float64
	RandomWidth          int

	// Exclusions maps a team id to player names it never drafts.
	Exclusions map[int]map[string]struct{}
}

func DefaultConfig() Config {
	return Config{
		Pins: []Pin{
			{Name: "Ja'Marr Chase", ThroughPick: 2},
			{Name: "Joe Burrow", ThroughPick: 21},
		},
		BestAvailableThrough: 30,
		NeedDepth:            3,
		NeedsIgnoredAfter:    100,
		FallbackDepth:        5,
		TopChoiceProbability: 0.8,
		RandomWidth:          3,
	}
}

// WithExclusions returns a copy of cfg carrying per-team exclusions keyed by
// lower-cased player name.
func (c Config) WithExclusions(byTeam map[int][]string) Config {
	out := make(map[int]map[string]struct{}, len(byTeam))
	for teamID, names := range byTeam {
		set := make(map[string]struct{}, len(names))
		for _, name := range names {
			set[nameKey(name)] = struct{}{}
		}
		out[teamID] = set
	}
	c.Exclusions = out
	return c
}

func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
