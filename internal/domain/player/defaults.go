package player

import (
	"fmt"
	"math"
	"strings"
)

const (
	playersPerTier     = 12
	projectionADPScale = 200.0
	defaultBasePoints  = 100.0
)

var basePointsByPosition = map[Position]float64{
	PositionQuarterback:   300,
	PositionRunningBack:   200,
	PositionWideReceiver:  180,
	PositionTightEnd:      140,
	PositionLinebacker:    120,
	PositionDefensiveBack: 100,
}

// EstimateProjectedPoints decays a positional baseline by ADP.
func EstimateProjectedPoints(pos Position, adp float64) float64 {
	base, ok := basePointsByPosition[pos]
	if !ok {
		base = defaultBasePoints
	}
	decay := math.Max(0, 1-adp/projectionADPScale)
	return math.Round(base * decay)
}

// TierFor buckets an ADP into tiers of twelve picks.
func TierFor(adp float64) int {
	tier := int(math.Ceil(adp / playersPerTier))
	if tier < 1 {
		return 1
	}
	return tier
}

// ProjectedRankFor renders a positional round estimate such as "WR3".
func ProjectedRankFor(pos Position, adp float64, numTeams int) string {
	if numTeams < 1 {
		numTeams = 1
	}
	return fmt.Sprintf("%s%d", pos, int(math.Ceil(adp/float64(numTeams))))
}

// SplitName splits a full name on the first space.
func SplitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// normalize fills optional fields once at ingestion.
func normalize(p Player, order, numTeams int) *Player {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Team = strings.ToUpper(strings.TrimSpace(p.Team))
	if p.Name == "" {
		p.Name = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}
	if p.FirstName == "" && p.LastName == "" {
		p.FirstName, p.LastName = SplitName(p.Name)
	}

	if p.OriginalADP <= 0 {
		p.OriginalADP = p.ADP
	}
	if p.OriginalADP <= 0 {
		p.OriginalADP = DefaultADP
	}
	p.ADP = p.OriginalADP

	if p.ProjectedPoints <= 0 {
		p.ProjectedPoints = EstimateProjectedPoints(p.Position, p.OriginalADP)
	}
	p.baseTier = p.Tier
	p.baseProjectedRank = p.ProjectedRank
	p.refreshDerived(numTeams)

	p.order = order
	p.drafted = false
	p.draftedBy = NoTeam
	p.draftedAt = 0

	return &p
}

func (p *Player) refreshDerived(numTeams int) {
	p.Tier = p.baseTier
	if p.Tier <= 0 {
		p.Tier = TierFor(p.ADP)
	}
	p.ProjectedRank = p.baseProjectedRank
	if p.ProjectedRank == "" {
		p.ProjectedRank = ProjectedRankFor(p.Position, p.ADP, numTeams)
	}
}
