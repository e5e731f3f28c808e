package player

import (
	"fmt"
	"strings"
)

// Position represents the roster slot category a player is drafted into.
type Position string

const (
	PositionQuarterback   Position = "QB"
	PositionRunningBack   Position = "RB"
	PositionWideReceiver  Position = "WR"
	PositionTightEnd      Position = "TE"
	PositionLinebacker    Position = "LB"
	PositionDefensiveBack Position = "DB"
	PositionKicker        Position = "K"
	PositionDefense       Position = "DST"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback:   {},
	PositionRunningBack:   {},
	PositionWideReceiver:  {},
	PositionTightEnd:      {},
	PositionLinebacker:    {},
	PositionDefensiveBack: {},
	PositionKicker:        {},
	PositionDefense:       {},
}

// NoTeam marks a player that no team has drafted.
const NoTeam = -1

// DefaultADP is used when a player carries no average draft position.
const DefaultADP = 999.0

// Player is a draftable athlete. Draft state is owned by Pool.
type Player struct {
	ID              string
	Name            string
	FirstName       string
	LastName        string
	Position        Position
	Team            string
	ADP             float64
	OriginalADP     float64
	Tier            int
	SOS             int
	ProjectedRank   string
	ProjectedPoints float64
	VAR             int

	// input-provided derived values; zero means compute it
	baseTier          int
	baseProjectedRank string

	order     int
	drafted   bool
	draftedBy int
	draftedAt int
}

func (p *Player) Drafted() bool {
	return p.drafted
}

// DraftedBy returns the drafting team, ok=false while the player is available.
func (p *Player) DraftedBy() (int, bool) {
	if !p.drafted {
		return NoTeam, false
	}
	return p.draftedBy, true
}

func (p *Player) DraftedAt() int {
	return p.draftedAt
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.FirstName+p.LastName) == "" {
		return fmt.Errorf("player name is required: id=%s", p.ID)
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: id=%s position=%s", p.ID, p.Position)
	}
	if p.ADP < 0 {
		return fmt.Errorf("player adp must not be negative: id=%s", p.ID)
	}

	return nil
}

// ParsePosition normalizes a position code.
func ParsePosition(raw string) (Position, error) {
	pos := Position(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := AllPositions[pos]; !ok {
		return "", fmt.Errorf("invalid player position: %q", raw)
	}
	return pos, nil
}
