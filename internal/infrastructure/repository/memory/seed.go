package memory

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/domain/trade"
)

const (
	DefaultPresetName = "Default League"
	seedPoolSize      = 200
)

type seedPlayer struct {
	name string
	pos  player.Position
	team string
}

// ranked top of the board, in ADP order
var rankedSeed = []seedPlayer{
	{"Ja'Marr Chase", player.PositionWideReceiver, "CIN"},
	{"Bijan Robinson", player.PositionRunningBack, "ATL"},
	{"Saquon Barkley", player.PositionRunningBack, "PHI"},
	{"Justin Jefferson", player.PositionWideReceiver, "MIN"},
	{"Jahmyr Gibbs", player.PositionRunningBack, "DET"},
	{"CeeDee Lamb", player.PositionWideReceiver, "DAL"},
	{"Puka Nacua", player.PositionWideReceiver, "LAR"},
	{"Malik Nabers", player.PositionWideReceiver, "NYG"},
	{"Amon-Ra St. Brown", player.PositionWideReceiver, "DET"},
	{"Christian McCaffrey", player.PositionRunningBack, "SF"},
	{"Ashton Jeanty", player.PositionRunningBack, "LV"},
	{"Nico Collins", player.PositionWideReceiver, "HOU"},
	{"Brian Thomas Jr.", player.PositionWideReceiver, "JAX"},
	{"Derrick Henry", player.PositionRunningBack, "BAL"},
	{"De'Von Achane", player.PositionRunningBack, "MIA"},
	{"Drake London", player.PositionWideReceiver, "ATL"},
	{"A.J. Brown", player.PositionWideReceiver, "PHI"},
	{"Brock Bowers", player.PositionTightEnd, "LV"},
	{"Josh Jacobs", player.PositionRunningBack, "GB"},
	{"Jonathan Taylor", player.PositionRunningBack, "IND"},
	{"Bucky Irving", player.PositionRunningBack, "TB"},
	{"Ladd McConkey", player.PositionWideReceiver, "LAC"},
	{"Josh Allen", player.PositionQuarterback, "BUF"},
	{"Lamar Jackson", player.PositionQuarterback, "BAL"},
	{"Joe Burrow", player.PositionQuarterback, "CIN"},
	{"Trey McBride", player.PositionTightEnd, "ARI"},
	{"Kyren Williams", player.PositionRunningBack, "LAR"},
	{"Tee Higgins", player.PositionWideReceiver, "CIN"},
	{"Jaxon Smith-Njigba", player.PositionWideReceiver, "SEA"},
	{"Tyreek Hill", player.PositionWideReceiver, "MIA"},
	{"Chase Brown", player.PositionRunningBack, "CIN"},
	{"James Cook", player.PositionRunningBack, "BUF"},
	{"Mike Evans", player.PositionWideReceiver, "TB"},
	{"Garrett Wilson", player.PositionWideReceiver, "NYJ"},
	{"Jalen Hurts", player.PositionQuarterback, "PHI"},
	{"Jayden Daniels", player.PositionQuarterback, "WAS"},
	{"Marvin Harrison Jr.", player.PositionWideReceiver, "ARI"},
	{"Alvin Kamara", player.PositionRunningBack, "NO"},
	{"Breece Hall", player.PositionRunningBack, "NYJ"},
	{"Omarion Hampton", player.PositionRunningBack, "LAC"},
	{"George Kittle", player.PositionTightEnd, "SF"},
	{"Davante Adams", player.PositionWideReceiver, "LAR"},
	{"Terry McLaurin", player.PositionWideReceiver, "WAS"},
	{"DK Metcalf", player.PositionWideReceiver, "PIT"},
	{"Kenneth Walker III", player.PositionRunningBack, "SEA"},
	{"James Conner", player.PositionRunningBack, "ARI"},
	{"Xavier Worthy", player.PositionWideReceiver, "KC"},
	{"Chuba Hubbard", player.PositionRunningBack, "CAR"},
	{"DJ Moore", player.PositionWideReceiver, "CHI"},
	{"Courtland Sutton", player.PositionWideReceiver, "DEN"},
	{"Sam LaPorta", player.PositionTightEnd, "DET"},
	{"Baker Mayfield", player.PositionQuarterback, "TB"},
	{"Rashee Rice", player.PositionWideReceiver, "KC"},
	{"Zay Flowers", player.PositionWideReceiver, "BAL"},
	{"D'Andre Swift", player.PositionRunningBack, "CHI"},
	{"TreVeyon Henderson", player.PositionRunningBack, "NE"},
	{"Jameson Williams", player.PositionWideReceiver, "DET"},
	{"Patrick Mahomes", player.PositionQuarterback, "KC"},
	{"Travis Kelce", player.PositionTightEnd, "KC"},
	{"David Montgomery", player.PositionRunningBack, "DET"},
}

var nflTeams = []string{
	"ARI", "ATL", "BAL", "BUF", "CAR", "CHI", "CIN", "CLE", "DAL", "DEN", "DET",
	"GB", "HOU", "IND", "JAX", "KC", "LAC", "LAR", "LV", "MIA", "MIN", "NE",
	"NO", "NYG", "NYJ", "PHI", "PIT", "SEA", "SF", "TB", "TEN", "WAS",
}

// depthMix is the share of generated depth players per position.
var depthMix = []struct {
	pos   player.Position
	count int
}{
	{player.PositionRunningBack, 35},
	{player.PositionWideReceiver, 40},
	{player.PositionQuarterback, 20},
	{player.PositionTightEnd, 15},
	{player.PositionLinebacker, 15},
	{player.PositionDefensiveBack, 15},
}

// SeedPlayers returns a 200 player board: named players first, then
// generated depth interleaved across positions.
func SeedPlayers() []player.Player {
	out := make([]player.Player, 0, seedPoolSize)
	for i, item := range rankedSeed {
		out = append(out, player.Player{
			ID:       SeedPlayerID(item.name),
			Name:     item.name,
			Position: item.pos,
			Team:     item.team,
			ADP:      float64(i + 1),
		})
	}

	remaining := make([]int, len(depthMix))
	for i, mix := range depthMix {
		remaining[i] = mix.count
	}
	seq := make(map[player.Position]int, len(depthMix))
	for len(out) < seedPoolSize {
		added := false
		for i, mix := range depthMix {
			if remaining[i] == 0 || len(out) >= seedPoolSize {
				continue
			}
			remaining[i]--
			seq[mix.pos]++
			name := fmt.Sprintf("Depth %s %02d", mix.pos, seq[mix.pos])
			out = append(out, player.Player{
				ID:       SeedPlayerID(name),
				Name:     name,
				Position: mix.pos,
				Team:     nflTeams[len(out)%len(nflTeams)],
				ADP:      float64(len(out) + 1),
			})
			added = true
		}
		if !added {
			break
		}
	}

	return out
}

// SeedPlayerID derives the stable seed id for a player name.
func SeedPlayerID(name string) string {
	var b strings.Builder
	b.WriteString("p-")
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func SeedPresets() []draft.Preset {
	user := 7
	return []draft.Preset{
		{
			Name:      DefaultPresetName,
			TeamNames: []string{"KARWAN", "JOEY", "PETER", "JOHNSON", "JERWAN", "STAN", "PAT", "ME", "ERIC", "LUAN"},
			UserTeam:  &user,
			Trades: []trade.Trade{
				{Kind: trade.KindRounds, TeamA: 7, TeamB: 6, RoundsA: []int{1, 4, 7}, RoundsB: []int{2, 3, 8}},
			},
			Exclusions: map[int][]string{
				3: {"Josh Allen", "Brock Bowers"},
				9: {"Brock Bowers"},
			},
		},
	}
}
