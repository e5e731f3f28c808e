package file

import (
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/infrastructure/repository/memory"
)

// playerRecord is one entry of a players file. Source files come from ADP
// exports where ids are sometimes numeric and sometimes missing.
type playerRecord struct {
	ID              flexibleID `json:"id"`
	PlayerID        flexibleID `json:"player_id"`
	Name            string     `json:"name"`
	Position        string     `json:"position"`
	Team            string     `json:"team"`
	ADP             float64    `json:"adp"`
	Rank            int        `json:"rank"`
	Tier            int        `json:"tier"`
	SOS             int        `json:"sos"`
	ProjectedRank   string     `json:"projected_rank"`
	ProjectedPoints float64    `json:"projected_points"`
}

type playersDocument struct {
	Players []playerRecord `json:"players"`
}

type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return crerr.Wrapf(err, "decode player id %s", raw)
		}
		*id = flexibleID(strings.TrimSpace(unquoted))
		return nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return crerr.Newf("player id must be a string or number, got %s", raw)
	}
	*id = flexibleID(raw)
	return nil
}

// LoadPlayers reads a players file from disk.
func LoadPlayers(path string) ([]player.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read players file %s", path)
	}
	players, err := ParsePlayers(data)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse players file %s", path)
	}
	return players, nil
}

// ParsePlayers accepts either {"players": [...]} or a bare array. Records
// without an id get one derived from the name; records without an ADP fall
// back to their rank.
func ParsePlayers(data []byte) ([]player.Player, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, crerr.New("players file is empty")
	}

	var records []playerRecord
	if strings.HasPrefix(trimmed, "[") {
		if err := sonic.UnmarshalString(trimmed, &records); err != nil {
			return nil, crerr.Wrap(err, "decode players array")
		}
	} else {
		var doc playersDocument
		if err := sonic.UnmarshalString(trimmed, &doc); err != nil {
			return nil, crerr.Wrap(err, "decode players document")
		}
		records = doc.Players
	}
	if len(records) == 0 {
		return nil, crerr.New("players file has no players")
	}

	out := make([]player.Player, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		pos, err := player.ParsePosition(rec.Position)
		if err != nil {
			return nil, crerr.Wrapf(err, "player %d (%s)", i, rec.Name)
		}

		id := string(rec.ID)
		if id == "" {
			id = string(rec.PlayerID)
		}
		if id == "" {
			id = memory.SeedPlayerID(rec.Name)
		}
		if prev, dup := seen[id]; dup {
			return nil, crerr.Newf("duplicate player id %q at records %d and %d", id, prev, i)
		}
		seen[id] = i

		adp := rec.ADP
		if adp <= 0 && rec.Rank > 0 {
			adp = float64(rec.Rank)
		}

		p := player.Player{
			ID:              id,
			Name:            strings.TrimSpace(rec.Name),
			Position:        pos,
			Team:            rec.Team,
			ADP:             adp,
			Tier:            rec.Tier,
			SOS:             rec.SOS,
			ProjectedRank:   rec.ProjectedRank,
			ProjectedPoints: rec.ProjectedPoints,
		}
		if err := p.Validate(); err != nil {
			return nil, crerr.Wrapf(err, "player %d", i)
		}
		out = append(out, p)
	}

	return out, nil
}
