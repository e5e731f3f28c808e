package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
)

type playerTableModel struct {
	ID              int64           `db:"id"`
	PublicID        string          `db:"public_id"`
	Name            string          `db:"name"`
	Position        string          `db:"position"`
	Team            string          `db:"team"`
	ADP             sql.NullFloat64 `db:"adp"`
	Tier            sql.NullInt64   `db:"tier"`
	SOS             sql.NullInt64   `db:"sos"`
	ProjectedRank   sql.NullString  `db:"projected_rank"`
	ProjectedPoints sql.NullFloat64 `db:"projected_points"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
	DeletedAt       *time.Time      `db:"deleted_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:              m.PublicID,
		Name:            m.Name,
		Position:        player.Position(m.Position),
		Team:            m.Team,
		ADP:             m.ADP.Float64,
		Tier:            int(m.Tier.Int64),
		SOS:             int(m.SOS.Int64),
		ProjectedRank:   m.ProjectedRank.String,
		ProjectedPoints: m.ProjectedPoints.Float64,
	}
}

type customADPTableModel struct {
	PlayerID  string    `db:"player_public_id"`
	ADP       float64   `db:"adp"`
	UpdatedAt time.Time `db:"updated_at"`
}

type savedDraftTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	Name       string     `db:"name"`
	PickNumber int        `db:"pick_number"`
	Snapshot   []byte     `db:"snapshot"`
	CreatedAt  time.Time  `db:"created_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

// savedDraftInsertModel carries only the columns written on insert.
type savedDraftInsertModel struct {
	PublicID   string    `db:"public_id"`
	Name       string    `db:"name"`
	PickNumber int       `db:"pick_number"`
	Snapshot   string    `db:"snapshot"`
	CreatedAt  time.Time `db:"created_at"`
}
