package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	qb "github.com/riskibarqy/mock-draft/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"position",
	"team",
	"adp",
	"tier",
	"sos",
	"projected_rank",
	"projected_points",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// List returns the live board in load order.
func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.selectPlayers(ctx, "players", qb.IsNull("deleted_at"))
}

// GetByIDs skips ids that are unknown or soft-deleted.
func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}
	return r.selectPlayers(ctx, "players by ids",
		qb.In("public_id", stringSliceToAny(playerIDs)),
		qb.IsNull("deleted_at"),
	)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, what string, conditions ...qb.Condition) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", what, err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", what, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
