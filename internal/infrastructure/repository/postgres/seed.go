package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
)

// BootstrapSeed inserts the given players when the players table is empty.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, players []player.Player) (int, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players WHERE deleted_at IS NULL`); err != nil {
		return 0, fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	inserted := 0
	for _, p := range players {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, name, position, team, adp, tier, projected_rank, projected_points)
VALUES (:public_id, :name, :position, :team, :adp, :tier, :projected_rank, :projected_points)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        p.ID,
			"name":             p.Name,
			"position":         string(p.Position),
			"team":             p.Team,
			"adp":              nullFloat(p.ADP),
			"tier":             p.Tier,
			"projected_rank":   p.ProjectedRank,
			"projected_points": nullFloat(p.ProjectedPoints),
		})
		if err != nil {
			return 0, fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return 0, fmt.Errorf("seed player %s: %w", p.ID, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed tx: %w", err)
	}
	return inserted, nil
}
