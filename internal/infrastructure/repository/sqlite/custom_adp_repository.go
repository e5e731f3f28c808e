package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type CustomADPRepository struct {
	db *sqlx.DB
}

func NewCustomADPRepository(db *sqlx.DB) *CustomADPRepository {
	return &CustomADPRepository{db: db}
}

func (r *CustomADPRepository) List(ctx context.Context) (map[string]float64, error) {
	var rows []struct {
		PlayerID string  `db:"player_public_id"`
		ADP      float64 `db:"adp"`
	}
	if err := r.db.SelectContext(ctx, &rows, `SELECT player_public_id, adp FROM custom_adp`); err != nil {
		return nil, fmt.Errorf("select custom adp: %w", err)
	}

	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.PlayerID] = row.ADP
	}
	return out, nil
}

func (r *CustomADPRepository) Upsert(ctx context.Context, playerID string, adp float64) error {
	if _, err := r.db.ExecContext(ctx, `
INSERT INTO custom_adp (player_public_id, adp) VALUES (?, ?)
ON CONFLICT (player_public_id) DO UPDATE SET adp = excluded.adp`, playerID, adp); err != nil {
		return fmt.Errorf("upsert custom adp player=%s: %w", playerID, err)
	}
	return nil
}

func (r *CustomADPRepository) Delete(ctx context.Context, playerID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM custom_adp WHERE player_public_id = ?`, playerID); err != nil {
		return fmt.Errorf("delete custom adp player=%s: %w", playerID, err)
	}
	return nil
}

func (r *CustomADPRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM custom_adp`); err != nil {
		return fmt.Errorf("clear custom adp: %w", err)
	}
	return nil
}
