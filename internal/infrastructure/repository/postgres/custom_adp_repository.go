package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/mock-draft/internal/platform/querybuilder"
)

type CustomADPRepository struct {
	db *sqlx.DB
}

func NewCustomADPRepository(db *sqlx.DB) *CustomADPRepository {
	return &CustomADPRepository{db: db}
}

func (r *CustomADPRepository) List(ctx context.Context) (map[string]float64, error) {
	query, args, err := qb.Select("player_public_id", "adp", "updated_at").
		From("custom_adp").
		OrderBy("player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select custom adp query: %w", err)
	}

	var rows []customADPTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select custom adp: %w", err)
	}

	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.PlayerID] = row.ADP
	}
	return out, nil
}

func (r *CustomADPRepository) Upsert(ctx context.Context, playerID string, adp float64) error {
	query, args, err := qb.InsertInto("custom_adp").
		Columns("player_public_id", "adp").
		Values(playerID, adp).
		Suffix("ON CONFLICT (player_public_id) DO UPDATE SET adp = EXCLUDED.adp, updated_at = NOW()").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert custom adp query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert custom adp player=%s: %w", playerID, err)
	}
	return nil
}

func (r *CustomADPRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.DeleteFrom("custom_adp").
		Where(qb.Eq("player_public_id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete custom adp query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete custom adp player=%s: %w", playerID, err)
	}
	return nil
}

func (r *CustomADPRepository) Clear(ctx context.Context) error {
	query, args, err := qb.DeleteFrom("custom_adp").Where(qb.Expr("TRUE")).ToSQL()
	if err != nil {
		return fmt.Errorf("build clear custom adp query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear custom adp: %w", err)
	}
	return nil
}
