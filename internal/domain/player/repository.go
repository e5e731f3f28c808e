package player

import "context"

// Repository describes the player catalogue a draft is loaded from.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
}

// CustomADPRepository stores user-defined ADP overrides keyed by player id.
type CustomADPRepository interface {
	List(ctx context.Context) (map[string]float64, error)
	Upsert(ctx context.Context, playerID string, adp float64) error
	Delete(ctx context.Context, playerID string) error
	Clear(ctx context.Context) error
}
