package draft

import (
	"context"
	"time"
)

// SavedDraft is a snapshot stored under a user-chosen name.
type SavedDraft struct {
	ID         string
	Name       string
	PickNumber int
	Snapshot   Snapshot
	CreatedAt  time.Time
}

type Repository interface {
	Save(ctx context.Context, saved SavedDraft) error
	Get(ctx context.Context, id string) (SavedDraft, error)
	List(ctx context.Context) ([]SavedDraft, error)
	Delete(ctx context.Context, id string) error
}
