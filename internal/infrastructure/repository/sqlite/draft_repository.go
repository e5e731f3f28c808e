package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mock-draft/internal/domain/draft"
)

type savedDraftRow struct {
	PublicID   string `db:"public_id"`
	Name       string `db:"name"`
	PickNumber int    `db:"pick_number"`
	Snapshot   string `db:"snapshot"`
	CreatedAt  int64  `db:"created_at"`
}

// DraftRepository keeps saved drafts in a local SQLite file.
type DraftRepository struct {
	db *sqlx.DB
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) Save(ctx context.Context, saved draft.SavedDraft) error {
	encoded, err := sonic.MarshalString(saved.Snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot id=%s: %w", saved.ID, err)
	}

	_, err = r.db.NamedExecContext(ctx, `
INSERT INTO saved_drafts (public_id, name, pick_number, snapshot, created_at)
VALUES (:public_id, :name, :pick_number, :snapshot, :created_at)
ON CONFLICT (public_id) DO UPDATE SET
	name = excluded.name,
	pick_number = excluded.pick_number,
	snapshot = excluded.snapshot`, savedDraftRow{
		PublicID:   saved.ID,
		Name:       saved.Name,
		PickNumber: saved.PickNumber,
		Snapshot:   encoded,
		CreatedAt:  saved.CreatedAt.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("insert saved draft id=%s: %w", saved.ID, err)
	}
	return nil
}

func (r *DraftRepository) Get(ctx context.Context, id string) (draft.SavedDraft, error) {
	var row savedDraftRow
	err := r.db.GetContext(ctx, &row, `
SELECT public_id, name, pick_number, snapshot, created_at
FROM saved_drafts WHERE public_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return draft.SavedDraft{}, fmt.Errorf("%w: id=%s", draft.ErrSavedDraftNotFound, id)
	}
	if err != nil {
		return draft.SavedDraft{}, fmt.Errorf("select saved draft id=%s: %w", id, err)
	}
	return row.toDomain()
}

// List returns saved drafts newest first.
func (r *DraftRepository) List(ctx context.Context) ([]draft.SavedDraft, error) {
	var rows []savedDraftRow
	if err := r.db.SelectContext(ctx, &rows, `
SELECT public_id, name, pick_number, snapshot, created_at
FROM saved_drafts ORDER BY created_at DESC, public_id`); err != nil {
		return nil, fmt.Errorf("select saved drafts: %w", err)
	}

	out := make([]draft.SavedDraft, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_drafts WHERE public_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete saved draft id=%s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete saved draft rows affected id=%s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", draft.ErrSavedDraftNotFound, id)
	}
	return nil
}

func (row savedDraftRow) toDomain() (draft.SavedDraft, error) {
	var snapshot draft.Snapshot
	if err := sonic.UnmarshalString(row.Snapshot, &snapshot); err != nil {
		return draft.SavedDraft{}, fmt.Errorf("decode snapshot id=%s: %w", row.PublicID, err)
	}
	return draft.SavedDraft{
		ID:         row.PublicID,
		Name:       row.Name,
		PickNumber: row.PickNumber,
		Snapshot:   snapshot,
		CreatedAt:  time.Unix(0, row.CreatedAt).UTC(),
	}, nil
}
