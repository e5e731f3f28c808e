package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	qb "github.com/riskibarqy/mock-draft/internal/platform/querybuilder"
)

type DraftRepository struct {
	db *sqlx.DB
}

var savedDraftSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"pick_number",
	"snapshot",
	"created_at",
	"deleted_at",
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) Save(ctx context.Context, saved draft.SavedDraft) error {
	encoded, err := sonic.Marshal(saved.Snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot id=%s: %w", saved.ID, err)
	}

	query, args, err := qb.InsertModel("saved_drafts", savedDraftInsertModel{
		PublicID:   saved.ID,
		Name:       saved.Name,
		PickNumber: saved.PickNumber,
		Snapshot:   string(encoded),
		CreatedAt:  saved.CreatedAt,
	}, `ON CONFLICT (public_id) DO UPDATE SET
name = EXCLUDED.name,
pick_number = EXCLUDED.pick_number,
snapshot = EXCLUDED.snapshot,
deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build insert saved draft query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("saved draft name conflict id=%s: %w", saved.ID, err)
		}
		return fmt.Errorf("insert saved draft id=%s: %w", saved.ID, err)
	}
	return nil
}

func (r *DraftRepository) Get(ctx context.Context, id string) (draft.SavedDraft, error) {
	query, args, err := qb.Select(savedDraftSelectColumns...).From("saved_drafts").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return draft.SavedDraft{}, fmt.Errorf("build select saved draft query: %w", err)
	}

	var row savedDraftTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.SavedDraft{}, fmt.Errorf("%w: id=%s", draft.ErrSavedDraftNotFound, id)
		}
		return draft.SavedDraft{}, fmt.Errorf("select saved draft id=%s: %w", id, err)
	}

	return savedDraftToDomain(row)
}

// List returns saved drafts newest first.
func (r *DraftRepository) List(ctx context.Context) ([]draft.SavedDraft, error) {
	query, args, err := qb.Select(savedDraftSelectColumns...).From("saved_drafts").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at DESC", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select saved drafts query: %w", err)
	}

	var rows []savedDraftTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select saved drafts: %w", err)
	}

	out := make([]draft.SavedDraft, 0, len(rows))
	for _, row := range rows {
		item, err := savedDraftToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("saved_drafts").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete saved draft query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
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

func savedDraftToDomain(row savedDraftTableModel) (draft.SavedDraft, error) {
	var snapshot draft.Snapshot
	if err := sonic.Unmarshal(row.Snapshot, &snapshot); err != nil {
		return draft.SavedDraft{}, fmt.Errorf("decode snapshot id=%s: %w", row.PublicID, err)
	}

	return draft.SavedDraft{
		ID:         row.PublicID,
		Name:       row.Name,
		PickNumber: row.PickNumber,
		Snapshot:   snapshot,
		CreatedAt:  row.CreatedAt.UTC(),
	}, nil
}
