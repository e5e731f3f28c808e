package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DraftRepository {
	t.Helper()

	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDraftRepository(db)
}

func sampleSaved(id string, at time.Time) draft.SavedDraft {
	return draft.SavedDraft{
		ID:         id,
		Name:       "mock " + id,
		PickNumber: 3,
		CreatedAt:  at,
		Snapshot: draft.Snapshot{
			NumTeams:   10,
			NumRounds:  16,
			PickNumber: 3,
			DraftHistory: []draft.SnapshotPick{
				{Pick: 1, Round: 1, Slot: 1, TeamID: 0, PlayerID: "p-jamarr-chase"},
				{Pick: 2, Round: 1, Slot: 2, TeamID: 1, PlayerID: "p-joe-burrow"},
			},
			Teams:        map[string]draft.SnapshotTeam{"0": {Name: "KARWAN", PlayerIDs: []string{"p-jamarr-chase"}}},
			Trades:       []trade.Trade{{Kind: trade.KindRounds, TeamA: 7, TeamB: 6, RoundsA: []int{1, 4, 7}, RoundsB: []int{2, 3, 8}}},
			UserTeamID:   7,
			DraftStarted: true,
			Preset:       "Default League",
			Exclusions:   map[int][]string{3: {"Josh Allen", "Brock Bowers"}},
			RoundPlan:    map[string]int{"p-brock-bowers": 2},
		},
	}
}

func TestDraftRepository_SaveGetListDelete(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)
	base := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, sampleSaved("a", base)))
	require.NoError(t, repo.Save(ctx, sampleSaved("b", base.Add(time.Minute))))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "mock a", got.Name)
	assert.True(t, got.CreatedAt.Equal(base))
	assert.Len(t, got.Snapshot.DraftHistory, 2)
	assert.Equal(t, []int{1, 4, 7}, got.Snapshot.Trades[0].RoundsA)
	assert.Equal(t, 2, got.Snapshot.RoundPlan["p-brock-bowers"])
	assert.Equal(t, "KARWAN", got.Snapshot.Teams["0"].Name)
	assert.Equal(t, "Default League", got.Snapshot.Preset)
	assert.Equal(t, []string{"Josh Allen", "Brock Bowers"}, got.Snapshot.Exclusions[3])

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)

	require.NoError(t, repo.Delete(ctx, "a"))
	_, err = repo.Get(ctx, "a")
	assert.True(t, errors.Is(err, draft.ErrSavedDraftNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, "a"), draft.ErrSavedDraftNotFound))
}

func TestDraftRepository_SaveOverwritesSameID(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)

	saved := sampleSaved("a", time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, saved))
	saved.Name = "renamed"
	saved.PickNumber = 40
	require.NoError(t, repo.Save(ctx, saved))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, 40, got.PickNumber)
}

func TestCustomADPRepository(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewCustomADPRepository(db)

	require.NoError(t, repo.Upsert(ctx, "p-joe-burrow", 4))
	require.NoError(t, repo.Upsert(ctx, "p-joe-burrow", 6.5))
	require.NoError(t, repo.Upsert(ctx, "p-brock-bowers", 9))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"p-joe-burrow": 6.5, "p-brock-bowers": 9}, items)

	require.NoError(t, repo.Delete(ctx, "p-joe-burrow"))
	items, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, repo.Clear(ctx))
	items, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Error(t, repo.Upsert(ctx, "p-bad", 0))
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}
