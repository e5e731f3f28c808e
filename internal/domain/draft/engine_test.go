package draft

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/mock-draft/internal/domain/autopick"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/domain/trade"
)

var fixturePositions = []player.Position{
	player.PositionRunningBack,
	player.PositionWideReceiver,
	player.PositionWideReceiver,
	player.PositionRunningBack,
	player.PositionQuarterback,
	player.PositionTightEnd,
	player.PositionWideReceiver,
	player.PositionRunningBack,
	player.PositionLinebacker,
	player.PositionDefensiveBack,
}

func fixturePlayers() []player.Player {
	out := make([]player.Player, 0, 200)
	for i := 0; i < 200; i++ {
		out = append(out, player.Player{
			ID:       fmt.Sprintf("p%03d", i),
			Name:     fmt.Sprintf("Player %03d", i),
			Position: fixturePositions[i%len(fixturePositions)],
			Team:     "FA",
			ADP:      float64(i + 1),
		})
	}
	out[4] = player.Player{ID: "chase", Name: "Ja'Marr Chase", Position: player.PositionWideReceiver, Team: "CIN", ADP: 5}
	return out
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	policy := autopick.NewPolicy(autopick.DefaultConfig(), rand.New(rand.NewSource(11)))
	engine, err := NewEngine(DefaultSettings(), fixturePlayers(), policy)
	require.NoError(t, err)
	return engine
}

func availableIDs(e *Engine) []string {
	out := make([]string, 0)
	for _, p := range e.Available() {
		out = append(out, p.ID)
	}
	return out
}

func TestNewEngine_RejectsInvalidSettings(t *testing.T) {
	settings := DefaultSettings()
	settings.NumTeams = 1

	_, err := NewEngine(settings, fixturePlayers(), nil)
	require.ErrorIs(t, err, ErrInvalidSettings)
}

func TestEngine_SelectUserSlot(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.DraftPlayer("p000", OnTheClock)
	require.ErrorIs(t, err, ErrNotStarted)

	require.ErrorIs(t, engine.SelectUserSlot(10), ErrInvalidTeam)
	require.NoError(t, engine.SelectUserSlot(0))
	assert.Equal(t, StateInProgress, engine.State())
	require.ErrorIs(t, engine.SelectUserSlot(1), ErrAlreadyStarted)
}

func TestEngine_DraftPlayerAdvancesCounter(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(0))

	entry, err := engine.DraftPlayer("p000", OnTheClock)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Pick)
	assert.Equal(t, 1, entry.Round)
	assert.Equal(t, 0, entry.TeamID)

	p, _ := engine.Player("p000")
	team, ok := p.DraftedBy()
	assert.True(t, ok)
	assert.Equal(t, 0, team)

	info := engine.CurrentPickInfo()
	assert.Equal(t, 2, info.Pick)
	assert.Equal(t, 1, info.TeamID)
	assert.False(t, info.IsUserTurn)
	assert.Equal(t, "R1.02", info.Label)

	_, err = engine.DraftPlayer("p001", OnTheClock)
	require.ErrorIs(t, err, ErrNotUserTurn)
}

func TestEngine_DraftPlayerErrors(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(0))
	engine.SetManualMode(true)

	_, err := engine.DraftPlayer("missing", OnTheClock)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = engine.DraftPlayer("p000", OnTheClock)
	require.NoError(t, err)
	_, err = engine.DraftPlayer("p000", OnTheClock)
	require.ErrorIs(t, err, ErrAlreadyDrafted)

	_, err = engine.DraftPlayer("p001", 12)
	require.ErrorIs(t, err, ErrInvalidTeam)
}

func TestEngine_PositionLimitHolds(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(0))
	engine.SetManualMode(true)

	var tightEnds []string
	for _, p := range engine.Available() {
		if p.Position == player.PositionTightEnd {
			tightEnds = append(tightEnds, p.ID)
		}
	}
	require.GreaterOrEqual(t, len(tightEnds), 4)

	for _, id := range tightEnds[:3] {
		_, err := engine.DraftPlayer(id, 3)
		require.NoError(t, err)
	}
	_, err := engine.DraftPlayer(tightEnds[3], 3)
	require.ErrorIs(t, err, ErrPositionLimitReached)

	fourth, _ := engine.Player(tightEnds[3])
	assert.False(t, fourth.Drafted())
	assert.Equal(t, 4, engine.PickNumber())
}

type derivedValues struct {
	ADP   float64
	Tier  int
	VAR   int
	Rank  string
	Taken bool
}

func boardState(e *Engine) (map[string]derivedValues, []map[player.Position][]string) {
	players := make(map[string]derivedValues)
	for _, p := range e.pool.All() {
		players[p.ID] = derivedValues{ADP: p.ADP, Tier: p.Tier, VAR: p.VAR, Rank: p.ProjectedRank, Taken: p.Drafted()}
	}

	rosters := make([]map[player.Position][]string, 0, len(e.Teams()))
	for _, team := range e.Teams() {
		byPos := make(map[player.Position][]string)
		for pos, picks := range team.Roster {
			for _, p := range picks {
				byPos[pos] = append(byPos[pos], p.ID)
			}
		}
		rosters = append(rosters, byPos)
	}
	return players, rosters
}

func TestEngine_DraftUndoRoundTrip(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(0))
	before := availableIDs(engine)
	playersBefore, rostersBefore := boardState(engine)

	// user, computer picks to pick 20, user again, computer picks to the
	// reversed third round pick 30
	_, err := engine.DraftPlayer("p002", OnTheClock)
	require.NoError(t, err)
	made, err := engine.AdvanceComputerPicks()
	require.NoError(t, err)
	require.Len(t, made, 18)
	_, err = engine.DraftPlayer(engine.Available()[0].ID, OnTheClock)
	require.NoError(t, err)
	_, err = engine.AdvanceComputerPicks()
	require.NoError(t, err)
	require.Equal(t, 30, engine.PickNumber())

	picks := len(engine.History())
	for i := 0; i < picks; i++ {
		_, err := engine.UndoLastPick()
		require.NoError(t, err)
	}

	playersAfter, rostersAfter := boardState(engine)
	assert.Equal(t, before, availableIDs(engine))
	assert.Equal(t, playersBefore, playersAfter)
	assert.Equal(t, rostersBefore, rostersAfter)
	assert.Equal(t, 1, engine.PickNumber())
	assert.Empty(t, engine.History())
	for _, team := range engine.Teams() {
		assert.Empty(t, team.Picks)
	}

	_, err = engine.UndoLastPick()
	require.ErrorIs(t, err, ErrNothingToUndo)
}

func TestEngine_AdvanceStopsAtUserTurn(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(7))

	made, err := engine.AdvanceComputerPicks()
	require.NoError(t, err)
	assert.Len(t, made, 7)
	assert.Equal(t, "chase", made[0].Player.ID, "pinned prospect goes first overall")

	info := engine.CurrentPickInfo()
	assert.Equal(t, 8, info.Pick)
	assert.True(t, info.IsUserTurn)

	_, err = engine.DraftPlayer(engine.Available()[0].ID, OnTheClock)
	require.NoError(t, err)

	made, err = engine.AdvanceComputerPicks()
	require.NoError(t, err)
	assert.Len(t, made, 4)
	assert.Equal(t, 13, engine.CurrentPickInfo().Pick)
}

func TestEngine_AdvanceHonorsRoundTrade(t *testing.T) {
	engine := newTestEngine(t)
	_, err := engine.RecordRoundTrade(7, []int{1, 4, 7}, 6, []int{2, 3, 8})
	require.NoError(t, err)
	require.NoError(t, engine.SelectUserSlot(7))

	made, err := engine.AdvanceComputerPicks()
	require.NoError(t, err)
	assert.Len(t, made, 12)
	assert.Equal(t, 6, made[7].TeamID, "pick 8 belongs to team 6 after the trade")

	// team 7 keeps its own round 2 pick
	info := engine.CurrentPickInfo()
	assert.Equal(t, 13, info.Pick)
	assert.True(t, info.IsUserTurn)
	assert.False(t, info.Traded)

	_, err = engine.DraftPlayer(engine.Available()[0].ID, OnTheClock)
	require.NoError(t, err)

	info = engine.CurrentPickInfo()
	assert.Equal(t, 14, info.Pick)
	assert.Equal(t, 7, info.TeamID)
	assert.Equal(t, 6, info.NaturalTeamID)
	assert.True(t, info.Traded)
	assert.True(t, info.IsUserTurn)

	made, err = engine.AdvanceComputerPicks()
	require.NoError(t, err)
	assert.Empty(t, made)

	assert.Equal(t, []string{"ME trades R1, R4, R7 to PAT for R2, R3, R8"}, engine.TradeDescriptions())
}

func TestEngine_ManualModeDoesNotAdvance(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(5))
	engine.SetManualMode(true)

	made, err := engine.AdvanceComputerPicks()
	require.NoError(t, err)
	assert.Empty(t, made)

	entry, err := engine.DraftPlayer("p010", OnTheClock)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.TeamID)
}

func TestEngine_AdvanceGuardsReentry(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(3))

	var nestedErr error
	engine.SetObserver(func(ev Event) {
		if ev.Kind == EventPick && nestedErr == nil {
			_, nestedErr = engine.AdvanceComputerPicks()
		}
	})

	made, err := engine.AdvanceComputerPicks()
	require.NoError(t, err)
	assert.Len(t, made, 3)
	require.ErrorIs(t, nestedErr, ErrAdvanceInProgress)
}

func TestEngine_FullDraftCompletes(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(0))
	total := engine.Settings().TotalPicks()

	for engine.State() == StateInProgress {
		_, err := engine.AdvanceComputerPicks()
		require.NoError(t, err)
		if engine.State() != StateInProgress {
			break
		}
		_, err = engine.ComputerPick()
		require.NoError(t, err)
	}

	assert.Equal(t, StateComplete, engine.State())
	assert.Len(t, engine.History(), total)
	assert.True(t, engine.CurrentPickInfo().Complete)
	assert.Len(t, engine.Available(), 200-total)

	for _, team := range engine.Teams() {
		assert.Len(t, team.Picks, engine.Settings().NumRounds)
		for pos, group := range team.Roster {
			assert.LessOrEqual(t, len(group), engine.Settings().Limits.For(pos))
		}
	}

	_, err := engine.DraftPlayer(engine.Available()[0].ID, OnTheClock)
	require.ErrorIs(t, err, ErrDraftComplete)
	_, err = engine.ComputerPick()
	require.ErrorIs(t, err, ErrDraftComplete)

	_, err = engine.UndoLastPick()
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, engine.State())
	assert.Equal(t, total, engine.PickNumber())
}

func TestEngine_RevertToPick(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(9))
	_, err := engine.AdvanceComputerPicks()
	require.NoError(t, err)
	require.Equal(t, 10, engine.PickNumber())

	assert.Equal(t, 6, engine.RevertToPick(4))
	assert.Equal(t, 4, engine.PickNumber())
	assert.Len(t, engine.History(), 3)

	assert.Equal(t, 3, engine.RevertToPick(-5), "stops once history runs out")
	assert.Equal(t, 1, engine.PickNumber())
}

func TestEngine_Restart(t *testing.T) {
	engine := newTestEngine(t)
	_, err := engine.RecordPickTrade(0, 1, 1, 2)
	require.NoError(t, err)
	require.NoError(t, engine.SelectUserSlot(4))
	_, err = engine.AdvanceComputerPicks()
	require.NoError(t, err)

	var events []EventKind
	engine.SetObserver(func(ev Event) { events = append(events, ev.Kind) })
	engine.Restart()

	assert.Equal(t, StateAwaitingTeamSelection, engine.State())
	assert.Equal(t, 1, engine.PickNumber())
	assert.Equal(t, player.NoTeam, engine.UserTeam())
	assert.Empty(t, engine.History())
	assert.Empty(t, engine.Trades())
	assert.Len(t, engine.Available(), 200)
	assert.Equal(t, []EventKind{EventRestart}, events)
}

func TestEngine_RestartKeepsManualMode(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(0))
	engine.SetManualMode(true)

	engine.Restart()

	assert.True(t, engine.ManualMode())
	require.NoError(t, engine.SelectUserSlot(3))
	made, err := engine.AdvanceComputerPicks()
	require.NoError(t, err)
	assert.Empty(t, made)
}

func TestEngine_SnapshotRestore(t *testing.T) {
	engine := newTestEngine(t)
	_, err := engine.RecordRoundTrade(7, []int{1, 4, 7}, 6, []int{2, 3, 8})
	require.NoError(t, err)
	require.NoError(t, engine.SelectUserSlot(7))
	_, err = engine.AdvanceComputerPicks()
	require.NoError(t, err)
	require.NoError(t, engine.SetRoundTarget("p150", 9))

	snap := engine.Snapshot()
	assert.Equal(t, 13, snap.PickNumber)
	assert.True(t, snap.DraftStarted)
	assert.Len(t, snap.DraftHistory, 12)
	assert.Len(t, snap.Trades, 1)

	snap.DraftHistory = append(snap.DraftHistory, SnapshotPick{Pick: 13, TeamID: 7, PlayerID: "retired-player"})
	snap.RoundPlan["ghost"] = 3

	restored := newTestEngine(t)
	report := restored.Restore(snap)

	assert.Equal(t, 12, report.AppliedPicks)
	assert.Equal(t, []string{"retired-player"}, report.SkippedPlayerIDs)
	assert.Equal(t, []string{"ghost"}, report.DroppedPlanIDs)
	assert.False(t, report.Clean())

	assert.Equal(t, engine.PickNumber(), restored.PickNumber())
	assert.Equal(t, StateInProgress, restored.State())
	assert.Equal(t, 7, restored.UserTeam())
	assert.Equal(t, availableIDs(engine), availableIDs(restored))
	assert.Equal(t, engine.Trades(), restored.Trades())
	assert.Equal(t, map[string]int{"p150": 9}, restored.RoundPlan())

	for i, team := range engine.Teams() {
		other := restored.Teams()[i]
		require.Len(t, other.Picks, len(team.Picks))
		for j := range team.Picks {
			assert.Equal(t, team.Picks[j].ID, other.Picks[j].ID)
		}
	}

	_, err = restored.UndoLastPick()
	require.NoError(t, err)
	assert.Equal(t, 12, restored.PickNumber())
}

func TestEngine_RestoreKeepsPresetExclusions(t *testing.T) {
	engine := newTestEngine(t)
	userTeam := 5
	require.NoError(t, engine.ApplyPreset(Preset{
		Name:       "no chase at one",
		UserTeam:   &userTeam,
		Exclusions: map[int][]string{0: {"Ja'Marr Chase"}},
	}))

	snap := engine.Snapshot()
	assert.Equal(t, "no chase at one", snap.Preset)
	assert.Equal(t, map[int][]string{0: {"Ja'Marr Chase"}}, snap.Exclusions)

	restored := newTestEngine(t)
	assert.True(t, restored.Restore(snap).Clean())
	assert.Equal(t, "no chase at one", restored.PresetName())

	made, err := restored.AdvanceComputerPicks()
	require.NoError(t, err)
	require.Len(t, made, 5)
	assert.Equal(t, 0, made[0].TeamID)
	assert.NotEqual(t, "chase", made[0].Player.ID)
	assert.Equal(t, "chase", made[1].Player.ID, "team 1 may still take the pinned prospect")
}

func TestEngine_RestoreEmptySnapshotWaitsForTeam(t *testing.T) {
	engine := newTestEngine(t)

	report := engine.Restore(Snapshot{UserTeamID: -1})

	assert.True(t, report.Clean())
	assert.Equal(t, StateAwaitingTeamSelection, engine.State())
	assert.Equal(t, 1, engine.PickNumber())
}

func TestEngine_ApplyPreset(t *testing.T) {
	engine := newTestEngine(t)
	userTeam := 0
	preset := Preset{
		Name:      "home league",
		TeamNames: []string{"ME", "RIVAL"},
		UserTeam:  &userTeam,
		Trades:    []trade.Trade{{Kind: trade.KindPick, TeamA: 0, PickA: 1, TeamB: 1, PickB: 2}},
		Exclusions: map[int][]string{
			1: {"Ja'Marr Chase"},
		},
	}

	require.NoError(t, engine.ApplyPreset(preset))
	assert.Equal(t, StateInProgress, engine.State())
	assert.Equal(t, "RIVAL", engine.TeamName(1))
	assert.Equal(t, "PETER", engine.TeamName(2))

	// pick 1 went to team 1, which refuses chase
	made, err := engine.AdvanceComputerPicks()
	require.NoError(t, err)
	require.Len(t, made, 1)
	assert.Equal(t, 1, made[0].TeamID)
	assert.NotEqual(t, "chase", made[0].Player.ID)

	require.ErrorIs(t, engine.ApplyPreset(preset), ErrAlreadyStarted)
}

func TestEngine_Summary(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SelectUserSlot(0))
	engine.SetManualMode(true)

	// ADP 100 at pick 1 is a reach of 99
	_, err := engine.DraftPlayer("p099", OnTheClock)
	require.NoError(t, err)
	for _, id := range []string{"p000", "p003", "chase", "p005", "p006", "p007", "p008", "p009"} {
		_, err = engine.DraftPlayer(id, OnTheClock)
		require.NoError(t, err)
	}
	// ADP 2 at pick 10 is a value of 8
	_, err = engine.DraftPlayer("p001", OnTheClock)
	require.NoError(t, err)

	summary := engine.Summary()
	assert.Equal(t, 10, summary.PicksMade)
	require.Len(t, summary.ValuePicks, 1)
	assert.Equal(t, "p001", summary.ValuePicks[0].Entry.Player.ID)
	assert.InDelta(t, 8, summary.ValuePicks[0].Delta, 0.001)
	require.NotEmpty(t, summary.Reaches)
	assert.Equal(t, "p099", summary.Reaches[0].Entry.Player.ID)

	require.NotNil(t, summary.UserTeam)
	assert.Equal(t, "KARWAN", summary.UserTeam.Name)
}

func TestEngine_RoundPlan(t *testing.T) {
	engine := newTestEngine(t)

	require.NoError(t, engine.SetRoundTarget("p050", 5))
	require.NoError(t, engine.SetRoundTarget("p040", 5))
	require.ErrorIs(t, engine.SetRoundTarget("p060", 17), ErrInvalidRound)
	require.ErrorIs(t, engine.SetRoundTarget("missing", 2), ErrNotFound)

	planned := engine.PlannedForRound(5)
	require.Len(t, planned, 2)
	assert.Equal(t, "p040", planned[0].ID)

	engine.ClearRoundTarget("p040")
	assert.Equal(t, map[string]int{"p050": 5}, engine.RoundPlan())
}
