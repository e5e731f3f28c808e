package draft

import (
	"errors"
	"fmt"
	"slices"

	"github.com/riskibarqy/mock-draft/internal/domain/autopick"
	"github.com/riskibarqy/mock-draft/internal/domain/draftorder"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/domain/roster"
	"github.com/riskibarqy/mock-draft/internal/domain/trade"
)

// Engine runs a single draft. It is not safe for concurrent use; callers
// serialize access per draft.
type Engine struct {
	settings Settings
	order    draftorder.Order
	pool     *player.Pool
	rosters  *roster.Manager
	trades   *trade.Ledger
	policy   *autopick.Policy

	history   []HistoryEntry
	pick      int
	state     State
	userTeam  int
	manual    bool
	advancing bool
	plan      map[string]int

	preset     string
	exclusions map[int][]string

	observer func(Event)
}

func NewEngine(settings Settings, players []player.Player, policy *autopick.Policy) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	order, err := draftorder.Compute(settings.NumTeams, settings.NumRounds, settings.ThirdRoundReversal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	pool := player.NewPool(player.PoolConfig{
		NumTeams:         settings.NumTeams,
		ReplacementRanks: settings.ReplacementRanks,
	})
	if err := pool.Load(players); err != nil {
		return nil, err
	}

	if policy == nil {
		policy = autopick.NewPolicy(autopick.DefaultConfig(), nil)
	}

	return &Engine{
		settings: settings,
		order:    order,
		pool:     pool,
		rosters:  roster.NewManager(settings.NumTeams, settings.TeamNames, settings.Limits, settings.Needs),
		trades:   trade.NewLedger(settings.NumTeams, settings.NumRounds),
		policy:   policy,
		pick:     1,
		state:    StateAwaitingTeamSelection,
		userTeam: player.NoTeam,
		plan:     make(map[string]int),
	}, nil
}

// SetObserver registers fn to receive every pick, undo and restart.
func (e *Engine) SetObserver(fn func(Event)) {
	e.observer = fn
}

func (e *Engine) Settings() Settings {
	return e.settings
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) PickNumber() int {
	return e.pick
}

func (e *Engine) UserTeam() int {
	return e.userTeam
}

// PresetName is the preset the draft was set up from, empty when none.
func (e *Engine) PresetName() string {
	return e.preset
}

func (e *Engine) ManualMode() bool {
	return e.manual
}

func (e *Engine) SetManualMode(on bool) {
	e.manual = on
}

func (e *Engine) Order() draftorder.Order {
	return e.order
}

func (e *Engine) Player(playerID string) (*player.Player, bool) {
	return e.pool.Get(playerID)
}

func (e *Engine) Available() []*player.Player {
	return e.pool.Available()
}

func (e *Engine) Drafted() []*player.Player {
	return e.pool.Drafted()
}

func (e *Engine) Teams() []*roster.Team {
	return e.rosters.Teams()
}

func (e *Engine) TeamName(teamID int) string {
	return e.rosters.Name(teamID)
}

func (e *Engine) History() []HistoryEntry {
	return slices.Clone(e.history)
}

// SelectUserSlot assigns the human team and starts the draft.
func (e *Engine) SelectUserSlot(teamID int) error {
	if e.state != StateAwaitingTeamSelection {
		return ErrAlreadyStarted
	}
	if teamID < 0 || teamID >= e.settings.NumTeams {
		return fmt.Errorf("%w: team=%d", ErrInvalidTeam, teamID)
	}

	e.userTeam = teamID
	e.state = StateInProgress
	return nil
}

// CurrentPickInfo reports who is on the clock. Once complete only Pick and
// Complete are meaningful.
func (e *Engine) CurrentPickInfo() PickInfo {
	if e.pick > e.settings.TotalPicks() {
		return PickInfo{
			Pick:          e.pick,
			NaturalTeamID: player.NoTeam,
			TeamID:        player.NoTeam,
			Complete:      true,
		}
	}

	round, slot := draftorder.RoundAndSlotFor(e.pick, e.settings.NumTeams)
	natural, _ := e.order.TeamAt(round, slot)
	team := e.trades.Resolve(natural, round, e.pick)

	return PickInfo{
		Pick:          e.pick,
		Round:         round,
		Slot:          slot,
		Label:         draftorder.Label(e.pick, e.settings.NumTeams),
		NaturalTeamID: natural,
		TeamID:        team,
		TeamName:      e.rosters.Name(team),
		Traded:        team != natural,
		IsUserTurn:    e.state == StateInProgress && team == e.userTeam,
	}
}

// DraftPlayer applies a human pick. actingTeam is OnTheClock or, in manual
// mode, any team.
func (e *Engine) DraftPlayer(playerID string, actingTeam int) (HistoryEntry, error) {
	if err := e.checkPickable(); err != nil {
		return HistoryEntry{}, err
	}

	p, ok := e.pool.Get(playerID)
	if !ok {
		return HistoryEntry{}, fmt.Errorf("%w: id=%s", ErrNotFound, playerID)
	}
	if p.Drafted() {
		return HistoryEntry{}, fmt.Errorf("%w: id=%s", ErrAlreadyDrafted, playerID)
	}

	info := e.CurrentPickInfo()
	team := info.TeamID
	if actingTeam != OnTheClock {
		if actingTeam < 0 || actingTeam >= e.settings.NumTeams {
			return HistoryEntry{}, fmt.Errorf("%w: team=%d", ErrInvalidTeam, actingTeam)
		}
		if !e.manual && actingTeam != team {
			return HistoryEntry{}, fmt.Errorf("%w: pick %d belongs to team %d", ErrNotUserTurn, info.Pick, team)
		}
		team = actingTeam
	}
	if e.settings.StrictTurns && !e.manual && team != e.userTeam {
		return HistoryEntry{}, fmt.Errorf("%w: pick %d belongs to team %d", ErrNotUserTurn, info.Pick, team)
	}

	return e.apply(p, team, info)
}

// ComputerPick lets the policy pick for whichever team is on the clock.
func (e *Engine) ComputerPick() (HistoryEntry, error) {
	if err := e.checkPickable(); err != nil {
		return HistoryEntry{}, err
	}

	info := e.CurrentPickInfo()
	p, err := e.policy.SelectPick(e.pool, e.rosters, info.TeamID, info.Pick)
	if err != nil {
		return HistoryEntry{}, err
	}
	return e.apply(p, info.TeamID, info)
}

// AdvanceComputerPicks makes computer picks until the user is on the clock,
// the pool runs dry or the draft completes. Manual mode never advances.
func (e *Engine) AdvanceComputerPicks() ([]HistoryEntry, error) {
	if e.manual || e.state != StateInProgress {
		return nil, nil
	}
	if e.advancing {
		return nil, ErrAdvanceInProgress
	}
	e.advancing = true
	defer func() { e.advancing = false }()

	var made []HistoryEntry
	for e.state == StateInProgress {
		if e.CurrentPickInfo().IsUserTurn {
			break
		}
		entry, err := e.ComputerPick()
		if errors.Is(err, ErrNoPlayersAvailable) {
			break
		}
		if err != nil {
			return made, err
		}
		made = append(made, entry)
	}
	return made, nil
}

func (e *Engine) UndoLastPick() (HistoryEntry, error) {
	if len(e.history) == 0 {
		return HistoryEntry{}, ErrNothingToUndo
	}

	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]

	e.rosters.RemovePick(last.TeamID, last.Player.ID)
	if err := e.pool.MarkAvailable(last.Player.ID); err != nil {
		return HistoryEntry{}, err
	}

	e.pick = last.Pick
	if e.state == StateComplete {
		e.state = StateInProgress
	}

	e.emit(Event{Kind: EventUndo, Entry: last, Next: e.CurrentPickInfo()})
	return last, nil
}

// RevertToPick undoes picks until the counter is back at target. It stops
// early when history runs out and returns the number of picks undone.
func (e *Engine) RevertToPick(target int) int {
	undone := 0
	for e.pick > target {
		if _, err := e.UndoLastPick(); err != nil {
			break
		}
		undone++
	}
	return undone
}

// Restart clears picks and trades and waits for a new team selection.
// Manual mode, team names and preset exclusions carry over.
func (e *Engine) Restart() {
	e.pool.Reset()
	e.rosters.Reset()
	e.trades.Clear()
	e.history = nil
	e.pick = 1
	e.state = StateAwaitingTeamSelection
	e.userTeam = player.NoTeam

	e.emit(Event{Kind: EventRestart, Next: e.CurrentPickInfo()})
}

func (e *Engine) SetADPMode(useCustom bool) {
	e.pool.SetADPMode(useCustom)
}

func (e *Engine) UsingCustomADP() bool {
	return e.pool.UsingCustomADP()
}

func (e *Engine) ReapplyCustomADP(overrides map[string]float64) {
	e.pool.ReapplyCustomADP(overrides)
}

func (e *Engine) RecordPickTrade(teamA, pickA, teamB, pickB int) (trade.Trade, error) {
	return e.trades.RecordPickTrade(teamA, pickA, teamB, pickB)
}

func (e *Engine) RecordRoundTrade(teamA int, roundsA []int, teamB int, roundsB []int) (trade.Trade, error) {
	return e.trades.RecordRoundTrade(teamA, roundsA, teamB, roundsB)
}

func (e *Engine) Trades() []trade.Trade {
	return e.trades.Trades()
}

func (e *Engine) ClearTrades() {
	e.trades.Clear()
}

func (e *Engine) TradeDescriptions() []string {
	trades := e.trades.Trades()
	out := make([]string, 0, len(trades))
	for _, t := range trades {
		out = append(out, trade.Describe(t, e.rosters.Name))
	}
	return out
}

func (e *Engine) checkPickable() error {
	switch e.state {
	case StateAwaitingTeamSelection:
		return ErrNotStarted
	case StateComplete:
		return ErrDraftComplete
	}
	if e.pick > e.settings.TotalPicks() {
		return ErrDraftComplete
	}
	return nil
}

func (e *Engine) apply(p *player.Player, teamID int, info PickInfo) (HistoryEntry, error) {
	if !e.rosters.CanDraft(teamID, p.Position) {
		return HistoryEntry{}, fmt.Errorf("%w: team=%d position=%s", ErrPositionLimitReached, teamID, p.Position)
	}
	if err := e.pool.MarkDrafted(p.ID, teamID, info.Pick); err != nil {
		return HistoryEntry{}, err
	}
	if err := e.rosters.AddPick(teamID, p); err != nil {
		_ = e.pool.MarkAvailable(p.ID)
		return HistoryEntry{}, err
	}

	entry := HistoryEntry{
		Pick:   info.Pick,
		Round:  info.Round,
		Slot:   info.Slot,
		TeamID: teamID,
		Player: p,
	}
	e.history = append(e.history, entry)
	e.pick++
	if e.pick > e.settings.TotalPicks() {
		e.state = StateComplete
	}

	e.emit(Event{Kind: EventPick, Entry: entry, Next: e.CurrentPickInfo()})
	return entry, nil
}

func (e *Engine) emit(ev Event) {
	if e.observer != nil {
		e.observer(ev)
	}
}
