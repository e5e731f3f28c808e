package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/mock-draft/internal/domain/autopick"
	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/platform/id"
	"github.com/riskibarqy/mock-draft/internal/platform/logging"
)

type DraftServiceConfig struct {
	Settings draft.Settings
	Autopick autopick.Config
	// SessionIdleTTL evicts sessions nobody touched for this long; zero keeps them.
	SessionIdleTTL time.Duration
	// Seed makes computer picks reproducible; zero seeds from the clock.
	Seed int64
}

func DefaultDraftServiceConfig() DraftServiceConfig {
	return DraftServiceConfig{
		Settings:       draft.DefaultSettings(),
		Autopick:       autopick.DefaultConfig(),
		SessionIdleTTL: 6 * time.Hour,
	}
}

type DraftServiceOption func(*DraftService)

func WithClock(clock clockwork.Clock) DraftServiceOption {
	return func(s *DraftService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithLogger(logger *logging.Logger) DraftServiceOption {
	return func(s *DraftService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithPublisher(publisher EventPublisher) DraftServiceOption {
	return func(s *DraftService) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

// WithSessionClosedHook runs after a session is deleted or evicted.
func WithSessionClosedHook(hook func(sessionID string)) DraftServiceOption {
	return func(s *DraftService) {
		s.onClosed = hook
	}
}

func WithIDGenerator(ids id.Generator) DraftServiceOption {
	return func(s *DraftService) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// DraftService owns live draft sessions. Each session has its own engine
// and every call on a session runs under that session's mutex.
type DraftService struct {
	players   player.Repository
	customADP player.CustomADPRepository
	saved     draft.Repository
	presets   draft.PresetRepository

	cfg       DraftServiceConfig
	clock     clockwork.Clock
	logger    *logging.Logger
	publisher EventPublisher
	ids       id.Generator
	onClosed  func(sessionID string)

	mu       sync.RWMutex
	sessions map[string]*draftSession
	seedSeq  atomic.Int64
}

type draftSession struct {
	mu sync.Mutex

	id           string
	preset       string
	engine       *draft.Engine
	createdAt    time.Time
	onClockSince time.Time
	pending      []draft.Event

	lastUsed atomic.Int64
}

func (sess *draftSession) touch(at time.Time) {
	sess.lastUsed.Store(at.UnixNano())
}

func (sess *draftSession) idleSince() time.Time {
	return time.Unix(0, sess.lastUsed.Load())
}

func NewDraftService(
	players player.Repository,
	customADP player.CustomADPRepository,
	saved draft.Repository,
	presets draft.PresetRepository,
	cfg DraftServiceConfig,
	opts ...DraftServiceOption,
) *DraftService {
	defaults := DefaultDraftServiceConfig()
	if cfg.Settings.NumTeams == 0 {
		cfg.Settings = defaults.Settings
	}
	if cfg.Autopick.BestAvailableThrough == 0 && cfg.Autopick.TopChoiceProbability == 0 {
		cfg.Autopick = defaults.Autopick
	}

	s := &DraftService{
		players:   players,
		customADP: customADP,
		saved:     saved,
		presets:   presets,
		cfg:       cfg,
		clock:     clockwork.NewRealClock(),
		logger:    logging.Default(),
		publisher: noopPublisher{},
		ids:       id.NewUUIDGenerator(),
		sessions:  make(map[string]*draftSession),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateSessionInput struct {
	Preset       string
	UserTeam     *int
	UseCustomADP bool
	Seed         *int64
}

func (s *DraftService) CreateSession(ctx context.Context, input CreateSessionInput) (SessionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CreateSession")
	defer span.End()

	var preset *draft.Preset
	if name := strings.TrimSpace(input.Preset); name != "" {
		if s.presets == nil {
			return SessionView{}, fmt.Errorf("%w: presets are not configured", ErrNotFound)
		}
		p, err := s.presets.Get(ctx, name)
		if err != nil {
			return SessionView{}, s.repoError("get preset", err)
		}
		preset = &p
	}

	seed := s.nextSeed()
	if input.Seed != nil {
		seed = *input.Seed
	}

	engine, err := s.newEngine(ctx, s.cfg.Settings, seed, input.UseCustomADP)
	if err != nil {
		recordSpanError(span, err)
		return SessionView{}, err
	}

	if preset != nil {
		if err := engine.ApplyPreset(*preset); err != nil {
			return SessionView{}, mapDraftError(err)
		}
	}
	if input.UserTeam != nil && engine.State() == draft.StateAwaitingTeamSelection {
		if err := engine.SelectUserSlot(*input.UserTeam); err != nil {
			return SessionView{}, mapDraftError(err)
		}
	}

	sess, err := s.register(engine)
	if err != nil {
		return SessionView{}, err
	}
	if preset != nil {
		sess.preset = preset.Name
	}
	setSessionAttribute(span, sess.id)

	s.logger.InfoContext(ctx, "draft session created",
		"session_id", sess.id,
		"preset", sess.preset,
		"seed", seed,
		"user_team", engine.UserTeam(),
	)

	return s.mutate(ctx, sess.id, true, func(*draftSession) error { return nil })
}

func (s *DraftService) GetSession(ctx context.Context, sessionID string) (SessionView, error) {
	var view SessionView
	err := s.read(ctx, sessionID, func(sess *draftSession) error {
		view = newViewer(sess.engine).session(sess, nil)
		return nil
	})
	return view, err
}

func (s *DraftService) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: session=%s", ErrNotFound, sessionID)
	}
	s.closed(sessionID)
	s.logger.InfoContext(ctx, "draft session deleted", "session_id", sessionID)
	return nil
}

func (s *DraftService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *DraftService) ApplyPreset(ctx context.Context, sessionID, name string) (SessionView, error) {
	if s.presets == nil {
		return SessionView{}, fmt.Errorf("%w: presets are not configured", ErrNotFound)
	}
	preset, err := s.presets.Get(ctx, name)
	if err != nil {
		return SessionView{}, s.repoError("get preset", err)
	}

	return s.mutate(ctx, sessionID, true, func(sess *draftSession) error {
		if err := sess.engine.ApplyPreset(preset); err != nil {
			return err
		}
		sess.preset = preset.Name
		return nil
	})
}

func (s *DraftService) SelectTeam(ctx context.Context, sessionID string, teamID int) (SessionView, error) {
	return s.mutate(ctx, sessionID, true, func(sess *draftSession) error {
		return sess.engine.SelectUserSlot(teamID)
	})
}

type DraftPlayerInput struct {
	PlayerID string
	// TeamID picks for a specific team; only manual mode accepts a team
	// other than the one on the clock.
	TeamID *int
}

func (s *DraftService) DraftPlayer(ctx context.Context, sessionID string, input DraftPlayerInput) (SessionView, error) {
	playerID := strings.TrimSpace(input.PlayerID)
	if playerID == "" {
		return SessionView{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	acting := draft.OnTheClock
	if input.TeamID != nil {
		acting = *input.TeamID
	}

	return s.mutate(ctx, sessionID, true, func(sess *draftSession) error {
		_, err := sess.engine.DraftPlayer(playerID, acting)
		return err
	})
}

// ComputerPick lets the policy pick for whoever is on the clock, including
// the user when the pick timer runs out.
func (s *DraftService) ComputerPick(ctx context.Context, sessionID string) (SessionView, error) {
	return s.mutate(ctx, sessionID, true, func(sess *draftSession) error {
		_, err := sess.engine.ComputerPick()
		return err
	})
}

// Undo takes back the last pick. Computer teams then pick again until the
// user is back on the clock, so undoing a computer pick redraws it.
func (s *DraftService) Undo(ctx context.Context, sessionID string) (SessionView, error) {
	return s.mutate(ctx, sessionID, true, func(sess *draftSession) error {
		_, err := sess.engine.UndoLastPick()
		return err
	})
}

// RevertToPick undoes picks back to target and reports how many were undone.
// Computer picks from target onward are remade up to the user's next turn.
func (s *DraftService) RevertToPick(ctx context.Context, sessionID string, target int) (SessionView, int, error) {
	if target < 1 {
		return SessionView{}, 0, fmt.Errorf("%w: target pick must be positive", ErrInvalidInput)
	}

	undone := 0
	view, err := s.mutate(ctx, sessionID, true, func(sess *draftSession) error {
		undone = sess.engine.RevertToPick(target)
		return nil
	})
	return view, undone, err
}

func (s *DraftService) Restart(ctx context.Context, sessionID string) (SessionView, error) {
	return s.mutate(ctx, sessionID, false, func(sess *draftSession) error {
		sess.engine.Restart()
		return nil
	})
}

func (s *DraftService) SetManualMode(ctx context.Context, sessionID string, on bool) (SessionView, error) {
	return s.mutate(ctx, sessionID, !on, func(sess *draftSession) error {
		sess.engine.SetManualMode(on)
		return nil
	})
}

// SetADPMode switches the session between original and custom ADP. Custom
// values are reloaded from the repository on every switch.
func (s *DraftService) SetADPMode(ctx context.Context, sessionID string, useCustom bool) (SessionView, error) {
	var overrides map[string]float64
	if useCustom {
		loaded, err := s.loadCustomADP(ctx)
		if err != nil {
			return SessionView{}, err
		}
		overrides = loaded
	}

	return s.mutate(ctx, sessionID, false, func(sess *draftSession) error {
		if useCustom {
			sess.engine.ReapplyCustomADP(overrides)
		}
		sess.engine.SetADPMode(useCustom)
		return nil
	})
}

type PickTradeInput struct {
	TeamA int
	PickA int
	TeamB int
	PickB int
}

func (s *DraftService) RecordPickTrade(ctx context.Context, sessionID string, input PickTradeInput) (SessionView, error) {
	return s.mutate(ctx, sessionID, true, func(sess *draftSession) error {
		_, err := sess.engine.RecordPickTrade(input.TeamA, input.PickA, input.TeamB, input.PickB)
		return err
	})
}

type RoundTradeInput struct {
	TeamA   int
	RoundsA []int
	TeamB   int
	RoundsB []int
}

func (s *DraftService) RecordRoundTrade(ctx context.Context, sessionID string, input RoundTradeInput) (SessionView, error) {
	return s.mutate(ctx, sessionID, true, func(sess *draftSession) error {
		_, err := sess.engine.RecordRoundTrade(input.TeamA, input.RoundsA, input.TeamB, input.RoundsB)
		return err
	})
}

func (s *DraftService) ClearTrades(ctx context.Context, sessionID string) (SessionView, error) {
	return s.mutate(ctx, sessionID, true, func(sess *draftSession) error {
		sess.engine.ClearTrades()
		return nil
	})
}

func (s *DraftService) SetRoundTarget(ctx context.Context, sessionID, playerID string, round int) (SessionView, error) {
	return s.mutate(ctx, sessionID, false, func(sess *draftSession) error {
		return sess.engine.SetRoundTarget(strings.TrimSpace(playerID), round)
	})
}

func (s *DraftService) ClearRoundTarget(ctx context.Context, sessionID, playerID string) (SessionView, error) {
	return s.mutate(ctx, sessionID, false, func(sess *draftSession) error {
		sess.engine.ClearRoundTarget(strings.TrimSpace(playerID))
		return nil
	})
}

func (s *DraftService) PlannedForRound(ctx context.Context, sessionID string, round int) ([]PlayerView, error) {
	var out []PlayerView
	err := s.read(ctx, sessionID, func(sess *draftSession) error {
		out = newViewer(sess.engine).players(sess.engine.PlannedForRound(round))
		return nil
	})
	return out, err
}

func (s *DraftService) Summary(ctx context.Context, sessionID string) (SummaryView, error) {
	var out SummaryView
	err := s.read(ctx, sessionID, func(sess *draftSession) error {
		out = newViewer(sess.engine).summary()
		return nil
	})
	return out, err
}

type PlayerFilter struct {
	Position       player.Position
	Query          string
	IncludeDrafted bool
	Limit          int
}

// ListPlayers returns players ordered by effective ADP.
func (s *DraftService) ListPlayers(ctx context.Context, sessionID string, filter PlayerFilter) ([]PlayerView, error) {
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	var out []PlayerView
	err := s.read(ctx, sessionID, func(sess *draftSession) error {
		items := sess.engine.Available()
		if filter.IncludeDrafted {
			items = allByADP(sess.engine)
		}

		v := newViewer(sess.engine)
		out = make([]PlayerView, 0, len(items))
		for _, p := range items {
			if filter.Position != "" && p.Position != filter.Position {
				continue
			}
			if query != "" && !strings.Contains(strings.ToLower(p.Name), query) &&
				!strings.EqualFold(p.Team, query) {
				continue
			}
			out = append(out, v.player(p))
			if filter.Limit > 0 && len(out) == filter.Limit {
				break
			}
		}
		return nil
	})
	return out, err
}

func allByADP(e *draft.Engine) []*player.Player {
	items := append(e.Available(), e.Drafted()...)
	slices.SortStableFunc(items, func(a, b *player.Player) int {
		return cmp.Compare(a.ADP, b.ADP)
	})
	return items
}

type SavedDraftInfo struct {
	ID         string
	Name       string
	PickNumber int
	CreatedAt  time.Time
}

func (s *DraftService) SaveDraft(ctx context.Context, sessionID, name string) (SavedDraftInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.SaveDraft")
	defer span.End()
	setSessionAttribute(span, sessionID)

	name = strings.TrimSpace(name)
	if name == "" {
		return SavedDraftInfo{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	var snapshot draft.Snapshot
	if err := s.read(ctx, sessionID, func(sess *draftSession) error {
		snapshot = sess.engine.Snapshot()
		return nil
	}); err != nil {
		return SavedDraftInfo{}, err
	}

	savedID, err := s.ids.NewID()
	if err != nil {
		return SavedDraftInfo{}, fmt.Errorf("generate saved draft id: %w", err)
	}

	saved := draft.SavedDraft{
		ID:         savedID,
		Name:       name,
		PickNumber: snapshot.PickNumber,
		Snapshot:   snapshot,
		CreatedAt:  s.clock.Now().UTC(),
	}
	if err := s.saved.Save(ctx, saved); err != nil {
		recordSpanError(span, err)
		return SavedDraftInfo{}, s.repoError("save draft", err)
	}

	s.logger.InfoContext(ctx, "draft saved",
		"session_id", sessionID,
		"saved_id", saved.ID,
		"pick_number", saved.PickNumber,
	)
	return savedInfo(saved), nil
}

func (s *DraftService) ListSavedDrafts(ctx context.Context) ([]SavedDraftInfo, error) {
	items, err := s.saved.List(ctx)
	if err != nil {
		return nil, s.repoError("list saved drafts", err)
	}

	out := make([]SavedDraftInfo, 0, len(items))
	for _, item := range items {
		out = append(out, savedInfo(item))
	}
	return out, nil
}

// LoadSavedDraft restores a saved draft into a new session. Entries the
// current player list cannot resolve are skipped and logged.
func (s *DraftService) LoadSavedDraft(ctx context.Context, savedID string) (SessionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.LoadSavedDraft")
	defer span.End()

	saved, err := s.saved.Get(ctx, strings.TrimSpace(savedID))
	if err != nil {
		return SessionView{}, s.repoError("get saved draft", err)
	}

	settings := s.cfg.Settings
	if saved.Snapshot.NumTeams > 0 {
		settings.NumTeams = saved.Snapshot.NumTeams
	}
	if saved.Snapshot.NumRounds > 0 {
		settings.NumRounds = saved.Snapshot.NumRounds
	}
	if len(settings.TeamNames) > settings.NumTeams {
		settings.TeamNames = settings.TeamNames[:settings.NumTeams]
	}

	engine, err := s.newEngine(ctx, settings, s.nextSeed(), saved.Snapshot.UseCustomADP)
	if err != nil {
		recordSpanError(span, err)
		return SessionView{}, err
	}
	report := engine.Restore(saved.Snapshot)

	sess, err := s.register(engine)
	if err != nil {
		return SessionView{}, err
	}
	sess.preset = engine.PresetName()
	setSessionAttribute(span, sess.id)

	if !report.Clean() {
		s.logger.WarnContext(ctx, "saved draft restored with skipped entries",
			"session_id", sess.id,
			"saved_id", saved.ID,
			"applied_picks", report.AppliedPicks,
			"skipped_player_ids", report.SkippedPlayerIDs,
			"skipped_trades", report.SkippedTrades,
			"dropped_plan_ids", report.DroppedPlanIDs,
		)
	}

	return s.mutate(ctx, sess.id, true, func(*draftSession) error { return nil })
}

func (s *DraftService) DeleteSavedDraft(ctx context.Context, savedID string) error {
	if err := s.saved.Delete(ctx, strings.TrimSpace(savedID)); err != nil {
		return s.repoError("delete saved draft", err)
	}
	return nil
}

func (s *DraftService) ListPresets(ctx context.Context) ([]draft.Preset, error) {
	if s.presets == nil {
		return []draft.Preset{}, nil
	}
	items, err := s.presets.List(ctx)
	if err != nil {
		return nil, s.repoError("list presets", err)
	}
	return items, nil
}

// EvictIdleSessions drops sessions idle for longer than SessionIdleTTL.
func (s *DraftService) EvictIdleSessions(ctx context.Context) int {
	if s.cfg.SessionIdleTTL <= 0 {
		return 0
	}
	cutoff := s.clock.Now().Add(-s.cfg.SessionIdleTTL)

	s.mu.Lock()
	evicted := make([]string, 0)
	for sessionID, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(s.sessions, sessionID)
			evicted = append(evicted, sessionID)
		}
	}
	s.mu.Unlock()

	for _, sessionID := range evicted {
		s.closed(sessionID)
	}
	if len(evicted) > 0 {
		s.logger.InfoContext(ctx, "idle draft sessions evicted", "count", len(evicted), "session_ids", evicted)
	}
	return len(evicted)
}

func (s *DraftService) closed(sessionID string) {
	if s.onClosed != nil {
		s.onClosed(sessionID)
	}
}

// RunSessionEvictor evicts idle sessions every interval until ctx is done.
func (s *DraftService) RunSessionEvictor(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.cfg.SessionIdleTTL <= 0 {
		return
	}

	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.EvictIdleSessions(ctx)
		}
	}
}

// newEngine loads the player list and the stored custom ADP values. The
// session starts in custom ADP mode only when useCustomADP is set.
func (s *DraftService) newEngine(ctx context.Context, settings draft.Settings, seed int64, useCustomADP bool) (*draft.Engine, error) {
	players, err := s.players.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list players: %w", ErrDependencyUnavailable, err)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: player list is empty", ErrDependencyUnavailable)
	}

	policy := autopick.NewPolicy(s.cfg.Autopick, rand.New(rand.NewSource(seed)))
	engine, err := draft.NewEngine(settings, players, policy)
	if err != nil {
		if errors.Is(err, draft.ErrInvalidSettings) {
			return nil, mapDraftError(err)
		}
		return nil, fmt.Errorf("%w: load players: %w", ErrDependencyUnavailable, err)
	}

	overrides, err := s.loadCustomADP(ctx)
	if err != nil {
		return nil, err
	}
	engine.ReapplyCustomADP(overrides)
	engine.SetADPMode(useCustomADP)
	return engine, nil
}

func (s *DraftService) loadCustomADP(ctx context.Context) (map[string]float64, error) {
	if s.customADP == nil {
		return map[string]float64{}, nil
	}
	overrides, err := s.customADP.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list custom adp: %w", ErrDependencyUnavailable, err)
	}
	return overrides, nil
}

func (s *DraftService) register(engine *draft.Engine) (*draftSession, error) {
	sessionID, err := s.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	now := s.clock.Now()
	sess := &draftSession{
		id:           sessionID,
		engine:       engine,
		createdAt:    now.UTC(),
		onClockSince: now,
	}
	sess.touch(now)
	engine.SetObserver(func(ev draft.Event) {
		sess.pending = append(sess.pending, ev)
	})

	s.mu.Lock()
	s.sessions[sessionID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *DraftService) session(sessionID string) (*draftSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: session=%s", ErrNotFound, sessionID)
	}
	return sess, nil
}

func (s *DraftService) read(_ context.Context, sessionID string, fn func(*draftSession) error) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch(s.clock.Now())
	return mapDraftError(fn(sess))
}

// mutate runs fn under the session lock, optionally chains computer picks,
// and publishes the resulting events once the lock is released.
func (s *DraftService) mutate(ctx context.Context, sessionID string, advance bool, fn func(*draftSession) error) (SessionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.mutate")
	defer span.End()
	setSessionAttribute(span, sessionID)

	sess, err := s.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}

	sess.mu.Lock()
	e := sess.engine
	now := s.clock.Now()
	beforePick, beforeState := e.PickNumber(), e.State()

	err = fn(sess)
	var auto []draft.HistoryEntry
	if err == nil && advance {
		auto, err = e.AdvanceComputerPicks()
	}
	if e.PickNumber() != beforePick || e.State() != beforeState {
		sess.onClockSince = now
	}

	var view SessionView
	if err == nil {
		view = newViewer(e).session(sess, auto)
	}
	events := s.drainEvents(sess, now)
	sess.touch(now)
	sess.mu.Unlock()

	s.publish(ctx, events)

	if err != nil {
		recordSpanError(span, err)
		return SessionView{}, mapDraftError(err)
	}
	return view, nil
}

func (s *DraftService) drainEvents(sess *draftSession, at time.Time) []PickEvent {
	if len(sess.pending) == 0 {
		return nil
	}
	numTeams := sess.engine.Settings().NumTeams
	out := make([]PickEvent, 0, len(sess.pending))
	for _, ev := range sess.pending {
		out = append(out, newPickEvent(sess.id, ev, numTeams, sess.engine.TeamName, at))
	}
	sess.pending = sess.pending[:0]
	return out
}

func (s *DraftService) publish(ctx context.Context, events []PickEvent) {
	if len(events) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, ev := range events {
		if err := s.publisher.Publish(ctx, ev); err != nil {
			s.logger.WarnContext(ctx, "publish pick event failed",
				"session_id", ev.SessionID,
				"kind", ev.Kind,
				"pick", ev.Pick,
				"error", err,
			)
		}
	}
}

func (s *DraftService) nextSeed() int64 {
	n := s.seedSeq.Add(1)
	if s.cfg.Seed != 0 {
		return s.cfg.Seed + n - 1
	}
	return s.clock.Now().UnixNano() + n
}

func (s *DraftService) repoError(op string, err error) error {
	switch {
	case errors.Is(err, draft.ErrSavedDraftNotFound), errors.Is(err, draft.ErrPresetNotFound):
		return fmt.Errorf("%s: %w", op, mapDraftError(err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
	}
}

func savedInfo(item draft.SavedDraft) SavedDraftInfo {
	return SavedDraftInfo{
		ID:         item.ID,
		Name:       item.Name,
		PickNumber: item.PickNumber,
		CreatedAt:  item.CreatedAt,
	}
}
