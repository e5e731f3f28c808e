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

	"github.com/jonboulle/clockwork"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/mock-draft/internal/domain/autopick"
	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/platform/logging"
)

const (
	defaultSimulationWorkers = 4
	maxSimulationRuns        = 500
)

type SimulationInput struct {
	Runs         int
	Seed         int64
	Preset       string
	UseCustomADP bool
}

type SimulationResult struct {
	Runs        int            `json:"runs"`
	FailedRuns  int            `json:"failed_runs"`
	WorkerCount int            `json:"worker_count"`
	DurationMs  int64          `json:"duration_ms"`
	Players     []SimulatedADP `json:"players"`
}

// SimulatedADP is where a player went across simulated drafts.
type SimulatedADP struct {
	PlayerID     string          `json:"player_id"`
	Name         string          `json:"name"`
	Position     player.Position `json:"position"`
	ADP          float64         `json:"adp"`
	AveragePick  float64         `json:"average_pick"`
	MinPick      int             `json:"min_pick"`
	MaxPick      int             `json:"max_pick"`
	TimesDrafted int             `json:"times_drafted"`
}

// SimulationService runs full computer-only drafts on a worker pool.
type SimulationService struct {
	players   player.Repository
	customADP player.CustomADPRepository
	presets   draft.PresetRepository
	settings  draft.Settings
	autopick  autopick.Config
	workers   int
	clock     clockwork.Clock
	logger    *logging.Logger
}

func NewSimulationService(
	players player.Repository,
	customADP player.CustomADPRepository,
	presets draft.PresetRepository,
	cfg DraftServiceConfig,
	workers int,
	logger *logging.Logger,
) *SimulationService {
	if workers < 1 {
		workers = defaultSimulationWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Settings.NumTeams == 0 {
		cfg.Settings = draft.DefaultSettings()
	}
	if cfg.Autopick.BestAvailableThrough == 0 && cfg.Autopick.TopChoiceProbability == 0 {
		cfg.Autopick = autopick.DefaultConfig()
	}

	return &SimulationService{
		players:   players,
		customADP: customADP,
		presets:   presets,
		settings:  cfg.Settings,
		autopick:  cfg.Autopick,
		workers:   workers,
		clock:     clockwork.NewRealClock(),
		logger:    logger,
	}
}

type simulationRun struct {
	picks map[string]int
	err   error
}

func (s *SimulationService) Run(ctx context.Context, input SimulationInput) (SimulationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationService.Run")
	defer span.End()

	if input.Runs < 1 || input.Runs > maxSimulationRuns {
		return SimulationResult{}, fmt.Errorf("%w: runs must be between 1 and %d", ErrInvalidInput, maxSimulationRuns)
	}

	players, err := s.players.List(ctx)
	if err != nil {
		recordSpanError(span, err)
		return SimulationResult{}, fmt.Errorf("%w: list players: %w", ErrDependencyUnavailable, err)
	}

	var overrides map[string]float64
	if input.UseCustomADP && s.customADP != nil {
		overrides, err = s.customADP.List(ctx)
		if err != nil {
			recordSpanError(span, err)
			return SimulationResult{}, fmt.Errorf("%w: list custom adp: %w", ErrDependencyUnavailable, err)
		}
	}

	var preset *draft.Preset
	if name := strings.TrimSpace(input.Preset); name != "" && s.presets != nil {
		p, err := s.presets.Get(ctx, name)
		if err != nil {
			if errors.Is(err, draft.ErrPresetNotFound) {
				return SimulationResult{}, mapDraftError(err)
			}
			return SimulationResult{}, fmt.Errorf("%w: get preset: %w", ErrDependencyUnavailable, err)
		}
		p.UserTeam = nil
		preset = &p
	}

	workerCount := min(s.workers, input.Runs)
	start := s.clock.Now()
	results := make(chan simulationRun, input.Runs)
	var failed atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SimulationResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i := 0; i < input.Runs; i++ {
		seed := input.Seed + int64(i)
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			run := s.simulate(ctx, players, overrides, preset, input.UseCustomADP, seed)
			if run.err != nil {
				failed.Add(1)
			}
			results <- run
		}); err != nil {
			workers.Done()
			return SimulationResult{}, fmt.Errorf("submit simulation to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	type tally struct {
		sum, count, min, max int
	}
	tallies := make(map[string]*tally)
	for run := range results {
		if run.err != nil {
			s.logger.WarnContext(ctx, "simulated draft failed", "error", run.err)
			continue
		}
		for playerID, pick := range run.picks {
			t, ok := tallies[playerID]
			if !ok {
				t = &tally{min: pick, max: pick}
				tallies[playerID] = t
			}
			t.sum += pick
			t.count++
			t.min = min(t.min, pick)
			t.max = max(t.max, pick)
		}
	}

	byID := make(map[string]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	out := make([]SimulatedADP, 0, len(tallies))
	for playerID, t := range tallies {
		p := byID[playerID]
		out = append(out, SimulatedADP{
			PlayerID:     playerID,
			Name:         p.Name,
			Position:     p.Position,
			ADP:          p.ADP,
			AveragePick:  float64(t.sum) / float64(t.count),
			MinPick:      t.min,
			MaxPick:      t.max,
			TimesDrafted: t.count,
		})
	}
	slices.SortFunc(out, func(a, b SimulatedADP) int {
		if c := cmp.Compare(a.AveragePick, b.AveragePick); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})

	result := SimulationResult{
		Runs:        input.Runs,
		FailedRuns:  int(failed.Load()),
		WorkerCount: workerCount,
		DurationMs:  s.clock.Since(start).Milliseconds(),
		Players:     out,
	}
	s.logger.InfoContext(ctx, "draft simulation finished",
		"runs", result.Runs,
		"failed_runs", result.FailedRuns,
		"workers", result.WorkerCount,
		"duration_ms", result.DurationMs,
	)
	return result, nil
}

func (s *SimulationService) simulate(
	ctx context.Context,
	players []player.Player,
	overrides map[string]float64,
	preset *draft.Preset,
	useCustomADP bool,
	seed int64,
) simulationRun {
	if err := ctx.Err(); err != nil {
		return simulationRun{err: err}
	}

	policy := autopick.NewPolicy(s.autopick, rand.New(rand.NewSource(seed)))
	engine, err := draft.NewEngine(s.settings, players, policy)
	if err != nil {
		return simulationRun{err: err}
	}
	if useCustomADP {
		engine.ReapplyCustomADP(overrides)
		engine.SetADPMode(true)
	}
	if preset != nil {
		if err := engine.ApplyPreset(*preset); err != nil {
			return simulationRun{err: err}
		}
	}
	if err := engine.SelectUserSlot(0); err != nil {
		return simulationRun{err: err}
	}

	for engine.State() == draft.StateInProgress {
		if err := ctx.Err(); err != nil {
			return simulationRun{err: err}
		}
		_, err := engine.ComputerPick()
		if errors.Is(err, draft.ErrNoPlayersAvailable) {
			break
		}
		if err != nil {
			return simulationRun{err: err}
		}
	}

	picks := make(map[string]int, len(engine.History()))
	for _, entry := range engine.History() {
		picks[entry.Player.ID] = entry.Pick
	}
	return simulationRun{picks: picks}
}
