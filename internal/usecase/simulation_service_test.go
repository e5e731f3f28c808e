package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/mock-draft/internal/infrastructure/repository/memory"
)

func newSimulationService() *SimulationService {
	return NewSimulationService(
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewCustomADPRepository(),
		memory.NewPresetRepository(memory.SeedPresets()),
		DefaultDraftServiceConfig(),
		3,
		nil,
	)
}

func TestSimulationService_RunAggregatesPicks(t *testing.T) {
	svc := newSimulationService()

	result, err := svc.Run(t.Context(), SimulationInput{Runs: 4, Seed: 7})
	if err != nil {
		t.Fatalf("run simulation: %v", err)
	}
	if result.Runs != 4 || result.FailedRuns != 0 || result.WorkerCount != 3 {
		t.Fatalf("unexpected result header: %+v", result)
	}
	// 10 teams x 16 rounds out of a 200 player board
	if len(result.Players) < 160 {
		t.Fatalf("expected at least 160 drafted players, got %d", len(result.Players))
	}

	first := result.Players[0]
	if first.PlayerID != "p-jamarr-chase" || first.AveragePick != 1 || first.MinPick != 1 || first.MaxPick != 1 || first.TimesDrafted != 4 {
		t.Fatalf("expected pinned prospect at pick 1 every run, got %+v", first)
	}
	second := result.Players[1]
	if second.Name != "Joe Burrow" || second.AveragePick != 2 {
		t.Fatalf("expected Joe Burrow at pick 2, got %+v", second)
	}
}

func TestSimulationService_SameSeedSameResult(t *testing.T) {
	svc := newSimulationService()

	a, err := svc.Run(t.Context(), SimulationInput{Runs: 3, Seed: 99, Preset: memory.DefaultPresetName})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := svc.Run(t.Context(), SimulationInput{Runs: 3, Seed: 99, Preset: memory.DefaultPresetName})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(a.Players) != len(b.Players) {
		t.Fatalf("player counts differ: %d vs %d", len(a.Players), len(b.Players))
	}
	for i := range a.Players {
		if a.Players[i].PlayerID != b.Players[i].PlayerID || a.Players[i].AveragePick != b.Players[i].AveragePick {
			t.Fatalf("simulations diverged at %d: %+v vs %+v", i, a.Players[i], b.Players[i])
		}
	}
}

func TestSimulationService_RejectsBadInput(t *testing.T) {
	svc := newSimulationService()

	for _, runs := range []int{0, maxSimulationRuns + 1} {
		if _, err := svc.Run(t.Context(), SimulationInput{Runs: runs}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("runs=%d: expected ErrInvalidInput, got %v", runs, err)
		}
	}
	if _, err := svc.Run(t.Context(), SimulationInput{Runs: 1, Preset: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown preset, got %v", err)
	}
}
