package usecase

import (
	"errors"
	"math"
	"testing"

	"github.com/riskibarqy/mock-draft/internal/infrastructure/repository/memory"
)

func TestCustomADPService_SetListDeleteClear(t *testing.T) {
	repo := memory.NewCustomADPRepository()
	svc := NewCustomADPService(memory.NewPlayerRepository(memory.SeedPlayers()), repo, nil)

	entry, err := svc.Set(t.Context(), "p-joe-burrow", 4)
	if err != nil {
		t.Fatalf("set custom adp: %v", err)
	}
	if entry.Name != "Joe Burrow" || entry.OriginalADP != 25 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if _, err := svc.Set(t.Context(), "p-brock-bowers", 2); err != nil {
		t.Fatalf("set custom adp: %v", err)
	}

	items, err := svc.List(t.Context())
	if err != nil {
		t.Fatalf("list custom adp: %v", err)
	}
	if len(items) != 2 || items[0].PlayerID != "p-brock-bowers" || items[1].PlayerID != "p-joe-burrow" {
		t.Fatalf("expected entries ordered by custom adp, got %+v", items)
	}

	if err := svc.Delete(t.Context(), "p-brock-bowers"); err != nil {
		t.Fatalf("delete custom adp: %v", err)
	}
	if items, _ := svc.List(t.Context()); len(items) != 1 {
		t.Fatalf("expected one entry after delete, got %d", len(items))
	}

	if err := svc.Clear(t.Context()); err != nil {
		t.Fatalf("clear custom adp: %v", err)
	}
	if items, _ := svc.List(t.Context()); len(items) != 0 {
		t.Fatalf("expected empty list after clear, got %d", len(items))
	}
}

func TestCustomADPService_SetValidation(t *testing.T) {
	svc := NewCustomADPService(memory.NewPlayerRepository(memory.SeedPlayers()), memory.NewCustomADPRepository(), nil)

	tests := []struct {
		name     string
		playerID string
		adp      float64
		wantErr  error
	}{
		{name: "blank player", playerID: "", adp: 3, wantErr: ErrInvalidInput},
		{name: "zero adp", playerID: "p-joe-burrow", adp: 0, wantErr: ErrInvalidInput},
		{name: "negative adp", playerID: "p-joe-burrow", adp: -2, wantErr: ErrInvalidInput},
		{name: "nan adp", playerID: "p-joe-burrow", adp: math.NaN(), wantErr: ErrInvalidInput},
		{name: "unknown player", playerID: "missing", adp: 3, wantErr: ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Set(t.Context(), tc.playerID, tc.adp)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
