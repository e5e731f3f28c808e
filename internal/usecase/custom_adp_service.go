package usecase

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/platform/logging"
)

type CustomADPEntry struct {
	PlayerID    string
	Name        string
	Position    player.Position
	Team        string
	ADP         float64
	OriginalADP float64
}

// CustomADPService manages the ADP overrides sessions can switch to.
type CustomADPService struct {
	players   player.Repository
	customADP player.CustomADPRepository
	logger    *logging.Logger
}

func NewCustomADPService(players player.Repository, customADP player.CustomADPRepository, logger *logging.Logger) *CustomADPService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CustomADPService{
		players:   players,
		customADP: customADP,
		logger:    logger,
	}
}

// List returns overrides ordered by custom ADP. Overrides for players no
// longer in the player list are kept but reported without a name.
func (s *CustomADPService) List(ctx context.Context) ([]CustomADPEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CustomADPService.List")
	defer span.End()

	overrides, err := s.customADP.List(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("%w: list custom adp: %w", ErrDependencyUnavailable, err)
	}
	if len(overrides) == 0 {
		return []CustomADPEntry{}, nil
	}

	ids := make([]string, 0, len(overrides))
	for playerID := range overrides {
		ids = append(ids, playerID)
	}
	slices.Sort(ids)

	players, err := s.players.GetByIDs(ctx, ids)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("%w: get players: %w", ErrDependencyUnavailable, err)
	}
	byID := make(map[string]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	out := make([]CustomADPEntry, 0, len(ids))
	for _, playerID := range ids {
		entry := CustomADPEntry{PlayerID: playerID, ADP: overrides[playerID]}
		if p, ok := byID[playerID]; ok {
			entry.Name = p.Name
			entry.Position = p.Position
			entry.Team = p.Team
			entry.OriginalADP = p.ADP
		}
		out = append(out, entry)
	}
	slices.SortStableFunc(out, func(a, b CustomADPEntry) int {
		return cmp.Compare(a.ADP, b.ADP)
	})
	return out, nil
}

func (s *CustomADPService) Set(ctx context.Context, playerID string, adp float64) (CustomADPEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CustomADPService.Set")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return CustomADPEntry{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if adp <= 0 || math.IsNaN(adp) || math.IsInf(adp, 0) {
		return CustomADPEntry{}, fmt.Errorf("%w: adp must be a positive number", ErrInvalidInput)
	}

	players, err := s.players.GetByIDs(ctx, []string{playerID})
	if err != nil {
		recordSpanError(span, err)
		return CustomADPEntry{}, fmt.Errorf("%w: get player: %w", ErrDependencyUnavailable, err)
	}
	if len(players) == 0 {
		return CustomADPEntry{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if err := s.customADP.Upsert(ctx, playerID, adp); err != nil {
		recordSpanError(span, err)
		return CustomADPEntry{}, fmt.Errorf("%w: upsert custom adp: %w", ErrDependencyUnavailable, err)
	}

	p := players[0]
	s.logger.InfoContext(ctx, "custom adp set", "player_id", playerID, "adp", adp, "original_adp", p.ADP)

	return CustomADPEntry{
		PlayerID:    p.ID,
		Name:        p.Name,
		Position:    p.Position,
		Team:        p.Team,
		ADP:         adp,
		OriginalADP: p.ADP,
	}, nil
}

func (s *CustomADPService) Delete(ctx context.Context, playerID string) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if err := s.customADP.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("%w: delete custom adp: %w", ErrDependencyUnavailable, err)
	}
	return nil
}

func (s *CustomADPService) Clear(ctx context.Context) error {
	if err := s.customADP.Clear(ctx); err != nil {
		return fmt.Errorf("%w: clear custom adp: %w", ErrDependencyUnavailable, err)
	}
	s.logger.InfoContext(ctx, "custom adp cleared")
	return nil
}
