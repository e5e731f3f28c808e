package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/trade"
)

// mapDraftError classifies engine errors while keeping the original error
// in the chain for callers that need the specific cause.
func mapDraftError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, draft.ErrNotFound),
		errors.Is(err, draft.ErrSavedDraftNotFound),
		errors.Is(err, draft.ErrPresetNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, draft.ErrAlreadyDrafted),
		errors.Is(err, draft.ErrNotUserTurn),
		errors.Is(err, draft.ErrDraftComplete),
		errors.Is(err, draft.ErrNotStarted),
		errors.Is(err, draft.ErrAlreadyStarted),
		errors.Is(err, draft.ErrNothingToUndo),
		errors.Is(err, draft.ErrAdvanceInProgress),
		errors.Is(err, draft.ErrPositionLimitReached),
		errors.Is(err, draft.ErrNoPlayersAvailable):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, draft.ErrInvalidTeam),
		errors.Is(err, draft.ErrInvalidRound),
		errors.Is(err, draft.ErrInvalidSettings),
		errors.Is(err, trade.ErrSelfTrade),
		errors.Is(err, trade.ErrDuplicatePick),
		errors.Is(err, trade.ErrInvalidTeam),
		errors.Is(err, trade.ErrInvalidPick),
		errors.Is(err, trade.ErrInvalidRound),
		errors.Is(err, trade.ErrInvalidKind):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
