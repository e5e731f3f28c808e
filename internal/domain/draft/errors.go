package draft

import (
	"errors"

	"github.com/riskibarqy/mock-draft/internal/domain/autopick"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/domain/roster"
)

var (
	ErrNotFound             = player.ErrNotFound
	ErrNoPlayersAvailable   = autopick.ErrNoPlayersAvailable
	ErrPositionLimitReached = roster.ErrPositionLimitReached
	ErrInvalidTeam          = roster.ErrInvalidTeam

	ErrAlreadyDrafted    = errors.New("player already drafted")
	ErrNotUserTurn       = errors.New("not the user's turn")
	ErrNothingToUndo     = errors.New("nothing to undo")
	ErrDraftComplete     = errors.New("draft is complete")
	ErrNotStarted        = errors.New("draft has not started")
	ErrAlreadyStarted    = errors.New("draft already started")
	ErrAdvanceInProgress = errors.New("computer picks already advancing")
	ErrInvalidSettings   = errors.New("invalid draft settings")
	ErrInvalidRound      = errors.New("invalid round")

	ErrSavedDraftNotFound = errors.New("saved draft not found")
	ErrPresetNotFound     = errors.New("preset not found")
)
