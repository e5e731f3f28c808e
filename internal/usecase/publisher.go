package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/draftorder"
)

// PickEvent is the wire form of a draft change pushed to subscribers.
type PickEvent struct {
	SessionID  string    `json:"sessionId"`
	Kind       string    `json:"kind"`
	Pick       int       `json:"pick,omitempty"`
	Round      int       `json:"round,omitempty"`
	Slot       int       `json:"slot,omitempty"`
	Label      string    `json:"label,omitempty"`
	TeamID     int       `json:"teamId"`
	TeamName   string    `json:"teamName,omitempty"`
	PlayerID   string    `json:"playerId,omitempty"`
	PlayerName string    `json:"playerName,omitempty"`
	Position   string    `json:"position,omitempty"`
	NextPick   int       `json:"nextPick"`
	NextTeamID int       `json:"nextTeamId"`
	Complete   bool      `json:"complete"`
	OccurredAt time.Time `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event PickEvent) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, PickEvent) error {
	return nil
}

func newPickEvent(sessionID string, ev draft.Event, numTeams int, teamName func(int) string, at time.Time) PickEvent {
	out := PickEvent{
		SessionID:  sessionID,
		Kind:       string(ev.Kind),
		TeamID:     ev.Entry.TeamID,
		NextPick:   ev.Next.Pick,
		NextTeamID: ev.Next.TeamID,
		Complete:   ev.Next.Complete,
		OccurredAt: at.UTC(),
	}
	if ev.Entry.Player != nil {
		out.Pick = ev.Entry.Pick
		out.Round = ev.Entry.Round
		out.Slot = ev.Entry.Slot
		out.Label = draftorder.Label(ev.Entry.Pick, numTeams)
		out.TeamName = teamName(ev.Entry.TeamID)
		out.PlayerID = ev.Entry.Player.ID
		out.PlayerName = ev.Entry.Player.Name
		out.Position = string(ev.Entry.Player.Position)
	}
	if ev.Kind == draft.EventRestart {
		out.TeamID = -1
	}
	return out
}
