package draft

import (
	"github.com/riskibarqy/mock-draft/internal/domain/player"
)

type State string

const (
	StateAwaitingTeamSelection State = "awaiting_team_selection"
	StateInProgress            State = "in_progress"
	StateComplete              State = "complete"
)

// OnTheClock lets DraftPlayer use whichever team currently holds the pick.
const OnTheClock = -1

// HistoryEntry is one applied pick.
type HistoryEntry struct {
	Pick   int
	Round  int
	Slot   int
	TeamID int
	Player *player.Player
}

// PickInfo describes the pick on the clock.
type PickInfo struct {
	Pick          int
	Round         int
	Slot          int
	Label         string
	NaturalTeamID int
	TeamID        int
	TeamName      string
	Traded        bool
	IsUserTurn    bool
	Complete      bool
}

type EventKind string

const (
	EventPick    EventKind = "pick"
	EventUndo    EventKind = "undo"
	EventRestart EventKind = "restart"
)

// Event is emitted to the engine observer after every state change.
type Event struct {
	Kind  EventKind
	Entry HistoryEntry
	Next  PickInfo
}
