package draft

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/riskibarqy/mock-draft/internal/domain/draftorder"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/domain/trade"
)

// Snapshot is the persisted form of a draft. Field names follow the saved
// draft JSON layout.
type Snapshot struct {
	NumTeams     int                     `json:"numTeams"`
	NumRounds    int                     `json:"numRounds"`
	PickNumber   int                     `json:"pickNumber"`
	DraftHistory []SnapshotPick          `json:"draftHistory"`
	Teams        map[string]SnapshotTeam `json:"teams"`
	Trades       []trade.Trade           `json:"trades"`
	UserTeamID   int                     `json:"userTeamId"`
	DraftStarted bool                    `json:"draftStarted"`
	ManualMode   bool                    `json:"manualMode"`
	UseCustomADP bool                    `json:"useCustomAdp"`
	RoundPlan    map[string]int          `json:"roundPlan,omitempty"`
	Preset       string                  `json:"preset,omitempty"`
	// Exclusions maps a team id to player names its computer picks skip.
	Exclusions map[int][]string `json:"exclusions,omitempty"`
}

type SnapshotPick struct {
	Pick       int             `json:"pick"`
	Round      int             `json:"round"`
	Slot       int             `json:"slot"`
	TeamID     int             `json:"teamId"`
	PlayerID   string          `json:"playerId"`
	PlayerName string          `json:"playerName,omitempty"`
	Position   player.Position `json:"position,omitempty"`
}

type SnapshotTeam struct {
	Name      string   `json:"name"`
	PlayerIDs []string `json:"playerIds"`
}

// RestoreReport lists what Restore could not carry over.
type RestoreReport struct {
	AppliedPicks     int
	SkippedPlayerIDs []string
	SkippedTrades    int
	DroppedPlanIDs   []string
}

func (r RestoreReport) Clean() bool {
	return len(r.SkippedPlayerIDs) == 0 && r.SkippedTrades == 0 && len(r.DroppedPlanIDs) == 0
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		NumTeams:     e.settings.NumTeams,
		NumRounds:    e.settings.NumRounds,
		PickNumber:   e.pick,
		DraftHistory: make([]SnapshotPick, 0, len(e.history)),
		Teams:        make(map[string]SnapshotTeam, e.settings.NumTeams),
		Trades:       e.trades.Trades(),
		UserTeamID:   e.userTeam,
		DraftStarted: e.state != StateAwaitingTeamSelection,
		ManualMode:   e.manual,
		UseCustomADP: e.pool.UsingCustomADP(),
		RoundPlan:    e.RoundPlan(),
		Preset:       e.preset,
		Exclusions:   cloneExclusions(e.exclusions),
	}

	for _, entry := range e.history {
		s.DraftHistory = append(s.DraftHistory, SnapshotPick{
			Pick:       entry.Pick,
			Round:      entry.Round,
			Slot:       entry.Slot,
			TeamID:     entry.TeamID,
			PlayerID:   entry.Player.ID,
			PlayerName: entry.Player.Name,
			Position:   entry.Player.Position,
		})
	}

	for _, team := range e.rosters.Teams() {
		ids := make([]string, 0, len(team.Picks))
		for _, p := range team.Picks {
			ids = append(ids, p.ID)
		}
		s.Teams[strconv.Itoa(team.ID)] = SnapshotTeam{Name: team.Name, PlayerIDs: ids}
	}

	return s
}

// Restore rebuilds the draft from a snapshot. The available list is every
// player not in the history. Unknown or conflicting entries are skipped and
// reported instead of failing the restore. Custom ADP values must already be
// applied through ReapplyCustomADP.
func (e *Engine) Restore(s Snapshot) RestoreReport {
	var report RestoreReport

	e.pool.Reset()
	e.rosters.Reset()
	e.trades.Clear()
	e.history = nil
	e.plan = make(map[string]int)

	for key, team := range s.Teams {
		teamID, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		_ = e.rosters.Rename(teamID, team.Name)
	}

	for _, t := range s.Trades {
		if _, err := e.trades.Append(t); err != nil {
			report.SkippedTrades++
		}
	}

	e.pool.SetADPMode(s.UseCustomADP)
	e.preset = s.Preset
	e.setExclusions(s.Exclusions)

	history := slices.Clone(s.DraftHistory)
	slices.SortStableFunc(history, func(a, b SnapshotPick) int { return cmp.Compare(a.Pick, b.Pick) })

	total := e.settings.TotalPicks()
	lastPick := 0
	for _, item := range history {
		p, ok := e.pool.Get(item.PlayerID)
		if !ok || p.Drafted() || item.Pick <= lastPick || item.Pick > total ||
			item.TeamID < 0 || item.TeamID >= e.settings.NumTeams {
			report.SkippedPlayerIDs = append(report.SkippedPlayerIDs, item.PlayerID)
			continue
		}
		if err := e.pool.MarkDrafted(p.ID, item.TeamID, item.Pick); err != nil {
			report.SkippedPlayerIDs = append(report.SkippedPlayerIDs, item.PlayerID)
			continue
		}
		if err := e.rosters.AddPick(item.TeamID, p); err != nil {
			_ = e.pool.MarkAvailable(p.ID)
			report.SkippedPlayerIDs = append(report.SkippedPlayerIDs, item.PlayerID)
			continue
		}

		round, slot := draftorder.RoundAndSlotFor(item.Pick, e.settings.NumTeams)
		e.history = append(e.history, HistoryEntry{
			Pick:   item.Pick,
			Round:  round,
			Slot:   slot,
			TeamID: item.TeamID,
			Player: p,
		})
		lastPick = item.Pick
		report.AppliedPicks++
	}

	for id, round := range s.RoundPlan {
		if err := e.SetRoundTarget(id, round); err != nil {
			report.DroppedPlanIDs = append(report.DroppedPlanIDs, id)
		}
	}
	slices.Sort(report.DroppedPlanIDs)

	e.pick = lastPick + 1
	e.manual = s.ManualMode
	e.userTeam = player.NoTeam
	e.state = StateAwaitingTeamSelection

	validUser := s.UserTeamID >= 0 && s.UserTeamID < e.settings.NumTeams
	if validUser {
		e.userTeam = s.UserTeamID
	}
	if validUser && (s.DraftStarted || len(e.history) > 0) {
		e.state = StateInProgress
	}
	if e.pick > total {
		e.state = StateComplete
	}

	return report
}
