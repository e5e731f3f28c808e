package usecase

import (
	"time"

	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/draftorder"
	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/domain/trade"
)

// Views are value copies taken under the session lock so callers can
// encode them after the lock is released.

type PlayerView struct {
	player.Player
	Drafted      bool
	DraftedBy    int
	DraftedAt    int
	PlannedRound int
}

type PickView struct {
	Pick     int
	Round    int
	Slot     int
	Label    string
	TeamID   int
	TeamName string
	Player   PlayerView
}

type TeamView struct {
	ID             int
	Name           string
	IsUser         bool
	Picks          []PickView
	PositionCounts map[player.Position]int
}

type SessionView struct {
	ID                string
	State             draft.State
	NumTeams          int
	NumRounds         int
	TimerSeconds      int
	Current           draft.PickInfo
	ClockDeadline     *time.Time
	UserTeam          int
	ManualMode        bool
	UsingCustomADP    bool
	Preset            string
	Teams             []TeamView
	History           []PickView
	Trades            []trade.Trade
	TradeDescriptions []string
	RoundPlan         map[string]int
	AutoPicks         []PickView
	CreatedAt         time.Time
}

type PickValueView struct {
	Pick  PickView
	Delta float64
}

type TeamSummaryView struct {
	TeamID         int
	Name           string
	Picks          []PickView
	PositionCounts map[player.Position]int
	AverageADP     float64
}

type SummaryView struct {
	PicksMade      int
	ValuePicks     []PickValueView
	Reaches        []PickValueView
	PositionCounts map[player.Position]int
	UserTeam       *TeamSummaryView
}

// viewer clones the round plan once per view build.
type viewer struct {
	e    *draft.Engine
	plan map[string]int
}

func newViewer(e *draft.Engine) viewer {
	return viewer{e: e, plan: e.RoundPlan()}
}

func (v viewer) player(p *player.Player) PlayerView {
	out := PlayerView{Player: *p, DraftedBy: player.NoTeam, PlannedRound: v.plan[p.ID]}
	if team, ok := p.DraftedBy(); ok {
		out.Drafted = true
		out.DraftedBy = team
		out.DraftedAt = p.DraftedAt()
	}
	return out
}

func (v viewer) players(items []*player.Player) []PlayerView {
	out := make([]PlayerView, 0, len(items))
	for _, p := range items {
		out = append(out, v.player(p))
	}
	return out
}

func (v viewer) pick(entry draft.HistoryEntry) PickView {
	return PickView{
		Pick:     entry.Pick,
		Round:    entry.Round,
		Slot:     entry.Slot,
		Label:    draftorder.Label(entry.Pick, v.e.Settings().NumTeams),
		TeamID:   entry.TeamID,
		TeamName: v.e.TeamName(entry.TeamID),
		Player:   v.player(entry.Player),
	}
}

func (v viewer) picks(entries []draft.HistoryEntry) []PickView {
	out := make([]PickView, 0, len(entries))
	for _, entry := range entries {
		out = append(out, v.pick(entry))
	}
	return out
}

func (v viewer) session(sess *draftSession, autoPicks []draft.HistoryEntry) SessionView {
	e := v.e
	settings := e.Settings()
	history := e.History()

	byTeam := make(map[int][]draft.HistoryEntry, settings.NumTeams)
	for _, entry := range history {
		byTeam[entry.TeamID] = append(byTeam[entry.TeamID], entry)
	}

	teams := make([]TeamView, 0, settings.NumTeams)
	for _, team := range e.Teams() {
		counts := make(map[player.Position]int, len(team.Roster))
		for pos, group := range team.Roster {
			counts[pos] = len(group)
		}
		teams = append(teams, TeamView{
			ID:             team.ID,
			Name:           team.Name,
			IsUser:         team.ID == e.UserTeam(),
			Picks:          v.picks(byTeam[team.ID]),
			PositionCounts: counts,
		})
	}

	view := SessionView{
		ID:                sess.id,
		State:             e.State(),
		NumTeams:          settings.NumTeams,
		NumRounds:         settings.NumRounds,
		TimerSeconds:      settings.TimerSeconds,
		Current:           e.CurrentPickInfo(),
		UserTeam:          e.UserTeam(),
		ManualMode:        e.ManualMode(),
		UsingCustomADP:    e.UsingCustomADP(),
		Preset:            sess.preset,
		Teams:             teams,
		History:           v.picks(history),
		Trades:            e.Trades(),
		TradeDescriptions: e.TradeDescriptions(),
		RoundPlan:         v.plan,
		AutoPicks:         v.picks(autoPicks),
		CreatedAt:         sess.createdAt,
	}
	if settings.TimerSeconds > 0 && view.Current.IsUserTurn {
		deadline := sess.onClockSince.Add(time.Duration(settings.TimerSeconds) * time.Second)
		view.ClockDeadline = &deadline
	}
	return view
}

func (v viewer) summary() SummaryView {
	summary := v.e.Summary()
	out := SummaryView{
		PicksMade:      summary.PicksMade,
		PositionCounts: summary.PositionCounts,
	}
	for _, item := range summary.ValuePicks {
		out.ValuePicks = append(out.ValuePicks, PickValueView{Pick: v.pick(item.Entry), Delta: item.Delta})
	}
	for _, item := range summary.Reaches {
		out.Reaches = append(out.Reaches, PickValueView{Pick: v.pick(item.Entry), Delta: item.Delta})
	}
	if summary.UserTeam != nil {
		out.UserTeam = &TeamSummaryView{
			TeamID:         summary.UserTeam.TeamID,
			Name:           summary.UserTeam.Name,
			Picks:          v.picks(summary.UserTeam.Picks),
			PositionCounts: summary.UserTeam.PositionCounts,
			AverageADP:     summary.UserTeam.AverageADP,
		}
	}
	return out
}
