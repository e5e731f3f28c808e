package httpapi

import (
	"time"

	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/domain/trade"
	"github.com/riskibarqy/mock-draft/internal/usecase"
)

type createSessionRequest struct {
	Preset       string `json:"preset" validate:"omitempty,max=100"`
	UserTeam     *int   `json:"user_team" validate:"omitempty,gte=0"`
	UseCustomADP bool   `json:"use_custom_adp"`
	Seed         *int64 `json:"seed"`
}

type applyPresetRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type selectTeamRequest struct {
	TeamID *int `json:"team_id" validate:"required,gte=0"`
}

type draftPlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	TeamID   *int   `json:"team_id" validate:"omitempty,gte=0"`
}

type revertRequest struct {
	Pick int `json:"pick" validate:"required,gte=1"`
}

type toggleRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type pickTradeRequest struct {
	Team1 *int `json:"team1" validate:"required,gte=0"`
	Pick1 int  `json:"pick1" validate:"required,gte=1"`
	Team2 *int `json:"team2" validate:"required,gte=0"`
	Pick2 int  `json:"pick2" validate:"required,gte=1"`
}

type roundTradeRequest struct {
	Team1       *int  `json:"team1" validate:"required,gte=0"`
	Team1Rounds []int `json:"team1_rounds" validate:"required,min=1,dive,gte=1"`
	Team2       *int  `json:"team2" validate:"required,gte=0"`
	Team2Rounds []int `json:"team2_rounds" validate:"required,min=1,dive,gte=1"`
}

type roundTargetRequest struct {
	Round int `json:"round" validate:"required,gte=1"`
}

type saveDraftRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type setCustomADPRequest struct {
	ADP float64 `json:"adp" validate:"required,gt=0"`
}

type simulationRequest struct {
	Runs         int    `json:"runs" validate:"required,gte=1,lte=500"`
	Seed         int64  `json:"seed"`
	Preset       string `json:"preset" validate:"omitempty,max=100"`
	UseCustomADP bool   `json:"use_custom_adp"`
}

type playerDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Position        string  `json:"position"`
	Team            string  `json:"team"`
	ADP             float64 `json:"adp"`
	OriginalADP     float64 `json:"original_adp"`
	Tier            int     `json:"tier"`
	SOS             int     `json:"sos,omitempty"`
	ProjectedRank   string  `json:"projected_rank"`
	ProjectedPoints float64 `json:"projected_points"`
	VAR             int     `json:"var"`
	Drafted         bool    `json:"drafted"`
	DraftedBy       *int    `json:"drafted_by,omitempty"`
	DraftedAt       int     `json:"drafted_at,omitempty"`
	PlannedRound    int     `json:"planned_round,omitempty"`
}

type pickDTO struct {
	Pick     int       `json:"pick"`
	Round    int       `json:"round"`
	Slot     int       `json:"slot"`
	Label    string    `json:"label"`
	TeamID   int       `json:"team_id"`
	TeamName string    `json:"team_name"`
	Player   playerDTO `json:"player"`
}

type teamDTO struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	IsUser         bool           `json:"is_user"`
	Picks          []pickDTO      `json:"picks"`
	PositionCounts map[string]int `json:"position_counts"`
}

type currentPickDTO struct {
	Pick          int    `json:"pick"`
	Round         int    `json:"round"`
	Slot          int    `json:"slot"`
	Label         string `json:"label"`
	NaturalTeamID int    `json:"natural_team_id"`
	TeamID        int    `json:"team_id"`
	TeamName      string `json:"team_name"`
	Traded        bool   `json:"traded"`
	IsUserTurn    bool   `json:"is_user_turn"`
	Complete      bool   `json:"complete"`
}

type tradeDTO struct {
	Type        string `json:"type"`
	Team1       int    `json:"team1"`
	Team2       int    `json:"team2"`
	Pick1       int    `json:"pick1,omitempty"`
	Pick2       int    `json:"pick2,omitempty"`
	Team1Rounds []int  `json:"team1_rounds,omitempty"`
	Team2Rounds []int  `json:"team2_rounds,omitempty"`
	Description string `json:"description"`
}

type sessionDTO struct {
	ID             string         `json:"id"`
	State          string         `json:"state"`
	NumTeams       int            `json:"num_teams"`
	NumRounds      int            `json:"num_rounds"`
	TimerSeconds   int            `json:"timer_seconds"`
	Current        currentPickDTO `json:"current"`
	ClockDeadline  *time.Time     `json:"clock_deadline,omitempty"`
	UserTeam       int            `json:"user_team"`
	ManualMode     bool           `json:"manual_mode"`
	UsingCustomADP bool           `json:"using_custom_adp"`
	Preset         string         `json:"preset,omitempty"`
	Teams          []teamDTO      `json:"teams"`
	History        []pickDTO      `json:"history"`
	Trades         []tradeDTO     `json:"trades"`
	RoundPlan      map[string]int `json:"round_plan"`
	AutoPicks      []pickDTO      `json:"auto_picks"`
	CreatedAt      time.Time      `json:"created_at"`
}

type revertDTO struct {
	Session sessionDTO `json:"session"`
	Undone  int        `json:"undone"`
}

type pickValueDTO struct {
	Pick  pickDTO `json:"pick"`
	Delta float64 `json:"delta"`
}

type teamSummaryDTO struct {
	TeamID         int            `json:"team_id"`
	Name           string         `json:"name"`
	Picks          []pickDTO      `json:"picks"`
	PositionCounts map[string]int `json:"position_counts"`
	AverageADP     float64        `json:"average_adp"`
}

type summaryDTO struct {
	PicksMade      int             `json:"picks_made"`
	ValuePicks     []pickValueDTO  `json:"value_picks"`
	Reaches        []pickValueDTO  `json:"reaches"`
	PositionCounts map[string]int  `json:"position_counts"`
	UserTeam       *teamSummaryDTO `json:"user_team,omitempty"`
}

type savedDraftDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PickNumber int       `json:"pick_number"`
	CreatedAt  time.Time `json:"created_at"`
}

type customADPDTO struct {
	PlayerID    string  `json:"player_id"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Team        string  `json:"team"`
	ADP         float64 `json:"adp"`
	OriginalADP float64 `json:"original_adp"`
}

type presetDTO struct {
	Name       string           `json:"name"`
	TeamNames  []string         `json:"team_names"`
	UserTeam   *int             `json:"user_team,omitempty"`
	Trades     []tradeDTO       `json:"trades"`
	Exclusions map[int][]string `json:"exclusions"`
}

func playerToDTO(v usecase.PlayerView) playerDTO {
	out := playerDTO{
		ID:              v.ID,
		Name:            v.Name,
		Position:        string(v.Position),
		Team:            v.Team,
		ADP:             v.ADP,
		OriginalADP:     v.OriginalADP,
		Tier:            v.Tier,
		SOS:             v.SOS,
		ProjectedRank:   v.ProjectedRank,
		ProjectedPoints: v.ProjectedPoints,
		VAR:             v.VAR,
		Drafted:         v.Drafted,
		DraftedAt:       v.DraftedAt,
		PlannedRound:    v.PlannedRound,
	}
	if v.Drafted {
		team := v.DraftedBy
		out.DraftedBy = &team
	}
	return out
}

func playersToDTO(items []usecase.PlayerView) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func picksToDTO(items []usecase.PickView) []pickDTO {
	out := make([]pickDTO, 0, len(items))
	for _, item := range items {
		out = append(out, pickDTO{
			Pick:     item.Pick,
			Round:    item.Round,
			Slot:     item.Slot,
			Label:    item.Label,
			TeamID:   item.TeamID,
			TeamName: item.TeamName,
			Player:   playerToDTO(item.Player),
		})
	}
	return out
}

func countsToDTO[K ~string](in map[K]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func tradesToDTO(items []trade.Trade, descriptions []string) []tradeDTO {
	out := make([]tradeDTO, 0, len(items))
	for i, item := range items {
		dto := tradeDTO{
			Type:        string(item.Kind),
			Team1:       item.TeamA,
			Team2:       item.TeamB,
			Pick1:       item.PickA,
			Pick2:       item.PickB,
			Team1Rounds: item.RoundsA,
			Team2Rounds: item.RoundsB,
		}
		if i < len(descriptions) {
			dto.Description = descriptions[i]
		}
		out = append(out, dto)
	}
	return out
}

func sessionToDTO(v usecase.SessionView) sessionDTO {
	teams := make([]teamDTO, 0, len(v.Teams))
	for _, team := range v.Teams {
		teams = append(teams, teamDTO{
			ID:             team.ID,
			Name:           team.Name,
			IsUser:         team.IsUser,
			Picks:          picksToDTO(team.Picks),
			PositionCounts: countsToDTO(team.PositionCounts),
		})
	}

	plan := v.RoundPlan
	if plan == nil {
		plan = map[string]int{}
	}

	return sessionDTO{
		ID:             v.ID,
		State:          string(v.State),
		NumTeams:       v.NumTeams,
		NumRounds:      v.NumRounds,
		TimerSeconds:   v.TimerSeconds,
		Current:        currentPickToDTO(v.Current),
		ClockDeadline:  v.ClockDeadline,
		UserTeam:       v.UserTeam,
		ManualMode:     v.ManualMode,
		UsingCustomADP: v.UsingCustomADP,
		Preset:         v.Preset,
		Teams:          teams,
		History:        picksToDTO(v.History),
		Trades:         tradesToDTO(v.Trades, v.TradeDescriptions),
		RoundPlan:      plan,
		AutoPicks:      picksToDTO(v.AutoPicks),
		CreatedAt:      v.CreatedAt,
	}
}

func currentPickToDTO(info draft.PickInfo) currentPickDTO {
	return currentPickDTO{
		Pick:          info.Pick,
		Round:         info.Round,
		Slot:          info.Slot,
		Label:         info.Label,
		NaturalTeamID: info.NaturalTeamID,
		TeamID:        info.TeamID,
		TeamName:      info.TeamName,
		Traded:        info.Traded,
		IsUserTurn:    info.IsUserTurn,
		Complete:      info.Complete,
	}
}

func pickValuesToDTO(items []usecase.PickValueView) []pickValueDTO {
	out := make([]pickValueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, pickValueDTO{
			Pick:  picksToDTO([]usecase.PickView{item.Pick})[0],
			Delta: item.Delta,
		})
	}
	return out
}

func summaryToDTO(v usecase.SummaryView) summaryDTO {
	out := summaryDTO{
		PicksMade:      v.PicksMade,
		ValuePicks:     pickValuesToDTO(v.ValuePicks),
		Reaches:        pickValuesToDTO(v.Reaches),
		PositionCounts: countsToDTO(v.PositionCounts),
	}
	if v.UserTeam != nil {
		out.UserTeam = &teamSummaryDTO{
			TeamID:         v.UserTeam.TeamID,
			Name:           v.UserTeam.Name,
			Picks:          picksToDTO(v.UserTeam.Picks),
			PositionCounts: countsToDTO(v.UserTeam.PositionCounts),
			AverageADP:     v.UserTeam.AverageADP,
		}
	}
	return out
}

func savedDraftToDTO(v usecase.SavedDraftInfo) savedDraftDTO {
	return savedDraftDTO{
		ID:         v.ID,
		Name:       v.Name,
		PickNumber: v.PickNumber,
		CreatedAt:  v.CreatedAt,
	}
}

func customADPToDTO(v usecase.CustomADPEntry) customADPDTO {
	return customADPDTO{
		PlayerID:    v.PlayerID,
		Name:        v.Name,
		Position:    string(v.Position),
		Team:        v.Team,
		ADP:         v.ADP,
		OriginalADP: v.OriginalADP,
	}
}

func presetToDTO(p draft.Preset) presetDTO {
	exclusions := p.Exclusions
	if exclusions == nil {
		exclusions = map[int][]string{}
	}
	return presetDTO{
		Name:       p.Name,
		TeamNames:  p.TeamNames,
		UserTeam:   p.UserTeam,
		Trades:     tradesToDTO(p.Trades, nil),
		Exclusions: exclusions,
	}
}
