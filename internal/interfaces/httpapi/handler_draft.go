package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/mock-draft/internal/domain/player"
	"github.com/riskibarqy/mock-draft/internal/usecase"
)

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSession")
	defer span.End()

	var req createSessionRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.draftService.CreateSession(ctx, usecase.CreateSessionInput{
		Preset:       req.Preset,
		UserTeam:     req.UserTeam,
		UseCustomADP: req.UseCustomADP,
		Seed:         req.Seed,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create draft session failed", "preset", req.Preset, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionToDTO(view))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	view, err := h.draftService.GetSession(ctx, r.PathValue("sessionID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(view))
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSession", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	if err := h.draftService.DeleteSession(ctx, r.PathValue("sessionID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyPreset", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	var req applyPresetRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondSession(ctx, w, r, "apply preset", func() (usecase.SessionView, error) {
		return h.draftService.ApplyPreset(ctx, r.PathValue("sessionID"), req.Name)
	})
}

func (h *Handler) SelectTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectTeam", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	var req selectTeamRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondSession(ctx, w, r, "select team", func() (usecase.SessionView, error) {
		return h.draftService.SelectTeam(ctx, r.PathValue("sessionID"), *req.TeamID)
	})
}

func (h *Handler) DraftPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DraftPlayer", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	var req draftPlayerRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondSession(ctx, w, r, "draft player", func() (usecase.SessionView, error) {
		return h.draftService.DraftPlayer(ctx, r.PathValue("sessionID"), usecase.DraftPlayerInput{
			PlayerID: req.PlayerID,
			TeamID:   req.TeamID,
		})
	})
}

func (h *Handler) ComputerPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComputerPick", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	h.respondSession(ctx, w, r, "computer pick", func() (usecase.SessionView, error) {
		return h.draftService.ComputerPick(ctx, r.PathValue("sessionID"))
	})
}

func (h *Handler) Undo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Undo", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	h.respondSession(ctx, w, r, "undo", func() (usecase.SessionView, error) {
		return h.draftService.Undo(ctx, r.PathValue("sessionID"))
	})
}

func (h *Handler) RevertToPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RevertToPick", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	var req revertRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sessionID := r.PathValue("sessionID")
	view, undone, err := h.draftService.RevertToPick(ctx, sessionID, req.Pick)
	if err != nil {
		h.logger.WarnContext(ctx, "revert to pick failed", "session_id", sessionID, "pick", req.Pick, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, revertDTO{Session: sessionToDTO(view), Undone: undone})
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Restart", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	h.respondSession(ctx, w, r, "restart", func() (usecase.SessionView, error) {
		return h.draftService.Restart(ctx, r.PathValue("sessionID"))
	})
}

func (h *Handler) SetManualMode(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetManualMode", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	var req toggleRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondSession(ctx, w, r, "set manual mode", func() (usecase.SessionView, error) {
		return h.draftService.SetManualMode(ctx, r.PathValue("sessionID"), *req.Enabled)
	})
}

func (h *Handler) SetADPMode(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetADPMode", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	var req toggleRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondSession(ctx, w, r, "set adp mode", func() (usecase.SessionView, error) {
		return h.draftService.SetADPMode(ctx, r.PathValue("sessionID"), *req.Enabled)
	})
}

func (h *Handler) RecordPickTrade(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPickTrade", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	var req pickTradeRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondSession(ctx, w, r, "record pick trade", func() (usecase.SessionView, error) {
		return h.draftService.RecordPickTrade(ctx, r.PathValue("sessionID"), usecase.PickTradeInput{
			TeamA: *req.Team1,
			PickA: req.Pick1,
			TeamB: *req.Team2,
			PickB: req.Pick2,
		})
	})
}

func (h *Handler) RecordRoundTrade(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordRoundTrade", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	var req roundTradeRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondSession(ctx, w, r, "record round trade", func() (usecase.SessionView, error) {
		return h.draftService.RecordRoundTrade(ctx, r.PathValue("sessionID"), usecase.RoundTradeInput{
			TeamA:   *req.Team1,
			RoundsA: req.Team1Rounds,
			TeamB:   *req.Team2,
			RoundsB: req.Team2Rounds,
		})
	})
}

func (h *Handler) ClearTrades(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearTrades", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	h.respondSession(ctx, w, r, "clear trades", func() (usecase.SessionView, error) {
		return h.draftService.ClearTrades(ctx, r.PathValue("sessionID"))
	})
}

func (h *Handler) SetRoundTarget(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetRoundTarget", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	var req roundTargetRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondSession(ctx, w, r, "set round target", func() (usecase.SessionView, error) {
		return h.draftService.SetRoundTarget(ctx, r.PathValue("sessionID"), r.PathValue("playerID"), req.Round)
	})
}

func (h *Handler) ClearRoundTarget(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearRoundTarget", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	h.respondSession(ctx, w, r, "clear round target", func() (usecase.SessionView, error) {
		return h.draftService.ClearRoundTarget(ctx, r.PathValue("sessionID"), r.PathValue("playerID"))
	})
}

func (h *Handler) PlannedForRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlannedForRound", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	round, err := parseIntPath(r, "round")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.draftService.PlannedForRound(ctx, r.PathValue("sessionID"), round)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Summary", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	summary, err := h.draftService.Summary(ctx, r.PathValue("sessionID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	query := r.URL.Query()
	filter := usecase.PlayerFilter{
		Query:          strings.TrimSpace(query.Get("q")),
		IncludeDrafted: strings.EqualFold(strings.TrimSpace(query.Get("include_drafted")), "true"),
	}
	if raw := strings.TrimSpace(query.Get("position")); raw != "" {
		pos, err := player.ParsePosition(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
			return
		}
		filter.Position = pos
	}
	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	filter.Limit = limit

	items, err := h.draftService.ListPlayers(ctx, r.PathValue("sessionID"), filter)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) respondSession(ctx context.Context, w http.ResponseWriter, r *http.Request, action string, call func() (usecase.SessionView, error)) {
	view, err := call()
	if err != nil {
		h.logger.WarnContext(ctx, action+" failed", "session_id", r.PathValue("sessionID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(view))
}
