package httpapi

import (
	"net/http"
)

func (h *Handler) ListCustomADP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCustomADP")
	defer span.End()

	items, err := h.customADPService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list custom adp failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]customADPDTO, 0, len(items))
	for _, item := range items {
		out = append(out, customADPToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) SetCustomADP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCustomADP")
	defer span.End()

	var req setCustomADPRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := r.PathValue("playerID")
	entry, err := h.customADPService.Set(ctx, playerID, req.ADP)
	if err != nil {
		h.logger.WarnContext(ctx, "set custom adp failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, customADPToDTO(entry))
}

func (h *Handler) DeleteCustomADP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCustomADP")
	defer span.End()

	if err := h.customADPService.Delete(ctx, r.PathValue("playerID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) ClearCustomADP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearCustomADP")
	defer span.End()

	if err := h.customADPService.Clear(ctx); err != nil {
		h.logger.ErrorContext(ctx, "clear custom adp failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"cleared": true})
}
