package httpapi

import (
	"net/http"
)

func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveDraft")
	defer span.End()

	var req saveDraftRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sessionID := r.PathValue("sessionID")
	saved, err := h.draftService.SaveDraft(ctx, sessionID, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "save draft failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, savedDraftToDTO(saved))
}

func (h *Handler) ListSavedDrafts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSavedDrafts")
	defer span.End()

	items, err := h.draftService.ListSavedDrafts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list saved drafts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]savedDraftDTO, 0, len(items))
	for _, item := range items {
		out = append(out, savedDraftToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) LoadSavedDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadSavedDraft")
	defer span.End()

	savedID := r.PathValue("savedID")
	view, err := h.draftService.LoadSavedDraft(ctx, savedID)
	if err != nil {
		h.logger.WarnContext(ctx, "load saved draft failed", "saved_id", savedID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionToDTO(view))
}

func (h *Handler) DeleteSavedDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSavedDraft")
	defer span.End()

	if err := h.draftService.DeleteSavedDraft(ctx, r.PathValue("savedID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPresets")
	defer span.End()

	items, err := h.draftService.ListPresets(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]presetDTO, 0, len(items))
	for _, item := range items {
		out = append(out, presetToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
