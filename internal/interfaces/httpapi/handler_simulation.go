package httpapi

import (
	"net/http"

	"github.com/riskibarqy/mock-draft/internal/usecase"
)

func (h *Handler) RunSimulation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSimulation")
	defer span.End()

	var req simulationRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.simulationService.Run(ctx, usecase.SimulationInput{
		Runs:         req.Runs,
		Seed:         req.Seed,
		Preset:       req.Preset,
		UseCustomADP: req.UseCustomADP,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "draft simulation failed", "runs", req.Runs, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
