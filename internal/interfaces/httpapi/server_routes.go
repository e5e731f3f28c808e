package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDraftRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/drafts", handler.CreateSession)
	mux.HandleFunc("GET /v1/drafts/{sessionID}", handler.GetSession)
	mux.HandleFunc("DELETE /v1/drafts/{sessionID}", handler.DeleteSession)
	mux.HandleFunc("GET /v1/drafts/{sessionID}/stream", handler.StreamSession)
	mux.HandleFunc("GET /v1/drafts/{sessionID}/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/drafts/{sessionID}/summary", handler.Summary)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/preset", handler.ApplyPreset)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/team", handler.SelectTeam)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/picks", handler.DraftPlayer)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/picks/auto", handler.ComputerPick)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/undo", handler.Undo)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/revert", handler.RevertToPick)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/restart", handler.Restart)
	mux.HandleFunc("PUT /v1/drafts/{sessionID}/manual-mode", handler.SetManualMode)
	mux.HandleFunc("PUT /v1/drafts/{sessionID}/adp-mode", handler.SetADPMode)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/trades/picks", handler.RecordPickTrade)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/trades/rounds", handler.RecordRoundTrade)
	mux.HandleFunc("DELETE /v1/drafts/{sessionID}/trades", handler.ClearTrades)
	mux.HandleFunc("PUT /v1/drafts/{sessionID}/plan/{playerID}", handler.SetRoundTarget)
	mux.HandleFunc("DELETE /v1/drafts/{sessionID}/plan/{playerID}", handler.ClearRoundTarget)
	mux.HandleFunc("GET /v1/drafts/{sessionID}/plan/rounds/{round}", handler.PlannedForRound)
	mux.HandleFunc("POST /v1/drafts/{sessionID}/saves", handler.SaveDraft)
	mux.HandleFunc("GET /v1/presets", handler.ListPresets)
	mux.HandleFunc("POST /v1/simulations", handler.RunSimulation)
}

func registerSavedDraftRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/saved-drafts", handler.ListSavedDrafts)
	mux.HandleFunc("POST /v1/saved-drafts/{savedID}/load", handler.LoadSavedDraft)
	mux.HandleFunc("DELETE /v1/saved-drafts/{savedID}", handler.DeleteSavedDraft)
}

func registerCustomADPRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.HandleFunc("GET /v1/custom-adp", handler.ListCustomADP)
	mux.Handle("PUT /v1/custom-adp/{playerID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.SetCustomADP)))
	mux.Handle("DELETE /v1/custom-adp/{playerID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteCustomADP)))
	mux.Handle("DELETE /v1/custom-adp", RequireAdminToken(adminToken, http.HandlerFunc(handler.ClearCustomADP)))
}
