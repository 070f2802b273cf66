package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerViewRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/gameweek", handler.GetGameweek)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/activity", handler.ListActivity)
	mux.HandleFunc("GET /v1/activity/stream", handler.StreamActivity)
	mux.HandleFunc("GET /v1/squads", handler.GetSquads)
	mux.HandleFunc("GET /v1/fixtures", handler.GetFixtures)
	mux.HandleFunc("GET /v1/transfers", handler.GetTransfers)
	mux.HandleFunc("GET /v1/history", handler.GetHistory)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/reference/refresh", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RefreshReference)))
}
