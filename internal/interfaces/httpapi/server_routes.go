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

func registerAnalyticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/transfers", handler.ListTransfers)
	mux.HandleFunc("GET /v1/flows", handler.ListFlows)
	mux.HandleFunc("GET /v1/network", handler.ListNetworkEdges)
	mux.HandleFunc("GET /v1/coverage", handler.GetCoverage)
}

func registerCurationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/review", handler.ListReviewItems)
	mux.HandleFunc("GET /v1/review/consistency", handler.ListLeagueConflicts)
	mux.HandleFunc("GET /v1/clubs/audit", handler.GetClubAudit)
}
