package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerReadRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/dashboard", handler.GetDashboard)
	mux.HandleFunc("GET /v1/swimmers", handler.ListSwimmers)
	mux.HandleFunc("GET /v1/swimmers/template.csv", handler.DownloadSwimmerTemplate)
	mux.HandleFunc("GET /v1/swimmers/{swimmerID}/results", handler.GetSwimmerHistory)
	mux.HandleFunc("GET /v1/rankings", handler.GetRankings)
	mux.HandleFunc("GET /v1/selection", handler.GetSelection)
	mux.HandleFunc("GET /v1/heat-sheet", handler.GetHeatSheet)
	mux.HandleFunc("GET /v1/reports/gala.csv", handler.DownloadGalaReport)
}

// Every mutating route runs behind RequireOperator so saved rows carry
// the acting teacher's name.
func registerOperatorRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/swimmers", RequireOperator(http.HandlerFunc(handler.CreateSwimmer)))
	mux.Handle("POST /v1/swimmers/import", RequireOperator(http.HandlerFunc(handler.ImportSwimmers)))
	mux.Handle("DELETE /v1/swimmers/{swimmerID}", RequireOperator(http.HandlerFunc(handler.DeactivateSwimmer)))
	mux.Handle("POST /v1/results/batch", RequireOperator(http.HandlerFunc(handler.SubmitBatchResults)))
	mux.Handle("PUT /v1/swimmers/{swimmerID}/results", RequireOperator(http.HandlerFunc(handler.ReconcileSwimmerHistory)))
}
