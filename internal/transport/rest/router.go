package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Board   *BoardHandler
	Card    *CardHandler
	Hygiene *HygieneHandler
	Health  *HealthHandler
}

// NewRouter builds the route table. Method-qualified patterns reject
// wrong-method requests with 405 for free.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /boards", h.Board.Create)
	mux.HandleFunc("GET /boards/{boardID}", h.Board.Get)
	mux.HandleFunc("POST /boards/{boardID}/lists", h.Board.CreateList)

	mux.HandleFunc("POST /lists/{listID}/cards", h.Card.Create)
	mux.HandleFunc("PATCH /cards/{cardID}", h.Card.Update)
	mux.HandleFunc("POST /cards/{cardID}/move", h.Card.Move)
	mux.HandleFunc("POST /cards/{cardID}/cover", h.Card.QueueCover)
	mux.HandleFunc("GET /cards/{cardID}/summary", h.Card.GetSummary)
	mux.HandleFunc("GET /cards/{cardID}/cover", h.Card.GetCover)

	mux.HandleFunc("POST /boards/{boardID}/detect-stuck", h.Hygiene.DetectStuck)
	mux.HandleFunc("GET /boards/{boardID}/stuck-report", h.Hygiene.Report)

	return mux
}
