// Package httpx wires the JSON API surface over the record store. Routing
// here is deliberately thin: identity comes from the session cookie, and all
// authorization is the record store's ownership filter.
package httpx

import (
	"log/slog"
	"net/http"

	"github.com/offboardhq/offboard-api/internal/core"
	"github.com/offboardhq/offboard-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Offboardings *service.OffboardingService
	Sessions     core.SessionStore
	Logger       *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	handlers := &OffboardingHandlers{Svc: services.Offboardings}
	withIdentity := RequireIdentity(services.Sessions)

	mux.Handle("GET /api/offboardings", withIdentity(http.HandlerFunc(handlers.List)))
	mux.Handle("POST /api/offboardings", withIdentity(http.HandlerFunc(handlers.Create)))
	mux.Handle("GET /api/offboardings/{id}", withIdentity(http.HandlerFunc(handlers.Get)))
	mux.Handle("PUT /api/offboardings/{id}", withIdentity(http.HandlerFunc(handlers.Update)))
	mux.Handle("DELETE /api/offboardings/{id}", withIdentity(http.HandlerFunc(handlers.Delete)))
	mux.Handle("POST /api/offboardings/{id}/execute", withIdentity(http.HandlerFunc(handlers.Execute)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
