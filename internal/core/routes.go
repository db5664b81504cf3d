package core

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"swimcast/internal/types"
)

// MountRoutes attaches all middleware and route groups to the server's
// router. Call this after the entry point has populated V1RouteRegistrars.
func (s *Server) MountRoutes() {
	r := s.router

	// Middleware ordering matters: Recoverer must be outermost so that a
	// panic in any later middleware still yields a 500 instead of a dropped
	// connection, and the request logger must run after the request ID
	// middleware so the ID appears in access logs.
	r.Use(Recoverer(s.Logger))
	r.Use(ContextTimeoutMiddleware(s.Config.Server.RequestTimeout))
	r.Use(RequestIDMiddleware)
	r.Use(SecurityHeadersMiddleware)
	r.Use(RequestLoggerMiddleware(s.Logger))
	r.Use(NewCORSMiddleware(s.Config.Security.CorsAllowedOrigins))
	if s.Metrics != nil {
		r.Use(MetricsMiddleware(s.Metrics))
	}
	r.Use(GzipMiddleware)

	r.Get("/health", s.HandleHealth)

	if s.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.MetricsHandler)
	}

	r.Route("/v1", func(v1 chi.Router) {
		for _, register := range s.V1RouteRegistrars {
			register(v1)
		}
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		Error(w, req, types.NewAppError(types.ErrCodeNotFoundRoute, "resource not found", nil))
	})
}
