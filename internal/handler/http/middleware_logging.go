package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging emits one access-log line per request. Besides the raw URI it
// records the matched chi route pattern, which groups entries per resource
// regardless of the entity ids in the path.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		// resolved only after serving, once chi has matched the route
		route := ""
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			route = routeCtx.RoutePattern()
		}

		log.Info().
			Str("uri", uri).
			Str("route", route).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
