package middleware

import (
	"net/http"
	"time"

	"animals-safety/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// HTTPObserver recibe una observación por request servido (métricas).
type HTTPObserver interface {
	ObserveHTTP(route, method string, status int, d time.Duration)
}

// AccessLog loguea cada request y, si obs != nil, lo reporta a métricas.
// Debe ir después de chimw.RequestID para tener request_id.
func AccessLog(l logger.Logger, obs HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			d := time.Since(start)
			route := routePattern(r)

			if obs != nil {
				obs.ObserveHTTP(route, r.Method, status, d)
			}
			l.Info("http request", map[string]any{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      status,
				"duration_ms": d.Milliseconds(),
			})
		})
	}
}

// routePattern evita cardinalidad alta: usa el patrón de chi, no el path.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
