package static

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/whitenoise/core/logger"
)

// Handler wraps next with catalog dispatch for hosts that speak plain
// net/http: catalog hits are answered from precomputed data, everything else
// is forwarded to next untouched. Response errors (a file vanishing after
// startup, a client aborting mid-stream) are logged, not propagated.
func Handler(catalog *Catalog, next http.Handler) http.Handler {
	if catalog == nil {
		panic("static.Handler: catalog is required")
	}
	if next == nil {
		panic("static.Handler: next handler is required")
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry, ok := catalog.Lookup(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		if err := entry.Respond(w, r); err != nil {
			slog.Default().Error("static response failed",
				logger.Component("static"),
				logger.Path(r.URL.Path),
				logger.Error(err),
			)
		}
	})
}
