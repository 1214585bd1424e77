package middleware

import (
	"log/slog"

	"github.com/dmitrymomot/whitenoise/core/handler"
	"github.com/dmitrymomot/whitenoise/core/logger"
	"github.com/dmitrymomot/whitenoise/core/static"
)

// StaticConfig configures the static assets middleware.
type StaticConfig struct {
	// Skip allows bypassing static dispatch for specific requests
	Skip func(ctx handler.Context) bool

	// Catalog is the asset catalog built at startup (required)
	Catalog *static.Catalog

	// Logger used at construction time (default: slog.Default())
	Logger *slog.Logger
}

// StaticAssets creates a middleware that answers requests for cataloged
// static assets and forwards everything else to the next handler.
//
// The catalog is built once at startup and read-only afterwards, so the
// per-request work is an exact-path map lookup; no file metadata is read on
// the hot path. Unsupported methods on a static path answer 405 rather than
// falling through to the application, because the path belongs to the
// catalog, not the app.
//
// Usage:
//
//	catalog, err := static.New("./public", static.WithPrefix("/static"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	r.Use(middleware.StaticAssets[*router.Context](catalog))
func StaticAssets[C handler.Context](catalog *static.Catalog) handler.Middleware[C] {
	return StaticAssetsWithConfig[C](StaticConfig{Catalog: catalog})
}

// StaticAssetsWithConfig creates a static assets middleware with custom
// configuration. Panics if no catalog is provided, since dispatch without a
// catalog is a programming error.
func StaticAssetsWithConfig[C handler.Context](cfg StaticConfig) handler.Middleware[C] {
	if cfg.Catalog == nil {
		panic("middleware.StaticAssets: catalog is required")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log.Debug("static asset catalog attached",
		logger.Component("static"),
		logger.Count("entries", cfg.Catalog.Len()),
	)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			entry, ok := cfg.Catalog.Lookup(ctx.Request().URL.Path)
			if !ok {
				return next(ctx)
			}
			return entry.Respond
		}
	}
}
