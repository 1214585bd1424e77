// Package logger provides structured logging attribute helpers built on Go's
// standard slog package. The helpers follow the empty-Attr pattern: passing a
// nil error or zero value yields an attribute slog silently drops, so call
// sites never need nil checks.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/whitenoise/core/logger"
//
//	log.Info("catalog built",
//		logger.Component("static"),
//		logger.Count("assets", n),
//		logger.Elapsed(start),
//	)
//
//	log.Error("compression failed", logger.Path(name), logger.Error(err))
package logger
