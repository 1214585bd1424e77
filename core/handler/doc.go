// Package handler defines the request processing contract the rest of the
// module builds on: a Response function that renders to an
// http.ResponseWriter, a type-safe HandlerFunc with custom context support,
// and a Middleware type for composing handlers.
//
// # Core Types
//
//	// Response function renders HTTP responses
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// Type-safe handler with custom context
//	type HandlerFunc[C Context] func(ctx C) Response
//
//	// Middleware function for handler composition
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// # Context Interface
//
// The Context interface extends Go's standard context.Context with
// HTTP-specific accessors:
//
//	type Context interface {
//		context.Context                      // Standard context methods
//		Request() *http.Request              // Access to HTTP request
//		ResponseWriter() http.ResponseWriter // Access to response writer
//	}
//
// Any framework context exposing the request and response writer satisfies
// the interface, which lets the static-assets middleware in this module sit
// in front of an arbitrary downstream handler.
package handler
