package handler

import (
	"context"
	"net/http"
)

// Context is the request context contract handlers and middleware operate on.
// Any type exposing the underlying request and response writer satisfies it,
// so the static middleware composes with whatever framework hosts it.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}
