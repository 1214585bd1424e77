package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitenoise/core/handler"
	"github.com/dmitrymomot/whitenoise/core/static"
	"github.com/dmitrymomot/whitenoise/middleware"
)

// testContext is a minimal handler.Context for exercising middleware without
// a full framework router.
type testContext struct {
	context.Context
	req *http.Request
	w   http.ResponseWriter
}

func (c *testContext) Request() *http.Request              { return c.req }
func (c *testContext) ResponseWriter() http.ResponseWriter { return c.w }

// serve runs the middleware chain against a recorder and returns it.
func serve(t *testing.T, mw handler.Middleware[*testContext], next handler.HandlerFunc[*testContext], req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	ctx := &testContext{Context: context.Background(), req: req, w: w}
	require.NoError(t, mw(next)(ctx)(w, req))
	return w
}

func buildCatalog(t *testing.T) *static.Catalog {
	t.Helper()
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.css"), []byte("body {}"), 0o644))

	catalog, err := static.New(tmpDir, static.WithPrefix("/static"))
	require.NoError(t, err)
	return catalog
}

func downstream(body string) handler.HandlerFunc[*testContext] {
	return func(ctx *testContext) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte(body))
			return err
		}
	}
}

func TestStaticAssetsServesCatalogHit(t *testing.T) {
	t.Parallel()

	mw := middleware.StaticAssets[*testContext](buildCatalog(t))

	req := httptest.NewRequest(http.MethodGet, "/static/app.css", nil)
	w := serve(t, mw, downstream("app"), req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body {}", w.Body.String())
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestStaticAssetsDelegatesOnMiss(t *testing.T) {
	t.Parallel()

	mw := middleware.StaticAssets[*testContext](buildCatalog(t))

	req := httptest.NewRequest(http.MethodGet, "/nonexistent.js", nil)
	w := serve(t, mw, downstream("app response"), req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "app response", w.Body.String())
}

func TestStaticAssetsRejectsUnsupportedMethod(t *testing.T) {
	t.Parallel()

	mw := middleware.StaticAssets[*testContext](buildCatalog(t))

	// The path belongs to the catalog; POST must not reach the app.
	req := httptest.NewRequest(http.MethodPost, "/static/app.css", nil)
	w := serve(t, mw, downstream("app must not see this"), req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
	assert.Empty(t, w.Body.String())
}

func TestStaticAssetsSkip(t *testing.T) {
	t.Parallel()

	mw := middleware.StaticAssetsWithConfig[*testContext](middleware.StaticConfig{
		Catalog: buildCatalog(t),
		Skip: func(ctx handler.Context) bool {
			return ctx.Request().Header.Get("X-Bypass-Static") == "true"
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/static/app.css", nil)
	req.Header.Set("X-Bypass-Static", "true")
	w := serve(t, mw, downstream("bypassed"), req)

	assert.Equal(t, "bypassed", w.Body.String())
}

func TestStaticAssetsRequiresCatalog(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		middleware.StaticAssetsWithConfig[*testContext](middleware.StaticConfig{})
	})
}
