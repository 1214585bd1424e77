package compress_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitenoise/core/compress"
	"github.com/dmitrymomot/whitenoise/core/static"
)

func TestCompressWritesGzipSiblings(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	// Repetitive text compresses well.
	css := strings.Repeat("body { color: blue; }\n", 200)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.css"), []byte(css), 0o644))

	res, err := compress.Compress(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Compressed)

	gzPath := filepath.Join(tmpDir, "app.css.gz")
	data, err := os.ReadFile(gzPath)
	require.NoError(t, err)
	assert.Less(t, len(data), len(css))

	// The output must round-trip through a gzip reader.
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.NoError(t, zr.Close())
	assert.Equal(t, css, string(out))
}

func TestCompressSkipsExcludedExtensions(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "logo.png"), []byte(strings.Repeat("a", 4096)), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "font.woff2"), []byte(strings.Repeat("b", 4096)), 0o644))

	res, err := compress.Compress(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Compressed)
	assert.Equal(t, 2, res.Skipped)

	_, err = os.Stat(filepath.Join(tmpDir, "logo.png.gz"))
	assert.True(t, os.IsNotExist(err))
}

func TestCompressSkipsWhenSavingsTooSmall(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	// A tiny file gains nothing from gzip framing overhead.
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "tiny.txt"), []byte("x"), 0o644))

	res, err := compress.Compress(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Compressed)

	_, err = os.Stat(filepath.Join(tmpDir, "tiny.txt.gz"))
	assert.True(t, os.IsNotExist(err))
}

func TestCompressCustomExtensions(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "data.csv"), []byte(strings.Repeat("a,b,c\n", 500)), 0o644))

	res, err := compress.Compress(tmpDir, compress.WithExtensions(".csv"))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Compressed)
	assert.Equal(t, 1, res.Skipped)
}

// The catalog picks up the generated siblings: compress then build.
func TestCompressThenServe(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	js := strings.Repeat("console.log('hello');\n", 300)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.js"), []byte(js), 0o644))

	_, err := compress.Compress(tmpDir)
	require.NoError(t, err)

	catalog, err := static.New(tmpDir)
	require.NoError(t, err)

	entry, ok := catalog.Lookup("/app.js")
	require.True(t, ok)
	_, ok = catalog.Lookup("/app.js.gz")
	assert.False(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	require.NoError(t, entry.Respond(w, req))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))
	assert.Less(t, w.Body.Len(), len(js))
}
