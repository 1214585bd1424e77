package static

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"slices"
	"time"
)

// blockSize bounds the per-response copy buffer for hosts without a
// zero-copy send path.
const blockSize = 64 * 1024

// acceptsGzipRe matches a word-bounded gzip token in Accept-Encoding, so
// "br, gzip;q=0.8" matches while "supergzip" does not.
var acceptsGzipRe = regexp.MustCompile(`\bgzip\b`)

// Entry is the servable thing registered at a URL path: a static asset or a
// canonical-URL redirect. Respond has the handler.Response shape, so catalog
// hits plug directly into the middleware chain.
type Entry interface {
	Respond(w http.ResponseWriter, r *http.Request) error
}

// Asset serves one static file: method check, conditional GET, variant
// selection and body streaming, all against the frozen Descriptor.
type Asset struct {
	*Descriptor
}

// Respond implements Entry.
func (a *Asset) Respond(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return methodNotAllowed(w)
	}

	if a.notModified(r) {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}

	path, headers := a.variant(r)

	if r.Method == http.MethodHead {
		copyHeaders(w.Header(), headers)
		w.WriteHeader(http.StatusOK)
		return nil
	}

	// Open before writing anything so a vanished file can still become a
	// clean error response at the hosting layer.
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("static: open %s: %w", path, err)
	}
	defer f.Close()

	copyHeaders(w.Header(), headers)
	w.WriteHeader(http.StatusOK)

	buf := make([]byte, blockSize)
	if _, err := io.CopyBuffer(w, f, buf); err != nil {
		return fmt.Errorf("static: stream %s: %w", path, err)
	}
	return nil
}

// notModified reports whether the request's cached copy is still fresh. The
// raw If-Modified-Since string is compared against the stored Last-Modified
// value first; only on mismatch is it parsed as an HTTP date. Unparsable
// dates never satisfy the condition.
func (a *Asset) notModified(r *http.Request) bool {
	since := r.Header.Get("If-Modified-Since")
	if since == "" {
		return false
	}
	if since == a.lastModifiedHTTP {
		return true
	}
	t, err := http.ParseTime(since)
	if err != nil {
		return false
	}
	return !t.UTC().Truncate(time.Second).Before(a.lastModified)
}

// variant picks the precompressed file when one exists and the client
// advertises gzip support.
func (a *Asset) variant(r *http.Request) (string, http.Header) {
	if a.gzipPath != "" && acceptsGzipRe.MatchString(r.Header.Get("Accept-Encoding")) {
		return a.gzipPath, a.gzipHeaders
	}
	return a.path, a.headers
}

// Redirect answers 301 with the canonical URL for a directory-index alias.
type Redirect struct {
	target string
}

// Target returns the canonical URL path the redirect points at.
func (rd *Redirect) Target() string {
	return rd.target
}

// Respond implements Entry. The Location is absolute when the request carries
// a Host, preserving the original scheme; otherwise it is the bare path.
func (rd *Redirect) Respond(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return methodNotAllowed(w)
	}

	location := rd.target
	if r.Host != "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		location = scheme + "://" + r.Host + rd.target
	}

	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusMovedPermanently)
	return nil
}

// methodNotAllowed answers 405; static paths belong to the catalog, so other
// methods are rejected here rather than delegated downstream.
func methodNotAllowed(w http.ResponseWriter) error {
	w.Header().Set("Allow", "GET, HEAD")
	w.WriteHeader(http.StatusMethodNotAllowed)
	return nil
}

// copyHeaders clones values so the descriptor's frozen header sets can never
// be mutated through the response writer.
func copyHeaders(dst, src http.Header) {
	for name, values := range src {
		dst[name] = slices.Clone(values)
	}
}
