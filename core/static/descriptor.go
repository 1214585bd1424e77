package static

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	// gzipSuffix marks precompressed sibling files (foo.css + foo.css.gz).
	gzipSuffix = ".gz"

	// foreverMaxAge is the max-age applied to immutable assets. Ten years is
	// what nginx sends for "expires max", so we follow its lead.
	foreverMaxAge = 10 * 365 * 24 * time.Hour
)

// Descriptor holds the precomputed response data for one static file: source
// paths, sizes, modification time and the complete header set for the plain
// and (when present) gzip variant. Descriptors are built once during catalog
// construction and never mutated afterwards, so they are safe to share across
// concurrent request handlers without locking.
type Descriptor struct {
	path     string
	gzipPath string // empty when no precompressed sibling exists

	lastModified     time.Time // second resolution, UTC
	lastModifiedHTTP string

	headers     http.Header
	gzipHeaders http.Header // nil when no precompressed sibling exists
}

// newDescriptor stats path once and freezes everything the responder needs.
// The urlPath is only consulted by the immutability predicate.
func newDescriptor(path, urlPath string, cfg *catalogConfig) (*Descriptor, error) {
	info, err := os.Stat(path)
	if err != nil {
		// A file that disappears between enumeration and stat aborts the
		// whole build: a half-built catalog would serve wrong metadata.
		return nil, fmt.Errorf("static: stat %s: %w", path, err)
	}

	mtime := info.ModTime().UTC().Truncate(time.Second)

	d := &Descriptor{
		path:             path,
		lastModified:     mtime,
		lastModifiedHTTP: mtime.Format(http.TimeFormat),
		headers:          make(http.Header),
	}

	d.headers.Set("Last-Modified", d.lastModifiedHTTP)
	d.headers.Set("Content-Length", strconv.FormatInt(info.Size(), 10))

	resolver := mimeResolver{overrides: cfg.mimeOverrides}
	mimeType := resolver.typeByName(path)
	if charset := charsetFor(mimeType, cfg.charset); charset != "" {
		d.headers.Set("Content-Type", mimeType+"; charset="+charset)
	} else {
		d.headers.Set("Content-Type", mimeType)
	}

	if cfg.cacheControl {
		maxAge := cfg.maxAge
		if cfg.isImmutable(path, urlPath) {
			maxAge = foreverMaxAge
		}
		d.headers.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int64(maxAge.Seconds())))
	}

	if cfg.allowAllOrigins {
		// Static assets are public, and the permissive header keeps webfonts
		// working when they are served from a CDN domain.
		d.headers.Set("Access-Control-Allow-Origin", "*")
	}

	if gzipInfo, err := os.Stat(path + gzipSuffix); err == nil && gzipInfo.Mode().IsRegular() {
		d.gzipPath = path + gzipSuffix
		d.headers.Set("Vary", "Accept-Encoding")
		d.gzipHeaders = d.headers.Clone()
		d.gzipHeaders.Set("Content-Encoding", "gzip")
		d.gzipHeaders.Set("Content-Length", strconv.FormatInt(gzipInfo.Size(), 10))
	}

	return d, nil
}

// Path returns the filesystem location of the uncompressed file.
func (d *Descriptor) Path() string {
	return d.path
}

// LastModified returns the modification-time fingerprint used for
// conditional-GET comparisons.
func (d *Descriptor) LastModified() time.Time {
	return d.lastModified
}
