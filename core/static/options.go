package static

import (
	"strings"
	"time"
)

// catalogConfig holds the resolved build configuration for a catalog.
type catalogConfig struct {
	prefix          string
	indexFile       string
	maxAge          time.Duration
	cacheControl    bool
	allowAllOrigins bool
	charset         string
	followSymlinks  bool
	isImmutable     func(path, urlPath string) bool
	mimeOverrides   map[string]string
}

func defaultCatalogConfig() *catalogConfig {
	return &catalogConfig{
		indexFile:       "index.html",
		maxAge:          60 * time.Second,
		cacheControl:    true,
		allowAllOrigins: true,
		charset:         "utf-8",
		isImmutable:     func(path, urlPath string) bool { return false },
		mimeOverrides:   map[string]string{},
	}
}

func (c *catalogConfig) validate() error {
	if c.maxAge < 0 {
		return ErrInvalidMaxAge
	}
	if c.indexFile == "" || strings.ContainsRune(c.indexFile, '/') {
		return ErrInvalidIndexFile
	}
	if c.charset == "" {
		return ErrInvalidCharset
	}
	return nil
}

// Option configures catalog construction.
type Option func(*catalogConfig)

// WithPrefix mounts all assets under the given URL prefix. The prefix is
// normalized to exactly one leading and one trailing slash, so "static",
// "/static" and "/static/" are equivalent.
func WithPrefix(prefix string) Option {
	return func(c *catalogConfig) {
		c.prefix = prefix
	}
}

// WithIndexFile sets the filename treated as a directory index
// (default: "index.html").
func WithIndexFile(name string) Option {
	return func(c *catalogConfig) {
		c.indexFile = name
	}
}

// WithMaxAge sets the Cache-Control max-age applied to non-immutable assets
// (default: 60s).
func WithMaxAge(maxAge time.Duration) Option {
	return func(c *catalogConfig) {
		c.maxAge = maxAge
	}
}

// WithoutCacheControl suppresses the Cache-Control header entirely,
// for deployments that manage caching at an outer layer.
func WithoutCacheControl() Option {
	return func(c *catalogConfig) {
		c.cacheControl = false
	}
}

// WithAllowAllOrigins controls the Access-Control-Allow-Origin: * header.
// It is on by default: static assets are public, and the permissive header
// keeps webfonts working when assets are served from a CDN domain.
func WithAllowAllOrigins(allow bool) Option {
	return func(c *catalogConfig) {
		c.allowAllOrigins = allow
	}
}

// WithCharset sets the charset attached to text-like content types
// (default: "utf-8").
func WithCharset(charset string) Option {
	return func(c *catalogConfig) {
		c.charset = charset
	}
}

// WithFollowSymlinks enables descending into symlinked directories during the
// catalog scan. Symlinks to regular files are always served.
func WithFollowSymlinks() Option {
	return func(c *catalogConfig) {
		c.followSymlinks = true
	}
}

// WithImmutable injects the predicate that marks assets as permanently
// cacheable. Immutable assets get a ten-year max-age instead of the
// configured one. The default predicate marks nothing immutable.
func WithImmutable(fn func(path, urlPath string) bool) Option {
	return func(c *catalogConfig) {
		if fn != nil {
			c.isImmutable = fn
		}
	}
}

// WithMIMEType overrides the content type for a file extension, taking
// precedence over the platform MIME table. The extension must include the
// leading dot.
func WithMIMEType(ext, mimeType string) Option {
	return func(c *catalogConfig) {
		c.mimeOverrides[strings.ToLower(ext)] = mimeType
	}
}
