package static

import "time"

// Config holds static asset serving configuration with environment variable
// support, loadable through core/config.
type Config struct {
	// Root directory to scan for assets
	Root string `env:"STATIC_ROOT"`

	// URL prefix the assets are mounted under (empty for the site root)
	Prefix string `env:"STATIC_PREFIX" envDefault:""`

	// Filename treated as a directory index
	IndexFile string `env:"STATIC_INDEX_FILE" envDefault:"index.html"`

	// Cache-Control max-age for non-immutable assets
	MaxAge time.Duration `env:"STATIC_MAX_AGE" envDefault:"60s"`

	// Suppress the Cache-Control header entirely
	NoCacheControl bool `env:"STATIC_NO_CACHE_CONTROL" envDefault:"false"`

	// Send Access-Control-Allow-Origin: * on every asset
	AllowAllOrigins bool `env:"STATIC_ALLOW_ALL_ORIGINS" envDefault:"true"`

	// Charset attached to text-like content types
	Charset string `env:"STATIC_CHARSET" envDefault:"utf-8"`

	// Descend into symlinked directories during the scan
	FollowSymlinks bool `env:"STATIC_FOLLOW_SYMLINKS" envDefault:"false"`
}

// DefaultConfig returns a Config with the same defaults the option layer uses.
func DefaultConfig() Config {
	return Config{
		IndexFile:       "index.html",
		MaxAge:          60 * time.Second,
		AllowAllOrigins: true,
		Charset:         "utf-8",
	}
}

// NewFromConfig builds a catalog from configuration. Additional options can
// override config values; they are applied after the config-derived ones.
func NewFromConfig(cfg Config, opts ...Option) (*Catalog, error) {
	configOpts := []Option{
		WithPrefix(cfg.Prefix),
		WithIndexFile(cfg.IndexFile),
		WithMaxAge(cfg.MaxAge),
		WithAllowAllOrigins(cfg.AllowAllOrigins),
		WithCharset(cfg.Charset),
	}
	if cfg.NoCacheControl {
		configOpts = append(configOpts, WithoutCacheControl())
	}
	if cfg.FollowSymlinks {
		configOpts = append(configOpts, WithFollowSymlinks())
	}

	return New(cfg.Root, append(configOpts, opts...)...)
}
