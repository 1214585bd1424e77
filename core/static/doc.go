// Package static implements an asset catalog for serving a fixed set of files
// over HTTP with correct caching behavior. All per-file response data (headers,
// modification time, precompressed variant) is computed once at startup; the
// request path does no filesystem metadata work beyond opening the body.
//
// # Features
//
//   - Exact-path catalog built once from a root directory, read-only afterwards
//   - Precomputed Last-Modified, Content-Length, Content-Type and Cache-Control
//   - Conditional GET via If-Modified-Since (304 without re-reading metadata)
//   - Gzip-precompressed siblings (foo.css.gz) served to clients that accept gzip
//   - Index-file expansion: /docs/index.html, /docs/ and /docs are all servable,
//     with /docs answering 301 to /docs/
//   - Pluggable immutability policy for content-hashed filenames
//   - Injectable MIME-type overrides for deterministic tests
//
// # Basic Usage
//
//	catalog, err := static.New("./public",
//		static.WithPrefix("/static"),
//		static.WithMaxAge(time.Hour),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Plain net/http hosting: serve catalog hits, delegate the rest.
//	http.ListenAndServe(":8080", static.Handler(catalog, app))
//
// With the framework router, use the middleware package instead:
//
//	r.Use(middleware.StaticAssets[*myapp.Context](catalog))
//
// # Immutable Assets
//
// Content-hashed filenames never change for a given URL, so they can be cached
// effectively forever. Mark them through the injected predicate:
//
//	catalog, err := static.New("./public",
//		static.WithImmutable(func(path, urlPath string) bool {
//			return hashedNameRe.MatchString(filepath.Base(path))
//		}),
//	)
//
// # Environment Configuration
//
// Config carries env tags for loading through core/config:
//
//	var cfg static.Config
//	config.MustLoad(&cfg)
//	catalog, err := static.NewFromConfig(cfg)
//
// # Scope
//
// The catalog deliberately does not implement range requests, ETags, directory
// listing, or filesystem change detection after startup. Rebuild and swap the
// catalog to pick up new files.
package static
