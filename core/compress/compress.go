package compress

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/dmitrymomot/whitenoise/core/logger"
)

// gzipSuffix is the extension the static catalog recognizes as a
// precompressed sibling.
const gzipSuffix = ".gz"

// skipExtensions lists file types that are already compressed; gzipping them
// wastes CPU for no size win.
var skipExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
	".zip": {}, ".gz": {}, ".tgz": {}, ".bz2": {}, ".tbz": {}, ".xz": {}, ".br": {},
	".swf": {}, ".flv": {},
	".woff": {}, ".woff2": {},
}

// defaultMinSavings is the fraction a compressed file must shrink by to be
// worth a variant; tiny wins don't justify the extra cache entries.
const defaultMinSavings = 0.05

// Result summarizes a compression run.
type Result struct {
	// Compressed counts written .gz siblings.
	Compressed int
	// Skipped counts files left alone (excluded extension or insufficient savings).
	Skipped int
}

type config struct {
	skipExtensions map[string]struct{}
	minSavings     float64
	log            *slog.Logger
}

// Option configures a compression run.
type Option func(*config)

// WithExtensions replaces the default skip list. Extensions must include the
// leading dot; matching is case-insensitive.
func WithExtensions(exts ...string) Option {
	return func(c *config) {
		c.skipExtensions = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			c.skipExtensions[strings.ToLower(ext)] = struct{}{}
		}
	}
}

// WithMinSavings sets the fraction (0..1) a file must shrink by for the
// compressed variant to be kept (default: 0.05).
func WithMinSavings(fraction float64) Option {
	return func(c *config) {
		c.minSavings = fraction
	}
}

// WithLogger sets the logger for per-file progress (default: slog.Default()).
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// Compress walks root and writes a gzip sibling (name + ".gz") next to every
// compressible file, using the best compression level. Existing .gz files and
// known-incompressible extensions are skipped, as are files whose compressed
// form isn't meaningfully smaller. Run it over a static root before building
// the catalog, typically as a deploy step.
func Compress(root string, opts ...Option) (Result, error) {
	cfg := &config{
		skipExtensions: skipExtensions,
		minSavings:     defaultMinSavings,
		log:            slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var res Result
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("compress: walk %s: %w", path, err)
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if _, skip := cfg.skipExtensions[ext]; skip {
			res.Skipped++
			return nil
		}

		written, err := compressFile(path, cfg)
		if err != nil {
			return err
		}
		if written {
			res.Compressed++
		} else {
			res.Skipped++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	cfg.log.Info("precompression finished",
		logger.Component("compress"),
		logger.Count("compressed", res.Compressed),
		logger.Count("skipped", res.Skipped),
	)
	return res, nil
}

// compressFile gzips one file and reports whether the variant was kept.
func compressFile(path string, cfg *config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("compress: read %s: %w", path, err)
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return false, fmt.Errorf("compress: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return false, fmt.Errorf("compress: gzip %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return false, fmt.Errorf("compress: gzip %s: %w", path, err)
	}

	if len(data) == 0 || float64(buf.Len()) > float64(len(data))*(1-cfg.minSavings) {
		cfg.log.Debug("compression not worthwhile", logger.Path(path))
		return false, nil
	}

	if err := os.WriteFile(path+gzipSuffix, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("compress: write %s: %w", path+gzipSuffix, err)
	}
	cfg.log.Debug("compressed",
		logger.Path(path),
		logger.BytesOut(int64(buf.Len())),
	)
	return true, nil
}
