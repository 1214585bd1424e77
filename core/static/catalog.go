package static

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Catalog is the exact-match mapping from URL path to servable entry. It is
// built once from a root directory and read-only afterwards; rebuilding
// requires constructing a new catalog and swapping it atomically.
type Catalog struct {
	entries map[string]Entry
}

// New walks root and builds a catalog entry for every regular file found.
// Files ending in .gz never get their own entry; they attach to their
// uncompressed sibling as the precompressed variant. Any file that cannot be
// stat'ed aborts the build so the process never starts with a partial catalog.
func New(root string, opts ...Option) (*Catalog, error) {
	if root == "" {
		return nil, ErrMissingRoot
	}

	cfg := defaultCatalogConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("static: root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static: root %s is not a directory", root)
	}

	c := &Catalog{entries: make(map[string]Entry)}

	prefix := normalizePrefix(cfg.prefix)
	err = walkFiles(root, cfg.followSymlinks, func(filePath string) error {
		if strings.HasSuffix(filePath, gzipSuffix) {
			return nil
		}

		rel, err := filepath.Rel(root, filePath)
		if err != nil {
			return fmt.Errorf("static: relativize %s: %w", filePath, err)
		}
		urlPath := prefix + filepath.ToSlash(rel)

		return c.register(filePath, urlPath, cfg)
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// register adds the entry for urlPath, plus the directory aliases when the
// file is a directory index: /docs/index.html also registers /docs/ as an
// asset and /docs as a 301 to /docs/. A root index registers the asset at
// the stripped path instead of a redirect.
func (c *Catalog) register(filePath, urlPath string, cfg *catalogConfig) error {
	if strings.HasSuffix(urlPath, "/"+cfg.indexFile) {
		withSlash := strings.TrimSuffix(urlPath, cfg.indexFile)
		noSlash := strings.TrimSuffix(withSlash, "/")

		if noSlash != "" {
			c.entries[noSlash] = &Redirect{target: withSlash}
		} else {
			d, err := newDescriptor(filePath, noSlash, cfg)
			if err != nil {
				return err
			}
			c.entries[noSlash] = &Asset{Descriptor: d}
		}

		d, err := newDescriptor(filePath, withSlash, cfg)
		if err != nil {
			return err
		}
		c.entries[withSlash] = &Asset{Descriptor: d}
	}

	d, err := newDescriptor(filePath, urlPath, cfg)
	if err != nil {
		return err
	}
	c.entries[urlPath] = &Asset{Descriptor: d}
	return nil
}

// Lookup returns the entry registered at the exact URL path, if any. No path
// normalization happens here; aliases were encoded at build time.
func (c *Catalog) Lookup(urlPath string) (Entry, bool) {
	entry, ok := c.entries[urlPath]
	return entry, ok
}

// Len returns the number of registered URL paths.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// normalizePrefix reduces any spelling of a mount prefix to exactly one
// leading and one trailing slash, or a bare "/" when empty.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return "/"
	}
	return "/" + prefix + "/"
}

// walkFiles visits every regular file under root in lexical order, which
// keeps duplicate-key override order deterministic. Symlinks to files are
// visited; symlinked directories are descended only when follow is set.
// Broken links and vanished files surface as errors.
func walkFiles(root string, follow bool, fn func(path string) error) error {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("static: read dir %s: %w", root, err)
	}

	for _, entry := range dirEntries {
		path := filepath.Join(root, entry.Name())

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("static: resolve link %s: %w", path, err)
			}
			if target.IsDir() {
				if follow {
					if err := walkFiles(path, follow, fn); err != nil {
						return err
					}
				}
				continue
			}
			if err := fn(path); err != nil {
				return err
			}
			continue
		}

		if entry.IsDir() {
			if err := walkFiles(path, follow, fn); err != nil {
				return err
			}
			continue
		}

		if entry.Type().IsRegular() {
			if err := fn(path); err != nil {
				return err
			}
		}
	}
	return nil
}
