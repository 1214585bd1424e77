package static

import (
	"mime"
	"path/filepath"
	"strings"
)

// mimeTypesWithCharset lists content types outside text/* that still take a
// charset parameter.
var mimeTypesWithCharset = map[string]struct{}{
	"application/javascript": {},
	"application/xml":        {},
}

// mimeResolver maps filenames to content types. Overrides win over the
// platform MIME table; unknown extensions fall back to application/octet-stream.
type mimeResolver struct {
	overrides map[string]string
}

func (m mimeResolver) typeByName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := m.overrides[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		// The platform table may attach parameters (e.g. charset); the
		// descriptor decides the charset itself, so strip them here.
		if mediaType, _, err := mime.ParseMediaType(t); err == nil {
			return mediaType
		}
		return t
	}
	return "application/octet-stream"
}

// charsetFor returns the charset to attach to the given content type, or ""
// when the type does not take one. All text/* types take a charset, plus the
// entries in mimeTypesWithCharset.
func charsetFor(mimeType, charset string) string {
	if strings.HasPrefix(mimeType, "text/") {
		return charset
	}
	if _, ok := mimeTypesWithCharset[mimeType]; ok {
		return charset
	}
	return ""
}
