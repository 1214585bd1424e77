package static

import "errors"

var (
	// ErrMissingRoot is returned when the root directory is not provided.
	ErrMissingRoot = errors.New("static: root directory is required")

	// ErrInvalidMaxAge is returned for a negative Cache-Control max-age.
	ErrInvalidMaxAge = errors.New("static: max age must not be negative")

	// ErrInvalidIndexFile is returned when the index filename is empty or
	// contains a path separator.
	ErrInvalidIndexFile = errors.New("static: invalid index filename")

	// ErrInvalidCharset is returned when the charset is empty.
	ErrInvalidCharset = errors.New("static: charset is required")
)
