package serialization

import "errors"

// Common errors.
var (
	ErrMalformedConfig = errors.New("malformed layer config")
	ErrShortRead       = errors.New("short read")
	ErrReaderClosed    = errors.New("reader is closed")
)
