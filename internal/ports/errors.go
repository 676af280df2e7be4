package ports

import "errors"

// Sentinel errors used across adapters and app.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidSource      = errors.New("invalid dictionary source")
	ErrDictionaryNotReady = errors.New("dictionary not ready")
	ErrInvalidSettings    = errors.New("invalid settings")
)
