// internal/core/domain/errors.go
package domain

import "errors"

// Common domain errors.
var (
	// URL errors
	ErrMalformedURL = errors.New("malformed URL")

	// Table errors
	ErrMissingColumn   = errors.New("missing column")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrRaggedRow       = errors.New("row width does not match header")
	ErrRowOutOfRange   = errors.New("row range out of bounds")

	// Pipeline errors
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrManifestMismatch = errors.New("table columns do not match manifest")

	// Encoding errors
	ErrUnseenCategory = errors.New("category value not seen during fit")
	ErrUnknownCode    = errors.New("code outside encoder range")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Artifact errors
	ErrArtifactWrite = errors.New("failed to write artifact")
	ErrArtifactRead  = errors.New("failed to read artifact")
)
