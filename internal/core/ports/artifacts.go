// internal/core/ports/artifacts.go
package ports

import (
	"urlfeat/internal/core/domain"
)

// ArtifactStore persists what a fit run learns so an apply run can reproduce it.
// Write failures are fatal to the run and must be returned, never swallowed.
type ArtifactStore interface {
	// Dir returns the directory the store writes into.
	Dir() string

	// SaveManifest records the final column order, replacing any previous manifest.
	SaveManifest(columns []string) error

	// LoadManifest returns the column order saved by SaveManifest.
	LoadManifest() ([]string, error)

	// ManifestPath returns where the manifest lives.
	ManifestPath() string

	// SaveEncoder persists one column encoder.
	SaveEncoder(artifact domain.EncoderArtifact) error

	// LoadEncoder returns the encoder stored for column.
	LoadEncoder(column string) (domain.EncoderArtifact, error)
}
