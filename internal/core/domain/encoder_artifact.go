// internal/core/domain/encoder_artifact.go
package domain

import "time"

// EncoderArtifact is the persisted state of one fitted column encoder.
type EncoderArtifact struct {
	Column      string    `json:"column"`
	Classes     []string  `json:"classes"`
	UnknownCode int       `json:"unknown_code"`
	RunID       string    `json:"run_id,omitempty"`
	FittedAt    time.Time `json:"fitted_at"`
}
