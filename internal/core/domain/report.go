// internal/core/domain/report.go
package domain

import "time"

// RunReport summarizes one pipeline run.
type RunReport struct {
	RunID     string        `json:"run_id"`
	Mode      RunMode       `json:"mode"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`

	Input  string `json:"input,omitempty"`
	Output string `json:"output,omitempty"`

	RowsIn      int `json:"rows_in"`
	RowsOut     int `json:"rows_out"`
	RowsDropped int `json:"rows_dropped"`

	LexicalFailures     int `json:"lexical_failures"`
	DescriptiveFailures int `json:"descriptive_failures"`

	Chunks    int `json:"chunks"`
	ChunkSize int `json:"chunk_size"`
	Workers   int `json:"workers"`

	Columns        []string        `json:"columns"`
	EncodedColumns []EncodedColumn `json:"encoded_columns"`
	ManifestPath   string          `json:"manifest_path,omitempty"`
	ArtifactsDir   string          `json:"artifacts_dir"`

	// DistinctDomains counts registrable domains (eTLD+1) among the kept rows.
	DistinctDomains int           `json:"distinct_domains"`
	TopDomains      []DomainCount `json:"top_domains,omitempty"`
}

// EncodedColumn records one encoded column and its class count.
type EncodedColumn struct {
	Column  string `json:"column"`
	Classes int    `json:"classes"`
}

// DomainCount is a registrable domain and the number of rows pointing at it.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}
