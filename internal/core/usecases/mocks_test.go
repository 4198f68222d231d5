// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"urlfeat/internal/core/domain"
)

// memSource is an in-memory ports.TableSource.
type memSource struct {
	table *domain.Table
	err   error
}

func (m *memSource) Name() string { return "memory" }

func (m *memSource) Load(ctx context.Context) (*domain.Table, error) {
	if m.err != nil {
		return nil, m.err
	}
	// Copy rows so a source can be loaded more than once.
	out := domain.NewTable(m.table.Schema)
	for _, r := range m.table.Rows {
		out.Rows = append(out.Rows, append(domain.Row(nil), r...))
	}
	return out, nil
}

// memSink records the table it receives.
type memSink struct {
	written *domain.Table
	err     error
}

func (m *memSink) Name() string { return "memory-sink" }

func (m *memSink) Write(ctx context.Context, tbl *domain.Table) error {
	if m.err != nil {
		return m.err
	}
	m.written = tbl
	return nil
}

var errMockStore = errors.New("mock store failure")

// memStore is an in-memory ports.ArtifactStore with failure injection.
type memStore struct {
	mu        sync.Mutex
	manifest  []string
	encoders  map[string]domain.EncoderArtifact
	failWrite bool

	// writeErr, when set, is returned by every save.
	writeErr error
}

func newMemStore() *memStore {
	return &memStore{encoders: make(map[string]domain.EncoderArtifact)}
}

func (m *memStore) Dir() string          { return "mem://artifacts" }
func (m *memStore) ManifestPath() string { return "mem://artifacts/model_columns.txt" }

func (m *memStore) SaveManifest(columns []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	if m.failWrite {
		return fmt.Errorf("%w: %w", domain.ErrArtifactWrite, errMockStore)
	}
	m.manifest = append([]string(nil), columns...)
	return nil
}

func (m *memStore) LoadManifest() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.manifest == nil {
		return nil, fmt.Errorf("%w: no manifest", domain.ErrArtifactRead)
	}
	return append([]string(nil), m.manifest...), nil
}

func (m *memStore) SaveEncoder(a domain.EncoderArtifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite {
		return fmt.Errorf("%w: %w", domain.ErrArtifactWrite, errMockStore)
	}
	m.encoders[a.Column] = a
	return nil
}

func (m *memStore) LoadEncoder(column string) (domain.EncoderArtifact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.encoders[column]
	if !ok {
		return domain.EncoderArtifact{}, fmt.Errorf("%w: no encoder for %q", domain.ErrArtifactRead, column)
	}
	return a, nil
}

// urlTable builds a URL,Classification table.
func urlTable(urls []string, labels ...string) *domain.Table {
	schema, _ := domain.NewSchema(
		domain.ColumnSpec{Name: "URL", Kind: domain.KindString},
		domain.ColumnSpec{Name: "Classification", Kind: domain.KindString},
	)
	tbl := domain.NewTable(schema)
	for i, u := range urls {
		label := "benign"
		if i < len(labels) {
			label = labels[i]
		}
		tbl.Rows = append(tbl.Rows, domain.Row{domain.StringValue(u), domain.StringValue(label)})
	}
	return tbl
}

func fixedClock() func() time.Time {
	t := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}
