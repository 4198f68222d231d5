// internal/adapters/output/artifacts.go
package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"urlfeat/internal/core/domain"
	apperrors "urlfeat/internal/platform/errors"
	"urlfeat/internal/platform/logx"
)

const (
	// ManifestFile is the default manifest name inside the artifacts directory.
	ManifestFile = "model_columns.txt"

	encoderSuffix = "_encoder.json"
)

// FileArtifactStore keeps the manifest and encoders as plain files in one directory.
type FileArtifactStore struct {
	dir          string
	manifestPath string
	logger       logx.Logger

	mu      sync.Mutex
	written map[string]string // encoder path -> column
}

// NewFileArtifactStore creates a store rooted at dir. An empty manifestPath
// places the manifest at dir/model_columns.txt. Nothing is created until the
// first write.
func NewFileArtifactStore(dir, manifestPath string, logger logx.Logger) *FileArtifactStore {
	if manifestPath == "" {
		manifestPath = filepath.Join(dir, ManifestFile)
	}
	if logger == nil {
		logger = logx.NewNop()
	}
	return &FileArtifactStore{
		dir:          dir,
		manifestPath: manifestPath,
		logger:       logger.With("component", "artifact-store"),
		written:      make(map[string]string),
	}
}

// Dir returns the artifacts directory.
func (s *FileArtifactStore) Dir() string { return s.dir }

// ManifestPath returns the manifest location.
func (s *FileArtifactStore) ManifestPath() string { return s.manifestPath }

// SaveManifest writes one column name per line.
func (s *FileArtifactStore) SaveManifest(columns []string) error {
	if err := WriteManifest(s.manifestPath, columns); err != nil {
		return err
	}
	s.logger.Debug("manifest saved", "path", s.manifestPath, "columns", len(columns))
	return nil
}

// LoadManifest reads the manifest back.
func (s *FileArtifactStore) LoadManifest() ([]string, error) {
	return ReadManifest(s.manifestPath)
}

// SaveEncoder writes <dir>/<column>_encoder.json.
func (s *FileArtifactStore) SaveEncoder(a domain.EncoderArtifact) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %q: %v", domain.ErrArtifactWrite, a.Column, err)
	}
	path := s.EncoderPath(a.Column)
	if err := s.claim(path, a.Column); err != nil {
		return err
	}
	if err := writeFileAtomic(path, append(data, '\n')); err != nil {
		return err
	}
	s.logger.Debug("encoder saved", "column", a.Column, "classes", len(a.Classes), "path", path)
	return nil
}

// LoadEncoder reads the encoder artifact of column.
func (s *FileArtifactStore) LoadEncoder(column string) (domain.EncoderArtifact, error) {
	path := s.EncoderPath(column)
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.EncoderArtifact{}, fmt.Errorf("%w: %w", domain.ErrArtifactRead,
			apperrors.Wrapf(apperrors.Classify(err), "encoder %q", column))
	}
	var a domain.EncoderArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return domain.EncoderArtifact{}, fmt.Errorf("%w: %s: %v", domain.ErrArtifactRead, path, err)
	}
	if a.Column != column {
		return domain.EncoderArtifact{}, fmt.Errorf("%w: %s holds column %q, want %q",
			domain.ErrArtifactRead, path, a.Column, column)
	}
	return a, nil
}

// claim reserves path for column. Two columns that sanitize to the same file
// name would overwrite each other, so the second one fails.
func (s *FileArtifactStore) claim(path, column string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if owner, ok := s.written[path]; ok && owner != column {
		return fmt.Errorf("%w: columns %q and %q share %s", domain.ErrArtifactWrite, owner, column, path)
	}
	s.written[path] = column
	return nil
}

// EncoderPath returns the file an encoder for column is stored in.
func (s *FileArtifactStore) EncoderPath(column string) string {
	return filepath.Join(s.dir, sanitizeColumnName(column)+encoderSuffix)
}

// WriteManifest writes columns to path, one per line, replacing the file.
func WriteManifest(path string, columns []string) error {
	var buf bytes.Buffer
	for _, c := range columns {
		buf.WriteString(c)
		buf.WriteByte('\n')
	}
	return writeFileAtomic(path, buf.Bytes())
}

// ReadManifest reads a manifest written by WriteManifest. Blank lines are skipped.
func ReadManifest(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrArtifactRead, apperrors.Wrap(apperrors.Classify(err), "manifest"))
	}
	defer f.Close()

	var columns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		columns = append(columns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrArtifactRead, path, err)
	}
	return columns, nil
}

// sanitizeColumnName makes a column name safe to use as a file name.
// Letters and digits of any script are kept.
// Example: "Lexical/domain name" -> "Lexical_domain_name"
func sanitizeColumnName(column string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, column)
}

// writeFileAtomic creates the parent directory, writes to a temp file and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrArtifactWrite, apperrors.Wrap(apperrors.Classify(err), "create directory"))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrArtifactWrite, apperrors.Classify(err))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", domain.ErrArtifactWrite, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %w", domain.ErrArtifactWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrArtifactWrite, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrArtifactWrite, err)
	}
	return nil
}
