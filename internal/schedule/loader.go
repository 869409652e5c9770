package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/chronogrog/internal/errors"
)

// Repository loads and saves schedule documents.
type Repository interface {
	// Load reads a Schedule from a file
	Load(path string) (*Schedule, error)

	// Save writes a Schedule to a file
	Save(s *Schedule, path string) error
}

// FileRepository implements Repository for file-based storage
type FileRepository struct{}

// NewFileRepository creates a new file-based schedule repository
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Load reads a Schedule from a JSON or YAML file
func (r *FileRepository) Load(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileNotFoundError(path)
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to open schedule: %s", path), err)
	}
	defer f.Close()

	return Decode(f, path)
}

// Save writes a Schedule to a YAML file
func (r *FileRepository) Save(s *Schedule, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed, fmt.Sprintf("failed to create directory: %s", dir), err)
	}

	data, err := Marshal(s)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("failed to write schedule: %s", path), err)
	}

	return nil
}

// Decode reads a schedule document from r. Documents whose first non-space
// byte is '{' are decoded as JSON, anything else as YAML. Unknown keys are
// ignored. name is only used in error messages.
func Decode(r io.Reader, name string) (*Schedule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read schedule: %s", name), err)
	}

	var s Schedule
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, errors.NewFileUnmarshalError(name, "JSON", err)
		}
		return &s, nil
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.NewFileUnmarshalError(name, "YAML", err)
	}
	return &s, nil
}

// Marshal encodes s as YAML
func Marshal(s *Schedule) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}
	return buf.Bytes(), nil
}

var defaultRepository = NewFileRepository()

// Load reads a schedule document from r. See Decode.
func Load(r io.Reader) (*Schedule, error) {
	return Decode(r, "<stdin>")
}

// LoadFile reads a Schedule from path using the default repository.
func LoadFile(path string) (*Schedule, error) {
	return defaultRepository.Load(path)
}

// SaveFile writes s to path as YAML using the default repository.
func SaveFile(s *Schedule, path string) error {
	return defaultRepository.Save(s, path)
}

var _ Repository = (*FileRepository)(nil)
