package preference

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"gopkg.in/yaml.v3"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const fileVersion = "1"

// Store reads and writes single string values by key.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Deleter is implemented by stores that can drop a key entirely.
type Deleter interface {
	Delete(key string) error
}

// File is the on-disk document written by FileStore.
type File struct {
	Version string            `yaml:"version"`
	Values  map[string]string `yaml:"values"`
}

// FileStore persists preferences in a small YAML document.
type FileStore struct {
	path     string
	mu       sync.RWMutex
	values   map[string]string
	loaded   bool
	readFile func(string) ([]byte, error)
}

// ErrCorrupt marks a preferences file that exists but does not parse. Writes replace it.
var ErrCorrupt = errors.New("preferences file is corrupt")

var (
	_ Store   = (*FileStore)(nil)
	_ Deleter = (*FileStore)(nil)
)

// NewFileStore creates a FileStore for path. Nothing touches the disk until the first Get or Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, values: make(map[string]string), readFile: os.ReadFile}
}

// DefaultPath returns ~/.folio/preferences.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".folio", "preferences.yaml"), nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the stored value for key. A missing file reads as empty; a corrupt file is
// reported once and then treated as empty so the next Set replaces it.
func (s *FileStore) Get(key string) (string, bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key and writes the file atomically.
func (s *FileStore) Set(key, value string) error {
	if err := s.ensureLoaded(); err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Delete removes key and rewrites the file.
func (s *FileStore) Delete(key string) error {
	if err := s.ensureLoaded(); err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.save()
}

func (s *FileStore) ensureLoaded() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	// I/O failures leave the store unloaded so later writes fail instead of replacing a
	// file that could not be read.
	data, err := s.readFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			s.loaded = true
			return nil
		}
		return folioerrors.NewStorageError("read", s.path, err)
	}
	s.loaded = true

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return folioerrors.NewStorageError("read", s.path, fmt.Errorf("%w: %v", ErrCorrupt, err))
	}

	if file.Values != nil {
		s.values = file.Values
	}
	return nil
}

// save must be called with s.mu held.
func (s *FileStore) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return folioerrors.NewStorageError("write", s.path, fmt.Errorf("failed to create preferences directory: %w", err))
	}

	data, err := yaml.Marshal(File{Version: fileVersion, Values: s.values})
	if err != nil {
		return folioerrors.NewStorageError("write", s.path, fmt.Errorf("failed to marshal preferences: %w", err))
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return folioerrors.NewStorageError("write", s.path, fmt.Errorf("failed to write temporary file: %w", err))
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return folioerrors.NewStorageError("write", s.path, fmt.Errorf("failed to rename temporary file: %w", err))
	}

	return nil
}
