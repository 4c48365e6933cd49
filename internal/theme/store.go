package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	sumerrors "github.com/alexisbeaulieu97/sumcalc/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// preferencesFile is the on-disk layout of the preference store.
type preferencesFile struct {
	Theme string `yaml:"theme"`
}

// Store persists the theme preference as a small YAML document.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a Store backed by path. The file is created on first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored theme. found is false when no preference has been
// written yet. A stored value other than "light" or "dark" is reported as an
// error wrapping ErrInvalidTheme.
func (s *Store) Load() (t Theme, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, sumerrors.NewStorageError("read", s.path, err)
	}

	var file preferencesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", false, sumerrors.NewParseError(s.path, extractLine(err), err)
	}

	if file.Theme == "" {
		return "", false, nil
	}

	parsed, err := Parse(file.Theme)
	if err != nil {
		return "", false, sumerrors.NewValidationError("theme", err.Error(), err)
	}

	return parsed, true, nil
}

// Save writes t atomically.
func (s *Store) Save(t Theme) error {
	if !t.Valid() {
		return sumerrors.NewValidationError("theme", fmt.Sprintf("cannot store %q", t), ErrInvalidTheme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return sumerrors.NewStorageError("mkdir", filepath.Dir(s.path), err)
	}

	data, err := yaml.Marshal(preferencesFile{Theme: string(t)})
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	// Write to temporary file first
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return sumerrors.NewStorageError("write", tmpPath, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return sumerrors.NewStorageError("rename", s.path, err)
	}

	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
