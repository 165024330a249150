package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore keeps the selected prompt id in a single file.
type PreferenceStore struct {
	path string
}

// NewPreferenceStore creates a PreferenceStore at path.
func NewPreferenceStore(path string) *PreferenceStore {
	return &PreferenceStore{path: path}
}

// SelectedPrompt returns the stored prompt id, or 0 if none is set.
func (s *PreferenceStore) SelectedPrompt() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(text)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// SetSelectedPrompt replaces the stored prompt id.
func (s *PreferenceStore) SetSelectedPrompt(id int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(strconv.Itoa(id)+"\n"), 0o644)
}
