// Package jsonl persists the local review-action journal as JSON Lines.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.ActionJournal = (*Journal)(nil)

// Journal appends review actions to a JSONL file, one action per line.
type Journal struct {
	path string
}

// NewJournal creates a Journal writing to path.
func NewJournal(path string) *Journal {
	return &Journal{path: path}
}

// Append records an action, creating parent directories on first write.
func (j *Journal) Append(action autodoc.ReviewAction) error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(action)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := f.Write(data); err != nil {
		return err
	}
	return nil
}

// Load returns all recorded actions in append order. A missing file is an
// empty journal, not an error.
func (j *Journal) Load() ([]autodoc.ReviewAction, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var actions []autodoc.ReviewAction
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var action autodoc.ReviewAction
		if err := json.Unmarshal([]byte(line), &action); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		actions = append(actions, action)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return actions, nil
}
