// Package ignore maintains the per-directory .ignore file that the line
// counter consults to skip files.
package ignore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumipallolabs/codemap/internal/logging"
	"github.com/lumipallolabs/codemap/internal/model"
)

// FileName is the ignore file kept in each directory
const FileName = ".ignore"

// Kind classifies the result of an Add
type Kind int

const (
	Added Kind = iota
	AlreadyPresent
	Rejected
	Failed
)

// String returns a short name for the kind
func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already present"
	case Rejected:
		return "rejected"
	case Failed:
		return "failed"
	default:
		return ""
	}
}

// Outcome describes what Add did, with a message fit for the status line
type Outcome struct {
	Kind    Kind
	Name    string
	Message string
	Err     error // set only for Failed
}

// Invalidator drops cached state that depends on the ignore list
type Invalidator interface {
	InvalidateAll()
}

// Editor appends names to ignore files
type Editor struct {
	cache Invalidator
}

// NewEditor creates an editor that invalidates cache after every change
func NewEditor(cache Invalidator) *Editor {
	return &Editor{cache: cache}
}

// Path returns the ignore file location for dir
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Add appends name to dir's ignore file unless it is a sentinel or
// already listed. The cache is invalidated only when the file changed.
func (e *Editor) Add(dir, name string) Outcome {
	if name == model.CurrentDir || name == model.ParentDir {
		return Outcome{
			Kind:    Rejected,
			Name:    name,
			Message: fmt.Sprintf("Cannot add '%s' to %s file", name, FileName),
		}
	}

	path := Path(dir)
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return failed(name, fmt.Errorf("read %s: %w", path, err))
	}

	if containsLine(data, name) {
		return Outcome{
			Kind:    AlreadyPresent,
			Name:    name,
			Message: fmt.Sprintf("'%s' is already in %s file", name, FileName),
		}
	}

	line := name + "\n"
	if len(data) > 0 && data[len(data)-1] != '\n' {
		line = "\n" + line
	}
	if err := appendFile(path, line); err != nil {
		return failed(name, err)
	}

	logging.Debug.WithFields(map[string]any{"dir": dir, "name": name}).Debug("added to ignore file")
	if e.cache != nil {
		e.cache.InvalidateAll()
	}

	return Outcome{
		Kind:    Added,
		Name:    name,
		Message: fmt.Sprintf("Added '%s' to %s file", name, FileName),
	}
}

// Lines returns the lines of dir's ignore file, nil if it does not exist
func Lines(dir string) ([]string, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return splitLines(data), nil
}

func failed(name string, err error) Outcome {
	logging.Debug.WithError(err).WithField("name", name).Debug("ignore file update failed")
	return Outcome{
		Kind:    Failed,
		Name:    name,
		Message: fmt.Sprintf("Failed to update %s file: %v", FileName, err),
		Err:     err,
	}
}

func appendFile(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func containsLine(data []byte, name string) bool {
	for _, line := range splitLines(data) {
		if line == name {
			return true
		}
	}
	return false
}

func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	raw := bytes.Split(bytes.TrimSuffix(data, []byte("\n")), []byte("\n"))
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimSuffix(string(l), "\r"))
	}
	return lines
}
