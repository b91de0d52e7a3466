package counter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/goccy/go-json"
	"github.com/lumipallolabs/codemap/internal/logging"
)

// DefaultBinary is the scc executable looked up on PATH
const DefaultBinary = "scc"

// ErrNotFound is returned when the scc binary cannot be located
var ErrNotFound = errors.New("scc not found")

// ErrNoData is returned when scc exits cleanly but reports nothing
var ErrNoData = errors.New("scc returned no data")

// SCC runs the scc line counter as a child process
type SCC struct {
	binary string
}

// NewSCC creates a counter using the given scc binary (DefaultBinary if empty)
func NewSCC(binary string) *SCC {
	if binary == "" {
		binary = DefaultBinary
	}
	return &SCC{binary: binary}
}

// Binary returns the configured executable
func (s *SCC) Binary() string {
	return s.binary
}

// Check verifies that scc can be executed
func (s *SCC) Check(ctx context.Context) error {
	path, err := exec.LookPath(s.binary)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, s.binary)
	}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return fmt.Errorf("run %s --version: %w", path, err)
	}
	logging.Counter.WithField("version", strings.TrimSpace(string(out))).Debug("scc available")
	return nil
}

// Count runs `scc -f json path` and decodes the per-language records
func (s *SCC) Count(ctx context.Context, path string) ([]Record, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.binary, "-f", "json", path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("scc %s: %w: %s", path, err, msg)
		}
		return nil, fmt.Errorf("scc %s: %w", path, err)
	}

	data := bytes.TrimSpace(stdout.Bytes())
	if len(data) == 0 {
		return nil, ErrNoData
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode scc output: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}
	return records, nil
}

// Ensure SCC implements Counter
var _ Counter = (*SCC)(nil)
