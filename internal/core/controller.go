package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumipallolabs/codemap/internal/cache"
	"github.com/lumipallolabs/codemap/internal/counter"
	"github.com/lumipallolabs/codemap/internal/ignore"
	"github.com/lumipallolabs/codemap/internal/logging"
	"github.com/lumipallolabs/codemap/internal/model"
	"github.com/lumipallolabs/codemap/internal/scanner"
)

// ErrNotDirectory is returned when the start path is not a directory
var ErrNotDirectory = errors.New("not a directory")

// Controller owns the browser state and applies key-driven transitions.
// It is driven from a single goroutine and holds no locks.
type Controller struct {
	path         string
	entries      []model.Entry
	selected     int
	offset       int
	viewportRows int
	status       Status

	cache   *cache.Cache
	scanner *scanner.Dir
	editor  *ignore.Editor
}

// NewController creates a controller rooted at path. Call Start to
// perform the first scan.
func NewController(c counter.Counter, path string, order scanner.Order) (*Controller, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", absPath, ErrNotDirectory)
	}

	statsCache := cache.New(c)
	return &Controller{
		path:         absPath,
		viewportRows: 1,
		cache:        statsCache,
		scanner:      scanner.NewDir(statsCache, order),
		editor:       ignore.NewEditor(statsCache),
	}, nil
}

// Start scans the initial directory
func (c *Controller) Start(ctx context.Context) error {
	return c.rescan(ctx)
}

// State returns a read-only snapshot of the current state
func (c *Controller) State() BrowserState {
	return BrowserState{
		Path:         c.path,
		Entries:      c.entries,
		Selected:     c.selected,
		Offset:       c.offset,
		ViewportRows: c.viewportRows,
		Order:        c.scanner.Order(),
		Status:       c.status,
	}
}

// SetViewport sets how many rows the list can draw and keeps the
// selection inside the new viewport
func (c *Controller) SetViewport(rows int) {
	if rows < 1 {
		rows = 1
	}
	c.viewportRows = rows
	c.ensureVisible()
}

// MoveUp moves the cursor up one row
func (c *Controller) MoveUp() Event {
	if c.selected <= 0 {
		return NoopEvent{}
	}
	c.selected--
	if c.selected < c.offset {
		c.offset = c.selected
	}
	return c.selectionChanged()
}

// MoveDown moves the cursor down one row
func (c *Controller) MoveDown() Event {
	if c.selected >= len(c.entries)-1 {
		return NoopEvent{}
	}
	c.selected++
	if c.selected >= c.offset+c.viewportRows {
		c.offset = c.selected - c.viewportRows + 1
	}
	return c.selectionChanged()
}

// PageUp moves the cursor up by one viewport
func (c *Controller) PageUp() Event {
	return c.moveTo(c.selected - c.viewportRows)
}

// PageDown moves the cursor down by one viewport
func (c *Controller) PageDown() Event {
	return c.moveTo(c.selected + c.viewportRows)
}

// Top moves the cursor to the first entry
func (c *Controller) Top() Event {
	return c.moveTo(0)
}

// Bottom moves the cursor to the last entry
func (c *Controller) Bottom() Event {
	return c.moveTo(len(c.entries) - 1)
}

// Activate enters the selected directory or goes up on "..".
// Files and "." are left alone.
func (c *Controller) Activate(ctx context.Context) Event {
	entry, ok := c.selectedEntry()
	if !ok {
		return NoopEvent{}
	}

	switch {
	case entry.Name == model.ParentDir:
		return c.navigate(ctx, filepath.Dir(c.path))
	case entry.Name == model.CurrentDir, !entry.IsDir:
		return NoopEvent{}
	default:
		return c.navigate(ctx, filepath.Join(c.path, entry.Name))
	}
}

// Back goes to the parent directory
func (c *Controller) Back(ctx context.Context) Event {
	if len(c.entries) == 0 || scanner.IsRoot(c.path) {
		return NoopEvent{}
	}
	return c.navigate(ctx, filepath.Dir(c.path))
}

// Refresh lists the current directory again, reusing cached stats
func (c *Controller) Refresh(ctx context.Context) Event {
	if len(c.entries) == 0 {
		return NoopEvent{}
	}
	if err := c.rescan(ctx); err != nil {
		return c.scanFailed(err)
	}
	return RescannedEvent{Path: c.path}
}

// ToggleOrder switches between code and filesystem ordering and rescans
func (c *Controller) ToggleOrder(ctx context.Context) Event {
	if len(c.entries) == 0 {
		return NoopEvent{}
	}
	c.scanner.SetOrder(c.scanner.Order().Toggle())
	if err := c.rescan(ctx); err != nil {
		return c.scanFailed(err)
	}
	c.setStatus(fmt.Sprintf("Sorted by %s", c.scanner.Order()), false)
	return RescannedEvent{Path: c.path}
}

// Ignore adds the selected entry to the current directory's ignore file.
// When the file changed, cached stats are dropped and the directory is rescanned.
func (c *Controller) Ignore(ctx context.Context) Event {
	entry, ok := c.selectedEntry()
	if !ok {
		return NoopEvent{}
	}

	outcome := c.editor.Add(c.path, entry.Name)
	c.setStatus(outcome.Message, outcome.Kind == ignore.Failed)

	if outcome.Kind == ignore.Added {
		if err := c.rescan(ctx); err != nil {
			logging.Debug.WithError(err).Debug("rescan after ignore failed")
		}
	}
	return IgnoreEvent{Outcome: outcome}
}

// AgeStatus counts the status message down by one render cycle
func (c *Controller) AgeStatus() {
	if c.status.Remaining > 0 {
		c.status.Remaining--
	}
	if c.status.Remaining == 0 {
		c.status = Status{}
	}
}

func (c *Controller) navigate(ctx context.Context, target string) Event {
	entries, err := c.scanner.Scan(ctx, target)
	if err != nil {
		return c.scanFailed(err)
	}

	from := c.path
	c.path = target
	c.setEntries(entries)
	logging.Debug.WithFields(map[string]any{"from": from, "to": target}).Debug("navigated")
	return NavigatedEvent{From: from, To: target}
}

func (c *Controller) rescan(ctx context.Context) error {
	entries, err := c.scanner.Scan(ctx, c.path)
	if err != nil {
		return err
	}
	c.setEntries(entries)
	return nil
}

// setEntries installs a fresh scan; focus always returns to the top
func (c *Controller) setEntries(entries []model.Entry) {
	c.entries = entries
	c.selected = 0
	c.offset = 0
}

func (c *Controller) scanFailed(err error) Event {
	logging.Debug.WithError(err).Debug("scan failed")
	c.setStatus(fmt.Sprintf("Cannot open directory: %v", err), true)
	return ErrorEvent{Err: err}
}

func (c *Controller) moveTo(idx int) Event {
	if len(c.entries) == 0 {
		return NoopEvent{}
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(c.entries)-1 {
		idx = len(c.entries) - 1
	}
	if idx == c.selected {
		return NoopEvent{}
	}
	c.selected = idx
	c.ensureVisible()
	return c.selectionChanged()
}

func (c *Controller) ensureVisible() {
	if c.selected < c.offset {
		c.offset = c.selected
	}
	if c.selected >= c.offset+c.viewportRows {
		c.offset = c.selected - c.viewportRows + 1
	}
}

func (c *Controller) selectedEntry() (model.Entry, bool) {
	if c.selected < 0 || c.selected >= len(c.entries) {
		return model.Entry{}, false
	}
	return c.entries[c.selected], true
}

func (c *Controller) selectionChanged() Event {
	return SelectionChangedEvent{Selected: c.selected, Offset: c.offset}
}

func (c *Controller) setStatus(msg string, isError bool) {
	c.status = Status{Message: msg, Remaining: StatusCycles, IsError: isError}
}
