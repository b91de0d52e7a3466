package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumipallolabs/codemap/internal/cache"
	"github.com/lumipallolabs/codemap/internal/ignore"
	"github.com/lumipallolabs/codemap/internal/logging"
	"github.com/lumipallolabs/codemap/internal/model"
)

// Dir scans a single directory level, attaching cached stats to each entry
type Dir struct {
	cache *cache.Cache
	order Order
}

// NewDir creates a scanner that reads stats through c
func NewDir(c *cache.Cache, order Order) *Dir {
	return &Dir{cache: c, order: order}
}

// Order returns the current ordering mode
func (d *Dir) Order() Order {
	return d.order
}

// SetOrder changes the ordering used by subsequent scans
func (d *Dir) SetOrder(order Order) {
	d.order = order
}

// IsRoot reports whether dir is the filesystem root
func IsRoot(dir string) bool {
	return filepath.Dir(dir) == dir
}

// Scan lists dir and returns its entries
func (d *Dir) Scan(ctx context.Context, dir string) ([]model.Entry, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	children, err := readDirUnsorted(absDir)
	if err != nil {
		return nil, err
	}

	logging.Debug.WithFields(map[string]any{"dir": absDir, "children": len(children)}).Debug("scanning")

	dotStats := d.cache.Get(ctx, absDir)
	entries := make([]model.Entry, 0, len(children)+2)
	entries = append(entries, model.Entry{
		Name:  model.CurrentDir,
		Path:  absDir,
		IsDir: true,
		Stats: &dotStats,
	})

	ignored := ignore.LoadMatcher(absDir)
	for _, child := range children {
		childPath := filepath.Join(absDir, child.Name())
		stats := d.cache.Get(ctx, childPath)
		entries = append(entries, model.Entry{
			Name:    child.Name(),
			Path:    childPath,
			IsDir:   isDir(childPath, child),
			Stats:   &stats,
			Ignored: ignored.Match(child.Name()),
		})
	}

	if d.order == OrderByCode {
		model.SortByCode(entries[1:])
	}

	if !IsRoot(absDir) {
		entries = append([]model.Entry{{
			Name:  model.ParentDir,
			Path:  filepath.Dir(absDir),
			IsDir: true,
		}}, entries...)
	}

	return entries, nil
}

// readDirUnsorted returns directory entries in filesystem order.
// os.ReadDir would sort them by name.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open dir: %w", err)
	}
	defer f.Close()

	children, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	return children, nil
}

// isDir follows symlinks so linked directories can be entered
func isDir(path string, d os.DirEntry) bool {
	if d.Type()&os.ModeSymlink == 0 {
		return d.IsDir()
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Ensure Dir implements Scanner
var _ Scanner = (*Dir)(nil)
