package model

import "sort"

// Sentinel entry names
const (
	CurrentDir = "."
	ParentDir  = ".."
)

// Entry is one row of the browser list
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Stats   *Stats // nil for the parent link
	Ignored bool   // listed in the directory's .ignore file
}

// IsSentinel reports whether the entry is "." or ".."
func (e Entry) IsSentinel() bool {
	return e.Name == CurrentDir || e.Name == ParentDir
}

// CodeLines returns the entry's code count, 0 when it has no stats
func (e Entry) CodeLines() int64 {
	if e.Stats == nil {
		return 0
	}
	return e.Stats.Code
}

// SortByCode stable-sorts entries by code lines descending.
// Entries with equal counts keep their relative order.
func SortByCode(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CodeLines() > entries[j].CodeLines()
	})
}
