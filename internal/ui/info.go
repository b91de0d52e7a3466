package ui

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/lumipallolabs/codemap/internal/core"
	"github.com/lumipallolabs/codemap/internal/model"
)

// fileTypes memoizes detected types per path; detection reads the file
type fileTypes map[string]string

// lookup returns the short type name of a file, e.g. "GO" or "PNG"
func (ft fileTypes) lookup(path string) string {
	if t, ok := ft[path]; ok {
		return t
	}
	t := getFileType(path)
	ft[path] = t
	return t
}

// getFileType detects file type using magic numbers
func getFileType(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	ext := mtype.Extension()
	if ext != "" {
		return strings.ToUpper(strings.TrimPrefix(ext, "."))
	}
	return ""
}

// statusLine renders the transient status message, or info about the
// selected entry when there is none
func statusLine(state core.BrowserState, types fileTypes, width int) string {
	if state.Status.Visible() {
		style := StatusStyle
		if state.Status.IsError {
			style = StatusErrorStyle
		}
		return style.Width(width).MaxWidth(width).MaxHeight(1).Render(state.Status.Message)
	}

	entry, ok := state.SelectedEntry()
	if !ok {
		return ""
	}
	return InfoStyle.Width(width).MaxWidth(width).MaxHeight(1).Render(entryInfo(entry, state, types))
}

// entryInfo describes an entry: kind, file type and share of code lines
func entryInfo(entry model.Entry, state core.BrowserState, types fileTypes) string {
	var parts []string
	switch {
	case entry.Name == model.ParentDir:
		parts = append(parts, "parent directory", entry.Path)
	case entry.Name == model.CurrentDir:
		parts = append(parts, "this directory", fmt.Sprintf("%d entries", childCount(state.Entries)))
	case entry.IsDir:
		parts = append(parts, entry.Name+"/", "directory")
	default:
		parts = append(parts, entry.Name)
		if t := types.lookup(entry.Path); t != "" {
			parts = append(parts, t)
		}
	}

	if entry.Stats != nil && entry.Name != model.CurrentDir {
		parts = append(parts, fmt.Sprintf("%.1f%% of code", entry.Stats.CodeShare(state.Aggregate())*100))
	}
	if entry.Ignored {
		parts = append(parts, "ignored")
	}
	return strings.Join(parts, " │ ")
}

// childCount counts entries that are not "." or ".."
func childCount(entries []model.Entry) int {
	n := 0
	for _, e := range entries {
		if !e.IsSentinel() {
			n++
		}
	}
	return n
}
