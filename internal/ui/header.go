package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/codemap/internal/core"
	"github.com/lumipallolabs/codemap/internal/model"
)

// Header displays the app name, current path and sort mode (1 line)
type Header struct {
	width   int
	version string
}

// NewHeader creates a new header component
func NewHeader(version string) Header {
	return Header{version: version}
}

// SetWidth sets the header width
func (h *Header) SetWidth(w int) {
	h.width = w
}

// View renders the header
// CodeMap 0.1.0  /path/to/dir                 12.34 KL code · sort: code
func (h Header) View(state core.BrowserState) string {
	appName := AppNameStyle.Render("CodeMap")
	if h.version != "" {
		appName += LabelStyle.Render(" " + h.version)
	}

	total := state.Aggregate()
	right := PathStyle.Render(model.FormatSize(total.Code)) +
		LabelStyle.Render(" code · sort: ") +
		PathStyle.Render(state.Order.String())

	// Path gets whatever is left between the name and the right side
	avail := h.width - 2 - lipgloss.Width(appName) - lipgloss.Width(right) - 4
	path := truncateLeft(state.Path, avail)
	left := appName + LabelStyle.Render("  ") + PathStyle.Render(path)

	gap := h.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	line := left + LabelStyle.Render(strings.Repeat(" ", gap)) + right

	return HeaderStyle.Width(h.width).MaxWidth(h.width).MaxHeight(1).Render(line)
}

// truncateLeft keeps the tail of a path, which is the part that changes
func truncateLeft(s string, width int) string {
	if width <= 1 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width-1 {
		r = r[1:]
	}
	return "…" + string(r)
}
