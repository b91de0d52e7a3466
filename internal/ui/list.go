package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/codemap/internal/core"
	"github.com/lumipallolabs/codemap/internal/model"
	"github.com/mattn/go-runewidth"
)

const (
	nameColumnWidth  = 40 // Name field, left aligned
	statColumnWidth  = 12 // Each numeric column, right aligned
	listSizeBarWidth = 4  // Width of code share bar [████]
)

// ListPanel displays the entries of the current directory
type ListPanel struct {
	width int
}

// NewListPanel creates a new list panel
func NewListPanel() ListPanel {
	return ListPanel{}
}

// SetWidth sets the panel width
func (l *ListPanel) SetWidth(w int) {
	l.width = w
}

// ColumnHeader renders the column titles
func (l ListPanel) ColumnHeader() string {
	line := padName("Name") +
		padStat("Lines") +
		padStat("Code") +
		padStat("Blank") +
		padStat("Comment")
	return ColumnHeaderStyle.MaxWidth(l.width).Render(line)
}

// View renders the visible rows, padded to the viewport height
func (l ListPanel) View(state core.BrowserState) string {
	total := state.Aggregate()
	visible := state.Visible()

	lines := make([]string, 0, state.ViewportRows)
	for i, entry := range visible {
		idx := state.Offset + i
		line := buildRow(entry, total)

		var style lipgloss.Style
		switch {
		case idx == state.Selected:
			style = ItemSelected
		case entry.Ignored:
			style = IgnoredStyle
		case entry.IsDir:
			style = DirStyle
		default:
			style = FileStyle
		}
		lines = append(lines, style.MaxWidth(l.width).Render(line))
	}

	for len(lines) < state.ViewportRows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// buildRow formats one entry: name, four counters and the code share bar
func buildRow(entry model.Entry, total model.Stats) string {
	name := padName(entry.Name)
	if entry.Stats == nil {
		return name
	}

	s := entry.Stats
	row := name +
		padStat(model.FormatSize(s.Lines)) +
		padStat(model.FormatSize(s.Code)) +
		padStat(model.FormatSize(s.Blank)) +
		padStat(model.FormatSize(s.Comment))

	if entry.Name != model.CurrentDir {
		row += "  " + sizeBar(s.CodeShare(total))
	}
	return row
}

// padName fits a name into the fixed-width name column
func padName(name string) string {
	name = runewidth.Truncate(name, nameColumnWidth-1, "…")
	return runewidth.FillRight(name, nameColumnWidth)
}

func padStat(value string) string {
	return fmt.Sprintf("%*s", statColumnWidth, value)
}

// sizeBar draws a proportion bar like [██▓░]. The cell after the full ones
// is half-filled when at least half of it is covered.
func sizeBar(pct float64) string {
	barW := listSizeBarWidth
	filledFloat := pct * float64(barW)
	filled := int(filledFloat)
	var bar strings.Builder
	for j := 0; j < barW; j++ {
		switch {
		case j < filled:
			bar.WriteRune('█')
		case j == filled && filledFloat-float64(filled) >= 0.5:
			bar.WriteRune('▓')
		default:
			bar.WriteRune('░')
		}
	}
	return "[" + bar.String() + "]"
}
