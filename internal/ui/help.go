package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel creates a bubbles help model styled like the rest of the UI
func newHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = "   "
	h.Styles.ShortKey = HelpKey
	h.Styles.ShortDesc = HelpDesc
	h.Styles.ShortSeparator = HelpStyle
	h.Styles.FullKey = HelpKey
	h.Styles.FullDesc = HelpDesc
	h.Styles.FullSeparator = HelpStyle
	return h
}

// HelpOverlay displays all keyboard shortcuts in a centered box
type HelpOverlay struct {
	visible bool
	width   int
	height  int
	version string
	model   help.Model
}

// NewHelpOverlay creates a new help overlay component
func NewHelpOverlay(version string) HelpOverlay {
	m := newHelpModel()
	m.ShowAll = true
	return HelpOverlay{
		version: version,
		model:   m,
	}
}

// Toggle toggles the visibility of the help overlay
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// SetVisible sets the visibility of the help overlay
func (h *HelpOverlay) SetVisible(visible bool) {
	h.visible = visible
}

// IsVisible returns whether the help overlay is visible
func (h HelpOverlay) IsVisible() bool {
	return h.visible
}

// SetSize sets the dimensions of the help overlay
func (ho *HelpOverlay) SetSize(w, h int) {
	ho.width = w
	ho.height = h
}

// View renders the help overlay
func (h HelpOverlay) View(keys KeyMap) string {
	if !h.visible {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 3)
	nameStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var content strings.Builder
	content.WriteString(nameStyle.Render("CodeMap"))
	if h.version != "" {
		content.WriteString(dimStyle.Render(" " + h.version))
	}
	content.WriteString("\n\n")
	content.WriteString(h.model.View(keys))
	content.WriteString("\n\n")
	content.WriteString(dimStyle.Render("Ignored entries are dimmed. Press any key to close"))

	box := boxStyle.Render(content.String())
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
}

// HelpBar renders a bottom help bar with key hints
func HelpBar(m help.Model, keys KeyMap, width int) string {
	m.Width = width - 2
	return HelpStyle.Width(width).MaxHeight(1).Render(m.View(keys))
}
