// Package ui implements the terminal user interface for codemap using Bubbletea.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/codemap/internal/core"
	"github.com/lumipallolabs/codemap/internal/logging"
)

// Fixed rows around the list: header, column titles, status line, help bar
const chromeHeight = 4

// App is the main TUI application model
type App struct {
	// Core controller (browser state)
	ctrl *core.Controller

	// UI Components
	header  Header
	list    ListPanel
	help    HelpOverlay
	helpBar help.Model
	keys    KeyMap
	types   fileTypes
	version string

	// Dimensions
	width  int
	height int
}

// NewApp creates a new application around a started controller
func NewApp(ctrl *core.Controller, version string) App {
	return App{
		ctrl:    ctrl,
		header:  NewHeader(version),
		list:    NewListPanel(),
		help:    NewHelpOverlay(version),
		helpBar: newHelpModel(),
		keys:    DefaultKeyMap(),
		types:   make(fileTypes),
		version: version,
	}
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey maps one key press to one controller transition
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay - any key closes it
	if a.help.IsVisible() {
		a.help.SetVisible(false)
		return a, nil
	}

	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	// One key press is one render cycle for the status message
	a.ctrl.AgeStatus()

	ctx := context.Background()
	var event core.Event
	switch {
	case key.Matches(msg, a.keys.Help):
		a.help.Toggle()
		return a, nil
	case key.Matches(msg, a.keys.Up):
		event = a.ctrl.MoveUp()
	case key.Matches(msg, a.keys.Down):
		event = a.ctrl.MoveDown()
	case key.Matches(msg, a.keys.PageUp):
		event = a.ctrl.PageUp()
	case key.Matches(msg, a.keys.PageDown):
		event = a.ctrl.PageDown()
	case key.Matches(msg, a.keys.Top):
		event = a.ctrl.Top()
	case key.Matches(msg, a.keys.Bottom):
		event = a.ctrl.Bottom()
	case key.Matches(msg, a.keys.Enter):
		event = a.ctrl.Activate(ctx)
	case key.Matches(msg, a.keys.Back):
		event = a.ctrl.Back(ctx)
	case key.Matches(msg, a.keys.Ignore):
		event = a.ctrl.Ignore(ctx)
	case key.Matches(msg, a.keys.Refresh):
		event = a.ctrl.Refresh(ctx)
	case key.Matches(msg, a.keys.ToggleOrder):
		event = a.ctrl.ToggleOrder(ctx)
	default:
		return a, nil
	}

	a.logEvent(event)
	return a, nil
}

func (a App) logEvent(event core.Event) {
	switch e := event.(type) {
	case core.NavigatedEvent:
		logging.Debug.WithField("path", e.To).Debug("[TUI] directory changed")
	case core.IgnoreEvent:
		logging.Debug.WithField("outcome", e.Outcome.Kind.String()).Debug("[TUI] ignore requested")
	case core.ErrorEvent:
		logging.Debug.WithError(e.Err).Debug("[TUI] transition failed")
	}
}

// updateLayout calculates component sizes
func (a *App) updateLayout() {
	a.header.SetWidth(a.width)
	a.list.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
	a.ctrl.SetViewport(a.listRows())
}

// listRows is the number of entries the viewport can draw
func (a App) listRows() int {
	rows := a.height - chromeHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View implements tea.Model
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.help.IsVisible() {
		return a.help.View(a.keys)
	}

	state := a.ctrl.State()
	return lipgloss.JoinVertical(lipgloss.Left,
		a.header.View(state),
		a.list.ColumnHeader(),
		a.list.View(state),
		statusLine(state, a.types, a.width),
		HelpBar(a.helpBar, a.keys, a.width),
	)
}
