package ui

import "github.com/charmbracelet/lipgloss"

// Colors - cyberpunk/neon palette
var (
	ColorPrimary    = lipgloss.Color("#C084FC") // soft violet
	ColorDanger     = lipgloss.Color("#FF5555") // red
	ColorMuted      = lipgloss.Color("#4A5568") // darker muted
	ColorBackground = lipgloss.Color("#1F1F23") // dark background
	ColorCyan       = lipgloss.Color("#00FFFF") // neon cyan
	ColorDir        = lipgloss.Color("#00FFFF") // cyan for directories
	ColorFile       = lipgloss.Color("#A0A0A0") // dimmer for files
	ColorText       = lipgloss.Color("#E4E4E7") // default text
	ColorLabel      = lipgloss.Color("#9CA3AF") // dim labels
)

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Background(ColorBackground).
			Padding(0, 1)

	AppNameStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorBackground).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorBackground)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Background(ColorBackground)

	// List
	ColumnHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorLabel).
				Bold(true)

	DirStyle = lipgloss.NewStyle().
			Foreground(ColorDir)

	FileStyle = lipgloss.NewStyle().
			Foreground(ColorFile)

	IgnoredStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	ItemSelected = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	SizeBarStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Status line
	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorDanger).
				Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Padding(0, 1)

	// Help bar - dimmer with bright key highlights
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3D4555")). // very dim
			Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(ColorCyan).
		Background(lipgloss.Color("#1E3A4C")) // subtle dark cyan bg

	HelpDesc = lipgloss.NewStyle().
			Foreground(ColorLabel)
)
