// Package tui provides the interactive terminal UI for palpite.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, wrong letters
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, hint
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - input, attempts
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text, hidden tiles
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - correct letters
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SectionStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true)
)

// Header styles
var (
	AttemptsCountStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	AttemptsLabelStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)

// Hint box
var (
	TipBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 2).
			Margin(1, 0)

	TipTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

// Letter tiles
var (
	tileBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Align(lipgloss.Center).
			Bold(true)

	TileDefaultStyle = tileBase.
				BorderForeground(ColorBorder).
				Foreground(ColorText).
				Width(3)

	TileCorrectStyle = tileBase.
				BorderForeground(ColorSuccess).
				Foreground(ColorSuccess).
				Width(3)

	SmallTileCorrectStyle = lipgloss.NewStyle().
				Foreground(ColorBg).
				Background(ColorSuccess).
				Bold(true).
				Padding(0, 1).
				MarginRight(1)

	SmallTileWrongStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginRight(1)
)

// Input
var (
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorSecondary).
			Bold(true).
			Padding(0, 2).
			MarginLeft(2)
)

// Modal dialogs
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 3).
			Align(lipgloss.Center)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ModalTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Content area style
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)
