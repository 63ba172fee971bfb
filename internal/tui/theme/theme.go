// Package theme holds the colors and styles shared by the TUI and the
// command-line output. Only ANSI 0-15 colors are used so the terminal
// palette decides the actual shades.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Text          = lipgloss.Color("7")
	TextMuted     = lipgloss.Color("8")
	Primary       = lipgloss.Color("4") // blue
	Secondary     = lipgloss.Color("6") // cyan
	Accent        = lipgloss.Color("5") // magenta
	Success       = lipgloss.Color("2") // green
	Warning       = lipgloss.Color("3") // yellow
	Danger        = lipgloss.Color("1") // red
	Border        = lipgloss.Color("8")
	BorderFocused = lipgloss.Color("4")
)

// Text styles. Warn, Ok and Info double as the CLI's warning, success and
// informational colors.
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Bold  = lipgloss.NewStyle().Bold(true)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Warn  = lipgloss.NewStyle().Foreground(Warning)
	Ok    = lipgloss.NewStyle().Foreground(Success)
	Info  = lipgloss.NewStyle().Foreground(Secondary)

	Filename = lipgloss.NewStyle().Foreground(Secondary)
	LineNo   = lipgloss.NewStyle().Foreground(Accent)
)

// Boxes and bars
var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)
	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	ModalHelp  = lipgloss.NewStyle().Foreground(TextMuted)

	InputBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(BorderFocused).
			Padding(0, 1)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)
	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)
)
