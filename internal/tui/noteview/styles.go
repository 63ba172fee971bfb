package noteview

import (
	"github.com/charmbracelet/lipgloss"

	"notesaver/internal/tui/theme"
)

var (
	titleStyle = theme.Title.Padding(0, 1)

	listItemStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Padding(0, 2)

	selectedListItemStyle = lipgloss.NewStyle().
				Foreground(theme.Warning).
				Bold(true).
				Padding(0, 2)

	mutedStyle   = theme.Muted
	errorStyle   = theme.Error
	okStyle      = theme.Ok
	fileStyle    = theme.Filename
	lineNoStyle  = theme.LineNo
	labelStyle   = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	previewStyle = lipgloss.NewStyle().Foreground(theme.TextMuted).Italic(true)
)
