package noteview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"notesaver/internal/tui/theme"
)

// ConfirmationModal asks a yes/no question about one note
type ConfirmationModal struct {
	Message  string
	Details  string
	Filename string // note the answer applies to
	Width    int
}

// ConfirmationResultMsg is sent when the user answers the modal
type ConfirmationResultMsg struct {
	Filename  string
	Confirmed bool
}

func NewConfirmationModal(message, details, filename string, width int) *ConfirmationModal {
	return &ConfirmationModal{
		Message:  message,
		Details:  details,
		Filename: filename,
		Width:    width,
	}
}

func (m *ConfirmationModal) Update(msg tea.KeyMsg) tea.Cmd {
	var confirmed bool
	switch strings.ToLower(msg.String()) {
	case "y":
		confirmed = true
	case "n", "esc":
		confirmed = false
	default:
		return nil
	}

	filename := m.Filename
	return func() tea.Msg {
		return ConfirmationResultMsg{Filename: filename, Confirmed: confirmed}
	}
}

func (m *ConfirmationModal) View() string {
	var b strings.Builder

	b.WriteString(theme.ModalTitle.Render(m.Message) + "\n")
	if m.Details != "" {
		b.WriteString("\n" + m.Details + "\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Ok.Render("[y]") + " Yes  ")
	b.WriteString(theme.Error.Render("[n/esc]") + " No")

	return theme.ModalBox.Width(m.Width).Render(b.String())
}
