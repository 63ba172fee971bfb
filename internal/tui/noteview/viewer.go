package noteview

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notesaver/internal/service"
	"notesaver/internal/tui/messages"
)

// ViewerModel shows the full content of one note in a scrollable viewport.
type ViewerModel struct {
	note     service.ViewedNote
	viewport viewport.Model
	loaded   bool
	notice   string
	copyFunc func(string) error
	width    int
	height   int
}

func NewViewerModel() ViewerModel {
	return ViewerModel{
		viewport: viewport.New(0, 0),
		copyFunc: clipboard.WriteAll,
	}
}

// SetNote replaces the displayed note and scrolls to the top.
func (m *ViewerModel) SetNote(n service.ViewedNote) {
	m.note = n
	m.loaded = true
	m.notice = ""
	m.viewport.SetContent(n.Content)
	m.viewport.GotoTop()
}

// Filename returns the file currently shown.
func (m ViewerModel) Filename() string {
	return m.note.Filename
}

// SetSize updates view dimensions.
func (m *ViewerModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	// header line and blank line
	m.viewport.Width = w
	m.viewport.Height = max(1, h-2)
}

func (m ViewerModel) HintText() string {
	return "j/k:scroll  space/b:page  c:copy  esc/q:back"
}

func (m ViewerModel) Update(msg tea.Msg) (ViewerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "backspace":
			return m, messages.SwitchView(messages.ViewList)
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		case "c":
			if err := m.copyFunc(m.note.Content); err != nil {
				m.notice = errorStyle.Render("Copy failed: " + err.Error())
			} else {
				m.notice = okStyle.Render("Copied to clipboard")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ViewerModel) View() string {
	if !m.loaded {
		return listItemStyle.Render("No note selected.")
	}

	header := titleStyle.Render(m.note.Title) + " " + fileStyle.Render(m.note.Filename)
	if m.notice != "" {
		header += "  " + m.notice
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View())
}
