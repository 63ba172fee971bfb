package noteview

import (
	"errors"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notesaver/internal/notes"
	"notesaver/internal/service"
	"notesaver/internal/tui/messages"
	"notesaver/internal/tui/theme"
)

type createField int

const (
	fieldTitle createField = iota
	fieldBody
)

// CreateModel is the form for writing a new note.
type CreateModel struct {
	svc   service.NoteService
	title textinput.Model
	body  textarea.Model
	focus createField
	err   error

	width  int
	height int
}

func NewCreateModel(svc service.NoteService) CreateModel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 200
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0

	m := CreateModel{svc: svc, title: ti, body: ta}
	m.Reset()
	return m
}

// Reset clears the form and focuses the title.
func (m *CreateModel) Reset() {
	m.title.Reset()
	m.body.Reset()
	m.err = nil
	m.focusField(fieldTitle)
}

func (m *CreateModel) focusField(f createField) {
	m.focus = f
	if f == fieldTitle {
		m.body.Blur()
		m.title.Focus()
		return
	}
	m.title.Blur()
	m.body.Focus()
}

// SetSize updates view dimensions.
func (m *CreateModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.title.Width = max(20, w-8)
	m.body.SetWidth(max(20, w-4))
	// title, input, label, status and hints
	m.body.SetHeight(max(3, h-8))
}

func (m CreateModel) HintText() string {
	return "tab:switch field  ctrl+s:save  esc:cancel"
}

func (m CreateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m CreateModel) Update(msg tea.Msg) (CreateModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.Reset()
			return m, messages.SwitchView(messages.ViewList)

		case "tab", "shift+tab":
			if m.focus == fieldTitle {
				m.focusField(fieldBody)
			} else {
				m.focusField(fieldTitle)
			}
			return m, nil

		case "enter":
			if m.focus == fieldTitle {
				m.focusField(fieldBody)
				return m, nil
			}

		case "ctrl+s":
			return m.save()
		}
	}

	var cmd tea.Cmd
	if m.focus == fieldTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m CreateModel) save() (CreateModel, tea.Cmd) {
	body := m.body.Value()
	if body != "" {
		body += "\n"
	}

	filename, err := m.svc.CreateNote(m.title.Value(), body)
	if err != nil {
		m.err = err
		var verr *notes.ValidationError
		if errors.As(err, &verr) && verr.Field == "title" {
			m.focusField(fieldTitle)
		}
		return m, nil
	}

	m.Reset()
	return m, func() tea.Msg { return messages.NoteSavedMsg{Filename: filename} }
}

func (m CreateModel) View() string {
	var lines []string
	lines = append(lines, titleStyle.Render("New Note"), "")
	lines = append(lines, theme.InputBox.Render(m.title.View()), "")
	lines = append(lines, m.body.View())

	if m.err != nil {
		lines = append(lines, "", errorStyle.Render("  "+errorReason(m.err)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// errorReason drops the field prefix from validation errors
func errorReason(err error) string {
	var verr *notes.ValidationError
	if errors.As(err, &verr) {
		return verr.Reason
	}
	return err.Error()
}
