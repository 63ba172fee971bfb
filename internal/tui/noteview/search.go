package noteview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notesaver/internal/notes"
	"notesaver/internal/service"
	"notesaver/internal/tui/messages"
)

const searchTitleLen = 50

// SearchModel runs a case-insensitive text search over all notes.
type SearchModel struct {
	svc      service.NoteService
	input    textinput.Model
	query    string // query the results belong to
	results  []notes.SearchResult
	searched bool
	selected int
	typing   bool
	err      error

	width  int
	height int
}

func NewSearchModel(svc service.NoteService) SearchModel {
	ti := textinput.New()
	ti.Placeholder = "Search text..."
	ti.CharLimit = 200
	ti.Width = 40

	m := SearchModel{svc: svc, input: ti}
	m.Reset()
	return m
}

// Reset clears the query and results and focuses the input.
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.input.Focus()
	m.typing = true
	m.query = ""
	m.results = nil
	m.searched = false
	m.selected = 0
	m.err = nil
}

// SetSize updates view dimensions.
func (m *SearchModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.input.Width = max(20, w-8)
}

// IsTyping returns true while the query input has focus.
func (m SearchModel) IsTyping() bool {
	return m.typing
}

func (m SearchModel) HintText() string {
	if m.typing {
		return "enter:search  esc:back"
	}
	return "j/k:navigate  enter:view  /:new query  esc:back"
}

// Refresh reruns the current query after the notes directory changed.
func (m *SearchModel) Refresh() {
	if m.searched {
		m.run(m.query)
	}
}

func (m *SearchModel) run(query string) {
	results, err := m.svc.SearchNotes(query)
	m.err = err
	m.results = results
	m.query = query
	m.searched = err == nil
	if m.selected >= len(m.results) {
		m.selected = max(0, len(m.results)-1)
	}
}

func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if m.typing {
		switch msgKey.String() {
		case "esc":
			if m.searched {
				m.typing = false
				m.input.Blur()
				return m, nil
			}
			m.Reset()
			return m, messages.SwitchView(messages.ViewList)

		case "enter":
			m.selected = 0
			m.run(m.input.Value())
			if m.err == nil {
				m.typing = false
				m.input.Blur()
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msgKey.String() {
	case "esc", "q":
		m.Reset()
		return m, messages.SwitchView(messages.ViewList)

	case "/":
		m.typing = true
		m.input.Focus()
		return m, textinput.Blink

	case "j", "down":
		if m.selected < len(m.results)-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "enter":
		if m.selected < len(m.results) {
			filename := m.results[m.selected].Filename
			return m, func() tea.Msg { return messages.OpenNoteMsg{Filename: filename} }
		}
	}
	return m, nil
}

func (m SearchModel) View() string {
	var lines []string
	lines = append(lines, titleStyle.Render("Search"), "")
	lines = append(lines, "  "+m.input.View(), "")

	switch {
	case m.err != nil:
		lines = append(lines, errorStyle.Render("  "+errorReason(m.err)))
	case !m.searched:
	case len(m.results) == 0:
		lines = append(lines, listItemStyle.Render(fmt.Sprintf("No matches for %q.", m.query)))
	default:
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("  %d note(s) match %q", len(m.results), m.query)), "")
		lines = append(lines, m.renderResults()...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m SearchModel) renderResults() []string {
	var lines []string
	for i, r := range m.results {
		style := listItemStyle
		prefix := "  "
		if i == m.selected && !m.typing {
			style = selectedListItemStyle
			prefix = "► "
		}

		lines = append(lines, style.Render(prefix+notes.Truncate(r.Title, searchTitleLen))+" "+fileStyle.Render(r.Filename))

		visible, more := r.Visible(notes.MaxDisplayedMatches)
		for _, lm := range visible {
			lines = append(lines, "      "+lineNoStyle.Render(fmt.Sprintf("L%d:", lm.Number))+" "+lm.Text)
		}
		if more {
			lines = append(lines, "      "+mutedStyle.Render("..."))
		}
	}
	return lines
}
