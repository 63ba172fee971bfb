package noteview

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"notesaver/internal/notes"
	"notesaver/internal/service"
	"notesaver/internal/tui/messages"
)

type listMode int

const (
	modeBrowse listMode = iota
	modeFilter
	modeConfirm
)

// ListModel shows every note, newest first, with a fuzzy filter.
type ListModel struct {
	svc         service.NoteService
	notes       []service.ListedNote
	filtered    []int // indices into notes
	selected    int
	mode        listMode
	filterInput textinput.Model
	filterQuery string
	modal       *ConfirmationModal

	status      string
	statusIsErr bool
	err         error

	width  int
	height int
}

func NewListModel(svc service.NoteService) ListModel {
	ti := textinput.New()
	ti.Placeholder = "Filter notes..."
	ti.CharLimit = 100
	ti.Width = 40

	m := ListModel{
		svc:         svc,
		filterInput: ti,
	}
	m.Reload()
	return m
}

// Reload rescans the notes directory, keeping the cursor on the same file
// when it still exists.
func (m *ListModel) Reload() {
	current := m.SelectedFilename()

	listed, err := m.svc.ListNotes()
	m.err = err
	if err != nil {
		listed = nil
	}
	m.notes = listed
	m.applyFilter()

	if current != "" {
		for i, idx := range m.filtered {
			if m.notes[idx].Filename == current {
				m.selected = i
				break
			}
		}
	}
}

// Select moves the cursor to filename, clearing a filter that hides it.
func (m *ListModel) Select(filename string) {
	for pass := 0; pass < 2; pass++ {
		for i, idx := range m.filtered {
			if m.notes[idx].Filename == filename {
				m.selected = i
				return
			}
		}
		m.filterQuery = ""
		m.filterInput.SetValue("")
		m.applyFilter()
	}
}

// SetSize updates view dimensions.
func (m *ListModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetStatus shows a one-line message under the list.
func (m *ListModel) SetStatus(text string, isError bool) {
	m.status = text
	m.statusIsErr = isError
}

// IsTyping returns true when keys belong to the filter input or the modal.
func (m ListModel) IsTyping() bool {
	return m.mode != modeBrowse
}

// HintText returns the key hints for the current mode.
func (m ListModel) HintText() string {
	switch m.mode {
	case modeFilter:
		return "type to filter  enter:confirm  esc:cancel"
	case modeConfirm:
		return "y:delete  n/esc:keep"
	default:
		return "j/k:navigate  enter:view  n:new  s:search  /:filter  d:delete  r:reload  ?:help  q:quit"
	}
}

// SelectedFilename returns the file under the cursor, or "".
func (m ListModel) SelectedFilename() string {
	if n, ok := m.selectedNote(); ok {
		return n.Filename
	}
	return ""
}

func (m ListModel) selectedNote() (service.ListedNote, bool) {
	if m.selected < 0 || m.selected >= len(m.filtered) {
		return service.ListedNote{}, false
	}
	return m.notes[m.filtered[m.selected]], true
}

func (m *ListModel) applyFilter() {
	if m.filterQuery == "" {
		m.filtered = make([]int, len(m.notes))
		for i := range m.notes {
			m.filtered[i] = i
		}
	} else {
		targets := make([]string, len(m.notes))
		for i, n := range m.notes {
			targets[i] = n.Title + " " + n.Filename
		}
		matches := fuzzy.Find(m.filterQuery, targets)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfirmationResultMsg:
		return m.finishDelete(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeConfirm:
			return m, m.modal.Update(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m ListModel) updateBrowse(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "g", "home":
		m.selected = 0

	case "G", "end":
		m.selected = max(0, len(m.filtered)-1)

	case "esc":
		if m.filterQuery != "" {
			m.filterQuery = ""
			m.applyFilter()
		}

	case "/":
		m.mode = modeFilter
		m.filterInput.SetValue(m.filterQuery)
		m.filterInput.Focus()
		return m, textinput.Blink

	case "enter":
		if n, ok := m.selectedNote(); ok {
			return m, func() tea.Msg { return messages.OpenNoteMsg{Filename: n.Filename} }
		}

	case "n":
		return m, messages.SwitchView(messages.ViewCreate)

	case "s":
		return m, messages.SwitchView(messages.ViewSearch)

	case "r":
		return m, func() tea.Msg { return messages.DataRefreshMsg{} }

	case "d", "delete":
		if n, ok := m.selectedNote(); ok {
			m.mode = modeConfirm
			m.modal = NewConfirmationModal(
				"Delete this note?",
				fmt.Sprintf("%s\n%s", n.Title, mutedStyle.Render(n.Filename)),
				n.Filename,
				min(60, max(30, m.width-10)),
			)
		}
	}
	return m, nil
}

func (m ListModel) updateFilter(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.filterQuery = ""
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.applyFilter()
		return m, nil

	case "enter":
		m.mode = modeBrowse
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterQuery = m.filterInput.Value()
	m.applyFilter()
	return m, cmd
}

// finishDelete removes the note the modal asked about. The displayed index is
// resolved again, so a listing that changed underneath leaves the file alone.
func (m ListModel) finishDelete(msg ConfirmationResultMsg) (ListModel, tea.Cmd) {
	m.mode = modeBrowse
	m.modal = nil

	if !msg.Confirmed {
		m.SetStatus("Cancelled.", false)
		return m, nil
	}

	index := 0
	for _, n := range m.notes {
		if n.Filename == msg.Filename {
			index = n.Index
			break
		}
	}

	result, err := m.svc.DeleteNoteConfirm(strconv.Itoa(index), func(n service.ListedNote) bool {
		return n.Filename == msg.Filename
	})
	switch {
	case err != nil:
		m.SetStatus(err.Error(), true)
	case !result.Deleted:
		m.SetStatus("The list changed, nothing deleted. Try again.", true)
	default:
		m.SetStatus("Deleted: "+result.Filename, false)
	}

	m.Reload()
	return m, nil
}

func (m ListModel) View() string {
	var lines []string

	header := titleStyle.Render("Notes") + mutedStyle.Render(fmt.Sprintf(" %d", len(m.notes)))
	lines = append(lines, header, "")

	if m.mode == modeFilter {
		lines = append(lines, "  "+m.filterInput.View(), "")
	} else if m.filterQuery != "" {
		lines = append(lines, labelStyle.Render("  Filter: ")+mutedStyle.Render(m.filterQuery), "")
	}

	switch {
	case m.err != nil:
		lines = append(lines, errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
	case len(m.notes) == 0:
		lines = append(lines, listItemStyle.Render("No notes yet. Press 'n' to write one."))
	case len(m.filtered) == 0:
		lines = append(lines, listItemStyle.Render("No matching notes."))
	default:
		lines = append(lines, m.renderRows()...)
	}

	if m.status != "" {
		style := okStyle
		if m.statusIsErr {
			style = errorStyle
		}
		lines = append(lines, "", "  "+style.Render(m.status))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.mode == modeConfirm && m.modal != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modal.View())
	}
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(content)
}

func (m ListModel) renderRows() []string {
	// title, blank, rows, blank, status
	maxVisible := max(3, m.height-6)

	startIdx := 0
	if m.selected >= maxVisible {
		startIdx = m.selected - maxVisible + 1
	}
	endIdx := min(startIdx+maxVisible, len(m.filtered))

	var rows []string
	if startIdx > 0 {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  ▲ %d more above", startIdx)))
	}

	titleWidth := max(20, m.width/3)
	for i := startIdx; i < endIdx; i++ {
		n := m.notes[m.filtered[i]]
		style := listItemStyle
		prefix := "  "
		if i == m.selected {
			style = selectedListItemStyle
			prefix = "► "
		}

		row := style.Render(fmt.Sprintf("%s%2d  %s", prefix, n.Index, notes.Truncate(n.Title, titleWidth)))
		if !n.CreatedAt.IsZero() {
			row += " " + mutedStyle.Render(n.CreatedAt.Format("2006-01-02 15:04"))
		}
		if n.Preview != "" {
			row += "  " + previewStyle.Render(n.Preview)
		}
		rows = append(rows, row)
	}

	if endIdx < len(m.filtered) {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  ▼ %d more below", len(m.filtered)-endIdx)))
	}
	return rows
}
