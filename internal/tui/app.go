package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"notesaver/internal/service"
	"notesaver/internal/tui/noteview"
	"notesaver/internal/tui/shared"
	"notesaver/internal/watch"
)

// notesChangedMsg carries one debounced change from the directory watcher
type notesChangedMsg struct {
	event watch.Event
}

// AppModel is the root model that dispatches to child views
type AppModel struct {
	svc         service.NoteService
	log         zerolog.Logger
	events      <-chan watch.Event
	currentView ViewType
	listView    noteview.ListModel
	viewerView  noteview.ViewerModel
	createView  noteview.CreateModel
	searchView  noteview.SearchModel
	showHelp    bool
	width       int
	height      int
	ready       bool
}

// NewAppModel creates the root application model. events may be nil when the
// notes directory is not watched.
func NewAppModel(svc service.NoteService, events <-chan watch.Event, log zerolog.Logger) AppModel {
	return AppModel{
		svc:         svc,
		log:         log.With().Str("component", "tui").Logger(),
		events:      events,
		currentView: ViewList,
		listView:    noteview.NewListModel(svc),
		viewerView:  noteview.NewViewerModel(),
		createView:  noteview.NewCreateModel(svc),
		searchView:  noteview.NewSearchModel(svc),
	}
}

func (m AppModel) Init() tea.Cmd {
	return waitForChange(m.events)
}

func waitForChange(events <-chan watch.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return notesChangedMsg{event: ev}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.listView.SetSize(msg.Width, contentHeight)
		m.viewerView.SetSize(msg.Width, contentHeight)
		m.createView.SetSize(msg.Width, contentHeight)
		m.searchView.SetSize(msg.Width, contentHeight)
		return m, nil

	case SwitchViewMsg:
		m.currentView = msg.View
		switch msg.View {
		case ViewList:
			m.listView.Reload()
		case ViewCreate:
			m.createView.Reset()
			return m, m.createView.Init()
		case ViewSearch:
			m.searchView.Reset()
			return m, m.searchView.Init()
		}
		return m, nil

	case OpenNoteMsg:
		m.openNote(msg.Filename)
		return m, nil

	case NoteSavedMsg:
		m.currentView = ViewList
		m.listView.Reload()
		m.listView.Select(msg.Filename)
		m.listView.SetStatus("Saved: "+msg.Filename, false)
		return m, nil

	case StatusMsg:
		m.listView.SetStatus(msg.Text, msg.IsError)
		return m, nil

	case DataRefreshMsg:
		m.refresh()
		return m, nil

	case notesChangedMsg:
		m.log.Debug().Str("file", msg.event.Filename).Stringer("type", msg.event.Type).Msg("refreshing after change")
		m.refresh()
		return m, waitForChange(m.events)

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.childIsTyping() {
			switch msg.String() {
			case "q":
				if m.currentView == ViewList {
					return m, tea.Quit
				}
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewList:
		m.listView, cmd = m.listView.Update(msg)
	case ViewViewer:
		m.viewerView, cmd = m.viewerView.Update(msg)
	case ViewCreate:
		m.createView, cmd = m.createView.Update(msg)
	case ViewSearch:
		m.searchView, cmd = m.searchView.Update(msg)
	}
	return m, cmd
}

func (m AppModel) childIsTyping() bool {
	switch m.currentView {
	case ViewList:
		return m.listView.IsTyping()
	case ViewCreate:
		return true
	case ViewSearch:
		return m.searchView.IsTyping()
	}
	return false
}

// openNote shows filename in the viewer. The note is looked up in a fresh
// listing so its displayed index is current.
func (m *AppModel) openNote(filename string) {
	listed, err := m.svc.ListNotes()
	if err != nil {
		m.showError(err)
		return
	}

	index := 0
	for _, n := range listed {
		if n.Filename == filename {
			index = n.Index
			break
		}
	}
	if index == 0 {
		m.listView.Reload()
		m.listView.SetStatus("Note no longer exists: "+filename, true)
		m.currentView = ViewList
		return
	}

	viewed, err := m.svc.ViewNote(strconv.Itoa(index))
	if err != nil {
		m.showError(err)
		return
	}
	m.viewerView.SetNote(viewed)
	m.currentView = ViewViewer
}

func (m *AppModel) showError(err error) {
	m.log.Error().Err(err).Msg("note operation failed")
	m.listView.Reload()
	m.listView.SetStatus(err.Error(), true)
	m.currentView = ViewList
}

// refresh rescans the directory for every view that shows notes
func (m *AppModel) refresh() {
	m.listView.Reload()
	m.searchView.Refresh()
	if m.currentView == ViewViewer {
		m.openNote(m.viewerView.Filename())
	}
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections, m.width, m.height)
	}

	var content, hints string
	switch m.currentView {
	case ViewList:
		content, hints = m.listView.View(), m.listView.HintText()
	case ViewViewer:
		content, hints = m.viewerView.View(), m.viewerView.HintText()
	case ViewCreate:
		content, hints = m.createView.View(), m.createView.HintText()
	case ViewSearch:
		content, hints = m.searchView.View(), m.searchView.HintText()
	}

	content = lipgloss.NewStyle().Height(m.height - 3).MaxHeight(m.height - 3).Render(content)
	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(m.svc.Dir() + "  |  " + hints),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

var helpSections = []shared.HelpSection{
	{
		Title: "Notes",
		Binds: []shared.HelpBind{
			{Key: "j / k", Desc: "Navigate notes"},
			{Key: "enter", Desc: "View note"},
			{Key: "n", Desc: "New note"},
			{Key: "s", Desc: "Search note text"},
			{Key: "/", Desc: "Filter by title"},
			{Key: "d", Desc: "Delete note"},
			{Key: "r", Desc: "Reload"},
		},
	},
	{
		Title: "New Note",
		Binds: []shared.HelpBind{
			{Key: "tab", Desc: "Switch between title and body"},
			{Key: "ctrl+s", Desc: "Save"},
			{Key: "esc", Desc: "Discard"},
		},
	},
	{
		Title: "Viewer / Search",
		Binds: []shared.HelpBind{
			{Key: "j / k", Desc: "Scroll or navigate results"},
			{Key: "esc", Desc: "Back to list"},
		},
	},
	{
		Title: "Global",
		Binds: []shared.HelpBind{
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Quit from the list"},
			{Key: "ctrl+c", Desc: "Force quit"},
		},
	},
}
