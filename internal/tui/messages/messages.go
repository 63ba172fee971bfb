package messages

import tea "github.com/charmbracelet/bubbletea"

// ViewType represents the different views in the application
type ViewType int

const (
	ViewList ViewType = iota
	ViewViewer
	ViewCreate
	ViewSearch
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// OpenNoteMsg requests showing a note in the viewer
type OpenNoteMsg struct {
	Filename string
}

// NoteSavedMsg is sent after the create form wrote a note
type NoteSavedMsg struct {
	Filename string
}

// StatusMsg carries a one-line message for the list view
type StatusMsg struct {
	Text    string
	IsError bool
}

// DataRefreshMsg signals that data should be reloaded
type DataRefreshMsg struct{}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}

func Status(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text, IsError: isError}
	}
}
