package tui

import "notesaver/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewList   = messages.ViewList
	ViewViewer = messages.ViewViewer
	ViewCreate = messages.ViewCreate
	ViewSearch = messages.ViewSearch
)

type SwitchViewMsg = messages.SwitchViewMsg
type OpenNoteMsg = messages.OpenNoteMsg
type NoteSavedMsg = messages.NoteSavedMsg
type StatusMsg = messages.StatusMsg
type DataRefreshMsg = messages.DataRefreshMsg
