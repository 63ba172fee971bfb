package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"notesaver/internal/notes"
)

const previewLen = 60

// NoteService defines the operations callers perform on the notes directory.
// Displayed indexes are 1-based positions in the newest-first listing and are
// resolved against a fresh directory scan on every call.
type NoteService interface {
	CreateNote(title, body string) (string, error)
	ListNotes() ([]ListedNote, error)
	ViewNote(index string) (ViewedNote, error)
	SearchNotes(query string) ([]notes.SearchResult, error)
	DeleteNote(index string, confirmed bool) (DeleteResult, error)
	DeleteNoteConfirm(index string, confirm func(ListedNote) bool) (DeleteResult, error)
	Resolve(index string) (ListedNote, error)
	Dir() string
}

// ListedNote is one row of the listing.
type ListedNote struct {
	Index     int
	Filename  string
	Title     string
	CreatedAt time.Time
	Preview   string
}

// ViewedNote is the full content of a selected note.
type ViewedNote struct {
	ListedNote
	Content string
}

// DeleteResult reports what a delete request did.
type DeleteResult struct {
	Filename string
	Deleted  bool
}

type noteServiceImpl struct {
	store *notes.Store
	log   zerolog.Logger
}

// NewNoteService creates a NoteService backed by store
func NewNoteService(store *notes.Store, log zerolog.Logger) NoteService {
	return &noteServiceImpl{
		store: store,
		log:   log.With().Str("component", "service").Logger(),
	}
}

func (s *noteServiceImpl) Dir() string {
	return s.store.Dir()
}

func (s *noteServiceImpl) CreateNote(title, body string) (string, error) {
	filename, err := s.store.Create(title, body)
	if err != nil {
		return "", err
	}
	s.log.Info().Str("file", filename).Msg("created note")
	return filename, nil
}

func (s *noteServiceImpl) ListNotes() ([]ListedNote, error) {
	list, err := s.store.Notes()
	if err != nil {
		return nil, err
	}

	listed := make([]ListedNote, len(list))
	for i, n := range list {
		listed[i] = ListedNote{
			Index:     i + 1,
			Filename:  n.Filename,
			Title:     n.Title,
			CreatedAt: n.CreatedAt,
			Preview:   s.preview(n.Filename),
		}
	}
	return listed, nil
}

// preview is best effort; a note that cannot be read has no preview
func (s *noteServiceImpl) preview(filename string) string {
	content, err := s.store.ReadAll(filename)
	if err != nil {
		return ""
	}
	return notes.Preview(notes.Body(content), previewLen)
}

func (s *noteServiceImpl) Resolve(index string) (ListedNote, error) {
	names, err := s.store.List()
	if err != nil {
		return ListedNote{}, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil || n < 1 || n > len(names) {
		return ListedNote{}, &notes.IndexError{Input: strings.TrimSpace(index), Count: len(names)}
	}

	filename := names[n-1]
	title, ok := s.store.ReadTitle(filename)
	if !ok || strings.TrimSpace(title) == "" {
		title = notes.Untitled
	}
	createdAt, _ := notes.ParseCreatedAt(filename)

	return ListedNote{
		Index:     n,
		Filename:  filename,
		Title:     title,
		CreatedAt: createdAt,
	}, nil
}

func (s *noteServiceImpl) ViewNote(index string) (ViewedNote, error) {
	note, err := s.Resolve(index)
	if err != nil {
		return ViewedNote{}, err
	}

	content, err := s.store.ReadAll(note.Filename)
	if err != nil {
		return ViewedNote{}, err
	}
	return ViewedNote{ListedNote: note, Content: content}, nil
}

func (s *noteServiceImpl) SearchNotes(query string) ([]notes.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &notes.ValidationError{Field: "query", Reason: "enter something to search"}
	}

	results, err := notes.Search(s.store, query)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("query", query).Int("hits", len(results)).Msg("search")
	return results, nil
}

func (s *noteServiceImpl) DeleteNote(index string, confirmed bool) (DeleteResult, error) {
	return s.DeleteNoteConfirm(index, func(ListedNote) bool { return confirmed })
}

// DeleteNoteConfirm resolves index, asks confirm about that exact note and
// removes it only on approval.
func (s *noteServiceImpl) DeleteNoteConfirm(index string, confirm func(ListedNote) bool) (DeleteResult, error) {
	note, err := s.Resolve(index)
	if err != nil {
		return DeleteResult{}, err
	}

	if confirm == nil || !confirm(note) {
		return DeleteResult{Filename: note.Filename}, nil
	}

	if err := s.store.Delete(note.Filename); err != nil {
		return DeleteResult{Filename: note.Filename}, err
	}

	s.log.Info().Str("file", note.Filename).Msg("deleted note")
	return DeleteResult{Filename: note.Filename, Deleted: true}, nil
}
