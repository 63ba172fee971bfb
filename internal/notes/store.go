package notes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	utf8BOM = "\ufeff"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// StoreConfig holds everything a Store needs; there is no package-level state.
type StoreConfig struct {
	Dir        string
	SlugMaxLen int              // <= 0 means DefaultSlugMaxLen
	Now        func() time.Time // defaults to time.Now
	Logger     zerolog.Logger
}

// Store owns a flat directory of note files.
type Store struct {
	dir        string
	slugMaxLen int
	now        func() time.Time
	log        zerolog.Logger
}

func NewStore(cfg StoreConfig) *Store {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	maxLen := cfg.SlugMaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	return &Store{
		dir:        cfg.Dir,
		slugMaxLen: maxLen,
		now:        now,
		log:        cfg.Logger.With().Str("component", "store").Logger(),
	}
}

// Dir returns the notes directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the absolute location of a note file.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// EnsureDirectory creates the notes directory if it does not exist.
func (s *Store) EnsureDirectory() error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return &IOError{Op: "create notes dir", Path: s.dir, Err: err}
	}
	return nil
}

// Create writes a new note and returns its filename. A note created in the
// same second with the same slug as an existing one replaces it.
func (s *Store) Create(title, body string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", &ValidationError{Field: "title", Reason: "title cannot be empty"}
	}
	// line 1 must hold the whole title
	title = lineBreaks.Replace(title)

	if err := s.EnsureDirectory(); err != nil {
		return "", err
	}

	filename := EncodeFilename(s.now(), Slugify(title, s.slugMaxLen))
	path := s.Path(filename)

	if err := writeNote(path, title, body); err != nil {
		return "", &IOError{Op: "write note", Path: path, Err: err}
	}

	s.log.Debug().Str("file", filename).Msg("note created")
	return filename, nil
}

func writeNote(path, title, body string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	w.WriteString(title)
	w.WriteString("\n" + Separator + "\n")
	w.WriteString(body)
	return w.Flush()
}

// List returns note filenames newest first. A missing directory has no notes.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, &IOError{Op: "read notes dir", Path: s.dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsNoteFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Notes returns the listing with titles resolved. Unreadable titles become
// Untitled instead of failing the listing.
func (s *Store) Notes() ([]Note, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}

	result := make([]Note, 0, len(names))
	for _, name := range names {
		title, ok := s.ReadTitle(name)
		if !ok || strings.TrimSpace(title) == "" {
			title = Untitled
		}
		createdAt, _ := ParseCreatedAt(name)
		result = append(result, Note{
			Filename:  name,
			Title:     title,
			CreatedAt: createdAt,
		})
	}
	return result, nil
}

// ReadTitle returns the first line of a note. ok is false when the file
// cannot be opened or is empty.
func (s *Store) ReadTitle(filename string) (title string, ok bool) {
	if err := checkFilename(filename); err != nil {
		return "", false
	}

	f, err := os.Open(s.Path(filename))
	if err != nil {
		s.log.Debug().Err(err).Str("file", filename).Msg("title unreadable")
		return "", false
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", false
	}
	line = strings.TrimPrefix(line, utf8BOM)
	return strings.TrimRight(line, "\r\n"), true
}

// ReadAll returns the full content of a note.
func (s *Store) ReadAll(filename string) (string, error) {
	if err := checkFilename(filename); err != nil {
		return "", err
	}

	path := s.Path(filename)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "read note", Path: path, Err: err}
	}
	return strings.TrimPrefix(string(b), utf8BOM), nil
}

// ReadLines returns the lines of a note without line terminators. A final
// newline does not produce a trailing empty line.
func (s *Store) ReadLines(filename string) ([]string, error) {
	content, err := s.ReadAll(filename)
	if err != nil {
		return nil, err
	}
	return splitLines(content), nil
}

// Delete removes a note file.
func (s *Store) Delete(filename string) error {
	if err := checkFilename(filename); err != nil {
		return err
	}

	path := s.Path(filename)
	if err := os.Remove(path); err != nil {
		return &IOError{Op: "delete note", Path: path, Err: err}
	}

	s.log.Debug().Str("file", filename).Msg("note deleted")
	return nil
}

func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// checkFilename keeps callers inside the notes directory.
func checkFilename(filename string) error {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) || filepath.Base(filename) != filename {
		return &ValidationError{Field: "filename", Reason: fmt.Sprintf("%q is not a note filename", filename)}
	}
	return nil
}
