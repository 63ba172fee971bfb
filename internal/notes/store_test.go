package notes

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeClock returns successive seconds starting at start.
func fakeClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(StoreConfig{
		Dir:    filepath.Join(t.TempDir(), "notes"),
		Now:    fakeClock(time.Date(2024, time.January, 2, 3, 4, 5, 0, time.Local)),
		Logger: zerolog.Nop(),
	})
}

func TestCreate_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	filename, err := store.Create("Meeting Notes", "Discuss roadmap\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filename != "20240102_030405_Meeting-Notes.txt" {
		t.Errorf("unexpected filename %q", filename)
	}

	content, err := store.ReadAll(filename)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if content != "Meeting Notes\n---\nDiscuss roadmap\n" {
		t.Errorf("unexpected content %q", content)
	}
}

func TestCreate_EmptyTitleRejected(t *testing.T) {
	store := newTestStore(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := store.Create(title, "body")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Create(%q): expected ValidationError, got %v", title, err)
		}
		if verr.Field != "title" {
			t.Errorf("expected field 'title', got %q", verr.Field)
		}
	}

	// No I/O at all: the directory was never created
	if _, err := os.Stat(store.Dir()); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected notes dir to be absent, stat err = %v", err)
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no notes, got %v", names)
	}
}

func TestCreate_TitleTrimmedAndSingleLine(t *testing.T) {
	store := newTestStore(t)

	filename, err := store.Create("  two\nlines  ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines, err := store.ReadLines(filename)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "two lines" || lines[1] != Separator {
		t.Errorf("unexpected lines %q", lines)
	}
}

func TestCreate_SameSecondSameSlugOverwrites(t *testing.T) {
	fixed := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.Local)
	store := NewStore(StoreConfig{
		Dir:    t.TempDir(),
		Now:    func() time.Time { return fixed },
		Logger: zerolog.Nop(),
	})

	first, err := store.Create("Same", "first\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Create("Same", "second\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("expected colliding filenames, got %q and %q", first, second)
	}

	names, _ := store.List()
	if len(names) != 1 {
		t.Fatalf("expected 1 note after collision, got %d", len(names))
	}

	content, _ := store.ReadAll(first)
	if !strings.HasSuffix(content, "second\n") {
		t.Errorf("expected later write to win, got %q", content)
	}
}

func TestList_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	names, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error on missing dir: %v", err)
	}
	if names == nil || len(names) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", names)
	}

	if err := store.EnsureDirectory(); err != nil {
		t.Fatalf("ensure error: %v", err)
	}
	// idempotent
	if err := store.EnsureDirectory(); err != nil {
		t.Fatalf("second ensure error: %v", err)
	}

	names, err = store.List()
	if err != nil {
		t.Fatalf("unexpected error on empty dir: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no notes, got %v", names)
	}
}

func TestList_NewestFirstAndFiltered(t *testing.T) {
	store := newTestStore(t)

	older, _ := store.Create("Zebra", "")
	newer, _ := store.Create("Apple", "")

	// Non-note entries are ignored
	os.WriteFile(store.Path("readme.md"), []byte("x"), 0644)
	os.Mkdir(store.Path("sub.txt"), 0755)

	names, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(names) != 2 {
		t.Fatalf("expected 2 notes, got %v", names)
	}
	if names[0] != newer || names[1] != older {
		t.Errorf("expected [%s %s], got %v", newer, older, names)
	}
}

func TestNotes_UntitledFallback(t *testing.T) {
	store := newTestStore(t)
	store.EnsureDirectory()

	os.WriteFile(store.Path("20240101_000000_empty.txt"), nil, 0644)
	os.WriteFile(store.Path("20240101_000001_blank.txt"), []byte("\n---\nbody\n"), 0644)
	os.WriteFile(store.Path("20240101_000002_ok.txt"), []byte("Real Title\n---\n"), 0644)

	list, err := store.Notes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(list))
	}

	expected := []string{"Real Title", Untitled, Untitled}
	for i, n := range list {
		if n.Title != expected[i] {
			t.Errorf("note %d (%s): expected title %q, got %q", i, n.Filename, expected[i], n.Title)
		}
	}

	if list[0].CreatedAt.IsZero() {
		t.Error("expected creation time parsed from filename")
	}
}

func TestReadTitle(t *testing.T) {
	store := newTestStore(t)
	store.EnsureDirectory()

	os.WriteFile(store.Path("bom.txt"), []byte("\ufeffWith BOM\r\n---\r\n"), 0644)
	os.WriteFile(store.Path("single.txt"), []byte("No newline"), 0644)

	if title, ok := store.ReadTitle("bom.txt"); !ok || title != "With BOM" {
		t.Errorf("expected 'With BOM', got %q (ok=%v)", title, ok)
	}
	if title, ok := store.ReadTitle("single.txt"); !ok || title != "No newline" {
		t.Errorf("expected 'No newline', got %q (ok=%v)", title, ok)
	}
	if _, ok := store.ReadTitle("missing.txt"); ok {
		t.Error("expected ok=false for missing file")
	}
}

func TestReadLines_LineEndings(t *testing.T) {
	store := newTestStore(t)
	store.EnsureDirectory()

	os.WriteFile(store.Path("crlf.txt"), []byte("Title\r\n---\r\nline one\r\nline two\r\n"), 0644)

	lines, err := store.ReadLines("crlf.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Title", "---", "line one", "line two"}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %q", len(expected), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestReadAll_MissingIsIOError(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ReadAll("20240101_000000_gone.txt")
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	keep, _ := store.Create("Keep", "")
	drop, _ := store.Create("Drop", "")

	if err := store.Delete(drop); err != nil {
		t.Fatalf("delete error: %v", err)
	}

	names, _ := store.List()
	if len(names) != 1 || names[0] != keep {
		t.Errorf("expected only %q to remain, got %v", keep, names)
	}

	var ioErr *IOError
	if err := store.Delete(drop); !errors.As(err, &ioErr) {
		t.Errorf("expected IOError deleting twice, got %v", err)
	}
}

func TestFilenameEscapesRejected(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"", "..", "../x.txt", "a/b.txt", `a\b.txt`} {
		var verr *ValidationError
		if _, err := store.ReadAll(name); !errors.As(err, &verr) {
			t.Errorf("ReadAll(%q): expected ValidationError, got %v", name, err)
		}
		if err := store.Delete(name); !errors.As(err, &verr) {
			t.Errorf("Delete(%q): expected ValidationError, got %v", name, err)
		}
	}
}
