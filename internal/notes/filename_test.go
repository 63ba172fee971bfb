package notes

import (
	"sort"
	"testing"
	"time"
)

func TestEncodeFilename(t *testing.T) {
	createdAt := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.Local)
	got := EncodeFilename(createdAt, "Meeting-Notes")
	if got != "20240305_070809_Meeting-Notes.txt" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestEncodeFilename_StringOrderMatchesTime(t *testing.T) {
	base := time.Date(2023, time.December, 31, 23, 59, 58, 0, time.Local)
	times := []time.Time{
		base,
		base.Add(time.Second),
		base.Add(2 * time.Second),
		base.Add(time.Hour),
		base.AddDate(0, 1, 0),
		base.AddDate(1, 0, 0),
	}

	var names []string
	for i, ts := range times {
		// slugs chosen so that slug order disagrees with time order
		slug := string(rune('z' - i))
		names = append(names, EncodeFilename(ts, slug))
	}

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for i := range names {
		if sorted[i] != names[i] {
			t.Fatalf("string order differs from creation order: %v vs %v", sorted, names)
		}
	}
}

func TestParseCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, time.March, 5, 17, 8, 9, 0, time.Local)

	got, ok := ParseCreatedAt(EncodeFilename(createdAt, "x"))
	if !ok {
		t.Fatal("expected timestamp to parse")
	}
	if !got.Equal(createdAt) {
		t.Errorf("expected %v, got %v", createdAt, got)
	}

	for _, name := range []string{"notes.txt", "2024_0305_x.txt", "20241305_000000_x.txt"} {
		if _, ok := ParseCreatedAt(name); ok {
			t.Errorf("ParseCreatedAt(%q): expected no timestamp", name)
		}
	}
}

func TestIsNoteFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"20240101_000000_a.txt", true},
		{"UPPER.TXT", true},
		{"readme.md", false},
		{"txt", false},
		{"archive.txt.bak", false},
	}

	for _, tt := range tests {
		if got := IsNoteFile(tt.name); got != tt.expected {
			t.Errorf("IsNoteFile(%q): expected %v, got %v", tt.name, tt.expected, got)
		}
	}
}
