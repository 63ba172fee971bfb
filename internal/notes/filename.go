package notes

import (
	"regexp"
	"strings"
	"time"
)

const (
	// NoteExt is the extension of every note file.
	NoteExt = ".txt"

	// TimestampLayout is the zero-padded, fixed-width filename prefix, so that
	// string order of filenames equals creation order.
	TimestampLayout = "20060102_150405"
)

var timestampPrefix = regexp.MustCompile(`^\d{8}_\d{6}_`)

// EncodeFilename builds the on-disk name of a note created at createdAt
func EncodeFilename(createdAt time.Time, slug string) string {
	return createdAt.Format(TimestampLayout) + "_" + slug + NoteExt
}

// IsNoteFile reports whether a directory entry name is a note file
func IsNoteFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), NoteExt)
}

// ParseCreatedAt recovers the creation time from a note filename. It is used
// for display only; ordering always compares filenames as strings.
func ParseCreatedAt(filename string) (time.Time, bool) {
	match := timestampPrefix.FindString(filename)
	if match == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(TimestampLayout, strings.TrimSuffix(match, "_"), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
