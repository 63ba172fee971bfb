package notes

import "time"

const (
	// Separator is the literal line between a note's title and its body.
	Separator = "---"

	// Untitled is shown in place of a title that cannot be read.
	Untitled = "(untitled)"
)

// Note represents one note file as seen by a directory scan
type Note struct {
	Filename  string    // Bare filename inside the notes directory
	Title     string    // First line of the file, or Untitled
	CreatedAt time.Time // Parsed from the filename prefix, zero if absent
}

// LineMatch is one line of a note containing a search query.
type LineMatch struct {
	Number int    // 1-based, line 1 is the title
	Text   string // Truncated to MaxMatchLineLen runes
}

// SearchResult groups the matches found in a single note.
type SearchResult struct {
	Filename     string
	Title        string
	TitleMatched bool
	Lines        []LineMatch
}

// Visible returns at most limit matched lines and whether any were left out.
func (r SearchResult) Visible(limit int) ([]LineMatch, bool) {
	if limit < 0 || len(r.Lines) <= limit {
		return r.Lines, false
	}
	return r.Lines[:limit], true
}
