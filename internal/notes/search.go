package notes

import (
	"errors"
	"io/fs"
	"sort"
	"strings"
)

const (
	// MaxMatchLineLen bounds the text kept for each matched line.
	MaxMatchLineLen = 80

	// MaxDisplayedMatches is how many matched lines a caller shows per note.
	MaxDisplayedMatches = 5
)

// Source is the part of a Store the search engine reads from.
type Source interface {
	List() ([]string, error)
	ReadLines(filename string) ([]string, error)
}

// Search scans every note for a case-insensitive substring match in the title
// or any following line. Results are ordered by filename ascending. The query
// is used as given; rejecting an empty query is the caller's job.
func Search(src Source, query string) ([]SearchResult, error) {
	names, err := src.List()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	results := []SearchResult{}

	for _, name := range names {
		lines, err := src.ReadLines(name)
		if err != nil {
			// removed after the listing was taken
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}

		title := Untitled
		if len(lines) > 0 {
			title = lines[0]
		}

		// the title is reported through TitleMatched, not as a line
		var matched []LineMatch
		for i := 1; i < len(lines); i++ {
			line := lines[i]
			if strings.Contains(strings.ToLower(line), needle) {
				matched = append(matched, LineMatch{
					Number: i + 1,
					Text:   Truncate(line, MaxMatchLineLen),
				})
			}
		}

		titleMatched := strings.Contains(strings.ToLower(title), needle)
		if !titleMatched && len(matched) == 0 {
			continue
		}

		if matched == nil {
			matched = []LineMatch{}
		}
		results = append(results, SearchResult{
			Filename:     name,
			Title:        title,
			TitleMatched: titleMatched,
			Lines:        matched,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Filename < results[j].Filename
	})

	return results, nil
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
