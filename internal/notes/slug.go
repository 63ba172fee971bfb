package notes

import (
	"regexp"
	"strings"
)

const (
	// DefaultSlugMaxLen bounds the slug embedded in note filenames.
	DefaultSlugMaxLen = 40

	fallbackSlug = "note"
)

var (
	// Characters rejected in a file name on at least one supported platform.
	invalidNameChars = regexp.MustCompile(`[\x00-\x1f<>:"/\\|?*]+`)
	whitespaceRun    = regexp.MustCompile(`[\s\p{Z}\x{85}]+`)
	multiDash        = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a filesystem-safe token of at most maxLen runes
// "Meeting: Q3 / Plans" -> "Meeting-Q3-Plans"
func Slugify(raw string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	s := invalidNameChars.ReplaceAllString(raw, "-")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if runes := []rune(s); len(runes) > maxLen {
		// the cut may land right after a dash
		s = strings.TrimRight(string(runes[:maxLen]), "-")
	}

	if s == "" {
		return fallbackSlug
	}
	return s
}
