package notes

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"Meeting Notes", 40, "Meeting-Notes"},
		{"  padded  title  ", 40, "padded-title"},
		{"a/b\\c:d*e?f\"g<h>i|j", 40, "a-b-c-d-e-f-g-h-i-j"},
		{"dash - separated -- words", 40, "dash-separated-words"},
		{"tabs\tand\nnewlines", 40, "tabs-and-newlines"},
		{"///", 40, "note"},
		{"", 40, "note"},
		{"   ", 40, "note"},
		{"---", 40, "note"},
		{"Café déjà vu", 40, "Café-déjà-vu"},
		{"abcdefghij", 5, "abcde"},
		{"abcd efgh", 5, "abcd"},
		{"non breaking", 40, "non-breaking"},
		{strings.Repeat("x", 60), 0, strings.Repeat("x", DefaultSlugMaxLen)},
	}

	for _, tt := range tests {
		result := Slugify(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("Slugify(%q, %d): expected %q, got %q", tt.input, tt.maxLen, tt.expected, result)
		}
	}
}

func TestSlugify_Properties(t *testing.T) {
	inputs := []string{
		"Meeting Notes",
		"  -- leading and trailing --  ",
		"emoji 🎉 party",
		"CON",
		"semi;colon, comma. period!",
		"a\x00b\x1fc",
		"日本語のタイトル",
		strings.Repeat("word ", 30),
		strings.Repeat("-/", 50),
		"x" + strings.Repeat(" ", 39) + "y",
	}

	for _, input := range inputs {
		for _, maxLen := range []int{1, 3, 10, 40} {
			s := Slugify(input, maxLen)

			if s == "" {
				t.Errorf("Slugify(%q, %d): empty slug", input, maxLen)
			}
			if n := utf8.RuneCountInString(s); n > maxLen && s != fallbackSlug {
				t.Errorf("Slugify(%q, %d): length %d exceeds max", input, maxLen, n)
			}
			if strings.ContainsAny(s, `<>:"/\|?*`) {
				t.Errorf("Slugify(%q, %d): invalid characters in %q", input, maxLen, s)
			}
			if strings.Contains(s, "--") {
				t.Errorf("Slugify(%q, %d): consecutive dashes in %q", input, maxLen, s)
			}
			if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
				t.Errorf("Slugify(%q, %d): leading or trailing dash in %q", input, maxLen, s)
			}
			for _, r := range s {
				if unicode.IsSpace(r) || unicode.IsControl(r) {
					t.Errorf("Slugify(%q, %d): whitespace or control rune in %q", input, maxLen, s)
					break
				}
			}
			if again := Slugify(input, maxLen); again != s {
				t.Errorf("Slugify(%q, %d) not deterministic: %q vs %q", input, maxLen, s, again)
			}
		}
	}
}
