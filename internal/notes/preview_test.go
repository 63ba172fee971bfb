package notes

import "testing"

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		max      int
		expected string
	}{
		{"plain", "first line\nsecond line\n", 60, "first line second line"},
		{"skips headings", "# Heading\n\nParagraph one.\n\nParagraph two.\n\nParagraph three.\n", 60, "Paragraph one. Paragraph two."},
		{"empty", "", 60, ""},
		{"truncated", "a fairly long paragraph of text\n", 10, "a fairly …"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.body, tt.max); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBody(t *testing.T) {
	tests := []struct {
		content  string
		expected string
	}{
		{"Title\n---\nbody line\n", "body line\n"},
		{"Title\r\n---\r\nbody\r\n", "body\r\n"},
		{"Title\n---", ""},
		{"Title\nno separator\n", "no separator\n"},
		{"Title only", ""},
	}

	for _, tt := range tests {
		if got := Body(tt.content); got != tt.expected {
			t.Errorf("Body(%q): expected %q, got %q", tt.content, tt.expected, got)
		}
	}
}
