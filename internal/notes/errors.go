package notes

import (
	"fmt"
	"strconv"
)

// ValidationError reports input rejected before any filesystem access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IndexError reports a displayed index that is not a number or does not
// address a note in the current listing.
type IndexError struct {
	Input string
	Count int
}

func (e *IndexError) Error() string {
	if _, err := strconv.Atoi(e.Input); err != nil {
		return fmt.Sprintf("invalid note number %q", e.Input)
	}
	if e.Count == 0 {
		return fmt.Sprintf("note number %s out of range: no notes available", e.Input)
	}
	return fmt.Sprintf("note number %s out of range (1-%d)", e.Input, e.Count)
}

// IOError wraps a filesystem failure on a note file or the notes directory.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
