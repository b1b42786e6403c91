package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatchingFormat is returned when no descriptor's header is present.
	ErrNoMatchingFormat = errors.New("no parser available (no matching header)")
	// ErrMalformedRow matches any *MalformedRowError.
	ErrMalformedRow = errors.New("malformed row")
)

// MalformedRowError reports a data line that could not be mapped to a Record.
type MalformedRowError struct {
	Line    int // 1-based position in the input
	Content string
	Err     error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at line %d %q: %v", e.Line, e.Content, e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// Is reports whether target is ErrMalformedRow.
func (e *MalformedRowError) Is(target error) bool { return target == ErrMalformedRow }
