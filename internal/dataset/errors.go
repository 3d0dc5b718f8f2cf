package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTimestamp marks a time field that does not match
	// "YYYY-MM-DD HH:MM:SS ±HHMM" once zone labels are stripped.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrMalformedPrice marks a price field that is not a decimal number.
	ErrMalformedPrice = errors.New("malformed price")
)

// RowError locates a rejected source row.
type RowError struct {
	Source string
	Line   int
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s line %d: %v", e.Source, e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
