package strz

import (
	"errors"
	"fmt"
)

// ErrNotString is returned when a decoder supplies something other than a
// string scalar where one is required.
var ErrNotString = errors.New("strz: input is not a string scalar")

// ParseError reports a failure to construct a value from its textual form.
type ParseError struct {
	input  string
	parent error
}

func errParse(input string, parent error) error {
	if parent == nil {
		return nil
	}

	return ParseError{input: input, parent: parent}
}

// Input returns the text that failed to parse.
func (e ParseError) Input() string {
	return e.input
}

// Unwrap returns the underlying error reported by the parser.
func (e ParseError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the parse failure.
func (e ParseError) Error() string {
	return fmt.Sprintf("strz: failed to parse %q, %s", e.input, e.parent)
}
