package model

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the pipeline. Stage errors wrap one of these,
// so callers classify failures with errors.Is.
var (
	ErrIO               = errors.New("io error")
	ErrParse            = errors.New("parse error")
	ErrInsufficientData = errors.New("insufficient data")
	ErrRender           = errors.New("render error")
)

// ParseError reports the first input line that is not a valid date.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
