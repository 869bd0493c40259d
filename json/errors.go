package json

import "fmt"

// ParseError is the single error kind raised by this package. Tokenizing
// failures, grammar violations and file I/O failures from Load and Write
// all surface as a *ParseError, and the first failure aborts the whole
// operation.
//
// Line and Col are 1-based and point at the offending token's first
// character; both are zero when the failure happened before any text was
// scanned, such as an unreadable file.
type ParseError struct {
	Message string
	Line    int
	Col     int
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Col, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *ParseError) Unwrap() error { return e.Err }
