// Package rendering provides the single entry point that turns résumé text
// into a finished PDF file on disk.
package rendering

import "fmt"

// StyleError represents an invalid typographic profile.
type StyleError struct {
	Message string
	Cause   error
}

func (e *StyleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("style error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("style error: %s", e.Message)
}

func (e *StyleError) Unwrap() error {
	return e.Cause
}

// OutputError represents a failure to place the finished file at its
// destination. It is the only I/O failure surface of a conversion.
type OutputError struct {
	Path    string
	Message string
	Cause   error
}

func (e *OutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("output error at %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("output error at %s: %s", e.Path, e.Message)
}

func (e *OutputError) Unwrap() error {
	return e.Cause
}
