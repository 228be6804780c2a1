package certexpiry

import (
	"fmt"
	"strings"
)

// directory could not be listed
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("traverse %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error { return e.Err }

// the certificate-inspection tool could not produce output for the file
type ExternalToolError struct {
	Tool   string
	Path   string
	Stderr string
	Err    error
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("%s failed for %s: %v", e.Tool, e.Path, e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}

	return msg
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

// tool output did not start with "notAfter="
type UnexpectedOutputError struct {
	Path   string
	Output string
}

func (e *UnexpectedOutputError) Error() string {
	return fmt.Sprintf("unexpected output from openssl for %s: %q", e.Path, e.Output)
}

type DateParseError struct {
	Path  string
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parse end date %q of %s: %v", e.Value, e.Path, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }
