package regexp

import (
	"fmt"
	"strings"
)

type ErrorTag string

const (
	LexicalErrorTag ErrorTag = "LexicalError"
	SyntaxErrorTag  ErrorTag = "SyntaxError"
)

// Error is a failed parse. Tag classifies the failure, Err carries the
// offending token or character. Every malformed expression surfaces as an
// *Error from the top-level entry point; no partially built tree escapes.
type Error struct {
	Tag ErrorTag
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Tag)
	}

	var b strings.Builder
	b.WriteString(string(e.Tag))
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newLexicalError(format string, args ...any) error {
	return &Error{Tag: LexicalErrorTag, Err: fmt.Errorf(format, args...)}
}

func newSyntaxError(format string, args ...any) error {
	return &Error{Tag: SyntaxErrorTag, Err: fmt.Errorf(format, args...)}
}
