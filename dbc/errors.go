package dbc

import (
	"errors"
	"fmt"
)

var (
	// ErrValueTableExists is returned when adding a value table whose name is
	// already registered.
	ErrValueTableExists = errors.New("value table already exists")

	// ErrUnknownDirective is returned when a statement's keyword has no
	// registered interpreter.
	ErrUnknownDirective = errors.New("unknown directive")
)

// StatementError describes a statement that could not be interpreted.
type StatementError struct {
	Line      int // 1-based line number, 0 when unknown
	Keyword   string
	Severity  Severity
	Statement string
}

func (e *StatementError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s statement %s: %q", e.Line, e.Keyword, e.Severity, e.Statement)
	}
	return fmt.Sprintf("%s statement %s: %q", e.Keyword, e.Severity, e.Statement)
}
