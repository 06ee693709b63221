package dbc

import (
	"fmt"
	"strings"
)

// DirectiveFunc interprets one statement and applies it to db.
type DirectiveFunc func(db *Database, stmt string) Severity

// Registry maps statement keywords to their interpreters.
type Registry struct {
	directives map[string]DirectiveFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{directives: make(map[string]DirectiveFunc)}
}

// DefaultRegistry returns a registry with every built-in directive:
// VERSION, BU_, VAL_TABLE_ and BO_.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("VERSION", ParseVersion)
	r.Register("BU_", ParseNodes)
	r.Register("VAL_TABLE_", ParseValueTable)
	r.Register("BO_", ParseMessage)
	return r
}

// Register adds or replaces the interpreter for keyword.
func (r *Registry) Register(keyword string, fn DirectiveFunc) {
	r.directives[normalizeKeyword(keyword)] = fn
}

// Lookup returns the interpreter for keyword. A trailing colon on keyword is
// ignored, so "BU_:" finds the BU_ interpreter.
func (r *Registry) Lookup(keyword string) (DirectiveFunc, bool) {
	fn, ok := r.directives[normalizeKeyword(keyword)]
	return fn, ok
}

// Dispatch interprets stmt with the interpreter registered for its leading
// keyword. Blank statements succeed without effect. Statements whose keyword
// is not registered are left alone and reported with ErrUnknownDirective.
func (r *Registry) Dispatch(db *Database, stmt string) (Severity, error) {
	keyword, ok := Keyword(stmt)
	if !ok {
		return Success, nil
	}
	fn, ok := r.Lookup(keyword)
	if !ok {
		return Success, fmt.Errorf("%w: %s", ErrUnknownDirective, keyword)
	}
	return fn(db, stmt), nil
}

// Keyword returns the leading token of stmt, cut short at a double quote so
// that `VERSION"1.0"` yields VERSION, and just after a colon so that
// `BU_:ECU` yields BU_:.
func Keyword(stmt string) (string, bool) {
	tok, ok := NewTokenizer(stmt).Next()
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(tok, '"'); i > 0 {
		tok = tok[:i]
	}
	if i := strings.IndexByte(tok, ':'); i > 0 {
		tok = tok[:i+1]
	}
	return tok, true
}

var defaultRegistry = DefaultRegistry()

// ParseStatement interprets stmt using the built-in directives.
func ParseStatement(db *Database, stmt string) (Severity, error) {
	return defaultRegistry.Dispatch(db, stmt)
}

func normalizeKeyword(keyword string) string {
	return strings.TrimSuffix(keyword, ":")
}
