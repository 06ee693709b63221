package dbc

import "fmt"

// Severity classifies the outcome of interpreting a single statement.
// Values are ordered: a larger value is worse.
type Severity int

const (
	// Success means the statement was fully well-formed.
	Success Severity = iota
	// Malformed means the statement had a recoverable defect. It was still
	// applied as far as possible and the caller should surface a warning.
	Malformed
	// Critical means interpretation stopped part way through the statement.
	// The Database may hold a partial result for it.
	Critical
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case Malformed:
		return "MALFORMED"
	case Critical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Worst returns the more severe of a and b.
func Worst(a, b Severity) Severity {
	if b > a {
		return b
	}
	return a
}
