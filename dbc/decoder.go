package dbc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	maxStatementSize  = 1 << 20
	newSymbolsKeyword = "NS_"
)

// Diagnostic records a statement that did not parse cleanly.
type Diagnostic struct {
	Line      int      // 1-based line number
	Keyword   string   // leading keyword of the statement
	Severity  Severity // Malformed or Critical
	Statement string   // the statement as read
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] line %d: %s: %s", d.Severity, d.Line, d.Keyword, d.Statement)
}

func (d Diagnostic) err() *StatementError {
	return &StatementError{
		Line:      d.Line,
		Keyword:   d.Keyword,
		Severity:  d.Severity,
		Statement: d.Statement,
	}
}

// Report summarizes a decode run.
type Report struct {
	Diagnostics []Diagnostic
	Statements  int // statements handed to an interpreter
	Skipped     int // statements not interpreted: NS_ blocks and unregistered keywords
}

// Worst returns the most severe diagnostic severity, or Success.
func (r *Report) Worst() Severity {
	worst := Success
	for _, d := range r.Diagnostics {
		worst = Worst(worst, d.Severity)
	}
	return worst
}

// Err returns every Critical diagnostic as a *StatementError, combined into
// one error. It returns nil if there were none.
func (r *Report) Err() error {
	var err error
	for _, d := range r.Diagnostics {
		if d.Severity == Critical {
			err = multierr.Append(err, d.err())
		}
	}
	return err
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) DecoderOption {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithRegistry replaces the built-in directives.
func WithRegistry(r *Registry) DecoderOption {
	return func(d *Decoder) {
		if r != nil {
			d.registry = r
		}
	}
}

// WithStrict makes the first Critical statement abort decoding.
func WithStrict(strict bool) DecoderOption {
	return func(d *Decoder) { d.strict = strict }
}

// WithListener registers a function called synchronously for each
// diagnostic, in the order statements are read.
func WithListener(fn func(Diagnostic)) DecoderOption {
	return func(d *Decoder) {
		if fn != nil {
			d.listeners = append(d.listeners, fn)
		}
	}
}

// Decoder reads DBC text one line at a time and interprets each line as a
// statement.
type Decoder struct {
	r         io.Reader
	logger    *zap.Logger
	registry  *Registry
	strict    bool
	listeners []func(Diagnostic)
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		r:        r,
		logger:   zap.NewNop(),
		registry: defaultRegistry,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads all input into a new Database.
//
// Malformed and Critical statements are recorded in the report and decoding
// continues, unless the decoder is strict, in which case the first Critical
// statement stops decoding and is returned as a *StatementError alongside
// the partial Database and report.
func (d *Decoder) Decode() (*Database, *Report, error) {
	db := New()
	report := &Report{}

	scanner := bufio.NewScanner(d.r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStatementSize)

	line := 0
	inSymbols := false
	for scanner.Scan() {
		line++
		stmt := strings.TrimSuffix(scanner.Text(), "\r")
		keyword, ok := Keyword(stmt)
		if !ok {
			continue
		}

		// The NS_ block lists symbol names on indented lines, some of which
		// look like directives (VAL_TABLE_, BO_TX_BU_).
		if inSymbols && isIndented(stmt) {
			continue
		}
		inSymbols = normalizeKeyword(keyword) == newSymbolsKeyword

		var sev Severity
		var err error
		if inSymbols {
			err = ErrUnknownDirective
		} else {
			sev, err = d.registry.Dispatch(db, stmt)
		}
		if errors.Is(err, ErrUnknownDirective) {
			report.Skipped++
			d.logger.Debug("skipping statement",
				zap.Int("line", line),
				zap.String("keyword", keyword))
			continue
		}
		report.Statements++
		if sev == Success {
			continue
		}

		diag := Diagnostic{Line: line, Keyword: keyword, Severity: sev, Statement: stmt}
		report.Diagnostics = append(report.Diagnostics, diag)
		d.emit(diag)

		if sev == Critical && d.strict {
			return db, report, diag.err()
		}
	}
	if err := scanner.Err(); err != nil {
		return db, report, fmt.Errorf("reading line %d: %w", line+1, err)
	}

	d.logger.Debug("decoded database",
		zap.Int("statements", report.Statements),
		zap.Int("skipped", report.Skipped),
		zap.Int("diagnostics", len(report.Diagnostics)),
		zap.Int("nodes", db.NodeCount()),
		zap.Int("value_tables", db.ValueTableCount()),
		zap.Int("messages", db.MessageCount()))
	return db, report, nil
}

func (d *Decoder) emit(diag Diagnostic) {
	fields := []zap.Field{
		zap.Int("line", diag.Line),
		zap.String("keyword", diag.Keyword),
		zap.Stringer("severity", diag.Severity),
		zap.String("statement", diag.Statement),
	}
	switch diag.Severity {
	case Critical:
		d.logger.Error("statement abandoned", fields...)
	default:
		d.logger.Warn("statement malformed", fields...)
	}

	for _, fn := range d.listeners {
		fn(diag)
	}
}

func isIndented(stmt string) bool {
	return stmt != "" && (stmt[0] == ' ' || stmt[0] == '\t')
}

// Parse decodes DBC source text.
func Parse(src []byte, opts ...DecoderOption) (*Database, *Report, error) {
	return NewDecoder(bytes.NewReader(src), opts...).Decode()
}

// ParseFile decodes the DBC file at path.
func ParseFile(path string, opts ...DecoderOption) (*Database, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dbc file: %w", err)
	}
	defer f.Close()

	return NewDecoder(f, opts...).Decode()
}
