package dbc

import "strings"

// DefaultDelimiters separate tokens within a statement.
const DefaultDelimiters = " \t"

// Tokenizer splits one statement into delimiter-separated tokens. It is
// single-pass: consumed tokens cannot be revisited. Runs of delimiters never
// produce empty tokens.
type Tokenizer struct {
	src    string
	delims string
	pos    int
	peeked *string
}

// NewTokenizer creates a Tokenizer using DefaultDelimiters.
func NewTokenizer(stmt string) *Tokenizer {
	return NewTokenizerDelim(stmt, DefaultDelimiters)
}

// NewTokenizerDelim creates a Tokenizer that splits on any byte in delims.
func NewTokenizerDelim(stmt, delims string) *Tokenizer {
	return &Tokenizer{src: stmt, delims: delims}
}

// Peek returns the next token without consuming it. The boolean is false
// when no tokens remain.
func (t *Tokenizer) Peek() (string, bool) {
	if t.peeked != nil {
		return *t.peeked, true
	}
	tok, ok := t.scan()
	if !ok {
		return "", false
	}
	t.peeked = &tok
	return tok, true
}

// Next returns the next token and advances. The boolean is false when no
// tokens remain.
func (t *Tokenizer) Next() (string, bool) {
	if t.peeked != nil {
		tok := *t.peeked
		t.peeked = nil
		return tok, true
	}
	return t.scan()
}

// NextQuoted is like Next, except that a token starting with a double quote
// extends to the matching closing quote even across delimiters, so
// `"no faults stored"` is returned whole. Without a closing quote it
// behaves like Next. A token already returned by Peek is returned as is.
func (t *Tokenizer) NextQuoted() (string, bool) {
	if t.peeked != nil {
		return t.Next()
	}
	for t.pos < len(t.src) && t.isDelim(t.src[t.pos]) {
		t.pos++
	}
	if t.pos >= len(t.src) || t.src[t.pos] != '"' {
		return t.scan()
	}
	end := strings.IndexByte(t.src[t.pos+1:], '"')
	if end < 0 {
		return t.scan()
	}
	start := t.pos
	t.pos += end + 2
	for t.pos < len(t.src) && !t.isDelim(t.src[t.pos]) {
		t.pos++
	}
	return t.src[start:t.pos], true
}

func (t *Tokenizer) isDelim(ch byte) bool {
	return strings.IndexByte(t.delims, ch) >= 0
}

func (t *Tokenizer) scan() (string, bool) {
	for t.pos < len(t.src) && t.isDelim(t.src[t.pos]) {
		t.pos++
	}
	if t.pos >= len(t.src) {
		return "", false
	}
	start := t.pos
	for t.pos < len(t.src) && !t.isDelim(t.src[t.pos]) {
		t.pos++
	}
	return t.src[start:t.pos], true
}
