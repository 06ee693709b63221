package dbc

import "strings"

// IsIdentifier reports whether s is a C identifier: an ASCII letter or
// underscore followed by ASCII letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}

// isCharString reports whether s may appear between the quotes of a DBC
// char_string, which excludes the quote character itself.
func isCharString(s string) bool {
	return !strings.Contains(s, `"`)
}

// unquote strips one pair of surrounding double quotes from tok. The boolean
// is false if tok was not quoted or its content contains a quote.
func unquote(tok string) (string, bool) {
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return strings.Trim(tok, `"`), false
	}
	content := tok[1 : len(tok)-1]
	return content, isCharString(content)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
