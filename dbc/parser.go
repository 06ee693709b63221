package dbc

import (
	"errors"
	"strconv"
	"strings"
)

// ParseVersion interprets a VERSION statement:
//
//	'VERSION' '"' { CANdb_version_string } '"'
//
// The version is the text between the first two double quotes, byte for
// byte. Content after the closing quote is ignored. A statement without a
// complete quoted string resets the version to "" and is Malformed.
func ParseVersion(db *Database, stmt string) Severity {
	open := strings.IndexByte(stmt, '"')
	if open < 0 {
		db.SetVersion("")
		return Malformed
	}
	content := stmt[open+1:]
	end := strings.IndexByte(content, '"')
	if end < 0 {
		db.SetVersion("")
		return Malformed
	}
	db.SetVersion(content[:end])
	return Success
}

// ParseNodes interprets a node list statement:
//
//	'BU_:' { node_name }
//
// Every name is appended to the database, including names that are not
// valid identifiers; any such name makes the result Malformed.
func ParseNodes(db *Database, stmt string) Severity {
	result := Success

	tz := NewTokenizer(stmt)
	kw, _ := tz.Next()
	if _, first, found := strings.Cut(kw, ":"); found && first != "" {
		// BU_:ECU
		if !IsIdentifier(first) {
			result = Malformed
		}
		db.PushNode(NewNode(first))
	}
	for {
		tok, ok := tz.Next()
		if !ok {
			break
		}
		if !IsIdentifier(tok) {
			result = Malformed
		}
		db.PushNode(NewNode(tok))
	}

	return result
}

// ParseValueTable interprets a value table statement:
//
//	'VAL_TABLE_' value_table_name { double char_string } ';'
//
// Missing terminators, unparsable numbers and values without a description
// are Critical: the statement is abandoned with whatever was inserted so
// far. Bad quoting, a quote in the table name, and rejected or duplicate
// entries are Malformed and parsing continues.
//
// If the table name is already taken the existing table is left untouched
// and the statement's entries are checked but discarded.
func ParseValueTable(db *Database, stmt string) Severity {
	result := Success

	tz := NewTokenizer(stmt)
	tz.Next() // VAL_TABLE_

	name, ok := tz.Next()
	if !ok {
		return Critical
	}
	if name == ";" {
		// No table at all; nothing is added.
		return Malformed
	}
	if !isCharString(name) {
		result = Malformed
	}

	vt, err := db.AddValueTable(name)
	if err != nil {
		result = Malformed
		vt = NewValueTable(name)
		defer vt.Release()
	}

	for {
		tok, ok := tz.Next()
		if !ok {
			return Critical
		}
		if strings.HasPrefix(tok, ";") {
			return result
		}

		value, ok := parseNumber(tok)
		if !ok {
			return Critical
		}

		// Quoted descriptions may contain spaces.
		tok, ok = tz.NextQuoted()
		if !ok || strings.HasPrefix(tok, ";") {
			return Critical
		}

		desc, wellFormed := unquote(tok)
		if !wellFormed {
			result = Malformed
		}
		if !vt.Insert(value, desc) {
			result = Malformed
		}
	}
}

// ParseMessage interprets a message header statement:
//
//	'BO_' message_id message_name ':' message_size transmitter
//
// Signal lines that follow the header are not part of the statement.
// Unparsable ids or sizes and a missing name are Critical. A missing
// colon, a name that is not an identifier, or a missing or malformed
// transmitter are Malformed; a missing transmitter is recorded as
// NoTransmitter.
func ParseMessage(db *Database, stmt string) Severity {
	result := Success

	tz := NewTokenizer(stmt)
	tz.Next() // BO_

	tok, ok := tz.Next()
	if !ok {
		return Critical
	}
	id, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return Critical
	}

	name, ok := tz.Next()
	if !ok {
		return Critical
	}
	if trimmed, found := strings.CutSuffix(name, ":"); found {
		name = trimmed
	} else if next, ok := tz.Peek(); ok && next == ":" {
		tz.Next()
	} else {
		result = Malformed
	}
	if name == "" {
		return Critical
	}
	if !IsIdentifier(name) {
		result = Malformed
	}

	tok, ok = tz.Next()
	if !ok {
		return Critical
	}
	size, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return Critical
	}

	transmitter, ok := tz.Next()
	if !ok {
		transmitter = NoTransmitter
		result = Malformed
	} else if !IsIdentifier(transmitter) {
		result = Malformed
	}

	db.AddMessage(NewMessage(uint32(id), name, size, transmitter))
	return result
}

// parseNumber converts a value token to a float64. Decimal and exponent
// forms are read as floats; 0x-prefixed and other base-prefixed integers
// are accepted too. Out-of-range values saturate to ±Inf, which
// ValueTable.Insert rejects.
func parseNumber(tok string) (float64, bool) {
	f, err := strconv.ParseFloat(tok, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return f, true
	}
	n, err := strconv.ParseInt(tok, 0, 64)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}
