package dbc

import (
	"fmt"

	"github.com/markovejnovic/libdbc/internal/seq"
	"github.com/markovejnovic/libdbc/internal/textbuf"
)

// Database is the in-memory representation of a DBC file. It owns every
// node, value table and message reachable from it.
//
// A Database is not safe for concurrent use.
type Database struct {
	version    textbuf.Buffer
	nodes      seq.Seq[*Node]
	tables     map[string]*ValueTable
	tableOrder seq.Seq[*ValueTable]
	messages   seq.Seq[*Message]
}

// New creates an empty Database.
func New() *Database {
	return &Database{tables: make(map[string]*ValueTable)}
}

// Version returns the version string, or "" if none was set.
func (db *Database) Version() string { return db.version.String() }

// SetVersion stores a copy of v as the version string.
func (db *Database) SetVersion(v string) { db.version.Set(v) }

// PushNode appends n to the node list. Duplicate names are allowed.
func (db *Database) PushNode(n *Node) { db.nodes.Append(n) }

// Node returns the node at index i. It panics if i is out of range.
func (db *Database) Node(i int) *Node { return db.nodes.Get(i) }

// NodeCount returns the number of nodes.
func (db *Database) NodeCount() int { return db.nodes.Len() }

// NodeByName returns the first node with the given name.
func (db *Database) NodeByName(name string) (*Node, bool) {
	for _, n := range db.nodes.All() {
		if n.Name() == name {
			return n, true
		}
	}
	return nil, false
}

// AddValueTable creates an empty value table and registers it under name.
// It returns ErrValueTableExists, and the already registered table, if name
// is taken.
func (db *Database) AddValueTable(name string) (*ValueTable, error) {
	if vt, ok := db.tables[name]; ok {
		return vt, fmt.Errorf("%w: %q", ErrValueTableExists, name)
	}
	if db.tables == nil {
		db.tables = make(map[string]*ValueTable)
	}
	vt := NewValueTable(name)
	db.tables[name] = vt
	db.tableOrder.Append(vt)
	return vt, nil
}

// ValueTable returns the value table registered under name.
func (db *Database) ValueTable(name string) (*ValueTable, bool) {
	vt, ok := db.tables[name]
	return vt, ok
}

// ValueTableAt returns the i-th value table in declaration order.
func (db *Database) ValueTableAt(i int) *ValueTable { return db.tableOrder.Get(i) }

// ValueTableCount returns the number of value tables.
func (db *Database) ValueTableCount() int { return db.tableOrder.Len() }

// AddMessage appends m to the message list.
func (db *Database) AddMessage(m *Message) { db.messages.Append(m) }

// Message returns the message at index i. It panics if i is out of range.
func (db *Database) Message(i int) *Message { return db.messages.Get(i) }

// MessageCount returns the number of messages.
func (db *Database) MessageCount() int { return db.messages.Len() }

// MessageByID returns the first message with the given CAN identifier.
func (db *Database) MessageByID(id uint32) (*Message, bool) {
	for _, m := range db.messages.All() {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// Transmitter resolves the node that sends m.
func (db *Database) Transmitter(m *Message) (*Node, bool) {
	return db.NodeByName(m.Transmitter)
}

// Close releases everything the Database owns. The Database must not be
// used afterwards.
func (db *Database) Close() {
	db.version.Release()
	db.nodes.Release((*Node).Release)
	db.tableOrder.Release((*ValueTable).Release)
	clear(db.tables)
	db.messages.Release((*Message).Release)
}
