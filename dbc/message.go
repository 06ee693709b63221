package dbc

import "github.com/markovejnovic/libdbc/internal/textbuf"

// NoTransmitter is the placeholder node name DBC uses for messages without a
// sending node.
const NoTransmitter = "Vector__XXX"

// Message is a message header from a BO_ statement. Signals are not modeled.
//
// Transmitter names a node rather than owning one; resolve it with
// Database.Transmitter.
type Message struct {
	ID          uint32
	Size        uint64
	Transmitter string
	name        textbuf.Buffer
}

// NewMessage creates a message header.
func NewMessage(id uint32, name string, size uint64, transmitter string) *Message {
	m := &Message{ID: id, Size: size, Transmitter: transmitter}
	m.name.Set(name)
	return m
}

// Name returns the message name.
func (m *Message) Name() string { return m.name.String() }

// Release frees the message's storage.
func (m *Message) Release() { m.name.Release() }
