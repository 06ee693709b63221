package dbc

import "github.com/markovejnovic/libdbc/internal/textbuf"

// Node is a participant on the network that transmits or receives messages.
type Node struct {
	name textbuf.Buffer
}

// NewNode creates a node with a copy of name. Names that are not valid
// identifiers are stored as given; see Valid.
func NewNode(name string) *Node {
	n := &Node{}
	n.name.Set(name)
	return n
}

// Name returns the node name.
func (n *Node) Name() string { return n.name.String() }

// Valid reports whether the node name is a well-formed identifier.
func (n *Node) Valid() bool { return IsIdentifier(n.Name()) }

// Release frees the node's storage.
func (n *Node) Release() { n.name.Release() }
