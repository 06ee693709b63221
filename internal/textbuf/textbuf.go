// Package textbuf provides an owned, growable text buffer backed by pooled
// byte buffers.
package textbuf

import "github.com/valyala/bytebufferpool"

// Buffer holds a private copy of a piece of text. The zero value is an empty
// buffer ready to use. Buffers must not be copied after first use.
type Buffer struct {
	b *bytebufferpool.ByteBuffer
}

// New returns a buffer holding a copy of s.
func New(s string) *Buffer {
	var b Buffer
	b.Set(s)
	return &b
}

// Set replaces the contents of the buffer with a copy of s.
func (b *Buffer) Set(s string) {
	b.ensure()
	b.b.SetString(s)
}

// SetBytes replaces the contents of the buffer with a copy of p.
func (b *Buffer) SetBytes(p []byte) {
	b.ensure()
	b.b.Set(p)
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	if b.b == nil {
		return ""
	}
	return b.b.String()
}

// Len returns the length of the contents in bytes.
func (b *Buffer) Len() int {
	if b.b == nil {
		return 0
	}
	return b.b.Len()
}

// Release returns the backing storage to the pool. The buffer reads as empty
// afterwards and may be reused.
func (b *Buffer) Release() {
	if b.b == nil {
		return
	}
	bytebufferpool.Put(b.b)
	b.b = nil
}

func (b *Buffer) ensure() {
	if b.b == nil {
		b.b = bytebufferpool.Get()
	}
}
