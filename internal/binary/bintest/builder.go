// Package bintest builds synthetic pipeline files for tests.
package bintest

import (
	"bytes"
	"encoding/binary"
	"os"

	binpkg "github.com/robert-malhotra/go-bloodflow/internal/binary"
)

// Builder appends little-endian primitives to an in-memory buffer.
// Methods return the builder so layouts can be written as one chain.
type Builder struct {
	buf   bytes.Buffer
	order binary.ByteOrder
}

// New returns an empty builder using the pipeline byte order.
func New() *Builder {
	return &Builder{order: binpkg.ByteOrder}
}

// U8 appends unsigned 8-bit integers.
func (b *Builder) U8(vs ...uint8) *Builder {
	b.buf.Write(vs)
	return b
}

// I8 appends signed 8-bit integers.
func (b *Builder) I8(vs ...int8) *Builder {
	for _, v := range vs {
		b.buf.WriteByte(byte(v))
	}
	return b
}

// U16 appends unsigned 16-bit integers.
func (b *Builder) U16(vs ...uint16) *Builder {
	var tmp [2]byte
	for _, v := range vs {
		b.order.PutUint16(tmp[:], v)
		b.buf.Write(tmp[:])
	}
	return b
}

// U32 appends unsigned 32-bit integers.
func (b *Builder) U32(vs ...uint32) *Builder {
	var tmp [4]byte
	for _, v := range vs {
		b.order.PutUint32(tmp[:], v)
		b.buf.Write(tmp[:])
	}
	return b
}

// F64 appends doubles.
func (b *Builder) F64(vs ...float64) *Builder {
	for _, v := range vs {
		binary.Write(&b.buf, b.order, v)
	}
	return b
}

// F64N appends n copies of v.
func (b *Builder) F64N(n int, v float64) *Builder {
	for i := 0; i < n; i++ {
		b.F64(v)
	}
	return b
}

// Seq appends n doubles start, start+1, start+2, ...
func (b *Builder) Seq(n int, start float64) *Builder {
	for i := 0; i < n; i++ {
		b.F64(start + float64(i))
	}
	return b
}

// String appends a u16 length prefix followed by the raw bytes of s.
func (b *Builder) String(s string) *Builder {
	b.U16(uint16(len(s)))
	b.buf.WriteString(s)
	return b
}

// Raw appends p unchanged.
func (b *Builder) Raw(p []byte) *Builder {
	b.buf.Write(p)
	return b
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Bytes returns a copy of the buffer.
func (b *Builder) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

// Truncated returns the buffer with the last n bytes dropped.
func (b *Builder) Truncated(n int) []byte {
	out := b.Bytes()
	if n > len(out) {
		n = len(out)
	}
	return out[:len(out)-n]
}

// WriteFile writes the buffer to path.
func (b *Builder) WriteFile(path string) error {
	return os.WriteFile(path, b.buf.Bytes(), 0o644)
}
