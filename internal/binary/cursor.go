// Package binary provides the sequential cursor used to decode pipeline result files.
//
// The files carry no header, tags or checksums: a reader must know the exact
// field order. Every read therefore either returns the full width requested or
// fails with [ErrTruncated]; there is no partial read and no rewind.
package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrTruncated is returned when the stream ends before a read is satisfied.
var ErrTruncated = errors.New("truncated stream")

// ByteOrder is the byte order of every file written by the pipeline.
// The producer wrote its native x86-64 layout, so this is pinned to little-endian.
var ByteOrder binary.ByteOrder = binary.LittleEndian

// chunkSize bounds a single allocation when the stream length is unknown.
const chunkSize = 1 << 20

// Cursor reads typed values from a stream in strictly increasing position order.
type Cursor struct {
	r       io.Reader
	order   binary.ByteOrder
	pos     int64
	size    int64 // -1 if unknown
	scratch [8]byte
}

// NewCursor creates a cursor over r. size is the total stream length in bytes,
// or -1 if it is not known. A known size lets oversized reads fail before any
// buffer is allocated.
func NewCursor(r io.Reader, size int64) *Cursor {
	return &Cursor{
		r:     r,
		order: ByteOrder,
		size:  size,
	}
}

// FromBytes creates a cursor over an in-memory buffer.
func FromBytes(b []byte) *Cursor {
	return NewCursor(bytes.NewReader(b), int64(len(b)))
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int64 {
	return c.pos
}

// Remaining returns the number of unread bytes, or -1 if the stream length is unknown.
func (c *Cursor) Remaining() int64 {
	if c.size < 0 {
		return -1
	}
	return c.size - c.pos
}

// ByteOrder returns the configured byte order.
func (c *Cursor) ByteOrder() binary.ByteOrder {
	return c.order
}

// ReadBytes reads exactly n bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d at offset %d", n, c.pos)
	}
	if n == 0 {
		return []byte{}, nil
	}
	if c.size >= 0 && int64(n) > c.size-c.pos {
		return nil, c.truncated(n, c.size-c.pos)
	}
	if n <= chunkSize {
		buf := make([]byte, n)
		if err := c.fill(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	// Unknown length and a large request: grow in bounded steps so a corrupt
	// count cannot force one huge allocation up front.
	buf := make([]byte, 0, chunkSize)
	for len(buf) < n {
		step := min(n-len(buf), chunkSize)
		start := len(buf)
		buf = append(buf, make([]byte, step)...)
		if err := c.fill(buf[start:]); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// fill reads len(p) bytes into p and advances the position.
func (c *Cursor) fill(p []byte) error {
	n, err := io.ReadFull(c.r, p)
	c.pos += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return c.truncated(len(p), int64(n))
		}
		return fmt.Errorf("reading %d bytes at offset %d: %w", len(p), c.pos-int64(n), err)
	}
	return nil
}

func (c *Cursor) truncated(want int, got int64) error {
	return fmt.Errorf("%w: need %d bytes at offset %d, %d available", ErrTruncated, want, c.pos, got)
}

func (c *Cursor) fixed(n int) ([]byte, error) {
	buf := c.scratch[:n]
	if c.size >= 0 && int64(n) > c.size-c.pos {
		return nil, c.truncated(n, c.size-c.pos)
	}
	if err := c.fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (c *Cursor) ReadUint8() (uint8, error) {
	buf, err := c.fixed(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadInt8 reads a signed 8-bit integer.
func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads an unsigned 16-bit integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	buf, err := c.fixed(2)
	if err != nil {
		return 0, err
	}
	return c.order.Uint16(buf), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	buf, err := c.fixed(4)
	if err != nil {
		return 0, err
	}
	return c.order.Uint32(buf), nil
}

// ReadFloat64 reads an IEEE-754 double.
func (c *Cursor) ReadFloat64() (float64, error) {
	var v float64
	buf, err := c.fixed(8)
	if err != nil {
		return 0, err
	}
	if err := binary.Read(bytes.NewReader(buf), c.order, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// ReadString reads a string stored as a 2-byte length followed by that many
// raw bytes. There is no terminator.
func (c *Cursor) ReadString() (string, error) {
	n, err := c.ReadUint16()
	if err != nil {
		return "", err
	}
	buf, err := c.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
