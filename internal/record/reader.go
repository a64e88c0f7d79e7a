package record

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-bloodflow/internal/array"
	"github.com/robert-malhotra/go-bloodflow/internal/binary"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// reader wraps a cursor and the dimensions read so far. The first failure
// sticks: every later read returns a zero value and reads nothing, so loops
// driven by counts stop and the grammar function can run straight through.
type reader struct {
	c     *binary.Cursor
	shape *shape.Context
	err   error
}

func newReader(c *binary.Cursor) *reader {
	return &reader{c: c, shape: shape.New()}
}

// Err returns the first failure, annotated with the field being read.
func (r *reader) Err() error {
	return r.err
}

func (r *reader) fail(field string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("reading %s: %w", field, err)
	}
}

func (r *reader) ok() bool {
	return r.err == nil
}

// scoped runs fn with a child shape scope, so a repeated sub-record can
// define the same dimension names on every iteration.
func (r *reader) scoped(fn func()) {
	parent := r.shape
	r.shape = parent.Scope()
	defer func() { r.shape = parent }()
	fn()
}

func (r *reader) u8(field string) uint8 {
	if !r.ok() {
		return 0
	}
	v, err := r.c.ReadUint8()
	if err != nil {
		r.fail(field, err)
	}
	return v
}

func (r *reader) i8(field string) int8 {
	if !r.ok() {
		return 0
	}
	v, err := r.c.ReadInt8()
	if err != nil {
		r.fail(field, err)
	}
	return v
}

func (r *reader) u16(field string) uint16 {
	if !r.ok() {
		return 0
	}
	v, err := r.c.ReadUint16()
	if err != nil {
		r.fail(field, err)
	}
	return v
}

func (r *reader) u32(field string) uint32 {
	if !r.ok() {
		return 0
	}
	v, err := r.c.ReadUint32()
	if err != nil {
		r.fail(field, err)
	}
	return v
}

func (r *reader) f64(field string) float64 {
	if !r.ok() {
		return 0
	}
	v, err := r.c.ReadFloat64()
	if err != nil {
		r.fail(field, err)
	}
	return v
}

func (r *reader) str(field string) string {
	if !r.ok() {
		return ""
	}
	v, err := r.c.ReadString()
	if err != nil {
		r.fail(field, err)
	}
	return v
}

// dim reads a u32 count and defines it as name in the current scope.
func (r *reader) dim(name string) int {
	return r.define(name, int(r.u32(name)))
}

// dim16 reads a u16 count and defines it as name.
func (r *reader) dim16(name string) int {
	return r.define(name, int(r.u16(name)))
}

// dim8 reads a u8 count and defines it as name.
func (r *reader) dim8(name string) int {
	return r.define(name, int(r.u8(name)))
}

func (r *reader) define(name string, v int) int {
	if !r.ok() {
		return 0
	}
	r.shape.Define(name, v)
	return v
}

// size multiplies the named dimensions by a literal width.
func (r *reader) size(field string, width int, dims ...string) int {
	if !r.ok() {
		return 0
	}
	n, err := r.shape.Product(dims...)
	if err == nil {
		n, err = shape.Times(n, width)
	}
	if err != nil {
		r.fail(field, err)
		return 0
	}
	return n
}

// floats reads width * product(dims) doubles.
func (r *reader) floats(field string, width int, dims ...string) []float64 {
	return fixed[float64](r, field, r.size(field, width, dims...))
}

// uint32s reads width * product(dims) unsigned 32-bit integers.
func (r *reader) uint32s(field string, width int, dims ...string) []uint32 {
	return fixed[uint32](r, field, r.size(field, width, dims...))
}

// uint8s reads width * product(dims) bytes.
func (r *reader) uint8s(field string, width int, dims ...string) []uint8 {
	return fixed[uint8](r, field, r.size(field, width, dims...))
}

func fixed[T array.Element](r *reader, field string, n int) []T {
	if !r.ok() {
		return nil
	}
	v, err := array.Fixed[T](r.c, n)
	if err != nil {
		r.fail(field, err)
		return nil
	}
	return v
}

// vec3 reads a single 3-vector.
func (r *reader) vec3(field string) []float64 {
	return fixed[float64](r, field, 3)
}

func (r *reader) matrix(field string, rows, cols int) *mat.Dense {
	if !r.ok() {
		return nil
	}
	m, err := array.Matrix(r.c, rows, cols)
	if err != nil {
		r.fail(field, err)
		return nil
	}
	return m
}

func (r *reader) sparse(field string, entries, dims string) []array.SparseEntry {
	if !r.ok() {
		return nil
	}
	n, err := r.shape.Get(entries)
	if err != nil {
		r.fail(field, err)
		return nil
	}
	rank, err := r.shape.Get(dims)
	if err != nil {
		r.fail(field, err)
		return nil
	}
	v, err := array.SparseList(r.c, n, rank)
	if err != nil {
		r.fail(field, err)
		return nil
	}
	return v
}

// repeat runs fn once per element of the named count, each in its own scope,
// and stops at the first failure.
func repeat[T any](r *reader, count string, fn func(i int) T) []T {
	if !r.ok() {
		return nil
	}
	n, err := r.shape.Get(count)
	if err != nil {
		r.fail(count, err)
		return nil
	}
	out := make([]T, 0, min(n, 1<<10))
	for i := 0; i < n && r.ok(); i++ {
		var v T
		r.scoped(func() { v = fn(i) })
		if r.ok() {
			out = append(out, v)
		}
	}
	return out
}
