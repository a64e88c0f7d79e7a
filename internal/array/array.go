// Package array reads homogeneous arrays whose lengths were resolved from
// counts read earlier in the same stream.
package array

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	binpkg "github.com/robert-malhotra/go-bloodflow/internal/binary"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// ErrBadLength is returned for negative or zero-sized matrix shapes.
var ErrBadLength = errors.New("bad array length")

// Element is a fixed-width primitive stored in the pipeline files.
type Element interface {
	~uint8 | ~int8 | ~uint16 | ~uint32 | ~uint64 | ~float64
}

// Fixed reads count contiguous values of type T.
func Fixed[T Element](c *binpkg.Cursor, count int) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, count)
	}
	var zero T
	nbytes, err := shape.Times(count, binary.Size(zero))
	if err != nil {
		return nil, err
	}
	buf, err := c.ReadBytes(nbytes)
	if err != nil {
		return nil, err
	}
	out := make([]T, count)
	if count == 0 {
		return out, nil
	}
	if err := binary.Read(bytes.NewReader(buf), c.ByteOrder(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// Float64s reads count doubles.
func Float64s(c *binpkg.Cursor, count int) ([]float64, error) {
	return Fixed[float64](c, count)
}

// Uint32s reads count unsigned 32-bit integers.
func Uint32s(c *binpkg.Cursor, count int) ([]uint32, error) {
	return Fixed[uint32](c, count)
}

// Matrix reads rows*cols doubles stored row-major.
func Matrix(c *binpkg.Cursor, rows, cols int) (*mat.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: matrix %dx%d", ErrBadLength, rows, cols)
	}
	n, err := shape.Times(rows, cols)
	if err != nil {
		return nil, err
	}
	vals, err := Float64s(c, n)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(rows, cols, vals), nil
}

// SparseEntry is one non-zero voxel of a sparse N-dimensional field.
type SparseEntry struct {
	Index []uint32
	Value float64
}

// SparseList reads numEntries pairs of (numDims unsigned grid indices, one double).
func SparseList(c *binpkg.Cursor, numEntries, numDims int) ([]SparseEntry, error) {
	if numEntries < 0 || numDims < 0 {
		return nil, fmt.Errorf("%w: %d entries of rank %d", ErrBadLength, numEntries, numDims)
	}
	entrySize := numDims*4 + 8
	total, err := shape.Times(numEntries, entrySize)
	if err != nil {
		return nil, err
	}
	if rem := c.Remaining(); rem >= 0 && int64(total) > rem {
		return nil, fmt.Errorf("%w: %d sparse entries need %d bytes at offset %d, %d available",
			binpkg.ErrTruncated, numEntries, total, c.Pos(), rem)
	}

	out := make([]SparseEntry, 0, min(numEntries, 1<<16))
	for i := 0; i < numEntries; i++ {
		idx, err := Uint32s(c, numDims)
		if err != nil {
			return nil, fmt.Errorf("entry %d index: %w", i, err)
		}
		v, err := c.ReadFloat64()
		if err != nil {
			return nil, fmt.Errorf("entry %d value: %w", i, err)
		}
		out = append(out, SparseEntry{Index: idx, Value: v})
	}
	return out, nil
}
