package array

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	binpkg "github.com/robert-malhotra/go-bloodflow/internal/binary"
	"github.com/robert-malhotra/go-bloodflow/internal/binary/bintest"
)

func TestFixed(t *testing.T) {
	data := bintest.New().U32(7, 8, 9).U8(1, 2).I8(-3).F64(1.5).Bytes()
	c := binpkg.FromBytes(data)

	u32, err := Uint32s(c, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{7, 8, 9}, u32)

	u8, err := Fixed[uint8](c, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 2}, u8)

	i8, err := Fixed[int8](c, 1)
	require.NoError(t, err)
	assert.Equal(t, []int8{-3}, i8)

	f, err := Float64s(c, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, f)
	assert.Zero(t, c.Remaining())
}

func TestFixedZeroCountReadsNothing(t *testing.T) {
	c := binpkg.FromBytes([]byte{0xAA})
	out, err := Float64s(c, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
	assert.Zero(t, c.Pos())
}

func TestFixedNegative(t *testing.T) {
	_, err := Float64s(binpkg.FromBytes(nil), -1)
	require.ErrorIs(t, err, ErrBadLength)
}

func TestFixedTruncated(t *testing.T) {
	data := bintest.New().F64(1, 2).Truncated(3)
	_, err := Float64s(binpkg.FromBytes(data), 2)
	require.ErrorIs(t, err, binpkg.ErrTruncated)
}

func TestMatrixRowMajor(t *testing.T) {
	data := bintest.New().Seq(6, 1).Bytes()
	m, err := Matrix(binpkg.FromBytes(data), 2, 3)
	require.NoError(t, err)

	want := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.True(t, mat.Equal(m, want))
	assert.Equal(t, 4.0, m.At(1, 0))

	_, err = Matrix(binpkg.FromBytes(data), 0, 3)
	require.ErrorIs(t, err, ErrBadLength)
}

func TestSparseList(t *testing.T) {
	data := bintest.New().
		U32(1, 2).F64(3.5).
		U32(0, 0).F64(-1.25).
		Bytes()

	got, err := SparseList(binpkg.FromBytes(data), 2, 2)
	require.NoError(t, err)
	want := []SparseEntry{
		{Index: []uint32{1, 2}, Value: 3.5},
		{Index: []uint32{0, 0}, Value: -1.25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sparse list mismatch (-want +got):\n%s", diff)
	}
}

func TestSparseListHugeCountFailsFast(t *testing.T) {
	data := bintest.New().U32(1, 2).F64(3.5).Bytes()
	c := binpkg.FromBytes(data)
	_, err := SparseList(c, 1<<30, 2)
	require.ErrorIs(t, err, binpkg.ErrTruncated)
	assert.Zero(t, c.Pos(), "nothing consumed when the stream is obviously too short")
}

func TestSparseListTruncatedMidEntry(t *testing.T) {
	data := bintest.New().U32(1, 2).F64(3.5).U32(4).Bytes()
	_, err := SparseList(binpkg.NewCursor(bytesOnly(data), -1), 2, 2)
	require.ErrorIs(t, err, binpkg.ErrTruncated)
}

type readerOnly struct{ r io.Reader }

func (r readerOnly) Read(p []byte) (int, error) { return r.r.Read(p) }

// bytesOnly hides the buffer length so the cursor cannot check sizes up front.
func bytesOnly(b []byte) io.Reader {
	return readerOnly{bytes.NewReader(b)}
}
