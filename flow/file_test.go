package flow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/robert-malhotra/go-bloodflow/internal/binary/bintest"
	"github.com/robert-malhotra/go-bloodflow/internal/record"
	"github.com/robert-malhotra/go-bloodflow/internal/record/recordtest"
)

func sparseFile(t *testing.T, path string, n int) *bintest.Builder {
	t.Helper()
	var entries []recordtest.Entry
	for i := 0; i < n; i++ {
		entries = append(entries, recordtest.Entry{Index: []uint32{uint32(i), 0}, Value: float64(i)})
	}
	b := recordtest.SparseField(bintest.New(), []uint32{8, 8}, entries...)
	require.NoError(t, b.WriteFile(path))
	return b
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pressuremap")
	b := sparseFile(t, path, 2)

	res, err := ReadFile(path, record.KindSparseField)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.False(t, res.Missing())
	assert.False(t, res.Failed())
	assert.Equal(t, int64(b.Len()), res.Size)
	require.IsType(t, record.SparseField{}, res.Record)

	assert.Contains(t, res.Text, "- reading sparse-field (path \""+path+"\", ")
	assert.Contains(t, res.Text, "\t- num. non-zero values: 2\n")
	assert.Contains(t, res.Text, "\t\t- 1: [1, 0] = 1.00\n")
}

func TestReadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh")

	res, err := ReadFile(path, record.KindMesh)
	require.ErrorIs(t, err, ErrMissingFile)
	assert.True(t, res.Missing())
	assert.False(t, res.Failed())
	assert.False(t, res.OK)
	assert.Nil(t, res.Record)
	assert.Equal(t, "- no mesh (path \""+path+"\")\n", res.Text)
}

func TestReadFileTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ivsd")
	b := recordtest.SparseField(bintest.New(), []uint32{4, 4},
		recordtest.Entry{Index: []uint32{1, 2}, Value: 3.5})
	require.NoError(t, os.WriteFile(path, b.Truncated(5), 0o644))

	res, err := ReadFile(path, record.KindSparseField)
	require.ErrorIs(t, err, ErrTruncated)
	assert.True(t, res.Failed())
	assert.False(t, res.OK)
	assert.Nil(t, res.Record)
	assert.Contains(t, res.Text, "\tFAILED! ")
	assert.NotContains(t, res.Text, "num. non-zero values")
	assert.True(t, hard(err))
}

func TestReadFileDirectory(t *testing.T) {
	path := t.TempDir()

	res, err := ReadFile(path, record.KindVenc)
	require.ErrorIs(t, err, ErrOpenFailure)
	assert.True(t, res.Failed())
	assert.False(t, hard(err))
	assert.Contains(t, res.Text, "\tFAILED! Could not open file!\n")
}

func TestReadFileUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venc")
	require.NoError(t, recordtest.Venc(bintest.New(), [3]float64{1, 1, 1}).WriteFile(path))

	_, err := ReadFile(path, record.KindInvalid)
	require.ErrorIs(t, err, record.ErrUnknownKind)
}

func TestReadFilePreviewLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tke")
	sparseFile(t, path, 6)

	res, err := ReadFile(path, record.KindSparseField)
	require.NoError(t, err)
	assert.NotContains(t, res.Text, "3: [3, 0]")

	res, err = ReadFile(path, record.KindSparseField, WithPreviewLimit(5))
	require.NoError(t, err)
	assert.Contains(t, res.Text, "\t\t- 4: [4, 0] = 4.00\n\t\t- ...\n")
	assert.NotContains(t, res.Text, "5: [5, 0]")

	res, err = ReadFile(path, record.KindSparseField, WithPreviewLimit(0))
	require.NoError(t, err)
	assert.Contains(t, res.Text, "\t\t- 2: [2, 0] = 2.00\n\t\t- ...\n")
}

func TestReadFileLogs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "venc")
	b := recordtest.Venc(bintest.New(), [3]float64{1, 1, 1})
	require.NoError(t, b.WriteFile(path))

	core, logs := observer.New(zapcore.DebugLevel)
	_, err := ReadFile(path, record.KindVenc, WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("Read file").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, path, fields["path"])
	assert.Equal(t, "venc", fields["kind"])
	assert.Equal(t, int64(b.Len()), fields["bytes"])

	_, err = ReadFile(filepath.Join(dir, "missing"), record.KindVenc, WithLogger(zap.New(core)))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("File not found").Len())
}
