package record

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-bloodflow/internal/array"
	"github.com/robert-malhotra/go-bloodflow/internal/preview"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// Grid is the geometry header shared by all image-like files.
type Grid struct {
	Size       []uint32
	VoxelScale []float64

	// World maps grid to scanner coordinates; WorldTime additionally carries
	// time in its 4th row and column.
	World, InvWorld         *mat.Dense
	WorldTime, InvWorldTime *mat.Dense
}

// readGrid reads grid size and voxel scale sized by rankDim, then the four
// world matrices.
func readGrid(r *reader, rankDim string) Grid {
	return Grid{
		Size:         r.uint32s("grid size", 1, rankDim),
		VoxelScale:   r.floats("voxel scale", 1, rankDim),
		World:        r.matrix("world matrix", 4, 4),
		InvWorld:     r.matrix("inverse world matrix", 4, 4),
		WorldTime:    r.matrix("world matrix with time", 5, 5),
		InvWorldTime: r.matrix("inverse world matrix with time", 5, 5),
	}
}

// defineAxes defines one dimension per grid axis, e.g. gridSizeX..gridSizeT.
func (g Grid) defineAxes(r *reader, names ...string) {
	for i, name := range names {
		if i < len(g.Size) {
			r.define(name, int(g.Size[i]))
		}
	}
}

func (g Grid) describe(b *report.Builder) {
	b.Field("grid size", preview.Dims(g.Size))
	b.Field("voxel scale", preview.Scales(g.VoxelScale))
	b.Matrix("world matrix", preview.Matrix(g.World))
	b.Matrix("inverse world matrix", preview.Matrix(g.InvWorld))
	b.Matrix("world matrix with time", preview.Matrix(g.WorldTime))
	b.Matrix("inverse world matrix with time", preview.Matrix(g.InvWorldTime))
}

// SparseField is an N-dimensional scalar image storing only non-zero voxels.
type SparseField struct {
	Grid
	Entries []array.SparseEntry
}

func (SparseField) Kind() Kind { return KindSparseField }

// NumDims returns the rank of the field.
func (f SparseField) NumDims() int { return len(f.Size) }

func (f SparseField) Describe(b *report.Builder) {
	b.Linef("num. dimensions: %d", f.NumDims())
	f.Grid.describe(b)
	b.Linef("num. non-zero values: %d", len(f.Entries))
	b.Indent().Items(len(f.Entries), func(i int) string {
		e := f.Entries[i]
		return fmt.Sprintf("%d: %s = %s", i, preview.IntTuple(e.Index), preview.Float(e.Value))
	})
}

func readSparseField(r *reader) SparseField {
	r.dim(shape.NumDims)
	f := SparseField{Grid: readGrid(r, shape.NumDims)}
	r.dim(shape.NumNonZero)
	f.Entries = r.sparse("sparse entries", shape.NumNonZero, shape.NumDims)
	return f
}

// SectionSegmentation holds one sparse segmentation per vessel section.
type SectionSegmentation struct {
	Sections []SparseField
}

func (SectionSegmentation) Kind() Kind { return KindSectionSegmentation }

func (s SectionSegmentation) Describe(b *report.Builder) {
	b.Linef("num. sections: %d", len(s.Sections))
	each(b, len(s.Sections), func(i int) {
		b.Linef("section %d:", i)
		s.Sections[i].Describe(b.Indent())
	})
}

func readSectionSegmentation(r *reader) SectionSegmentation {
	r.dim(shape.NumSections)
	return SectionSegmentation{
		Sections: repeat(r, shape.NumSections, func(int) SparseField {
			return readSparseField(r)
		}),
	}
}
