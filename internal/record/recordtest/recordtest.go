// Package recordtest writes synthetic pipeline files for tests.
package recordtest

import "github.com/robert-malhotra/go-bloodflow/internal/binary/bintest"

// Entry is one non-zero voxel of a sparse field.
type Entry struct {
	Index []uint32
	Value float64
}

// Identity appends an n×n identity matrix.
func Identity(b *bintest.Builder, n int) *bintest.Builder {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				b.F64(1)
			} else {
				b.F64(0)
			}
		}
	}
	return b
}

// GridHeader appends grid size, voxel scale and the four world matrices.
// If zeroed is set the matrices are all zero, otherwise identities.
func GridHeader(b *bintest.Builder, size []uint32, scale []float64, zeroed bool) *bintest.Builder {
	b.U32(size...).F64(scale...)
	if zeroed {
		return b.F64N(16+16+25+25, 0)
	}
	Identity(b, 4)
	Identity(b, 4)
	Identity(b, 5)
	return Identity(b, 5)
}

// SparseField appends an N-dimensional sparse field with zeroed matrices and
// unit voxel scale.
func SparseField(b *bintest.Builder, size []uint32, entries ...Entry) *bintest.Builder {
	scale := make([]float64, len(size))
	for i := range scale {
		scale[i] = 1
	}
	b.U32(uint32(len(size)))
	GridHeader(b, size, scale, true)
	b.U32(uint32(len(entries)))
	for _, e := range entries {
		b.U32(e.Index...).F64(e.Value)
	}
	return b
}

// Mesh appends a mesh whose arrays hold ascending values.
func Mesh(b *bintest.Builder, numPoints, numTriangles, numTimes int) *bintest.Builder {
	b.U32(uint32(numPoints)).Seq(numPoints*3, 0).Seq(numPoints*3, 100)
	b.U32(uint32(numTriangles))
	for i := 0; i < numTriangles*3; i++ {
		b.U32(uint32(i % max(numPoints, 1)))
	}
	b.Seq(numTriangles*3, 200)
	b.U32(uint32(numTimes))
	pt := numPoints * numTimes
	b.Seq(pt, 1).Seq(pt, 2).Seq(pt, 3)
	b.Seq(pt*3, 4).Seq(pt*3, 5).Seq(pt*3, 6)
	for i := 0; i < 6; i++ {
		b.Seq(numPoints, float64(10+i))
	}
	for i := 0; i < 3; i++ {
		b.Seq(numPoints*3, float64(20+i))
	}
	return b
}

// Centerlines appends one centerline per entry of pointCounts.
func Centerlines(b *bintest.Builder, pointCounts ...int) *bintest.Builder {
	b.U32(uint32(len(pointCounts)))
	for _, n := range pointCounts {
		b.U32(uint32(n)).Seq(n*3, 0).F64N(n, 2.5).F64N(n*9, 0)
	}
	return b
}

// MeasuringPlane appends one plane of gx×gy pixels over gt time steps with
// numSamples uncertainty samples. Every statistic is set to stat.
func MeasuringPlane(b *bintest.Builder, vesselID uint8, gx, gy, gt, numSamples int, stat float64) *bintest.Builder {
	b.U8(vesselID).U32(uint32(gx), uint32(gy), uint32(gt))
	b.F64(1, 1, 40)
	b.F64(0, 0, 0).F64(1, 0, 0).F64(0, 1, 0).F64(0, 0, 1)
	b.F64(20)
	b.Seq(gx*gy*gt*3, 0)
	for i := 0; i < gx*gy; i++ {
		b.U8(uint8(i % 2))
	}
	b.Seq(gx*gy*gt, 0).Seq(gx*gy*gt, 0)
	b.F64N(22, stat)
	b.F64N(7*gt, stat)
	b.F64N(18, stat)
	b.F64N(gt*3, 0)
	b.U32(uint32(numSamples))
	return b.F64N(5*numSamples, stat)
}

// Venc appends the three 3D+T vencs and the given 2D+T vencs.
func Venc(b *bintest.Builder, flow3DT [3]float64, flow2DT ...float64) *bintest.Builder {
	for i, v := range flow3DT {
		b.U16(uint16(i + 1)).F64(v)
	}
	b.U8(uint8(len(flow2DT)))
	for i, v := range flow2DT {
		b.U16(uint16(10 + i)).F64(v)
	}
	return b
}
