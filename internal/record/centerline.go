package record

import (
	"fmt"

	"github.com/robert-malhotra/go-bloodflow/internal/preview"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// Centerline is one vessel branch skeleton.
type Centerline struct {
	Points []float64 // numPoints*3
	Radius []float64 // numPoints, in mm
	// LCS holds the local coordinate system per point as X, Y, Z axes
	// (numPoints*9). Z follows the centerline tangent.
	LCS []float64
}

// NumPoints returns the number of centerline points.
func (c Centerline) NumPoints() int { return len(c.Radius) }

// Centerlines is the content of a vessel's centerlines file.
type Centerlines struct {
	Lines []Centerline
}

func (Centerlines) Kind() Kind { return KindCenterlines }

func (c Centerlines) Describe(b *report.Builder) {
	b.Linef("num. centerlines: %d", len(c.Lines))
	each(b, len(c.Lines), func(i int) {
		cl := c.Lines[i]
		b.Linef("num. points of centerline %d: %d", i, cl.NumPoints())
		in := b.Indent()
		in.Items(cl.NumPoints(), func(p int) string {
			return fmt.Sprintf("point%d: %s", p, preview.Tuple(cl.Points[p*3:p*3+3]))
		})
		in.Items(cl.NumPoints(), func(p int) string {
			return fmt.Sprintf("point%d vessel radius [mm]: %s", p, preview.Float(cl.Radius[p]))
		})
		in.Items(cl.NumPoints(), func(p int) string {
			l := cl.LCS[p*9 : p*9+9]
			return fmt.Sprintf("LCS at point%d: X=%s, Y=%s, Z=%s", p,
				preview.Tuple(l[0:3]), preview.Tuple(l[3:6]), preview.Tuple(l[6:9]))
		})
	})
}

func readCenterlines(r *reader) Centerlines {
	r.dim(shape.NumLines)
	return Centerlines{
		Lines: repeat(r, shape.NumLines, func(int) Centerline {
			r.dim(shape.NumPoints)
			return Centerline{
				Points: r.floats("centerline points", 3, shape.NumPoints),
				Radius: r.floats("centerline radius", 1, shape.NumPoints),
				LCS:    r.floats("centerline lcs", 9, shape.NumPoints),
			}
		}),
	}
}

// SeedTargetIDs are the mesh point ids a centerline extraction started from
// and ran to.
type SeedTargetIDs struct {
	SeedID    uint32
	TargetIDs []uint32
}

func (SeedTargetIDs) Kind() Kind { return KindSeedTargetIDs }

func (s SeedTargetIDs) Describe(b *report.Builder) {
	b.Linef("seed id: %d", s.SeedID)
	b.Linef("num. target ids: %d", len(s.TargetIDs))
	b.Linef("target ids: %s", preview.Ints(s.TargetIDs, b.Limit()))
}

func readSeedTargetIDs(r *reader) SeedTargetIDs {
	var s SeedTargetIDs
	s.SeedID = r.u32("seed id")
	r.dim(shape.NumTargets)
	s.TargetIDs = r.uint32s("target ids", 1, shape.NumTargets)
	return s
}

// Pathline is one particle trace through the flow field.
type Pathline struct {
	Points []float64 // numPoints*4: x, y, z, t

	RelativePressure     []float64
	CosAngleToCenterline []float64
	RotationDirection    []float64
	Velocity             []float64
	AxialVelocity        []float64

	Length float64
}

// NumPoints returns the number of trace points.
func (p Pathline) NumPoints() int { return len(p.Points) / 4 }

// Pathlines is the content of a vessel's pathlines file.
type Pathlines struct {
	Lines []Pathline
}

func (Pathlines) Kind() Kind { return KindPathlines }

func (p Pathlines) Describe(b *report.Builder) {
	b.Linef("num. pathlines: %d", len(p.Lines))
	each(b, len(p.Lines), func(i int) {
		pl := p.Lines[i]
		b.Linef("pathline %d:", i)
		in := b.Indent()
		in.Linef("num. points: %d", pl.NumPoints())
		vectors(in, "points (xyzt)", pl.Points, 4)
		in.Floats("relative pressure", pl.RelativePressure)
		in.Floats("cos angle to centerline", pl.CosAngleToCenterline)
		in.Floats("rotation direction", pl.RotationDirection)
		in.Floats("velocity", pl.Velocity)
		in.Floats("axial velocity", pl.AxialVelocity)
		in.Float("length", pl.Length)
	})
}

func readPathlines(r *reader) Pathlines {
	r.dim(shape.NumLines)
	return Pathlines{
		Lines: repeat(r, shape.NumLines, func(int) Pathline {
			r.dim(shape.NumPoints)
			return Pathline{
				Points:               r.floats("pathline points", 4, shape.NumPoints),
				RelativePressure:     r.floats("relative pressure", 1, shape.NumPoints),
				CosAngleToCenterline: r.floats("cos angle to centerline", 1, shape.NumPoints),
				RotationDirection:    r.floats("rotation direction", 1, shape.NumPoints),
				Velocity:             r.floats("velocity", 1, shape.NumPoints),
				AxialVelocity:        r.floats("axial velocity", 1, shape.NumPoints),
				Length:               r.f64("pathline length"),
			}
		}),
	}
}
