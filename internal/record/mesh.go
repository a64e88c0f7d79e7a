package record

import (
	"github.com/robert-malhotra/go-bloodflow/internal/preview"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// Mesh is a triangulated vessel wall with wall shear stress (WSS) and
// oscillatory shear index (OSI) attributes.
//
// Temporal fields are laid out point-major: value (p, t) of a scalar field is
// at index p*NumTimes+t.
type Mesh struct {
	Points          []float64 // numPoints*3
	PointNormals    []float64 // numPoints*3
	Triangles       []uint32  // numTriangles*3
	TriangleNormals []float64 // numTriangles*3
	NumTimes        int

	WSS, WSSAxial, WSSCircumferential                   []float64 // numPoints*numTimes
	WSSVector, WSSVectorAxial, WSSVectorCircumferential []float64 // numPoints*numTimes*3

	MeanWSS, MeanWSSAxial, MeanWSSCircumferential []float64 // numPoints
	OSI, OSIAxial, OSICircumferential             []float64 // numPoints

	MeanWSSVector, MeanWSSVectorAxial, MeanWSSVectorCircumferential []float64 // numPoints*3
}

func (Mesh) Kind() Kind { return KindMesh }

// NumPoints returns the number of mesh vertices.
func (m Mesh) NumPoints() int { return len(m.Points) / 3 }

// NumTriangles returns the number of mesh faces.
func (m Mesh) NumTriangles() int { return len(m.Triangles) / 3 }

func (m Mesh) Describe(b *report.Builder) {
	b.Linef("num. points: %d", m.NumPoints())
	vectors(b, "points", m.Points, 3)
	vectors(b, "point normals", m.PointNormals, 3)

	b.Linef("num. triangles: %d", m.NumTriangles())
	b.Indent().Items(m.NumTriangles(), func(i int) string {
		return "triangle" + preview.Int(i) + ": " + preview.IntTuple(m.Triangles[i*3:i*3+3])
	})
	vectors(b, "triangle normals", m.TriangleNormals, 3)

	b.Linef("num. temporal positions: %d", m.NumTimes)
	b.Floats("wall shear stress", m.WSS)
	b.Floats("wall shear stress axial", m.WSSAxial)
	b.Floats("wall shear stress circumferential", m.WSSCircumferential)
	vectors(b, "wall shear stress vector", m.WSSVector, 3)
	vectors(b, "wall shear stress vector axial", m.WSSVectorAxial, 3)
	vectors(b, "wall shear stress vector circumferential", m.WSSVectorCircumferential, 3)
	b.Floats("mean wall shear stress", m.MeanWSS)
	b.Floats("mean wall shear stress axial", m.MeanWSSAxial)
	b.Floats("mean wall shear stress circumferential", m.MeanWSSCircumferential)
	b.Floats("oscillatory shear index", m.OSI)
	b.Floats("oscillatory shear index axial", m.OSIAxial)
	b.Floats("oscillatory shear index circumferential", m.OSICircumferential)
	vectors(b, "mean wall shear stress vector", m.MeanWSSVector, 3)
	vectors(b, "mean wall shear stress vector axial", m.MeanWSSVectorAxial, 3)
	vectors(b, "mean wall shear stress vector circumferential", m.MeanWSSVectorCircumferential, 3)
}

func readMesh(r *reader) Mesh {
	var m Mesh
	r.dim(shape.NumPoints)
	m.Points = r.floats("points", 3, shape.NumPoints)
	m.PointNormals = r.floats("point normals", 3, shape.NumPoints)

	r.dim(shape.NumTriangles)
	m.Triangles = r.uint32s("triangles", 3, shape.NumTriangles)
	m.TriangleNormals = r.floats("triangle normals", 3, shape.NumTriangles)

	m.NumTimes = r.dim(shape.NumTimes)
	m.WSS = r.floats("wss", 1, shape.NumPoints, shape.NumTimes)
	m.WSSAxial = r.floats("wss axial", 1, shape.NumPoints, shape.NumTimes)
	m.WSSCircumferential = r.floats("wss circumferential", 1, shape.NumPoints, shape.NumTimes)
	m.WSSVector = r.floats("wss vector", 3, shape.NumPoints, shape.NumTimes)
	m.WSSVectorAxial = r.floats("wss vector axial", 3, shape.NumPoints, shape.NumTimes)
	m.WSSVectorCircumferential = r.floats("wss vector circumferential", 3, shape.NumPoints, shape.NumTimes)

	m.MeanWSS = r.floats("mean wss", 1, shape.NumPoints)
	m.MeanWSSAxial = r.floats("mean wss axial", 1, shape.NumPoints)
	m.MeanWSSCircumferential = r.floats("mean wss circumferential", 1, shape.NumPoints)
	m.OSI = r.floats("osi", 1, shape.NumPoints)
	m.OSIAxial = r.floats("osi axial", 1, shape.NumPoints)
	m.OSICircumferential = r.floats("osi circumferential", 1, shape.NumPoints)

	m.MeanWSSVector = r.floats("mean wss vector", 3, shape.NumPoints)
	m.MeanWSSVectorAxial = r.floats("mean wss vector axial", 3, shape.NumPoints)
	m.MeanWSSVectorCircumferential = r.floats("mean wss vector circumferential", 3, shape.NumPoints)
	return m
}
