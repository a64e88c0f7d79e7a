package record

import (
	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-bloodflow/internal/preview"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// FlowField is the dense 3D+T velocity image.
type FlowField struct {
	Grid
	// Rotation is the rotational part of World, used to bring velocity
	// vectors into world space.
	Rotation, InvRotation *mat.Dense
	// Flow holds one world-space velocity vector per voxel and time
	// (gx*gy*gz*gt*3).
	Flow []float64
}

func (FlowField) Kind() Kind { return KindFlowField }

func (f FlowField) Describe(b *report.Builder) {
	f.Grid.describe(b)
	b.Matrix("rotation matrix", preview.Matrix(f.Rotation))
	b.Matrix("inverse rotation matrix", preview.Matrix(f.InvRotation))
	vectors(b, "flow vectors", f.Flow, 3)
}

func readFlowField(r *reader) FlowField {
	r.define(shape.NumDims, 4)
	f := FlowField{Grid: readGrid(r, shape.NumDims)}
	f.defineAxes(r, shape.GridX, shape.GridY, shape.GridZ, shape.GridT)
	f.Rotation = r.matrix("rotation matrix", 3, 3)
	f.InvRotation = r.matrix("inverse rotation matrix", 3, 3)
	f.Flow = r.floats("flow vectors", 3, shape.GridX, shape.GridY, shape.GridZ, shape.GridT)
	return f
}

// FlowImage2DT is a single-slice through-plane velocity image over time.
type FlowImage2DT struct {
	Grid
	Velocity []float64 // gx*gy*gt
}

func (FlowImage2DT) Kind() Kind { return KindFlowImage2DT }

func (f FlowImage2DT) Describe(b *report.Builder) {
	f.Grid.describe(b)
	b.Floats("velocity", f.Velocity)
}

func readFlowImage2DT(r *reader) FlowImage2DT {
	r.define(shape.NumDims, 3)
	f := FlowImage2DT{Grid: readGrid(r, shape.NumDims)}
	f.defineAxes(r, shape.GridX, shape.GridY, shape.GridT)
	f.Velocity = r.floats("velocity", 1, shape.GridX, shape.GridY, shape.GridT)
	return f
}
