package record

import (
	"github.com/robert-malhotra/go-bloodflow/internal/preview"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// Landmark is the anatomical position of a landmark measuring plane.
type Landmark uint32

// Known landmarks. Any other stored value is kept as-is and reported as
// LandmarkNone.
const (
	LandmarkNone Landmark = iota
	LandmarkAboveAorticValve
	LandmarkMidAscendingAorta
	LandmarkBeforeBrachiocephalicArtery
	LandmarkBetweenLeftCommonCarotidAndLeftSubclavianArtery
	LandmarkDistalToLeftSubclavianArtery
	LandmarkMidDescendingAorta
	LandmarkAbovePulmonaryValve
	LandmarkBeforePulmonaryJunction
	LandmarkLeftPulmonaryArteryBegin
	LandmarkRightPulmonaryArteryBegin
)

var landmarkNames = [...]string{
	LandmarkNone:                        "None",
	LandmarkAboveAorticValve:            "Aorta_AboveAorticValve",
	LandmarkMidAscendingAorta:           "Aorta_MidAscendingAorta",
	LandmarkBeforeBrachiocephalicArtery: "Aorta_BeforeBrachiocephalicArtery",
	LandmarkBetweenLeftCommonCarotidAndLeftSubclavianArtery: "Aorta_BetweenLeftCommonCarotid_and_LeftSubclavianArtery",
	LandmarkDistalToLeftSubclavianArtery:                    "Aorta_DistalToLeftSubclavianArtery",
	LandmarkMidDescendingAorta:                              "Aorta_MidDescendingAorta",
	LandmarkAbovePulmonaryValve:                             "PulmonaryArtery_AbovePulmonaryValve",
	LandmarkBeforePulmonaryJunction:                         "PulmonaryArtery_BeforeJunction",
	LandmarkLeftPulmonaryArteryBegin:                        "PulmonaryArtery_LeftPulmonaryArtery_Begin",
	LandmarkRightPulmonaryArteryBegin:                       "PulmonaryArtery_RightPulmonaryArtery_Begin",
}

// Known reports whether l is one of the defined landmarks.
func (l Landmark) Known() bool {
	return l > LandmarkNone && int(l) < len(landmarkNames)
}

func (l Landmark) String() string {
	if !l.Known() {
		return landmarkNames[LandmarkNone]
	}
	return "LandMarkSemantic_" + landmarkNames[l]
}

var (
	planeScalars = scalars(
		"min flow rate per time",
		"max flow rate per time",
		"mean flow rate per time",
		"median flow rate per time",
		"forward flow volume",
		"backward flow volume",
		"net flow volume",
		"percentaged back flow volume",
		"cardiac output",
		"max velocity",
		"min velocity",
		"mean velocity",
		"median velocity",
		"min velocity axial",
		"max velocity axial",
		"mean velocity axial",
		"median velocity axial",
		"min velocity circumferential",
		"max velocity circumferential",
		"mean velocity circumferential",
		"median velocity circumferential",
		"area mm2",
	)
	planeSeries = series(
		"flow rate per time",
		"areal mean velocity per time",
		"areal mean velocity axial per time",
		"areal mean velocity circumferential per time",
		"flow jet angle per time",
		"flow jet displacement per time",
		"flow jet high velocity area percent per time",
	)
	planeJetScalars = scalars(
		"max flow jet angle per time",
		"min flow jet angle per time",
		"mean flow jet angle per time",
		"median flow jet angle per time",
		"flow jet angle at fastest time",
		"mean flow jet angle velocity weighted",
		"min flow jet displacement per time",
		"max flow jet displacement per time",
		"mean flow jet displacement per time",
		"median flow jet displacement per time",
		"flow jet displacement at fastest time",
		"mean flow jet displacement velocity weighted",
		"min flow jet high velocity area percent per time",
		"max flow jet high velocity area percent per time",
		"mean flow jet high velocity area percent per time",
		"median flow jet high velocity area percent per time",
		"flow jet high velocity at fastest time",
		"mean flow jet high velocity velocity weighted",
	)
	planeSamples = series(
		"samples net flow volume",
		"samples forward flow volume",
		"samples backward flow volume",
		"samples percentaged backward flow volume",
		"samples cardiac output",
	)
)

// MeasuringPlane is a 2D+T cross-section through a vessel.
type MeasuringPlane struct {
	VesselID   uint8
	GridSize   []uint32  // x, y, t
	VoxelScale []float64 // x, y in mm; t in ms
	Center     []float64
	AxisX      []float64
	AxisY      []float64
	AxisZ      []float64 // plane normal
	Diameter   float64

	Flow                    []float64 // gx*gy*gt*3
	Mask                    []uint8   // gx*gy
	AxialVelocity           []float64 // gx*gy*gt
	CircumferentialVelocity []float64 // gx*gy*gt

	Scalars      []Stat
	Series       []Stat
	JetScalars   []Stat
	JetPositions []float64 // gt*3
	NumSamples   int
	SampleSeries []Stat // uncertainty samples, numSamples each
}

// Stat returns the statistic called name from any of the plane's tables.
func (p MeasuringPlane) Stat(name string) (Stat, bool) {
	for _, table := range [][]Stat{p.Scalars, p.Series, p.JetScalars, p.SampleSeries} {
		for _, s := range table {
			if s.Name == name {
				return s, true
			}
		}
	}
	return Stat{}, false
}

func (p MeasuringPlane) describe(b *report.Builder) {
	b.Linef("vessel id: %d", p.VesselID)
	b.Field("grid size", preview.IntTuple(p.GridSize))
	if len(p.VoxelScale) == 3 {
		b.Linef("voxel scale: %s x %s [mm] / %s [ms]",
			preview.Float(p.VoxelScale[0]), preview.Float(p.VoxelScale[1]), preview.Float(p.VoxelScale[2]))
	}
	b.Field("center", preview.Tuple(p.Center))
	b.Field("LCS X", preview.Tuple(p.AxisX))
	b.Field("LCS Y", preview.Tuple(p.AxisY))
	b.Field("LCS Z", preview.Tuple(p.AxisZ))
	b.Float("vessel diameter", p.Diameter)
	vectors(b, "flow vectors", p.Flow, 3)
	b.Linef("segmentation (%d): %s", len(p.Mask), preview.Ints(p.Mask, b.Limit()))
	b.Floats("axial velocity", p.AxialVelocity)
	b.Floats("circumferential velocity", p.CircumferentialVelocity)
	describeStats(b, p.Scalars)
	describeStats(b, p.Series)
	describeStats(b, p.JetScalars)
	vectors(b, "flow jet position per time", p.JetPositions, 3)
	b.Linef("num. samples: %d", p.NumSamples)
	describeStats(b, p.SampleSeries)
}

// readMeasuringPlane reads one plane. It defines the plane's grid and sample
// dimensions in r's current scope, so callers run it inside a fresh scope.
func readMeasuringPlane(r *reader) MeasuringPlane {
	var p MeasuringPlane
	p.VesselID = r.u8("vessel id")
	p.GridSize = r.uint32s("plane grid size", 3)
	if r.ok() {
		r.define(shape.GridX, int(p.GridSize[0]))
		r.define(shape.GridY, int(p.GridSize[1]))
		r.define(shape.GridT, int(p.GridSize[2]))
	}
	p.VoxelScale = r.floats("plane voxel scale", 3)
	p.Center = r.vec3("plane center")
	p.AxisX = r.vec3("plane x axis")
	p.AxisY = r.vec3("plane y axis")
	p.AxisZ = r.vec3("plane z axis")
	p.Diameter = r.f64("vessel diameter")

	p.Flow = r.floats("plane flow vectors", 3, shape.GridX, shape.GridY, shape.GridT)
	p.Mask = r.uint8s("plane segmentation", 1, shape.GridX, shape.GridY)
	p.AxialVelocity = r.floats("plane axial velocity", 1, shape.GridX, shape.GridY, shape.GridT)
	p.CircumferentialVelocity = r.floats("plane circumferential velocity", 1, shape.GridX, shape.GridY, shape.GridT)

	p.Scalars = readStats(r, planeScalars, shape.GridT)
	p.Series = readStats(r, planeSeries, shape.GridT)
	p.JetScalars = readStats(r, planeJetScalars, shape.GridT)
	p.JetPositions = r.floats("flow jet positions", 3, shape.GridT)

	p.NumSamples = r.dim(shape.NumSamples)
	p.SampleSeries = readStats(r, planeSamples, shape.NumSamples)
	return p
}

// LandmarkPlane is a measuring plane placed at an anatomical landmark.
type LandmarkPlane struct {
	Semantic Landmark
	MeasuringPlane
}

// MeasuringPlanes is the content of a vessel's measuring_planes file.
type MeasuringPlanes struct {
	Planes    []MeasuringPlane
	Landmarks []LandmarkPlane
}

func (MeasuringPlanes) Kind() Kind { return KindMeasuringPlanes }

func (m MeasuringPlanes) Describe(b *report.Builder) {
	b.Linef("num. measuring planes: %d", len(m.Planes))
	b.Linef("num. land mark measuring planes: %d", len(m.Landmarks))
	each(b, len(m.Planes), func(i int) {
		b.Linef("measuring plane %d:", i)
		m.Planes[i].describe(b.Indent())
	})
	each(b, len(m.Landmarks), func(i int) {
		lp := m.Landmarks[i]
		b.Linef("land mark measuring plane %d:", i)
		in := b.Indent()
		in.Linef("semantic: %d (%s)", uint32(lp.Semantic), lp.Semantic)
		lp.describe(in)
	})
}

func readMeasuringPlanes(r *reader) MeasuringPlanes {
	r.dim(shape.NumPlanes)
	r.dim(shape.NumLandmarks)
	var m MeasuringPlanes
	m.Planes = repeat(r, shape.NumPlanes, func(int) MeasuringPlane {
		return readMeasuringPlane(r)
	})
	m.Landmarks = repeat(r, shape.NumLandmarks, func(int) LandmarkPlane {
		sem := Landmark(r.u32("land mark semantic"))
		return LandmarkPlane{Semantic: sem, MeasuringPlane: readMeasuringPlane(r)}
	})
	return m
}
