package record

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-bloodflow/internal/array"
	"github.com/robert-malhotra/go-bloodflow/internal/binary"
	"github.com/robert-malhotra/go-bloodflow/internal/binary/bintest"
	"github.com/robert-malhotra/go-bloodflow/internal/record/recordtest"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// decodeAll decodes data as kind and requires every byte to be consumed.
func decodeAll(t *testing.T, kind Kind, data []byte) Record {
	t.Helper()
	c := binary.FromBytes(data)
	rec, err := Decode(kind, c)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, kind, rec.Kind())
	assert.Zero(t, c.Remaining(), "trailing bytes after %v", kind)
	return rec
}

func describe(rec Record) string {
	b := report.New(3)
	rec.Describe(b)
	return b.String()
}

func TestSparseFieldScenario(t *testing.T) {
	data := recordtest.SparseField(bintest.New(), []uint32{4, 4},
		recordtest.Entry{Index: []uint32{1, 2}, Value: 3.5},
		recordtest.Entry{Index: []uint32{0, 0}, Value: -1.25},
	).Bytes()

	f := decodeAll(t, KindSparseField, data).(SparseField)
	assert.Equal(t, 2, f.NumDims())
	assert.Equal(t, []uint32{4, 4}, f.Size)
	assert.Equal(t, []float64{1, 1}, f.VoxelScale)
	assert.True(t, mat.Equal(f.WorldTime, mat.NewDense(5, 5, nil)))

	want := []array.SparseEntry{
		{Index: []uint32{1, 2}, Value: 3.5},
		{Index: []uint32{0, 0}, Value: -1.25},
	}
	if diff := cmp.Diff(want, f.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	text := describe(f)
	assert.Contains(t, text, "- num. dimensions: 2\n")
	assert.Contains(t, text, "- grid size: 4 x 4\n")
	assert.Contains(t, text, "- num. non-zero values: 2\n")
	assert.Contains(t, text, "\t- 0: [1, 2] = 3.50\n\t- 1: [0, 0] = -1.25\n")
	assert.NotContains(t, text, "...")
}

func TestSparseFieldPreviewBound(t *testing.T) {
	var entries []recordtest.Entry
	for i := 0; i < 5; i++ {
		entries = append(entries, recordtest.Entry{Index: []uint32{uint32(i)}, Value: float64(i)})
	}
	f := decodeAll(t, KindSparseField, recordtest.SparseField(bintest.New(), []uint32{5}, entries...).Bytes())

	text := describe(f)
	assert.Contains(t, text, "\t- 2: [2] = 2.00\n\t- ...\n")
	assert.NotContains(t, text, "3: [3]")
	assert.Equal(t, text, describe(f), "describe must be idempotent")
	assert.Len(t, f.(SparseField).Entries, 5)
}

func TestSparseFieldNoEntries(t *testing.T) {
	data := recordtest.SparseField(bintest.New(), []uint32{2, 2, 2}).Bytes()
	f := decodeAll(t, KindSparseField, data).(SparseField)
	assert.Empty(t, f.Entries)
	assert.NotContains(t, describe(f), "...")
}

func TestSparseFieldTruncated(t *testing.T) {
	b := recordtest.SparseField(bintest.New(), []uint32{4, 4},
		recordtest.Entry{Index: []uint32{1, 2}, Value: 3.5},
		recordtest.Entry{Index: []uint32{0, 0}, Value: -1.25},
	)
	rec, err := Decode(KindSparseField, binary.FromBytes(b.Truncated(3)))
	require.ErrorIs(t, err, binary.ErrTruncated)
	assert.Nil(t, rec)
}

func TestSectionSegmentation(t *testing.T) {
	b := bintest.New().U32(2)
	recordtest.SparseField(b, []uint32{3, 3}, recordtest.Entry{Index: []uint32{1, 1}, Value: 1})
	recordtest.SparseField(b, []uint32{2, 2, 2})

	s := decodeAll(t, KindSectionSegmentation, b.Bytes()).(SectionSegmentation)
	require.Len(t, s.Sections, 2)
	assert.Equal(t, 2, s.Sections[0].NumDims())
	assert.Equal(t, 3, s.Sections[1].NumDims())
	assert.Len(t, s.Sections[0].Entries, 1)
	assert.Contains(t, describe(s), "- section 1:\n\t- num. dimensions: 3\n")
}

func TestMeshEmpty(t *testing.T) {
	data := recordtest.Mesh(bintest.New(), 0, 0, 7).Bytes()
	require.Len(t, data, 12, "only the three counts")

	m := decodeAll(t, KindMesh, data).(Mesh)
	assert.Zero(t, m.NumPoints())
	assert.Zero(t, m.NumTriangles())
	assert.Equal(t, 7, m.NumTimes)
	for _, field := range [][]float64{
		m.Points, m.PointNormals, m.TriangleNormals,
		m.WSS, m.WSSAxial, m.WSSCircumferential,
		m.WSSVector, m.WSSVectorAxial, m.WSSVectorCircumferential,
		m.MeanWSS, m.OSI, m.MeanWSSVectorCircumferential,
	} {
		assert.Empty(t, field)
	}
	assert.Empty(t, m.Triangles)
	assert.Contains(t, describe(m), "- num. temporal positions: 7\n")
}

func TestMesh(t *testing.T) {
	data := recordtest.Mesh(bintest.New(), 4, 2, 3).Bytes()
	m := decodeAll(t, KindMesh, data).(Mesh)

	assert.Equal(t, 4, m.NumPoints())
	assert.Equal(t, 2, m.NumTriangles())
	assert.Len(t, m.WSS, 12)
	assert.Len(t, m.WSSVectorAxial, 36)
	assert.Len(t, m.OSICircumferential, 4)
	assert.Len(t, m.MeanWSSVector, 12)
	assert.Equal(t, []float64{100, 101, 102}, m.PointNormals[:3])
	assert.Equal(t, []uint32{0, 1, 2, 3, 0, 1}, m.Triangles)
	assert.Equal(t, 15.0, m.OSICircumferential[0])

	text := describe(m)
	assert.Contains(t, text, "- num. points: 4\n")
	assert.Contains(t, text, "\t- triangle1: [3, 0, 1]\n")
	assert.Contains(t, text, "- wall shear stress (12): 1.00, 2.00, 3.00, ...\n")
}

func TestMeshTruncatedAnywhere(t *testing.T) {
	b := recordtest.Mesh(bintest.New(), 2, 1, 2)
	for cut := 1; cut <= b.Len(); cut += 7 {
		rec, err := Decode(KindMesh, binary.FromBytes(b.Truncated(cut)))
		require.ErrorIs(t, err, binary.ErrTruncated, "cut %d", cut)
		assert.Nil(t, rec)
	}
}

func TestCenterlines(t *testing.T) {
	data := recordtest.Centerlines(bintest.New(), 2, 5).Bytes()
	c := decodeAll(t, KindCenterlines, data).(Centerlines)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 2, c.Lines[0].NumPoints())
	assert.Equal(t, 5, c.Lines[1].NumPoints())
	assert.Len(t, c.Lines[1].LCS, 45)

	text := describe(c)
	assert.Contains(t, text, "- num. points of centerline 1: 5\n")
	assert.Contains(t, text, "\t- point0 vessel radius [mm]: 2.50\n")
	assert.Contains(t, text, "\t- LCS at point0: X=[0.00, 0.00, 0.00], ")
}

func TestCenterlinesTruncatedInSecondLine(t *testing.T) {
	b := recordtest.Centerlines(bintest.New(), 1, 3)
	rec, err := Decode(KindCenterlines, binary.FromBytes(b.Truncated(8)))
	require.ErrorIs(t, err, binary.ErrTruncated)
	assert.Nil(t, rec)
	assert.Contains(t, err.Error(), "centerline lcs")
}

func TestSeedTargetIDs(t *testing.T) {
	data := bintest.New().U32(9, 4, 1, 2, 3, 4).Bytes()
	s := decodeAll(t, KindSeedTargetIDs, data).(SeedTargetIDs)
	assert.Equal(t, uint32(9), s.SeedID)
	assert.Equal(t, []uint32{1, 2, 3, 4}, s.TargetIDs)
	assert.Contains(t, describe(s), "- target ids: 1, 2, 3, ...\n")
}

func TestPathlines(t *testing.T) {
	b := bintest.New().U32(1)
	b.U32(2).Seq(8, 0)
	for i := 0; i < 5; i++ {
		b.F64N(2, float64(i))
	}
	b.F64(42.5)

	p := decodeAll(t, KindPathlines, b.Bytes()).(Pathlines)
	require.Len(t, p.Lines, 1)
	pl := p.Lines[0]
	assert.Equal(t, 2, pl.NumPoints())
	assert.Equal(t, []float64{4, 4}, pl.AxialVelocity)
	assert.Equal(t, 42.5, pl.Length)
	assert.Contains(t, describe(p), "\t- length: 42.50\n")
}

func TestFlowField(t *testing.T) {
	b := bintest.New()
	recordtest.GridHeader(b, []uint32{2, 1, 1, 3}, []float64{1.5, 1.5, 2, 40}, false)
	recordtest.Identity(b, 3)
	recordtest.Identity(b, 3)
	b.Seq(2*1*1*3*3, 0)

	f := decodeAll(t, KindFlowField, b.Bytes()).(FlowField)
	assert.Len(t, f.Flow, 18)
	assert.True(t, mat.Equal(f.Rotation, mat.NewDiagDense(3, []float64{1, 1, 1})))
	assert.Equal(t, 1.0, f.World.At(3, 3))

	text := describe(f)
	assert.Contains(t, text, "- grid size: 2 x 1 x 1 x 3\n")
	assert.Contains(t, text, "- voxel scale: 1.50 x 1.50 x 2.00 x 40.00\n")
	assert.Contains(t, text, "- rotation matrix:\n\t1.00 0.00 0.00\n")
	assert.Contains(t, text, "- flow vectors (6):\n")
}

func TestFlowImage2DT(t *testing.T) {
	b := bintest.New()
	recordtest.GridHeader(b, []uint32{2, 2, 2}, []float64{1, 1, 30}, true)
	b.Seq(8, 0)

	f := decodeAll(t, KindFlowImage2DT, b.Bytes()).(FlowImage2DT)
	assert.Len(t, f.Velocity, 8)
	assert.Contains(t, describe(f), "- velocity (8): 0.00, 1.00, 2.00, ...\n")
}

func TestMeasuringPlanes(t *testing.T) {
	b := bintest.New().U32(1, 2)
	recordtest.MeasuringPlane(b, 3, 2, 2, 4, 5, 1.5)
	b.U32(uint32(LandmarkMidDescendingAorta))
	recordtest.MeasuringPlane(b, 3, 1, 1, 2, 0, 2)
	b.U32(42)
	recordtest.MeasuringPlane(b, 4, 3, 2, 1, 1, 0)

	m := decodeAll(t, KindMeasuringPlanes, b.Bytes()).(MeasuringPlanes)
	require.Len(t, m.Planes, 1)
	require.Len(t, m.Landmarks, 2)

	p := m.Planes[0]
	assert.Equal(t, uint8(3), p.VesselID)
	assert.Len(t, p.Flow, 2*2*4*3)
	assert.Equal(t, []uint8{0, 1, 0, 1}, p.Mask)
	assert.Len(t, p.Scalars, 22)
	assert.Len(t, p.JetScalars, 18)
	assert.Equal(t, 5, p.NumSamples)
	s, ok := p.Stat("samples cardiac output")
	require.True(t, ok)
	assert.Equal(t, []float64{1.5, 1.5, 1.5, 1.5, 1.5}, s.Values)
	s, ok = p.Stat("area mm2")
	require.True(t, ok)
	assert.Equal(t, 1.5, s.Value())

	assert.Equal(t, LandmarkMidDescendingAorta, m.Landmarks[0].Semantic)
	assert.Empty(t, m.Landmarks[0].SampleSeries[0].Values)
	assert.Equal(t, Landmark(42), m.Landmarks[1].Semantic)
	assert.False(t, m.Landmarks[1].Semantic.Known())
	assert.Equal(t, uint8(4), m.Landmarks[1].VesselID)

	text := describe(m)
	assert.Contains(t, text, "- land mark measuring plane 0:\n\t- semantic: 6 (LandMarkSemantic_Aorta_MidDescendingAorta)\n")
	assert.Contains(t, text, "- land mark measuring plane 1:\n\t- semantic: 42 (None)\n")
	assert.NotContains(t, text, "semantic: 0 ")
	assert.Contains(t, text, "\t- voxel scale: 1.00 x 1.00 [mm] / 40.00 [ms]\n")
}

func TestLandmarkString(t *testing.T) {
	assert.Equal(t, "LandMarkSemantic_Aorta_AboveAorticValve", LandmarkAboveAorticValve.String())
	assert.Equal(t, "LandMarkSemantic_PulmonaryArtery_RightPulmonaryArtery_Begin", LandmarkRightPulmonaryArteryBegin.String())
	assert.Equal(t, "None", LandmarkNone.String())
	assert.Equal(t, "None", Landmark(11).String())
}

func TestFlowJets(t *testing.T) {
	b := bintest.New().U32(1)
	b.U32(2, 1) // numPoints, numTimes
	for p := 0; p < 2; p++ {
		b.F64(1, 2, 3).F64(0.8).F64(1, 2, 3).F64(1, 0, 0).F64(2).F64(0, 1, 0).F64(1)
		b.F64(0, 0, float64(p)).F64(6).F64(1, 0, 0).F64(0, 1, 0)
	}

	f := decodeAll(t, KindFlowJets, b.Bytes()).(FlowJets)
	require.Len(t, f.Jets, 1)
	jet := f.Jets[0]
	assert.Equal(t, 1, jet.NumTimes)
	require.Len(t, jet.Sections, 2)
	assert.Equal(t, 0.8, jet.Sections[1].Samples[0].PeakVelocity)
	assert.Equal(t, []float64{0, 0, 1}, jet.Sections[1].VesselCenter)
	assert.Contains(t, describe(f), "t0: peak [1.00, 2.00, 3.00] = 0.80")
}

func TestGraphcutIDs(t *testing.T) {
	data := bintest.New().U32(2, 0).U32(1, 2, 3, 4, 5, 6).Bytes()
	g := decodeAll(t, KindGraphcutIDs, data).(GraphcutIDs)
	assert.Equal(t, []uint32{1, 2, 3, 4, 5, 6}, g.Inside)
	assert.Empty(t, g.Outside)

	text := describe(g)
	assert.Contains(t, text, "- inside grid pos 1: [4, 5, 6]\n")
	assert.Contains(t, text, "- no outside ids specified\n")
}

func TestDicomTags(t *testing.T) {
	b := bintest.New().U16(1)
	b.U16(7, 4, 128, 96, 30, 20).U32(600).F64(1.5, 1.5, 2.5, 40)
	b.String("DOE^JANE").String("P01").String("F").U8(54).F64(61.5)
	for _, s := range []string{"19700101", "fl3d", "", "HFS", "study", "series", "1.2.3", "1.2.4", "flow", "MR"} {
		b.String(s)
	}
	b.U8(1).U32(4095).U8(16, 12, 11)
	b.String("20240101").String("Clinic")
	b.F64(1, 0, 0).F64(0, 1, 0)
	recordtest.Identity(b, 4)

	d := decodeAll(t, KindDicomTags, b.Bytes()).(DicomTags)
	require.Len(t, d.Images, 1)
	img := d.Images[0]
	assert.Equal(t, uint16(7), img.ImageID)
	assert.Equal(t, uint32(600), img.NumberOfFrames)
	assert.Equal(t, "DOE^JANE", img.PatientName)
	assert.Equal(t, uint8(54), img.PatientAge)
	assert.Equal(t, "", img.SequenceNamePrivate)
	assert.Equal(t, "MR", img.Modality)
	assert.Equal(t, uint8(11), img.HighBit)
	assert.Equal(t, "Clinic", img.InstitutionName)

	text := describe(d)
	assert.Contains(t, text, "- DICOM image ID: 7\n")
	assert.Contains(t, text, "\t- TemporalResolution: 40.00\n")
	assert.Contains(t, text, "\t- ImageOrientationPatientY: [0.00, 1.00, 0.00]\n")
}

func TestVenc(t *testing.T) {
	data := recordtest.Venc(bintest.New(), [3]float64{1.5, 1.5, 2}, 0.8).Bytes()
	v := decodeAll(t, KindVenc, data).(Venc)
	assert.Equal(t, 2.0, v.Flow3DT[2].Venc)
	assert.Equal(t, []VencImage{{ImageID: 10, Venc: 0.8}}, v.Flow2DT)

	text := describe(v)
	assert.Contains(t, text, "\t- Z (FH) image (ID 3): 2.00 [m/s]\n")
	assert.Contains(t, text, "- num. 2D+T flow images: 1\n")
}

func TestCardiacCycle(t *testing.T) {
	data := bintest.New().U32(3).U32(1).F64(80).U32(2).F64(320).U32(2).Seq(6, 0).Bytes()
	c := decodeAll(t, KindCardiacCycle, data).(CardiacCycle)
	assert.Equal(t, 3, c.NumTimes)
	assert.Equal(t, 2, c.NumVessels)
	assert.Len(t, c.AxialVelocity, 6)

	text := describe(c)
	assert.Contains(t, text, "- systole end (= diastole begin): 320.00 [ms] (time point id 2)\n")
	assert.Contains(t, text, "- mean axial velocity [m/s] per time in vessel 1 (3): 3.00, 4.00, 5.00\n")
}

func TestCardiacCycleManyVesselsNoTimes(t *testing.T) {
	data := bintest.New().U32(0).U32(0).F64(0).U32(0).F64(0).U32(0xFFFFFFFF).Bytes()
	require.Len(t, data, 32)
	c := decodeAll(t, KindCardiacCycle, data).(CardiacCycle)
	assert.Equal(t, 0xFFFFFFFF, c.NumVessels)
	assert.Empty(t, c.AxialVelocity)

	text := describe(c)
	assert.Contains(t, text, "- num. vessels: 4294967295\n")
	assert.Contains(t, text, "per time in vessel 2 (0): \n")
	assert.NotContains(t, text, "in vessel 3")
	assert.True(t, strings.HasSuffix(text, "- ...\n"), text)
	assert.Len(t, strings.Split(strings.TrimSuffix(text, "\n"), "\n"), 4+3+1)
}

func TestVencManyFlow2DT(t *testing.T) {
	vencs := make([]float64, 5)
	data := recordtest.Venc(bintest.New(), [3]float64{1, 1, 1}, vencs...).Bytes()
	text := describe(decodeAll(t, KindVenc, data))
	assert.Contains(t, text, "\t- Image 2 (DICOM image ID 12): VENC 0.00 [m/s]\n\t- ...\n")
	assert.NotContains(t, text, "Image 3 ")
}

func TestPhaseWraps(t *testing.T) {
	b := bintest.New()
	b.U32(1).U32(1, 2, 3, 4).I8(-1)
	b.U32(0)
	b.U32(2).U32(0, 0, 0, 0).I8(1).U32(5, 6, 7, 8).I8(2)

	p := decodeAll(t, KindPhaseWraps, b.Bytes()).(PhaseWraps)
	assert.Equal(t, []PhaseWrap{{GridPos: [4]uint32{1, 2, 3, 4}, Factor: -1}}, p.Images[0])
	assert.Empty(t, p.Images[1])
	assert.Len(t, p.Images[2], 2)
	assert.Contains(t, describe(p), "\t- 0: grid pos [1, 2, 3, 4] is wrapped -1x\n")
}

func TestVelocityOffset(t *testing.T) {
	b := bintest.New().U32(5).F64(0.2)
	b.U32(1).F64(1, 2, 3)
	b.U32(2).Seq(6, 0)
	b.U32(0)

	v := decodeAll(t, KindVelocityOffset, b.Bytes()).(VelocityOffset)
	assert.Equal(t, uint32(5), v.EndDiastolicTimeID)
	assert.Equal(t, []float64{1, 2, 3}, v.PlaneCoeffs[0])
	assert.Len(t, v.PlaneCoeffs[1], 6)
	assert.Empty(t, v.PlaneCoeffs[2])
	assert.Contains(t, describe(v), "\t- plane coeffs of slice 1: 3.00, 4.00, 5.00\n")
}

func TestIVSDThresholds(t *testing.T) {
	data := bintest.New().F64(0.1, 0.35).Bytes()
	th := decodeAll(t, KindIVSDThresholds, data).(IVSDThresholds)
	assert.Equal(t, IVSDThresholds{Lower: 0.1, Upper: 0.35}, th)
	assert.Equal(t, "- lower threshold: 0.10\n- upper threshold: 0.35\n", describe(th))
}

func TestFlowStats(t *testing.T) {
	const numTimes = 4
	b := bintest.New().U32(numTimes)
	for i, def := range flowStatsTable {
		if def.form == statSeries {
			b.F64N(numTimes, float64(i))
		} else {
			b.F64(float64(i))
		}
	}

	f := decodeAll(t, KindFlowStats, b.Bytes()).(FlowStats)
	assert.Len(t, f.Stats, len(flowStatsTable))

	s, ok := f.Stat("vortex pressure threshold")
	require.True(t, ok)
	assert.Equal(t, 0.0, s.Value())

	s, ok = f.Stat("mean pressure per time")
	require.True(t, ok)
	assert.True(t, s.Series)
	assert.Len(t, s.Values, numTimes)

	_, ok = f.Stat("no such statistic")
	assert.False(t, ok)

	text := describe(f)
	assert.Contains(t, text, "- volume total in ml: 1.00\n")
	last := fmt.Sprintf("- median flow jet high velocity area percent velocity weighted: %d.00\n", len(flowStatsTable)-1)
	assert.True(t, strings.HasSuffix(text, last))
}

func TestFlowStatsZeroTimes(t *testing.T) {
	b := bintest.New().U32(0)
	for _, def := range flowStatsTable {
		if def.form == statScalar {
			b.F64(1)
		}
	}
	f := decodeAll(t, KindFlowStats, b.Bytes()).(FlowStats)
	s, ok := f.Stat("max velocity per time")
	require.True(t, ok)
	assert.Empty(t, s.Values)
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, len(decoders))
	for _, k := range kinds {
		got, err := ParseKind(strings.ToUpper(k.String()))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("spreadsheet")
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = Decode(KindInvalid, binary.FromBytes(nil))
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "Kind(200)", Kind(200).String())
}

func TestUnknownDimensionIsReported(t *testing.T) {
	r := newReader(binary.FromBytes(bintest.New().F64(1).Bytes()))
	got := r.floats("orphan", 1, shape.NumPoints)
	assert.Nil(t, got)
	require.ErrorIs(t, r.Err(), shape.ErrUnknownDimension)
	assert.Zero(t, r.c.Pos())
}
