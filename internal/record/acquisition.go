package record

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/robert-malhotra/go-bloodflow/internal/preview"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// DicomImage holds the DICOM tags kept for one acquired image series.
type DicomImage struct {
	ImageID            uint16
	NDimensions        uint16
	Rows               uint16
	Columns            uint16
	Slices             uint16
	TemporalPositions  uint16
	NumberOfFrames     uint32
	RowSpacing         float64
	ColSpacing         float64
	SliceSpacing       float64
	TemporalResolution float64

	PatientName   string
	PatientID     string
	PatientSex    string
	PatientAge    uint8
	PatientWeight float64

	PatientBirthDate    string
	SequenceName        string
	SequenceNamePrivate string
	PatientPosition     string
	StudyDescription    string
	SeriesDescription   string
	SeriesInstanceUID   string
	StudyInstanceUID    string
	ProtocolName        string
	Modality            string

	SamplesPerPixel          uint8
	LargestImagePixelValue   uint32
	BitsAllocated            uint8
	BitsStored               uint8
	HighBit                  uint8
	AcquisitionDate          string
	InstitutionName          string
	ImageOrientationPatientX []float64
	ImageOrientationPatientY []float64
	World                    *mat.Dense
}

// DicomTags is the content of dicom_tags_3dt_flow.
type DicomTags struct {
	Images []DicomImage
}

func (DicomTags) Kind() Kind { return KindDicomTags }

func (d DicomTags) Describe(b *report.Builder) {
	b.Linef("DICOM tags of %d images:", len(d.Images))
	each(b, len(d.Images), func(i int) {
		b.Linef("DICOM image ID: %d", d.Images[i].ImageID)
		d.Images[i].describe(b.Indent())
	})
}

func (img DicomImage) describe(b *report.Builder) {
	b.Linef("nDimensions: %d", img.NDimensions)
	b.Linef("Rows: %d", img.Rows)
	b.Linef("Columns: %d", img.Columns)
	b.Linef("Slices: %d", img.Slices)
	b.Linef("TemporalPositions: %d", img.TemporalPositions)
	b.Linef("NumberOfFrames: %d", img.NumberOfFrames)
	b.Float("RowSpacing", img.RowSpacing)
	b.Float("ColSpacing", img.ColSpacing)
	b.Float("SliceSpacing", img.SliceSpacing)
	b.Float("TemporalResolution", img.TemporalResolution)
	b.Field("PatientName", img.PatientName)
	b.Field("PatientID", img.PatientID)
	b.Field("PatientSex", img.PatientSex)
	b.Linef("PatientAge: %d", img.PatientAge)
	b.Float("PatientWeight", img.PatientWeight)
	b.Field("PatientBirthDate", img.PatientBirthDate)
	b.Field("SequenceName", img.SequenceName)
	b.Field("SequenceName_Private", img.SequenceNamePrivate)
	b.Field("PatientPosition", img.PatientPosition)
	b.Field("StudyDescription", img.StudyDescription)
	b.Field("SeriesDescription", img.SeriesDescription)
	b.Field("SeriesInstanceUID", img.SeriesInstanceUID)
	b.Field("StudyInstanceUID", img.StudyInstanceUID)
	b.Field("ProtocolName", img.ProtocolName)
	b.Field("Modality", img.Modality)
	b.Linef("SamplesPerPixel: %d", img.SamplesPerPixel)
	b.Linef("LargestImagePixelValue: %d", img.LargestImagePixelValue)
	b.Linef("BitsAllocated: %d", img.BitsAllocated)
	b.Linef("BitsStored: %d", img.BitsStored)
	b.Linef("HighBit: %d", img.HighBit)
	b.Field("AcquisitionDate", img.AcquisitionDate)
	b.Field("InstitutionName", img.InstitutionName)
	b.Field("ImageOrientationPatientX", preview.Tuple(img.ImageOrientationPatientX))
	b.Field("ImageOrientationPatientY", preview.Tuple(img.ImageOrientationPatientY))
	b.Matrix("world matrix", preview.Matrix(img.World))
}

func readDicomTags(r *reader) DicomTags {
	r.dim16(shape.NumImages)
	return DicomTags{
		Images: repeat(r, shape.NumImages, func(int) DicomImage {
			return DicomImage{
				ImageID:            r.u16("image id"),
				NDimensions:        r.u16("nDimensions"),
				Rows:               r.u16("rows"),
				Columns:            r.u16("columns"),
				Slices:             r.u16("slices"),
				TemporalPositions:  r.u16("temporal positions"),
				NumberOfFrames:     r.u32("number of frames"),
				RowSpacing:         r.f64("row spacing"),
				ColSpacing:         r.f64("col spacing"),
				SliceSpacing:       r.f64("slice spacing"),
				TemporalResolution: r.f64("temporal resolution"),

				PatientName:   r.str("patient name"),
				PatientID:     r.str("patient id"),
				PatientSex:    r.str("patient sex"),
				PatientAge:    r.u8("patient age"),
				PatientWeight: r.f64("patient weight"),

				PatientBirthDate:    r.str("patient birth date"),
				SequenceName:        r.str("sequence name"),
				SequenceNamePrivate: r.str("private sequence name"),
				PatientPosition:     r.str("patient position"),
				StudyDescription:    r.str("study description"),
				SeriesDescription:   r.str("series description"),
				SeriesInstanceUID:   r.str("series instance uid"),
				StudyInstanceUID:    r.str("study instance uid"),
				ProtocolName:        r.str("protocol name"),
				Modality:            r.str("modality"),

				SamplesPerPixel:          r.u8("samples per pixel"),
				LargestImagePixelValue:   r.u32("largest pixel value"),
				BitsAllocated:            r.u8("bits allocated"),
				BitsStored:               r.u8("bits stored"),
				HighBit:                  r.u8("high bit"),
				AcquisitionDate:          r.str("acquisition date"),
				InstitutionName:          r.str("institution name"),
				ImageOrientationPatientX: r.vec3("orientation x"),
				ImageOrientationPatientY: r.vec3("orientation y"),
				World:                    r.matrix("world matrix", 4, 4),
			}
		}),
	}
}

// VencImage is the velocity encoding of one flow image.
type VencImage struct {
	ImageID uint16
	Venc    float64 // m/s
}

// Venc lists the velocity encodings of the 3D+T flow images (X/LR, Y/AP,
// Z/FH) and of any 2D+T flow images.
type Venc struct {
	Flow3DT [3]VencImage
	Flow2DT []VencImage
}

func (Venc) Kind() Kind { return KindVenc }

var vencAxes = [3]string{"X (LR)", "Y (AP)", "Z (FH)"}

func (v Venc) Describe(b *report.Builder) {
	b.Line("VENCs of 3D+T flow images:")
	in := b.Indent()
	for i, img := range v.Flow3DT {
		in.Linef("%s image (ID %d): %s [m/s]", vencAxes[i], img.ImageID, preview.Float(img.Venc))
	}
	b.Linef("num. 2D+T flow images: %d", len(v.Flow2DT))
	in.Items(len(v.Flow2DT), func(i int) string {
		img := v.Flow2DT[i]
		return fmt.Sprintf("Image %d (DICOM image ID %d): VENC %s [m/s]", i, img.ImageID, preview.Float(img.Venc))
	})
}

func readVencImage(r *reader) VencImage {
	return VencImage{ImageID: r.u16("dicom image id"), Venc: r.f64("venc")}
}

func readVenc(r *reader) Venc {
	var v Venc
	for i := range v.Flow3DT {
		v.Flow3DT[i] = readVencImage(r)
	}
	r.dim8(shape.NumFlowImages)
	v.Flow2DT = repeat(r, shape.NumFlowImages, func(int) VencImage {
		return readVencImage(r)
	})
	return v
}

// CardiacCycle marks systole within the acquired time steps.
type CardiacCycle struct {
	NumTimes       int
	SystoleBeginID uint32
	SystoleBeginMs float64
	SystoleEndID   uint32
	SystoleEndMs   float64
	NumVessels     int
	// AxialVelocity holds the mean axial velocity per time for each vessel
	// (numVessels*numTimes).
	AxialVelocity []float64
}

func (CardiacCycle) Kind() Kind { return KindCardiacCycle }

func (c CardiacCycle) Describe(b *report.Builder) {
	b.Linef("num. times: %d", c.NumTimes)
	b.Linef("systole begin (= diastole end): %s [ms] (time point id %d)", preview.Float(c.SystoleBeginMs), c.SystoleBeginID)
	b.Linef("systole end (= diastole begin): %s [ms] (time point id %d)", preview.Float(c.SystoleEndMs), c.SystoleEndID)
	b.Linef("num. vessels: %d", c.NumVessels)
	each(b, c.NumVessels, func(v int) {
		curve := c.AxialVelocity[v*c.NumTimes : (v+1)*c.NumTimes]
		b.Floats(fmt.Sprintf("mean axial velocity [m/s] per time in vessel %d", v), curve)
	})
}

func readCardiacCycle(r *reader) CardiacCycle {
	c := CardiacCycle{NumTimes: r.dim(shape.NumTimes)}
	c.SystoleBeginID = r.u32("systole begin id")
	c.SystoleBeginMs = r.f64("systole begin ms")
	c.SystoleEndID = r.u32("systole end id")
	c.SystoleEndMs = r.f64("systole end ms")
	c.NumVessels = r.dim(shape.NumVessels)
	c.AxialVelocity = r.floats("axial velocity per vessel", 1, shape.NumVessels, shape.NumTimes)
	return c
}

// PhaseWrap is one voxel whose phase wrapped during acquisition.
type PhaseWrap struct {
	GridPos [4]uint32 // x, y, z, t
	Factor  int8
}

// PhaseWraps lists wrapped voxels for each of the three 3D+T flow images.
type PhaseWraps struct {
	Images [3][]PhaseWrap
}

func (PhaseWraps) Kind() Kind { return KindPhaseWraps }

func (p PhaseWraps) Describe(b *report.Builder) {
	for i, wraps := range p.Images {
		b.Linef("num. wrapped voxels of 3D+T flow image %d: %d", i, len(wraps))
		b.Indent().Items(len(wraps), func(k int) string {
			w := wraps[k]
			return fmt.Sprintf("%d: grid pos %s is wrapped %dx", k, preview.IntTuple(w.GridPos[:]), w.Factor)
		})
	}
}

func readPhaseWraps(r *reader) PhaseWraps {
	var p PhaseWraps
	for i := range p.Images {
		r.scoped(func() {
			r.dim(shape.NumWrapped)
			p.Images[i] = repeat(r, shape.NumWrapped, func(int) PhaseWrap {
				var w PhaseWrap
				copy(w.GridPos[:], r.uint32s("wrapped grid pos", 4))
				w.Factor = r.i8("wrap factor")
				return w
			})
		})
	}
	return p
}

// VelocityOffset is the per-slice background phase correction of the three
// 3D+T flow images.
type VelocityOffset struct {
	EndDiastolicTimeID uint32
	IVSDThreshold      float64
	// PlaneCoeffs holds three plane coefficients per slice for each image.
	PlaneCoeffs [3][]float64
}

func (VelocityOffset) Kind() Kind { return KindVelocityOffset }

func (v VelocityOffset) Describe(b *report.Builder) {
	b.Linef("end diastolic time point id: %d", v.EndDiastolicTimeID)
	b.Float("ivsd static tissue threshold", v.IVSDThreshold)
	in := b.Indent()
	for i, coeffs := range v.PlaneCoeffs {
		n := len(coeffs) / 3
		in.Linef("num. slices in flow image %d: %d", i, n)
		in.Items(n, func(z int) string {
			return fmt.Sprintf("plane coeffs of slice %d: %s", z, preview.Floats(coeffs[z*3:z*3+3], 3))
		})
	}
}

func readVelocityOffset(r *reader) VelocityOffset {
	var v VelocityOffset
	v.EndDiastolicTimeID = r.u32("end diastolic time id")
	v.IVSDThreshold = r.f64("ivsd threshold")
	for i := range v.PlaneCoeffs {
		r.scoped(func() {
			r.dim(shape.NumSlices)
			v.PlaneCoeffs[i] = r.floats("plane coefficients", 3, shape.NumSlices)
		})
	}
	return v
}

// IVSDThresholds bounds the IVSD values classified as static tissue.
type IVSDThresholds struct {
	Lower, Upper float64
}

func (IVSDThresholds) Kind() Kind { return KindIVSDThresholds }

func (t IVSDThresholds) Describe(b *report.Builder) {
	b.Float("lower threshold", t.Lower)
	b.Float("upper threshold", t.Upper)
}

func readIVSDThresholds(r *reader) IVSDThresholds {
	return IVSDThresholds{Lower: r.f64("lower threshold"), Upper: r.f64("upper threshold")}
}
