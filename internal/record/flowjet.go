package record

import (
	"github.com/robert-malhotra/go-bloodflow/internal/preview"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// JetSample is the high-velocity region of one cross-section at one time step.
type JetSample struct {
	PeakPosition []float64
	PeakVelocity float64
	AreaCenter   []float64
	Direction0   []float64
	Radius0      float64
	Direction1   []float64
	Radius1      float64
}

// JetSection is one vessel cross-section along a flow jet.
type JetSection struct {
	Samples      []JetSample // one per time step
	VesselCenter []float64
	VesselRadius float64
	LCSX, LCSY   []float64
}

// FlowJet is a tracked jet through numPoints cross-sections over numTimes steps.
type FlowJet struct {
	NumTimes int
	Sections []JetSection
}

// FlowJets is the content of a vessel's flowjets file.
type FlowJets struct {
	Jets []FlowJet
}

func (FlowJets) Kind() Kind { return KindFlowJets }

func (f FlowJets) Describe(b *report.Builder) {
	b.Linef("num. flow jets: %d", len(f.Jets))
	each(b, len(f.Jets), func(i int) {
		jet := f.Jets[i]
		b.Linef("flow jet %d:", i)
		in := b.Indent()
		in.Linef("num. points: %d", len(jet.Sections))
		in.Linef("num. times: %d", jet.NumTimes)
		each(in, len(jet.Sections), func(p int) {
			sec := jet.Sections[p]
			in.Linef("point %d:", p)
			ps := in.Indent()
			ps.Items(len(sec.Samples), func(t int) string {
				s := sec.Samples[t]
				return "t" + preview.Int(t) + ": peak " + preview.Tuple(s.PeakPosition) +
					" = " + preview.Float(s.PeakVelocity) +
					", area center " + preview.Tuple(s.AreaCenter) +
					", radii " + preview.Float(s.Radius0) + " / " + preview.Float(s.Radius1)
			})
			ps.Field("vessel center", preview.Tuple(sec.VesselCenter))
			ps.Float("vessel radius", sec.VesselRadius)
			ps.Field("LCS X", preview.Tuple(sec.LCSX))
			ps.Field("LCS Y", preview.Tuple(sec.LCSY))
		})
	})
}

func readJetSample(r *reader) JetSample {
	return JetSample{
		PeakPosition: r.vec3("peak position"),
		PeakVelocity: r.f64("peak velocity"),
		AreaCenter:   r.vec3("area center"),
		Direction0:   r.vec3("direction 0"),
		Radius0:      r.f64("radius 0"),
		Direction1:   r.vec3("direction 1"),
		Radius1:      r.f64("radius 1"),
	}
}

func readFlowJets(r *reader) FlowJets {
	r.dim(shape.NumFlowJets)
	return FlowJets{
		Jets: repeat(r, shape.NumFlowJets, func(int) FlowJet {
			r.dim(shape.NumPoints)
			jet := FlowJet{NumTimes: r.dim(shape.NumTimes)}
			jet.Sections = repeat(r, shape.NumPoints, func(int) JetSection {
				return JetSection{
					Samples: repeat(r, shape.NumTimes, func(int) JetSample {
						return readJetSample(r)
					}),
					VesselCenter: r.vec3("vessel center"),
					VesselRadius: r.f64("vessel radius"),
					LCSX:         r.vec3("lcs x"),
					LCSY:         r.vec3("lcs y"),
				}
			})
			return jet
		}),
	}
}
