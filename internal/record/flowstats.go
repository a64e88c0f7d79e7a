package record

import (
	"github.com/robert-malhotra/go-bloodflow/internal/report"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// FlowStats are the dataset-wide vortex, velocity, rotation, pressure and
// flow jet statistics.
type FlowStats struct {
	NumTimes int
	Stats    []Stat
}

func (FlowStats) Kind() Kind { return KindFlowStats }

// Stat returns the statistic called name.
func (f FlowStats) Stat(name string) (Stat, bool) {
	for _, s := range f.Stats {
		if s.Name == name {
			return s, true
		}
	}
	return Stat{}, false
}

func (f FlowStats) Describe(b *report.Builder) {
	b.Linef("num. times: %d", f.NumTimes)
	describeStats(b, f.Stats)
}

func readFlowStats(r *reader) FlowStats {
	f := FlowStats{NumTimes: r.dim(shape.NumTimes)}
	f.Stats = readStats(r, flowStatsTable, shape.NumTimes)
	return f
}

// flowStatsTable is the on-disk order of the flow_stats entries.
var flowStatsTable = []statDef{
	{"vortex pressure threshold", statScalar},
	{"volume total in ml", statScalar},
	{"section volume in ml", statScalar},
	{"section volume in percent", statScalar},

	// diameter and cross-section
	{"min diameter in mm", statScalar},
	{"max diameter in mm", statScalar},
	{"mean diameter in mm", statScalar},
	{"median diameter in mm", statScalar},

	{"min cross sectional area in mm2", statScalar},
	{"max cross sectional area in mm2", statScalar},
	{"mean cross sectional area in mm2", statScalar},
	{"median cross sectional area in mm2", statScalar},

	// vortex
	{"vortex volume in ml per time", statSeries},
	{"vortex volume in percent per time", statSeries},
	{"max vortex volume in ml", statScalar},
	{"max vortex volume in percent", statScalar},
	{"max vortex volume time in ms", statScalar},
	{"mean vortex volume in ml", statScalar},
	{"mean vortex volume in percent", statScalar},
	{"median vortex volume in ml", statScalar},
	{"median vortex volume in percent", statScalar},
	{"systolic max vortex volume in ml", statScalar},
	{"systolic max vortex volume in percent", statScalar},
	{"systolic max vortex volume time in ms", statScalar},
	{"systolic mean vortex volume in ml", statScalar},
	{"systolic mean vortex volume in percent", statScalar},
	{"systolic median vortex volume in ml", statScalar},
	{"systolic median vortex volume in percent", statScalar},
	{"diastolic max vortex volume in ml", statScalar},
	{"diastolic max vortex volume in percent", statScalar},
	{"diastolic max vortex volume time in ms", statScalar},
	{"diastolic mean vortex volume in ml", statScalar},
	{"diastolic mean vortex volume in percent", statScalar},
	{"diastolic median vortex volume in ml", statScalar},
	{"diastolic median vortex volume in percent", statScalar},

	{"vortex coverage in ml", statScalar},
	{"vortex coverage in percent", statScalar},
	{"systolic vortex coverage in ml", statScalar},
	{"systolic vortex coverage in percent", statScalar},
	{"diastolic vortex coverage in ml", statScalar},
	{"diastolic vortex coverage in percent", statScalar},

	// velocity
	{"max velocity per time", statSeries},
	{"max axial velocity per time", statSeries},
	{"max circumferential velocity per time", statSeries},
	{"mean velocity per time", statSeries},
	{"mean axial velocity per time", statSeries},
	{"mean circumferential velocity per time", statSeries},
	{"median velocity per time", statSeries},
	{"median axial velocity per time", statSeries},
	{"median circumferential velocity per time", statSeries},
	{"max mean velocity", statScalar},
	{"max mean velocity time in ms", statScalar},
	{"max mean axial velocity", statScalar},
	{"max mean axial velocity time in ms", statScalar},
	{"max mean circumferential velocity", statScalar},
	{"max mean circumferential velocity time in ms", statScalar},
	{"mean mean velocity", statScalar},
	{"mean mean axial velocity", statScalar},
	{"mean mean circumferential velocity", statScalar},
	{"median mean velocity", statScalar},
	{"median mean axial velocity", statScalar},
	{"median mean circumferential velocity", statScalar},
	{"max overall velocity", statScalar},
	{"max overall velocity time in ms", statScalar},
	{"max overall velocity q99", statScalar},
	{"max overall velocity q99 time in ms", statScalar},
	{"max overall axial velocity", statScalar},
	{"max overall axial velocity time in ms", statScalar},
	{"max overall axial velocity q99", statScalar},
	{"max overall axial velocity q99 time in ms", statScalar},
	{"max overall circumferential velocity", statScalar},
	{"max overall circumferential velocity time in ms", statScalar},
	{"max overall circumferential velocity q99", statScalar},
	{"max overall circumferential velocity q99 time in ms", statScalar},
	{"systolic max mean velocity", statScalar},
	{"systolic max mean velocity time in ms", statScalar},
	{"systolic max mean axial velocity", statScalar},
	{"systolic max mean axial velocity time in ms", statScalar},
	{"systolic max mean circumferential velocity", statScalar},
	{"systolic max mean circumferential velocity time in ms", statScalar},
	{"systolic mean mean velocity", statScalar},
	{"systolic mean mean axial velocity", statScalar},
	{"systolic mean mean circumferential velocity", statScalar},
	{"systolic median mean velocity", statScalar},
	{"systolic median mean axial velocity", statScalar},
	{"systolic median mean circumferential velocity", statScalar},
	{"systolic max overall velocity", statScalar},
	{"systolic max overall velocity time in ms", statScalar},
	{"systolic max overall velocity q99", statScalar},
	{"systolic max overall velocity q99 time in ms", statScalar},
	{"systolic max overall axial velocity", statScalar},
	{"systolic max overall axial velocity time in ms", statScalar},
	{"systolic max overall axial velocity q99", statScalar},
	{"systolic max overall axial velocity q99 time in ms", statScalar},
	{"systolic max overall circumferential velocity", statScalar},
	{"systolic max overall circumferential velocity time in ms", statScalar},
	{"systolic max overall circumferential velocity q99", statScalar},
	{"systolic max overall circumferential velocity q99 time in ms", statScalar},
	{"diastolic max mean velocity", statScalar},
	{"diastolic max mean velocity time in ms", statScalar},
	{"diastolic max mean axial velocity", statScalar},
	{"diastolic max mean axial velocity time in ms", statScalar},
	{"diastolic max mean circumferential velocity", statScalar},
	{"diastolic max mean circumferential velocity time in ms", statScalar},
	{"diastolic mean mean velocity", statScalar},
	{"diastolic mean mean axial velocity", statScalar},
	{"diastolic mean mean circumferential velocity", statScalar},
	{"diastolic median mean velocity", statScalar},
	{"diastolic median mean axial velocity", statScalar},
	{"diastolic median mean circumferential velocity", statScalar},
	{"diastolic max overall velocity", statScalar},
	{"diastolic max overall velocity time in ms", statScalar},
	{"diastolic max overall velocity q99", statScalar},
	{"diastolic max overall velocity q99 time in ms", statScalar},
	{"diastolic max overall axial velocity", statScalar},
	{"diastolic max overall axial velocity time in ms", statScalar},
	{"diastolic max overall axial velocity q99", statScalar},
	{"diastolic max overall axial velocity q99 time in ms", statScalar},
	{"diastolic max overall circumferential velocity", statScalar},
	{"diastolic max overall circumferential velocity time in ms", statScalar},
	{"diastolic max overall circumferential velocity q99", statScalar},
	{"diastolic max overall circumferential velocity q99 time in ms", statScalar},

	// rotation
	{"left rotation volume in ml per time", statSeries},
	{"left rotation volume in percent per time", statSeries},
	{"max left rotation volume in ml", statScalar},
	{"max left rotation volume in percent", statScalar},
	{"max left rotation volume time in ms", statScalar},
	{"mean left rotation volume in ml", statScalar},
	{"mean left rotation volume in percent", statScalar},
	{"median left rotation volume in ml", statScalar},
	{"median left rotation volume in percent", statScalar},
	{"systolic max left rotation volume in ml", statScalar},
	{"systolic max left rotation volume in percent", statScalar},
	{"systolic max left rotation volume time in ms", statScalar},
	{"systolic mean left rotation volume in ml", statScalar},
	{"systolic mean left rotation volume in percent", statScalar},
	{"systolic median left rotation volume in ml", statScalar},
	{"systolic median left rotation volume in percent", statScalar},
	{"diastolic max left rotation volume in ml", statScalar},
	{"diastolic max left rotation volume in percent", statScalar},
	{"diastolic max left rotation volume time in ms", statScalar},
	{"diastolic mean left rotation volume in ml", statScalar},
	{"diastolic mean left rotation volume in percent", statScalar},
	{"diastolic median left rotation volume in ml", statScalar},
	{"diastolic median left rotation volume in percent", statScalar},
	{"right rotation volume in ml per time", statSeries},
	{"right rotation volume in percent per time", statSeries},
	{"max right rotation volume in ml", statScalar},
	{"max right rotation volume in percent", statScalar},
	{"max right rotation volume time in ms", statScalar},
	{"mean right rotation volume in ml", statScalar},
	{"mean right rotation volume in percent", statScalar},
	{"median right rotation volume in ml", statScalar},
	{"median right rotation volume in percent", statScalar},
	{"systolic max right rotation volume in ml", statScalar},
	{"systolic max right rotation volume in percent", statScalar},
	{"systolic max right rotation volume time in ms", statScalar},
	{"systolic mean right rotation volume in ml", statScalar},
	{"systolic mean right rotation volume in percent", statScalar},
	{"systolic median right rotation volume in ml", statScalar},
	{"systolic median right rotation volume in percent", statScalar},
	{"diastolic max right rotation volume in ml", statScalar},
	{"diastolic max right rotation volume in percent", statScalar},
	{"diastolic max right rotation volume time in ms", statScalar},
	{"diastolic mean right rotation volume in ml", statScalar},
	{"diastolic mean right rotation volume in percent", statScalar},
	{"diastolic median right rotation volume in ml", statScalar},
	{"diastolic median right rotation volume in percent", statScalar},

	// pressure
	{"mean pressure per time", statSeries},

	{"min mean pressure", statScalar},
	{"min mean pressure time in ms", statScalar},
	{"max mean pressure", statScalar},
	{"max mean pressure time in ms", statScalar},
	{"mean mean pressure", statScalar},
	{"median mean pressure", statScalar},

	{"systolic min mean pressure", statScalar},
	{"systolic min mean pressure time in ms", statScalar},
	{"systolic max mean pressure", statScalar},
	{"systolic max mean pressure time in ms", statScalar},
	{"systolic mean mean pressure", statScalar},
	{"systolic median mean pressure", statScalar},

	{"diastolic min mean pressure", statScalar},
	{"diastolic min mean pressure time in ms", statScalar},
	{"diastolic max mean pressure", statScalar},
	{"diastolic max mean pressure time in ms", statScalar},
	{"diastolic mean mean pressure", statScalar},
	{"diastolic median mean pressure", statScalar},

	{"mean pressure in vortex region per time", statSeries},

	{"min mean pressure in vortex region", statScalar},
	{"min mean pressure in vortex region time in ms", statScalar},
	{"max mean pressure in vortex region", statScalar},
	{"max mean pressure in vortex region time in ms", statScalar},
	{"mean mean pressure in vortex region", statScalar},
	{"median mean pressure in vortex region", statScalar},

	{"systolic min mean pressure in vortex region", statScalar},
	{"systolic min mean pressure in vortex region time in ms", statScalar},
	{"systolic max mean pressure in vortex region", statScalar},
	{"systolic max mean pressure in vortex region time in ms", statScalar},
	{"systolic mean mean pressure in vortex region", statScalar},
	{"systolic median mean pressure in vortex region", statScalar},

	{"diastolic min mean pressure in vortex region", statScalar},
	{"diastolic min mean pressure in vortex region time in ms", statScalar},
	{"diastolic max mean pressure in vortex region", statScalar},
	{"diastolic max mean pressure in vortex region time in ms", statScalar},
	{"diastolic mean mean pressure in vortex region", statScalar},
	{"diastolic median mean pressure in vortex region", statScalar},

	// flow jet
	{"max flow jet displacement velocity weighted", statScalar},
	{"min flow jet displacement velocity weighted", statScalar},
	{"mean flow jet displacement velocity weighted", statScalar},
	{"median flow jet displacement velocity weighted", statScalar},

	{"max flow jet angle velocity weighted", statScalar},
	{"min flow jet angle velocity weighted", statScalar},
	{"mean flow jet angle velocity weighted", statScalar},
	{"median flow jet angle velocity weighted", statScalar},

	{"max flow jet high velocity area percent velocity weighted", statScalar},
	{"min flow jet high velocity area percent velocity weighted", statScalar},
	{"mean flow jet high velocity area percent velocity weighted", statScalar},
	{"median flow jet high velocity area percent velocity weighted", statScalar},
}
