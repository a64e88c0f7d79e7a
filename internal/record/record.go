package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-bloodflow/internal/binary"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
)

// ErrUnknownKind is returned for a Kind with no registered grammar.
var ErrUnknownKind = errors.New("unknown record kind")

// Kind identifies a file grammar.
type Kind uint8

// Record kinds
const (
	KindInvalid Kind = iota
	KindSparseField
	KindSectionSegmentation
	KindMesh
	KindCenterlines
	KindSeedTargetIDs
	KindPathlines
	KindFlowField
	KindFlowImage2DT
	KindMeasuringPlanes
	KindFlowJets
	KindGraphcutIDs
	KindDicomTags
	KindVenc
	KindCardiacCycle
	KindPhaseWraps
	KindVelocityOffset
	KindIVSDThresholds
	KindFlowStats
)

var kindNames = [...]string{
	KindInvalid:             "invalid",
	KindSparseField:         "sparse-field",
	KindSectionSegmentation: "section-segmentation",
	KindMesh:                "mesh",
	KindCenterlines:         "centerlines",
	KindSeedTargetIDs:       "seed-target-ids",
	KindPathlines:           "pathlines",
	KindFlowField:           "flowfield",
	KindFlowImage2DT:        "flowfield-2dt",
	KindMeasuringPlanes:     "measuring-planes",
	KindFlowJets:            "flowjets",
	KindGraphcutIDs:         "graphcut-ids",
	KindDicomTags:           "dicom-tags",
	KindVenc:                "venc",
	KindCardiacCycle:        "cardiac-cycle",
	KindPhaseWraps:          "phase-wraps",
	KindVelocityOffset:      "velocity-offset",
	KindIVSDThresholds:      "ivsd-thresholds",
	KindFlowStats:           "flow-stats",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the Kind whose String form is name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for k := KindSparseField; int(k) < len(kindNames); k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns every decodable kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindSparseField; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

// Record is a fully decoded file.
type Record interface {
	Kind() Kind
	// Describe appends a bounded summary of the record to b.
	Describe(b *report.Builder)
}

// DecodeFunc reads one record from a cursor.
type DecodeFunc func(c *binary.Cursor) (Record, error)

var decoders = map[Kind]DecodeFunc{
	KindSparseField:         run(readSparseField),
	KindSectionSegmentation: run(readSectionSegmentation),
	KindMesh:                run(readMesh),
	KindCenterlines:         run(readCenterlines),
	KindSeedTargetIDs:       run(readSeedTargetIDs),
	KindPathlines:           run(readPathlines),
	KindFlowField:           run(readFlowField),
	KindFlowImage2DT:        run(readFlowImage2DT),
	KindMeasuringPlanes:     run(readMeasuringPlanes),
	KindFlowJets:            run(readFlowJets),
	KindGraphcutIDs:         run(readGraphcutIDs),
	KindDicomTags:           run(readDicomTags),
	KindVenc:                run(readVenc),
	KindCardiacCycle:        run(readCardiacCycle),
	KindPhaseWraps:          run(readPhaseWraps),
	KindVelocityOffset:      run(readVelocityOffset),
	KindIVSDThresholds:      run(readIVSDThresholds),
	KindFlowStats:           run(readFlowStats),
}

// Decode reads one record of the given kind.
func Decode(kind Kind, c *binary.Cursor) (Record, error) {
	fn, ok := decoders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	return fn(c)
}

// run adapts a grammar function to a DecodeFunc. The record is dropped if any
// read inside it failed.
func run[T Record](fn func(r *reader) T) DecodeFunc {
	return func(c *binary.Cursor) (Record, error) {
		r := newReader(c)
		rec := fn(r)
		if err := r.Err(); err != nil {
			return nil, err
		}
		return rec, nil
	}
}
