package record

import (
	"fmt"

	"github.com/robert-malhotra/go-bloodflow/internal/preview"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// GraphcutIDs are the voxels a user marked as inside and outside the vessel
// before the graph cut segmentation ran.
type GraphcutIDs struct {
	Inside  []uint32 // numInside*3 grid positions
	Outside []uint32 // numOutside*3 grid positions
}

func (GraphcutIDs) Kind() Kind { return KindGraphcutIDs }

func (g GraphcutIDs) Describe(b *report.Builder) {
	nIn, nOut := len(g.Inside)/3, len(g.Outside)/3
	b.Linef("num. inside ids: %d", nIn)
	b.Linef("num. outside ids: %d", nOut)
	b.Items(nIn, func(i int) string {
		return fmt.Sprintf("inside grid pos %d: %s", i, preview.IntTuple(g.Inside[i*3:i*3+3]))
	})
	if nOut == 0 {
		b.Line("no outside ids specified")
		return
	}
	b.Items(nOut, func(i int) string {
		return fmt.Sprintf("outside grid pos %d: %s", i, preview.IntTuple(g.Outside[i*3:i*3+3]))
	})
}

func readGraphcutIDs(r *reader) GraphcutIDs {
	r.dim(shape.NumInside)
	r.dim(shape.NumOutside)
	return GraphcutIDs{
		Inside:  r.uint32s("inside ids", 3, shape.NumInside),
		Outside: r.uint32s("outside ids", 3, shape.NumOutside),
	}
}
