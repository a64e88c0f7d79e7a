package record

import (
	"github.com/robert-malhotra/go-bloodflow/internal/preview"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
)

// each calls fn for the first b.Limit() of n sub-records and writes an
// ellipsis line if some were left out.
func each(b *report.Builder, n int, fn func(i int)) {
	for i := 0; i < preview.Count(n, b.Limit()); i++ {
		fn(i)
	}
	if preview.More(n, b.Limit()) {
		b.Line(preview.Ellipsis)
	}
}

// vectors describes a flat list of width-sized tuples as one line per tuple.
func vectors(b *report.Builder, label string, flat []float64, width int) {
	n := len(flat) / width
	b.Linef("%s (%d):", label, n)
	b.Indent().Items(n, func(i int) string {
		return preview.Int(i) + ": " + preview.Tuple(flat[i*width:(i+1)*width])
	})
}
