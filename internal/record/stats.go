package record

import (
	"github.com/robert-malhotra/go-bloodflow/internal/report"
)

type statForm uint8

const (
	statScalar statForm = iota // one f64
	statSeries                 // one f64 per time step
)

type statDef struct {
	name string
	form statForm
}

// Stat is a named statistic: a single value, or one value per time step.
type Stat struct {
	Name   string
	Series bool
	Values []float64
}

// Value returns the scalar value of s, or the first element of a series.
func (s Stat) Value() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.Values[0]
}

func (s Stat) describe(b *report.Builder) {
	if s.Series {
		b.Floats(s.Name, s.Values)
		return
	}
	b.Float(s.Name, s.Value())
}

// readStats reads table in order. Series entries are sized by timeDim.
func readStats(r *reader, table []statDef, timeDim string) []Stat {
	out := make([]Stat, 0, len(table))
	for _, def := range table {
		if !r.ok() {
			return nil
		}
		s := Stat{Name: def.name, Series: def.form == statSeries}
		if s.Series {
			s.Values = r.floats(def.name, 1, timeDim)
		} else {
			s.Values = []float64{r.f64(def.name)}
		}
		out = append(out, s)
	}
	if !r.ok() {
		return nil
	}
	return out
}

func describeStats(b *report.Builder, stats []Stat) {
	for _, s := range stats {
		s.describe(b)
	}
}

func scalars(names ...string) []statDef {
	out := make([]statDef, len(names))
	for i, n := range names {
		out[i] = statDef{name: n, form: statScalar}
	}
	return out
}

func series(names ...string) []statDef {
	out := make([]statDef, len(names))
	for i, n := range names {
		out[i] = statDef{name: n, form: statSeries}
	}
	return out
}
