// Package report accumulates the indented, human-readable text produced while
// decoding a dataset.
package report

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-bloodflow/internal/preview"
)

// Builder appends lines to a report segment. Builders returned by Indent share
// the parent's buffer and write one level deeper.
type Builder struct {
	buf   *strings.Builder
	depth int
	limit int
}

// New returns an empty builder whose previews show at most limit elements.
// A non-positive limit selects preview.DefaultLimit.
func New(limit int) *Builder {
	if limit <= 0 {
		limit = preview.DefaultLimit
	}
	return &Builder{buf: new(strings.Builder), limit: limit}
}

// Limit returns the preview bound for this report.
func (b *Builder) Limit() int {
	return b.limit
}

// Depth returns the indentation level of b.
func (b *Builder) Depth() int {
	return b.depth
}

// Indent returns a child builder one level deeper that writes into the same buffer.
func (b *Builder) Indent() *Builder {
	return &Builder{buf: b.buf, depth: b.depth + 1, limit: b.limit}
}

// Heading writes an unbulleted line at the current depth.
func (b *Builder) Heading(s string) {
	b.prefix()
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
}

// Headingf is Heading with formatting.
func (b *Builder) Headingf(format string, args ...any) {
	b.Heading(fmt.Sprintf(format, args...))
}

// Line writes a bulleted line at the current depth.
func (b *Builder) Line(s string) {
	b.prefix()
	b.buf.WriteString("- ")
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
}

// Linef is Line with formatting.
func (b *Builder) Linef(format string, args ...any) {
	b.Line(fmt.Sprintf(format, args...))
}

// Field writes "- label: value".
func (b *Builder) Field(label, value string) {
	b.Line(label + ": " + value)
}

// Floats writes a labelled preview of xs, including its length.
func (b *Builder) Floats(label string, xs []float64) {
	b.Line(label + " (" + preview.Int(len(xs)) + "): " + preview.Floats(xs, b.limit))
}

// Items writes one bulleted line per previewed element, followed by an
// ellipsis line iff n exceeds the limit.
func (b *Builder) Items(n int, item func(i int) string) {
	for _, s := range preview.Items(n, b.limit, item) {
		b.Line(s)
	}
}

// Float writes a labelled scalar.
func (b *Builder) Float(label string, v float64) {
	b.Field(label, preview.Float(v))
}

// Matrix writes a labelled matrix, one row per line.
func (b *Builder) Matrix(label string, rows []string) {
	b.Line(label + ":")
	in := b.Indent()
	for _, r := range rows {
		in.Heading(r)
	}
}

// Append copies the text of other to the end of b. Indentation already present
// in other is kept.
func (b *Builder) Append(other *Builder) {
	if other == nil || other.buf == b.buf {
		return
	}
	b.buf.WriteString(other.buf.String())
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return b.buf.Len()
}

func (b *Builder) String() string {
	return b.buf.String()
}

func (b *Builder) prefix() {
	for i := 0; i < b.depth; i++ {
		b.buf.WriteByte('\t')
	}
}
