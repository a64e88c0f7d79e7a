package flow

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-bloodflow/internal/report"
)

const vesselRule = "-----------------------------------------------------------------------------------------------------------------------"

// Report is the rendered content of a dataset directory.
type Report struct {
	Dir     string
	Vessels []string
	// Results holds one entry per file looked up, in report order.
	Results []*Result

	text *report.Builder
}

// Text returns the full report.
func (r *Report) Text() string {
	return r.text.String()
}

// Failed returns the results of files that existed but could not be read.
func (r *Report) Failed() []*Result {
	var out []*Result
	for _, res := range r.Results {
		if res.Failed() {
			out = append(out, res)
		}
	}
	return out
}

// Found returns the results of files that were read completely.
func (r *Report) Found() []*Result {
	var out []*Result
	for _, res := range r.Results {
		if res.OK {
			out = append(out, res)
		}
	}
	return out
}

// ReadDataset reads every known file of the dataset in dir and renders them
// in a fixed order: dataset-level files first, then each vessel subdirectory
// in name order.
//
// Missing files and files that cannot be opened are noted in the report only.
// Files whose content cannot be decoded are noted as well and their errors are
// combined into the returned error. The Report is nil only if dir itself
// cannot be listed.
func ReadDataset(dir string, opts ...Option) (*Report, error) {
	o := newOptions(opts)
	dir = normalizeDir(dir)

	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("reading dataset %s: %w", dir, ErrNotDirectory)
	}
	vessels, err := listVessels(dir)
	if err != nil {
		return nil, fmt.Errorf("listing vessels: %w", err)
	}

	d := &datasetReader{
		o:   o,
		log: o.log.With(zap.String("dir", dir)),
		rep: &Report{Dir: dir, Vessels: vessels, text: report.New(o.previewLimit)},
	}
	b := d.rep.text
	b.Headingf("Reading directory \"%s\"", dir)
	quoted := make([]string, len(vessels))
	for i, v := range vessels {
		quoted[i] = "\"" + v + "\""
	}
	b.Indent().Linef("found %d vessel(s): %s", len(vessels), strings.Join(quoted, " "))
	d.log.Info("Reading dataset", zap.Int("vessels", len(vessels)))

	for _, e := range DatasetEntries() {
		d.entry(b.Indent(), dir, e)
	}
	for _, v := range vessels {
		vdir := join(dir, v)
		b.Heading(vesselRule)
		b.Heading(vesselRule)
		b.Headingf("Reading vessel \"%s\" (path \"%s/\")", v, vdir)
		for _, e := range VesselEntries() {
			d.entry(b.Indent(), vdir, e)
		}
	}

	d.log.Info("Read dataset",
		zap.Int("files", len(d.rep.Found())),
		zap.Int("failed", len(d.rep.Failed())))
	return d.rep, d.errs
}

type datasetReader struct {
	o    *options
	log  *zap.Logger
	rep  *Report
	errs error
}

// entry reads one catalog entry below dir and appends its segment to b.
func (d *datasetReader) entry(b *report.Builder, dir string, e Entry) {
	if e.Pattern {
		d.group(b, dir, e)
		return
	}
	d.file(b, join(dir, e.Name), e)
}

// file reads one file into its own segment at b's depth and appends it.
func (d *datasetReader) file(b *report.Builder, path string, e Entry) {
	seg := report.New(d.o.previewLimit)
	body := seg
	for i := 0; i < b.Depth(); i++ {
		body = body.Indent()
	}
	res := readEntry(body, path, e, d.o)
	b.Append(seg)
	d.rep.Results = append(d.rep.Results, res)
	if hard(res.Err) {
		d.errs = multierr.Append(d.errs, res.Err)
	}
}

// group reads every file in dir whose name matches e's pattern.
func (d *datasetReader) group(b *report.Builder, dir string, e Entry) {
	names, err := matchFiles(dir, e.Name)
	if err != nil {
		d.errs = multierr.Append(d.errs, fmt.Errorf("searching %s: %w", e.Label, err))
		return
	}
	b.Linef("searching %s in \"%s\"", e.Label, dir)
	in := b.Indent()
	in.Linef("found %d %s: %s", len(names), e.Label, strings.Join(names, ", "))
	for _, name := range names {
		d.file(in, join(dir, name), Entry{Name: name, Label: "image " + name, Kind: e.Kind})
	}
}
