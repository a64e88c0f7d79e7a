package flow

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-bloodflow/internal/binary"
	"github.com/robert-malhotra/go-bloodflow/internal/record"
	"github.com/robert-malhotra/go-bloodflow/internal/report"
)

// Result is the outcome of reading one file.
type Result struct {
	Path  string
	Label string
	Kind  record.Kind // record.KindInvalid for text files
	Size  int64

	// OK is set when the file was read completely.
	OK bool
	// Record is the decoded content of a binary file.
	Record record.Record
	// Text is the report segment rendered for this file.
	Text string
	Err  error
}

// Missing reports whether the file did not exist.
func (r *Result) Missing() bool {
	return errors.Is(r.Err, ErrMissingFile)
}

// Failed reports whether the file existed but could not be read.
func (r *Result) Failed() bool {
	return r.Err != nil && !r.Missing()
}

// hard reports whether err came from the file's content rather than its
// presence on disk.
func hard(err error) bool {
	return err != nil && !errors.Is(err, ErrMissingFile) && !errors.Is(err, ErrOpenFailure)
}

// ReadFile decodes a single file of the given kind and renders it.
//
// The returned Result is never nil. Its Text holds the rendered segment, which
// also notes a missing file or a failure. The error is the Result's Err.
//
// Example:
//
//	res, err := flow.ReadFile("data/aorta/mesh", record.KindMesh)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.Text)
func ReadFile(path string, kind record.Kind, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	e := Entry{Name: filepath.Base(path), Label: kind.String(), Kind: kind}
	seg := report.New(o.previewLimit)
	res := readEntry(seg, path, e, o)
	return res, res.Err
}

// readEntry reads the file at path as described by e and writes its segment
// to b. res.Text is set to everything written to b's buffer.
func readEntry(b *report.Builder, path string, e Entry, o *options) *Result {
	res := &Result{Path: path, Label: e.Label, Kind: e.Kind}
	defer func() { res.Text = b.String() }()

	log := o.log.With(zap.String("path", path), zap.String("kind", kindName(e)))

	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		b.Linef("%s (path \"%s\")", e.missingLabel(), path)
		res.Err = fmt.Errorf("%s: %w", path, ErrMissingFile)
		log.Debug("File not found")
		return res
	}
	if err == nil {
		res.Size = fi.Size()
		b.Linef("reading %s (path \"%s\", %s)", e.Label, path, humanize.Bytes(uint64(fi.Size())))
	} else {
		b.Linef("reading %s (path \"%s\")", e.Label, path)
	}

	in := b.Indent()
	f, err := open(path, fi, err)
	if err != nil {
		in.Heading("FAILED! Could not open file!")
		res.Err = fmt.Errorf("%s: %w: %v", path, ErrOpenFailure, err)
		log.Warn("Could not open file", zap.Error(err))
		return res
	}
	defer f.Close()

	if e.Text() {
		lines, err := readLines(f)
		if err != nil {
			in.Heading("FAILED! " + err.Error())
			res.Err = fmt.Errorf("%s: %w", path, err)
			log.Warn("Could not read text file", zap.Error(err))
			return res
		}
		e.text(in, lines)
		res.OK = true
		log.Debug("Read text file", zap.Int("lines", len(lines)))
		return res
	}

	c := binary.NewCursor(bufio.NewReader(f), fi.Size())
	rec, err := record.Decode(e.Kind, c)
	if err != nil {
		in.Heading("FAILED! " + err.Error())
		res.Err = fmt.Errorf("%s: %w", path, err)
		if errors.Is(err, ErrUnknownDimension) || errors.Is(err, record.ErrUnknownKind) {
			log.Error("Decoder error", zap.Error(err))
		} else {
			log.Warn("Could not decode file", zap.Int64("offset", c.Pos()), zap.Error(err))
		}
		return res
	}
	if n := c.Remaining(); n > 0 {
		log.Debug("Trailing bytes after record", zap.Int64("bytes", n))
	}

	rec.Describe(in)
	res.Record = rec
	res.OK = true
	log.Debug("Read file", zap.Int64("bytes", fi.Size()))
	return res
}

var errIsDirectory = errors.New("is a directory")

// open opens path for reading, given the result of a prior Stat.
func open(path string, fi os.FileInfo, statErr error) (*os.File, error) {
	if statErr != nil {
		return nil, statErr
	}
	if fi.IsDir() {
		return nil, errIsDirectory
	}
	return os.Open(path)
}

func kindName(e Entry) string {
	if e.Text() {
		return "text"
	}
	return e.Kind.String()
}
