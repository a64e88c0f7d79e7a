// Package flow reads the result directory of a 4D flow MRI analysis and
// renders its files as a bounded, human-readable report.
package flow

import (
	"errors"

	"github.com/robert-malhotra/go-bloodflow/internal/binary"
	"github.com/robert-malhotra/go-bloodflow/internal/shape"
)

// Common errors
var (
	ErrMissingFile  = errors.New("file does not exist")
	ErrOpenFailure  = errors.New("could not open file")
	ErrNotDirectory = errors.New("not a directory")

	// ErrTruncated is returned when a file ends before its record is complete.
	ErrTruncated = binary.ErrTruncated

	// ErrUnknownDimension means a record grammar referenced a count it never
	// read. It indicates a decoder bug, not a bad file.
	ErrUnknownDimension = shape.ErrUnknownDimension
)
