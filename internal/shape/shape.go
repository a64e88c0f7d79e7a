// Package shape tracks the dimension values read during one decode pass.
//
// The pipeline files size every array from counts stored earlier in the same
// stream. A Context records those counts by name so a decoder states which
// dimension an array depends on instead of reusing loose variables. A count
// must be defined before any array sized by it is read; asking for a
// dimension that was never defined is a decoder ordering bug.
package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownDimension is returned when a dimension is used before it was read.
var ErrUnknownDimension = errors.New("unknown dimension")

// ErrOverflow is returned when a product of dimensions does not fit in an int.
var ErrOverflow = errors.New("dimension product overflows")

// Well-known dimension names.
const (
	NumDims       = "numDims"
	NumNonZero    = "numNonZero"
	NumPoints     = "numPoints"
	NumTriangles  = "numTriangles"
	NumTimes      = "numTimes"
	NumSamples    = "numSamples"
	NumSections   = "numSections"
	NumVessels    = "numVessels"
	NumImages     = "numImages"
	NumSlices     = "numSlices"
	NumWrapped    = "numWrapped"
	NumInside     = "numInside"
	NumOutside    = "numOutside"
	NumTargets    = "numTargetIds"
	NumLines      = "numLines"
	NumPlanes     = "numPlanes"
	NumLandmarks  = "numLandmarkPlanes"
	NumFlowJets   = "numFlowJets"
	NumFlowImages = "numFlowImages2DT"
	GridX         = "gridSizeX"
	GridY         = "gridSizeY"
	GridZ         = "gridSizeZ"
	GridT         = "gridSizeT"
)

type entry struct {
	name  string
	value int
}

// Context is an ordered mapping from dimension name to count.
// It is owned by a single decode call and discarded afterwards.
type Context struct {
	parent  *Context
	entries []entry
}

// New returns an empty root context.
func New() *Context {
	return &Context{}
}

// Scope returns a child context. Lookups fall back to the parent, definitions
// stay local, so a repeated sub-record can define the same names on every
// iteration without touching the enclosing scope.
func (c *Context) Scope() *Context {
	return &Context{parent: c}
}

// Define records a dimension. Redefining a name in the same scope panics.
func (c *Context) Define(name string, value int) {
	for _, e := range c.entries {
		if e.name == name {
			panic(fmt.Sprintf("shape: dimension %q defined twice", name))
		}
	}
	c.entries = append(c.entries, entry{name: name, value: value})
}

// Lookup returns the value of name and whether it is defined in this scope or
// any parent.
func (c *Context) Lookup(name string) (int, bool) {
	for s := c; s != nil; s = s.parent {
		for _, e := range s.entries {
			if e.name == name {
				return e.value, true
			}
		}
	}
	return 0, false
}

// Get returns the value of name, failing with ErrUnknownDimension if it has
// not been defined.
func (c *Context) Get(name string) (int, error) {
	v, ok := c.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w %q (defined: %s)", ErrUnknownDimension, name, c)
	}
	return v, nil
}

// Product multiplies the named dimensions. Literal factors can be mixed in
// with Times, e.g. Product(NumPoints, NumTimes) then Times(3).
func (c *Context) Product(names ...string) (int, error) {
	n := 1
	for _, name := range names {
		v, err := c.Get(name)
		if err != nil {
			return 0, err
		}
		n, err = Times(n, v)
		if err != nil {
			return 0, err
		}
	}
	return n, nil
}

// Times multiplies two non-negative counts, failing on overflow.
func Times(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative dimension %d x %d", a, b)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("%w: %d x %d", ErrOverflow, a, b)
	}
	return a * b, nil
}

// Names returns the dimension names visible from c, outermost scope first,
// each scope in definition order.
func (c *Context) Names() []string {
	var scopes []*Context
	for s := c; s != nil; s = s.parent {
		scopes = append(scopes, s)
	}
	var names []string
	for i := len(scopes) - 1; i >= 0; i-- {
		for _, e := range scopes[i].entries {
			names = append(names, e.name)
		}
	}
	return names
}

func (c *Context) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range c.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		v, _ := c.Lookup(name)
		fmt.Fprintf(&sb, "%s=%d", name, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
