// Package preview renders bounded textual previews of decoded arrays.
//
// A preview shows at most Limit leading elements followed by an ellipsis when
// more elements exist. Doubles are always printed with two fixed decimals and
// never in exponent form. All functions are pure.
package preview

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DefaultLimit is the number of elements shown when no limit is configured.
const DefaultLimit = 3

// Ellipsis marks elements left out of a preview.
const Ellipsis = "..."

// Integer is any integer type stored in the pipeline files.
type Integer interface {
	~uint8 | ~int8 | ~uint16 | ~uint32 | ~uint64 | ~int | ~int64
}

// Float formats v with two fixed decimals.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Int formats an integer in decimal.
func Int[T Integer](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// Count returns how many of n elements a preview with the given limit shows.
func Count(n, limit int) int {
	return max(0, min(n, limit))
}

// More reports whether a preview of n elements needs an ellipsis.
func More(n, limit int) bool {
	return n > max(limit, 0)
}

// Items formats the first Count(n, limit) elements with item and appends
// Ellipsis iff n > limit.
func Items(n, limit int, item func(i int) string) []string {
	out := make([]string, 0, Count(n, limit)+1)
	for i := 0; i < Count(n, limit); i++ {
		out = append(out, item(i))
	}
	if More(n, limit) {
		out = append(out, Ellipsis)
	}
	return out
}

// List joins Items with ", ".
func List(n, limit int, item func(i int) string) string {
	return strings.Join(Items(n, limit, item), ", ")
}

// Floats previews a list of doubles.
func Floats(xs []float64, limit int) string {
	return List(len(xs), limit, func(i int) string { return Float(xs[i]) })
}

// Ints previews a list of integers.
func Ints[T Integer](xs []T, limit int) string {
	return List(len(xs), limit, func(i int) string { return Int(xs[i]) })
}

// Tuple renders every element of xs as "[a, b, c]".
func Tuple(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = Float(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// IntTuple renders every element of xs as "[a, b, c]".
func IntTuple[T Integer](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = Int(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Dims renders a grid size as "4 x 4 x 2".
func Dims[T Integer](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = Int(x)
	}
	return strings.Join(parts, " x ")
}

// Scales renders voxel spacings as "1.00 x 1.00 x 2.50".
func Scales(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = Float(x)
	}
	return strings.Join(parts, " x ")
}

// Matrix renders each row of m as space-separated fixed-point values.
// Matrices are always shown in full.
func Matrix(m mat.Matrix) []string {
	if m == nil {
		return nil
	}
	r, c := m.Dims()
	rows := make([]string, r)
	parts := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			parts[j] = Float(m.At(i, j))
		}
		rows[i] = strings.Join(parts, " ")
	}
	return rows
}
