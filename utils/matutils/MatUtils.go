// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// MaxVec finds and returns the index of the maximum value in a vector.
// If multiple equal max values exist, only the first one is returned.
func MaxVec(values mat.Vector) int {
	max, idx := values.AtVec(0), 0

	for i := 1; i < values.Len(); i++ {
		if values.AtVec(i) > max {
			max = values.AtVec(i)
			idx = i
		}
	}
	return idx
}

// MaxAbsDiff returns the largest absolute element-wise difference
// between a and b, ignoring elements where either vector is NaN. MaxAbsDiff
// panics if the vectors have different lengths.
func MaxAbsDiff(a, b mat.Vector) float64 {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("maxAbsDiff: cannot compare vectors of length "+
			"%d and %d", a.Len(), b.Len()))
	}

	max := 0.0
	for i := 0; i < a.Len(); i++ {
		diff := math.Abs(a.AtVec(i) - b.AtVec(i))
		if !math.IsNaN(diff) && diff > max {
			max = diff
		}
	}
	return max
}
