package errors

import (
	"fmt"
	"math"
)

// CheckMatrix scans a matrix for NaN or Inf and reports the first offending
// row. Distances and interpolation are meaningless on non-finite features.
func CheckMatrix(operation string, matrix interface{ At(int, int) float64 }, rows, cols int) error {
	for i := 0; i < rows; i++ {
		var unstable []float64
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				unstable = append(unstable, v)
			}
		}
		if len(unstable) > 0 {
			return NewNumericalInstabilityError(operation, unstable, i)
		}
	}
	return nil
}

// CheckBinary verifies that every value of a label matrix is exactly 0 or 1.
func CheckBinary(operation string, matrix interface{ At(int, int) float64 }, rows, cols int) error {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := matrix.At(i, j); v != 0 && v != 1 {
				return NewValueError(operation,
					fmt.Sprintf("label matrix must be binary, found %g at row %d, column %d", v, i, j))
			}
		}
	}
	return nil
}
