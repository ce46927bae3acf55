package utils

import "math"

// FloatEquals compares two floats for equality within an absolute
// tolerance. Two NaN values are considered equal.
func FloatEquals(x1, x2, absTol float64) bool {
	return x1 == x2 || math.Abs(x1-x2) < absTol || (math.IsNaN(x1) && math.IsNaN(x2))
}
