// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Max returns the maximum value of the input values.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// Min returns the minimum value of the input values.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Abs returns |x|.
func Abs[V constraints.Signed | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

// IsNegligible reports whether |x| < eps.
func IsNegligible[V constraints.Float](x, eps V) bool {
	return Abs(x) < eps
}
