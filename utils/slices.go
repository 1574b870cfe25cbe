package utils

import (
	"golang.org/x/exp/constraints"
)

// TrimTrailing reslices s so that its last element has magnitude
// at least eps. The returned slice keeps at least one element and
// shares the backing array of s.
func TrimTrailing[V constraints.Float](s []V, eps V) []V {
	n := len(s)
	for n > 1 && IsNegligible(s[n-1], eps) {
		n--
	}
	return s[:n]
}

// AllNegligible returns true if every element of s has magnitude smaller
// than eps. It returns true on an empty slice.
func AllNegligible[V constraints.Float](s []V, eps V) bool {
	for _, si := range s {
		if !IsNegligible(si, eps) {
			return false
		}
	}
	return true
}

// EqualWithin checks that a and b have the same length and that
// |a[i]-b[i]| < eps for every index.
func EqualWithin[V constraints.Float](a, b []V, eps V) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !IsNegligible(a[i]-b[i], eps) {
			return false
		}
	}
	return true
}

// PadTo returns a new slice of length max(n, len(s)) holding s followed by zeros.
func PadTo[V constraints.Integer | constraints.Float](s []V, n int) (r []V) {
	r = make([]V, Max(n, len(s)))
	copy(r, s)
	return
}

// ReverseInPlace reverses the order of the elements of s.
func ReverseInPlace[V any](s []V) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
