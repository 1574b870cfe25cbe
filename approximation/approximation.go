// Package approximation builds polynomial approximations of real functions
// from their Chebyshev interpolants, and measures their error.
package approximation

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/polyalg/polynomial"
	"github.com/tuneinsight/polyalg/utils/bignum"
)

// Interval is a literal description of the interpolation domain [A, B]
// with the number of Chebyshev nodes to use. An interpolant over Nodes
// nodes has degree at most Nodes-1.
type Interval struct {
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Nodes int     `json:"nodes"`
}

// Validate checks that the interval is non-empty and has at least one node.
func (i Interval) Validate() error {
	if i.Nodes < 1 {
		return fmt.Errorf("cannot Validate: Nodes=%d must be at least 1: %w", i.Nodes, polynomial.ErrInvalidArgument)
	}
	if !(i.B > i.A) {
		return fmt.Errorf("cannot Validate: B=%g must be greater than A=%g: %w", i.B, i.A, polynomial.ErrInvalidArgument)
	}
	return nil
}

// MinPrec is the smallest precision accepted by Chebyshev, the one of a float64 mantissa.
const MinPrec = 53

// Chebyshev interpolates f at the Chebyshev nodes of interval, computing the
// interpolant with prec bits of precision, and returns it in the monomial
// basis of x.
//
// If f panics on a node, for example Log on a non-positive value, Chebyshev
// returns polynomial.ErrInvalidArgument.
func Chebyshev(f func(x *big.Float) (y *big.Float), interval Interval, prec uint) (p polynomial.Polynomial, err error) {

	if err = interval.Validate(); err != nil {
		return polynomial.Polynomial{}, fmt.Errorf("cannot Chebyshev: %w", err)
	}

	if prec < MinPrec {
		return polynomial.Polynomial{}, fmt.Errorf("cannot Chebyshev: prec=%d must be at least %d: %w", prec, MinPrec, polynomial.ErrInvalidArgument)
	}

	var coeffs []*big.Float
	if err = evaluate(func() {
		coeffs = bignum.ChebyshevApproximation(f, bignum.NewInterval(interval.A, interval.B, interval.Nodes, prec))
	}); err != nil {
		return polynomial.Polynomial{}, fmt.Errorf("cannot Chebyshev: %w", err)
	}

	return FromChebyshevBasis(coeffs, interval.A, interval.B), nil
}

// evaluate runs fn and converts a panic raised by a sampled function into an error.
func evaluate(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("function evaluation failed: %v: %w", r, polynomial.ErrInvalidArgument)
		}
	}()
	fn()
	return
}

// FromChebyshevBasis returns sum coeffs[k] * Tk(u) in the monomial basis of x,
// where u = (2x-a-b)/(b-a) maps [a, b] onto [-1, 1].
func FromChebyshevBasis(coeffs []*big.Float, a, b float64) polynomial.Polynomial {

	if len(coeffs) == 0 {
		return polynomial.Zero()
	}

	u := polynomial.New(0, 1)

	// T0 = 1, T1 = u, T{k+1} = 2u*Tk - T{k-1}
	Tprev, T := polynomial.One(), u

	c0, _ := coeffs[0].Float64()
	sum := polynomial.New(c0)

	for k := 1; k < len(coeffs); k++ {

		ck, _ := coeffs[k].Float64()
		sum = sum.AddPoly(T.MulScalar(ck))

		Tprev, T = T, u.MulPoly(T).MulScalar(2).SubPoly(Tprev)
	}

	return sum.Compose(polynomial.New(-(a+b)/(b-a), 2/(b-a)))
}
