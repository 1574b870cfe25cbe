// Package polynomial implements dense univariate polynomials with float64
// coefficients: arithmetic, long division, GCD, calculus, composition,
// evaluation and analytic roots up to degree two.
//
// Coefficients are stored in ascending order of powers: the coefficients
// [a0, a1, a2] represent a0 + a1*x + a2*x^2.
//
// Every comparison against zero uses the tolerance Epsilon. Two polynomials
// are Equal if they have the same number of coefficients and each pair of
// coefficients differs by less than Epsilon.
package polynomial

import (
	"github.com/tuneinsight/polyalg/utils"
	"golang.org/x/exp/slices"
)

// Epsilon is the magnitude below which a coefficient is treated as zero.
// It is the tolerance used by normalization, Degree, Equal, DivMod and GCD.
const Epsilon = 1e-10

// Polynomial is an immutable polynomial with real coefficients.
// Its coefficients are always in canonical form: at least one coefficient,
// and no trailing (highest-order) coefficient of magnitude below Epsilon
// except for the zero polynomial [0].
//
// The zero value is the zero polynomial.
type Polynomial struct {
	coeffs []float64
}

var zeroCoeffs = []float64{0}

// New creates a new Polynomial from the given coefficients, in ascending
// order of powers. The input is copied and trailing coefficients of
// magnitude below Epsilon are removed. No coefficient yields the zero
// polynomial.
func New(coeffs ...float64) Polynomial {
	if len(coeffs) == 0 {
		return Zero()
	}
	return Polynomial{coeffs: utils.TrimTrailing(slices.Clone(coeffs), Epsilon)}
}

// newOwned wraps coeffs without copying. The caller gives up ownership of coeffs.
func newOwned(coeffs []float64) Polynomial {
	if len(coeffs) == 0 {
		return Zero()
	}
	return Polynomial{coeffs: utils.TrimTrailing(coeffs, Epsilon)}
}

// Zero returns the zero polynomial [0].
func Zero() Polynomial {
	return Polynomial{coeffs: []float64{0}}
}

// One returns the constant polynomial [1].
func One() Polynomial {
	return Polynomial{coeffs: []float64{1}}
}

// Monomial returns c * x^n.
func Monomial(c float64, n int) (Polynomial, error) {
	if n < 0 {
		return Polynomial{}, errorf("Monomial", ErrInvalidArgument, "negative degree %d", n)
	}
	coeffs := make([]float64, n+1)
	coeffs[n] = c
	return newOwned(coeffs), nil
}

// NewFromRoots returns the monic polynomial prod_i (x - roots[i]).
// No root yields the constant polynomial [1].
func NewFromRoots(roots ...float64) Polynomial {
	p := One()
	for _, r := range roots {
		p = p.MulPoly(New(-r, 1))
	}
	return p
}

func (p Polynomial) coefficients() []float64 {
	if len(p.coeffs) == 0 {
		return zeroCoeffs
	}
	return p.coeffs
}

// Coefficients returns a copy of the coefficients of p in ascending order of powers.
func (p Polynomial) Coefficients() []float64 {
	return slices.Clone(p.coefficients())
}

// Coefficient returns the coefficient of x^i, which is 0 for i < 0 or i > p.Degree().
func (p Polynomial) Coefficient(i int) float64 {
	c := p.coefficients()
	if i < 0 || i >= len(c) {
		return 0
	}
	return c[i]
}

// Len returns the number of stored coefficients.
func (p Polynomial) Len() int {
	return len(p.coefficients())
}

// Degree returns the degree of p. The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	c := p.coefficients()
	if len(c) == 1 && utils.IsNegligible(c[0], Epsilon) {
		return 0
	}
	return len(c) - 1
}

// LeadingCoefficient returns the coefficient of x^p.Degree().
func (p Polynomial) LeadingCoefficient() float64 {
	c := p.coefficients()
	return c[len(c)-1]
}

// IsZero returns true if all the coefficients of p are within Epsilon of zero.
func (p Polynomial) IsZero() bool {
	return utils.AllNegligible(p.coefficients(), Epsilon)
}

// Equal returns true if p and other have the same number of coefficients and
// every pair of coefficients differs by less than Epsilon.
func (p Polynomial) Equal(other Polynomial) bool {
	return p.EqualWithin(other, Epsilon)
}

// EqualWithin is Equal with a caller-chosen tolerance.
func (p Polynomial) EqualWithin(other Polynomial, tol float64) bool {
	return utils.EqualWithin(p.coefficients(), other.coefficients(), tol)
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	return Polynomial{coeffs: p.Coefficients()}
}
