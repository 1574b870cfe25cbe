package polynomial

import (
	"github.com/tuneinsight/polyalg/utils"
	"golang.org/x/exp/slices"
)

// DivMod returns the quotient and remainder of the long division of p by
// divisor, such that p = quo * divisor + rem with deg(rem) < deg(divisor)
// or rem the zero polynomial.
//
// If p has fewer coefficients than divisor, quo is [0] and rem is p.
func (p Polynomial) DivMod(divisor Polynomial) (quo, rem Polynomial, err error) {

	if divisor.IsZero() {
		return Polynomial{}, Polynomial{}, errorf("DivMod", ErrDivisionByZero, "divisor is the zero polynomial")
	}

	dividend := slices.Clone(p.coefficients())
	d := utils.TrimTrailing(divisor.coefficients(), Epsilon)

	if len(dividend) < len(d) {
		return Zero(), newOwned(dividend), nil
	}

	m := len(d)
	lead := d[m-1]

	// The quotient is produced from its leading coefficient downwards.
	q := make([]float64, 0, len(dividend)-m+1)

	for n := len(dividend); n >= m; n-- {

		coef := dividend[n-1] / lead
		q = append(q, coef)

		// Eliminates the leading term of the dividend.
		offset := n - m
		for i := range d {
			dividend[offset+i] -= coef * d[i]
		}
	}

	utils.ReverseInPlace(q)

	return newOwned(q), newOwned(dividend[:m-1]), nil
}

// Mod returns the remainder of the division of p by divisor.
func (p Polynomial) Mod(divisor Polynomial) (Polynomial, error) {
	_, rem, err := p.DivMod(divisor)
	return rem, err
}

// Monic returns p divided by its leading coefficient.
func (p Polynomial) Monic() (Polynomial, error) {
	if p.IsZero() {
		return Polynomial{}, errorf("Monic", ErrDivisionByZero, "the zero polynomial has no leading coefficient")
	}
	return p.DivScalar(p.LeadingCoefficient())
}

// GCD returns the monic greatest common divisor of p and other, computed with
// the Euclidean algorithm. A remainder is considered zero once all its
// coefficients are within Epsilon of zero.
//
// If both p and other are zero, GCD returns the zero polynomial.
//
// Each step strictly reduces the number of coefficients of the remainder,
// so the loop ends after at most other.Len() divisions.
func (p Polynomial) GCD(other Polynomial) (Polynomial, error) {

	a, b := p, other

	for !b.IsZero() {
		_, r, err := a.DivMod(b)
		if err != nil {
			return Polynomial{}, err
		}
		a, b = b, r
	}

	if utils.IsNegligible(a.LeadingCoefficient(), Epsilon) {
		return a, nil
	}

	return a.DivScalar(a.LeadingCoefficient())
}
