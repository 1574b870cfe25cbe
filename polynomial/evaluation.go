package polynomial

import (
	"math/big"

	"github.com/tuneinsight/polyalg/utils/bignum"
)

// Evaluate returns p(x) using the Horner scheme.
func (p Polynomial) Evaluate(x float64) (y float64) {
	c := p.coefficients()
	y = c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		y = y*x + c[i]
	}
	return
}

// EvaluateComplex returns p(z) for a complex argument.
func (p Polynomial) EvaluateComplex(z complex128) (y complex128) {
	c := p.coefficients()
	y = complex(c[len(c)-1], 0)
	for i := len(c) - 2; i >= 0; i-- {
		y = y*z + complex(c[i], 0)
	}
	return
}

// EvaluateBig returns p(x) in arbitrary precision.
// The result has the precision of x.
func (p Polynomial) EvaluateBig(x *big.Float) (y *big.Float) {
	return bignum.MonomialEval(x, p.BigCoefficients(x.Prec()))
}

// BigCoefficients returns the coefficients of p as *big.Float with prec bits of precision.
func (p Polynomial) BigCoefficients(prec uint) (coeffs []*big.Float) {
	c := p.coefficients()
	coeffs = make([]*big.Float, len(c))
	for i := range c {
		coeffs[i] = bignum.NewFloat(c[i], prec)
	}
	return
}
