package polynomial

import (
	"math/big"

	"github.com/tuneinsight/polyalg/utils/bignum"
)

// Derivative returns the n-th derivative of p. The 0-th derivative is p itself
// and differentiating a constant yields the zero polynomial.
func (p Polynomial) Derivative(n int) (Polynomial, error) {

	if n < 0 {
		return Polynomial{}, errorf("Derivative", ErrInvalidArgument, "negative order %d", n)
	}

	c := p.Coefficients()

	for k := 0; k < n; k++ {

		if len(c) <= 1 {
			return Zero(), nil
		}

		for i := 1; i < len(c); i++ {
			c[i-1] = float64(i) * c[i]
		}

		c = c[:len(c)-1]
	}

	return newOwned(c), nil
}

// Integrate returns the antiderivative of p whose value at zero is constant.
func (p Polynomial) Integrate(constant float64) Polynomial {
	a := p.coefficients()
	r := make([]float64, len(a)+1)
	r[0] = constant
	for i := range a {
		r[i+1] = a[i] / float64(i+1)
	}
	return newOwned(r)
}

// DefiniteIntegral returns the integral of p over [a, b].
// Swapping a and b negates the result.
func (p Polynomial) DefiniteIntegral(a, b float64) float64 {
	F := p.Integrate(0)
	return F.Evaluate(b) - F.Evaluate(a)
}

// DefiniteIntegralBig is DefiniteIntegral carried out in arbitrary precision.
// The precision of the result is the maximum of the precisions of a and b.
func (p Polynomial) DefiniteIntegralBig(a, b *big.Float) *big.Float {

	prec := a.Prec()
	if b.Prec() > prec {
		prec = b.Prec()
	}

	src := p.coefficients()
	F := make([]*big.Float, len(src)+1)
	F[0] = new(big.Float).SetPrec(prec)
	for i := range src {
		F[i+1] = bignum.NewFloat(src[i], prec)
		F[i+1].Quo(F[i+1], bignum.NewFloat(i+1, prec))
	}

	ya := bignum.MonomialEval(new(big.Float).SetPrec(prec).Set(a), F)
	yb := bignum.MonomialEval(new(big.Float).SetPrec(prec).Set(b), F)

	return yb.Sub(yb, ya)
}
