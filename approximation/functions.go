package approximation

import (
	"math/big"

	"github.com/tuneinsight/polyalg/utils/bignum"
)

// Exp is x -> exp(x).
func Exp(x *big.Float) *big.Float {
	return bignum.Exp(new(big.Float).Set(x))
}

// Log is x -> ln(x), defined for x > 0. It panics otherwise, which Chebyshev
// and Measure report as polynomial.ErrInvalidArgument.
func Log(x *big.Float) *big.Float {
	return bignum.Log(new(big.Float).Set(x))
}

// Sigmoid is x -> 1/(1+exp(-x)).
func Sigmoid(x *big.Float) *big.Float {
	return bignum.Sigmoid(x)
}
