package polynomial

import (
	"io"

	"github.com/tuneinsight/polyalg/utils/sampling"
)

// NewRandom returns a polynomial of the given degree whose coefficients are
// read from prng, uniformly in [-bound, bound). The leading coefficient has a
// magnitude in [bound/2, bound) so that the degree is exact.
//
// A sampling.KeyedPRNG makes the output reproducible.
func NewRandom(prng io.Reader, degree int, bound float64) (Polynomial, error) {

	if degree < 0 {
		return Polynomial{}, errorf("NewRandom", ErrInvalidArgument, "negative degree %d", degree)
	}

	if bound < 2*Epsilon {
		return Polynomial{}, errorf("NewRandom", ErrInvalidArgument, "bound %g must be at least %g", bound, 2*Epsilon)
	}

	coeffs := make([]float64, degree+1)

	var err error
	for i := 0; i < degree; i++ {
		if coeffs[i], err = sampling.RandFloat64(prng, -bound, bound); err != nil {
			return Polynomial{}, err
		}
	}

	var lead, sign float64
	if lead, err = sampling.RandFloat64(prng, bound/2, bound); err != nil {
		return Polynomial{}, err
	}

	if sign, err = sampling.RandSign(prng); err != nil {
		return Polynomial{}, err
	}

	coeffs[degree] = sign * lead

	return newOwned(coeffs), nil
}
