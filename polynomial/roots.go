package polynomial

import (
	"math"
	"math/cmplx"

	"github.com/tuneinsight/polyalg/utils"
)

// Roots returns the roots of p, which must have degree at most two.
//
//   - Degree 0 yields no root, including for the zero polynomial.
//   - Degree 1 yields -c0/c1.
//   - Degree 2 yields (-b+sqrt(d))/2a then (-b-sqrt(d))/2a for d = b^2-4ac >= 0,
//     and the conjugate pair re+i*im, re-i*im otherwise.
//
// Higher degrees return ErrUnsupportedOperation.
func (p Polynomial) Roots() ([]complex128, error) {

	c := p.coefficients()

	switch p.Degree() {
	case 0:
		return []complex128{}, nil
	case 1:
		return []complex128{complex(-c[0]/c[1], 0)}, nil
	case 2:

		a, b, k := c[2], c[1], c[0]

		disc := b*b - 4*a*k

		if disc >= 0 {
			sqrt := math.Sqrt(disc)
			return []complex128{
				complex((-b+sqrt)/(2*a), 0),
				complex((-b-sqrt)/(2*a), 0),
			}, nil
		}

		re := -b / (2 * a)
		im := math.Sqrt(-disc) / (2 * a)

		return []complex128{
			complex(re, im),
			cmplx.Conj(complex(re, im)),
		}, nil

	default:
		return nil, errorf("Roots", ErrUnsupportedOperation, "analytic roots are only available up to degree 2 but degree is %d", p.Degree())
	}
}

// RealRoots returns the roots of p whose imaginary part is within Epsilon of zero.
func (p Polynomial) RealRoots() ([]float64, error) {

	roots, err := p.Roots()
	if err != nil {
		return nil, err
	}

	reals := make([]float64, 0, len(roots))
	for _, r := range roots {
		if utils.IsNegligible(imag(r), Epsilon) {
			reals = append(reals, real(r))
		}
	}

	return reals, nil
}
