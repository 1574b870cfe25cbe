package polynomial

import (
	"github.com/tuneinsight/polyalg/utils"
)

// AddPoly returns p + q.
func (p Polynomial) AddPoly(q Polynomial) Polynomial {
	b := q.coefficients()
	r := utils.PadTo(p.coefficients(), len(b))
	for i := range b {
		r[i] += b[i]
	}
	return newOwned(r)
}

// SubPoly returns p - q.
func (p Polynomial) SubPoly(q Polynomial) Polynomial {
	b := q.coefficients()
	r := utils.PadTo(p.coefficients(), len(b))
	for i := range b {
		r[i] -= b[i]
	}
	return newOwned(r)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return p.MulScalar(-1)
}

// AddScalar returns p + c.
func (p Polynomial) AddScalar(c float64) Polynomial {
	return p.AddPoly(New(c))
}

// MulScalar returns c * p.
func (p Polynomial) MulScalar(c float64) Polynomial {
	a := p.coefficients()
	r := make([]float64, len(a))
	for i := range a {
		r[i] = a[i] * c
	}
	return newOwned(r)
}

// MulPoly returns the product p * q. The degrees of non-zero operands add up.
func (p Polynomial) MulPoly(q Polynomial) Polynomial {
	a, b := p.coefficients(), q.coefficients()
	r := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			r[i+j] += a[i] * b[j]
		}
	}
	return newOwned(r)
}

// Add returns p + op, where op is a Polynomial or a real scalar.
func (p Polynomial) Add(op Operand) (Polynomial, error) {
	q, err := resolve("Add", op)
	if err != nil {
		return Polynomial{}, err
	}
	return p.AddPoly(q), nil
}

// Sub returns p - op, where op is a Polynomial or a real scalar.
func (p Polynomial) Sub(op Operand) (Polynomial, error) {
	q, err := resolve("Sub", op)
	if err != nil {
		return Polynomial{}, err
	}
	return p.SubPoly(q), nil
}

// Mul returns p * op. A scalar op scales every coefficient, a Polynomial op
// is multiplied by convolution of the coefficients.
func (p Polynomial) Mul(op Operand) (Polynomial, error) {
	if c, ok := asScalar(op); ok {
		return p.MulScalar(c), nil
	}
	q, err := resolve("Mul", op)
	if err != nil {
		return Polynomial{}, err
	}
	return p.MulPoly(q), nil
}

// Pow returns p^n by square-and-multiply. p^0 is [1] for every p.
func (p Polynomial) Pow(n int) (Polynomial, error) {

	if n < 0 {
		return Polynomial{}, errorf("Pow", ErrInvalidArgument, "negative exponent %d", n)
	}

	result := One()
	base := p

	for n > 0 {
		if n&1 == 1 {
			result = result.MulPoly(base)
		}

		if n >>= 1; n > 0 {
			base = base.MulPoly(base)
		}
	}

	return result, nil
}

// DivScalar returns p / c.
func (p Polynomial) DivScalar(c float64) (Polynomial, error) {

	if utils.IsNegligible(c, Epsilon) {
		return Polynomial{}, errorf("DivScalar", ErrDivisionByZero, "|%g| < %g", c, Epsilon)
	}

	a := p.coefficients()
	r := make([]float64, len(a))
	for i := range a {
		r[i] = a[i] / c
	}
	return newOwned(r), nil
}

// Div divides p by op.
// If op is a real scalar, quo is p / op and rem is the zero polynomial.
// If op is a Polynomial, Div is DivMod.
func (p Polynomial) Div(op Operand) (quo, rem Polynomial, err error) {

	if c, ok := asScalar(op); ok {
		if quo, err = p.DivScalar(c); err != nil {
			return Polynomial{}, Polynomial{}, err
		}
		return quo, Zero(), nil
	}

	d, ok := asPolynomial(op)
	if !ok {
		return Polynomial{}, Polynomial{}, errorf("Div", ErrTypeMismatch, "operand must be a Polynomial or a real scalar but is %T", op)
	}

	return p.DivMod(d)
}
