package polynomial

// Operand is the right-hand side of Add, Sub, Mul and Div.
// Accepted types are Polynomial, *Polynomial, float64, float32, int, int64 and uint64.
// A scalar operand is treated as a polynomial of degree zero.
type Operand interface{}

// asScalar returns the value of op if op is a real scalar.
func asScalar(op Operand) (c float64, ok bool) {
	switch op := op.(type) {
	case float64:
		return op, true
	case float32:
		return float64(op), true
	case int:
		return float64(op), true
	case int64:
		return float64(op), true
	case uint64:
		return float64(op), true
	}
	return 0, false
}

// asPolynomial returns the value of op if op is a Polynomial or a non-nil *Polynomial.
func asPolynomial(op Operand) (p Polynomial, ok bool) {
	switch op := op.(type) {
	case Polynomial:
		return op, true
	case *Polynomial:
		if op != nil {
			return *op, true
		}
	}
	return Polynomial{}, false
}

// resolve converts op into a Polynomial, scalars becoming constant polynomials.
func resolve(method string, op Operand) (Polynomial, error) {
	if p, ok := asPolynomial(op); ok {
		return p, nil
	}
	if c, ok := asScalar(op); ok {
		return New(c), nil
	}
	return Polynomial{}, errorf(method, ErrTypeMismatch, "operand must be a Polynomial or a real scalar but is %T", op)
}
