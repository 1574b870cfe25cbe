package polynomial

// Compose returns the polynomial x -> p(inner(x)).
// p.Compose(New(0, 1)) is p, and composing with a constant c yields the constant p(c).
func (p Polynomial) Compose(inner Polynomial) Polynomial {

	c := p.coefficients()

	result := Zero()
	power := One()

	for i := range c {

		result = result.AddPoly(power.MulScalar(c[i]))

		if i != len(c)-1 {
			power = power.MulPoly(inner)
		}
	}

	return result
}
