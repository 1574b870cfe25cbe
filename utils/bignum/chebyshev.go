package bignum

import (
	"math/big"
)

// ChebyshevApproximation interpolates f at interval.Nodes Chebyshev nodes of
// [A, B] and returns the coefficients c such that f(x) ~ sum c[i] * Ti(u),
// with u = (2x-a-b)/(b-a). The reference precision is the one of interval.A.
func ChebyshevApproximation(f func(x *big.Float) (y *big.Float), interval Interval) (coeffs []*big.Float) {

	nodes := ChebyshevNodes(interval)

	fi := make([]*big.Float, len(nodes))
	for i := range nodes {
		fi[i] = f(nodes[i])
	}

	return chebyCoeffs(nodes, fi, interval)
}

// ChebyshevNodes returns the interval.Nodes Chebyshev nodes of [A, B] in increasing order.
func ChebyshevNodes(interval Interval) (nodes []*big.Float) {

	prec := interval.Prec()
	n := interval.Nodes

	nodes = make([]*big.Float, n)

	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)

	x := new(big.Float).SetPrec(prec).Add(&interval.A, &interval.B)
	x.Mul(x, half)
	y := new(big.Float).SetPrec(prec).Sub(&interval.B, &interval.A)
	y.Mul(y, half)

	PiOverN := Pi(prec)
	PiOverN.Quo(PiOverN, new(big.Float).SetInt64(int64(n)))

	for k := 1; k < n+1; k++ {
		up := new(big.Float).SetPrec(prec).SetFloat64(float64(k) - 0.5)
		up.Mul(up, PiOverN)
		up = Cos(up)
		up.Mul(up, y)
		up.Add(up, x)
		nodes[n-k] = up
	}

	return
}

func chebyCoeffs(nodes, fi []*big.Float, interval Interval) (coeffs []*big.Float) {

	prec := interval.Prec()

	n := len(nodes)

	coeffs = make([]*big.Float, n)
	for i := range coeffs {
		coeffs[i] = new(big.Float).SetPrec(prec)
	}

	two := new(big.Float).SetPrec(prec).SetInt64(2)

	minusab := new(big.Float).SetPrec(prec).Neg(&interval.A)
	minusab.Sub(minusab, &interval.B)

	bminusa := new(big.Float).SetPrec(prec).Sub(&interval.B, &interval.A)

	u := new(big.Float).SetPrec(prec)
	tmp := new(big.Float).SetPrec(prec)
	T := new(big.Float).SetPrec(prec)
	Tprev := new(big.Float).SetPrec(prec)
	Tnext := new(big.Float).SetPrec(prec)

	for i := 0; i < n; i++ {

		u.Mul(nodes[i], two)
		u.Add(u, minusab)
		u.Quo(u, bminusa)

		Tprev.SetFloat64(1)
		T.Set(u)

		for j := 0; j < n; j++ {

			tmp.Mul(fi[i], Tprev)
			coeffs[j].Add(coeffs[j], tmp)

			Tnext.Mul(u, T)
			Tnext.Mul(Tnext, two)
			Tnext.Sub(Tnext, Tprev)

			Tprev.Set(T)
			T.Set(Tnext)
		}
	}

	N := new(big.Float).SetPrec(prec).SetInt64(int64(n))
	coeffs[0].Quo(coeffs[0], N)

	N.Quo(N, two)
	for i := 1; i < n; i++ {
		coeffs[i].Quo(coeffs[i], N)
	}

	return
}
