package bignum

import (
	"math/big"
)

// Interval stores the domain [A, B] of a polynomial interpolation
// and the number of Nodes used for it.
type Interval struct {
	Nodes int
	A, B  big.Float
}

// NewInterval returns the Interval [a, b] with the given number of nodes and
// prec bits of precision.
func NewInterval(a, b float64, nodes int, prec uint) Interval {
	return Interval{
		Nodes: nodes,
		A:     *NewFloat(a, prec),
		B:     *NewFloat(b, prec),
	}
}

// Prec returns the precision of the interval bounds.
func (inter *Interval) Prec() uint {
	return inter.A.Prec()
}
