package polynomial

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polyalg/utils/bignum"
)

func TestDerivative(t *testing.T) {

	p := New(1, 2, 3)

	for n, want := range [][]float64{
		{1, 2, 3},
		{2, 6},
		{6},
		{0},
		{0},
	} {
		d, err := p.Derivative(n)
		require.NoError(t, err)
		require.Equal(t, want, d.Coefficients())
	}

	d, err := New(7).Derivative(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, d.Coefficients())

	_, err = p.Derivative(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIntegrate(t *testing.T) {

	require.Equal(t, []float64{1, 2, 3}, New(2, 6).Integrate(1).Coefficients())
	require.Equal(t, []float64{0, 5}, New(5).Integrate(0).Coefficients())
	require.Equal(t, []float64{4}, Zero().Integrate(4).Coefficients())

	t.Run("Definite", func(t *testing.T) {
		p := New(0, 0, 3)
		require.InDelta(t, 8.0, p.DefiniteIntegral(0, 2), 1e-12)
		require.InDelta(t, -8.0, p.DefiniteIntegral(2, 0), 1e-12)
		require.Equal(t, 0.0, p.DefiniteIntegral(1, 1))
	})

	t.Run("DefiniteBig", func(t *testing.T) {
		prec := uint(128)
		p := New(1, 0, 3)

		y := p.DefiniteIntegralBig(bignum.NewFloat(-1, prec), bignum.NewFloat(2, prec))
		require.Equal(t, prec, y.Prec())

		f, _ := y.Float64()
		require.InDelta(t, 12.0, f, 1e-15)
		require.InDelta(t, p.DefiniteIntegral(-1, 2), f, 1e-12)
	})

	t.Run("EvaluateBig", func(t *testing.T) {
		x := new(big.Float).SetPrec(256).SetFloat64(0.5)
		y, _ := New(1, 2, 4).EvaluateBig(x).Float64()
		require.Equal(t, 3.0, y)
	})
}
