package polynomial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoots(t *testing.T) {

	testCases := []struct {
		name   string
		coeffs []float64
		want   []complex128
	}{
		{"Constant", []float64{5}, []complex128{}},
		{"Zero", []float64{0}, []complex128{}},
		{"Linear", []float64{6, -2}, []complex128{3}},
		{"TwoReal", []float64{-6, 1, 1}, []complex128{2, -3}},
		{"Double", []float64{1, -2, 1}, []complex128{1, 1}},
		{"Complex", []float64{5, 0, 1}, []complex128{complex(0, math.Sqrt(5)), complex(0, -math.Sqrt(5))}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {

			p := New(tc.coeffs...)

			roots, err := p.Roots()
			require.NoError(t, err)
			require.Len(t, roots, len(tc.want))

			for i := range roots {
				require.InDelta(t, real(tc.want[i]), real(roots[i]), 1e-12)
				require.InDelta(t, imag(tc.want[i]), imag(roots[i]), 1e-12)

				y := p.EvaluateComplex(roots[i])
				require.InDelta(t, 0, real(y), 1e-9)
				require.InDelta(t, 0, imag(y), 1e-9)
			}
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		_, err := NewFromRoots(1, 2, 3).Roots()
		require.ErrorIs(t, err, ErrUnsupportedOperation)

		_, err = NewFromRoots(1, 2, 3).RealRoots()
		require.ErrorIs(t, err, ErrUnsupportedOperation)
	})

	t.Run("RealRoots", func(t *testing.T) {
		roots, err := NewFromRoots(4, -0.5).RealRoots()
		require.NoError(t, err)
		require.Len(t, roots, 2)
		require.InDelta(t, 4, roots[0], 1e-12)
		require.InDelta(t, -0.5, roots[1], 1e-12)

		roots, err = New(5, 0, 1).RealRoots()
		require.NoError(t, err)
		require.Empty(t, roots)
	})
}
