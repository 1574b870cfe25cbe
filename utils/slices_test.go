package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrimTrailing(t *testing.T) {
	t.Run("KeepsNonZeroTail", func(t *testing.T) {
		require.Equal(t, []float64{1, 2, 3}, TrimTrailing([]float64{1, 2, 3}, 1e-10))
	})

	t.Run("StripsNegligibleTail", func(t *testing.T) {
		require.Equal(t, []float64{1, 2}, TrimTrailing([]float64{1, 2, 0, 1e-13}, 1e-10))
	})

	t.Run("NeverBelowOne", func(t *testing.T) {
		require.Equal(t, []float64{0}, TrimTrailing([]float64{0, 0, 0}, 1e-10))
		require.Equal(t, []float64{1e-12}, TrimTrailing([]float64{1e-12}, 1e-10))
	})

	t.Run("SharesBackingArray", func(t *testing.T) {
		s := []float64{4, 5, 0}
		r := TrimTrailing(s, 1e-10)
		r[0] = 9
		require.Equal(t, 9.0, s[0])
	})
}

func TestAllNegligible(t *testing.T) {
	require.True(t, AllNegligible([]float64{}, 1e-10))
	require.True(t, AllNegligible([]float64{0, 1e-11, -1e-11}, 1e-10))
	require.False(t, AllNegligible([]float64{0, 1e-9}, 1e-10))
}

func TestEqualWithin(t *testing.T) {
	require.True(t, EqualWithin([]float64{1, 2}, []float64{1 + 1e-12, 2}, 1e-10))
	require.False(t, EqualWithin([]float64{1, 2}, []float64{1, 2, 0}, 1e-10))
	require.False(t, EqualWithin([]float64{1, 2}, []float64{1, 2.1}, 1e-10))
}

func TestPadTo(t *testing.T) {
	require.Equal(t, []float64{1, 2, 0, 0}, PadTo([]float64{1, 2}, 4))
	require.Equal(t, []int{1, 2, 3}, PadTo([]int{1, 2, 3}, 1))
}

func TestReverseInPlace(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	ReverseInPlace(s)
	require.Equal(t, []int{5, 4, 3, 2, 1}, s)

	e := []int{}
	ReverseInPlace(e)
	require.Empty(t, e)
}
