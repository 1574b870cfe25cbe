package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMaxAbs(t *testing.T) {
	require.Equal(t, 3, Max(3, -1))
	require.Equal(t, -1, Min(3, -1))
	require.Equal(t, 2.5, Max(2.5, 2.5))
	require.Equal(t, 4.0, Abs(-4.0))
	require.Equal(t, int64(7), Abs(int64(7)))
}

func TestIsNegligible(t *testing.T) {
	require.True(t, IsNegligible(1e-12, 1e-10))
	require.True(t, IsNegligible(-1e-12, 1e-10))
	require.False(t, IsNegligible(1e-10, 1e-10))
	require.False(t, IsNegligible(-0.5, 1e-10))
}
