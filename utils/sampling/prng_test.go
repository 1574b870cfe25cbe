package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polyalg/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("Reset", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			_, err = Hb.Read(sum1)
			require.NoError(t, err)
		}

		Hb.Reset()

		_, err = Ha.Read(sum0)
		require.NoError(t, err)
		_, err = Hb.Read(sum1)
		require.NoError(t, err)

		require.Equal(t, sum0, sum1)
		require.Equal(t, key, Ha.Key())
	})

	t.Run("KeyFromSeed", func(t *testing.T) {
		k0 := sampling.KeyFromSeed([]byte("polynomial"))
		k1 := sampling.KeyFromSeed([]byte("polynomial"))
		k2 := sampling.KeyFromSeed([]byte("polynomials"))
		require.Len(t, k0, sampling.KeySize)
		require.Equal(t, k0, k1)
		require.NotEqual(t, k0, k2)

		prng, err := sampling.NewKeyedPRNGFromSeed([]byte("polynomial"))
		require.NoError(t, err)
		require.Equal(t, k0, prng.Key())
	})

	t.Run("ThreadSafePRNG", func(t *testing.T) {
		prng, err := sampling.NewPRNG()
		require.NoError(t, err)
		buf := make([]byte, 32)
		n, err := prng.Read(buf)
		require.NoError(t, err)
		require.Equal(t, 32, n)
	})
}

func TestRandFloat64(t *testing.T) {
	prng, err := sampling.NewKeyedPRNGFromSeed([]byte("RandFloat64"))
	require.NoError(t, err)

	for i := 0; i < 1024; i++ {
		f, err := sampling.RandFloat64(prng, -2, 3)
		require.NoError(t, err)
		require.GreaterOrEqual(t, f, -2.0)
		require.Less(t, f, 3.0)
	}

	s, err := sampling.RandSign(prng)
	require.NoError(t, err)
	require.Contains(t, []float64{-1, 1}, s)
}
