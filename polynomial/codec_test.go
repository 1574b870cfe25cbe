package polynomial

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polyalg/utils/buffer"
)

func TestSerialization(t *testing.T) {

	p := New(1, -2, 0.25, 1e-3)

	t.Run("MarshalBinary", func(t *testing.T) {
		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, p.BinarySize())
		require.Equal(t, 8+4*8, len(data))

		var q Polynomial
		require.NoError(t, q.UnmarshalBinary(data))
		require.Equal(t, p.Coefficients(), q.Coefficients())
	})

	t.Run("WriterReader", func(t *testing.T) {
		w := new(bytes.Buffer)
		n, err := p.WriteTo(w)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)

		var q Polynomial
		n, err = q.ReadFrom(w)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)
		require.True(t, p.Equal(q))
	})

	t.Run("Buffer", func(t *testing.T) {
		buf := buffer.NewBufferSize(p.BinarySize())
		_, err := p.WriteTo(buf)
		require.NoError(t, err)

		var q Polynomial
		_, err = q.ReadFrom(buf)
		require.NoError(t, err)
		require.True(t, p.Equal(q))
	})

	t.Run("Canonicalize", func(t *testing.T) {
		// Length 3 followed by [1, 2, 0].
		data := make([]byte, 8+3*8)
		data[0] = 3
		copy(data[8:], mustMarshal(t, New(1, 2))[8:])

		var q Polynomial
		require.NoError(t, q.UnmarshalBinary(data))
		require.Equal(t, []float64{1, 2}, q.Coefficients())

		data = make([]byte, 8)
		require.NoError(t, q.UnmarshalBinary(data))
		require.Equal(t, []float64{0}, q.Coefficients())
	})

	t.Run("Truncated", func(t *testing.T) {
		data := mustMarshal(t, p)
		var q Polynomial
		require.Error(t, q.UnmarshalBinary(data[:len(data)-3]))
	})

	t.Run("OversizedLength", func(t *testing.T) {
		q := New(4, 5)

		for _, data := range [][]byte{
			{0, 0, 0, 0x10, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0x10},
			{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8},
		} {
			require.Error(t, q.UnmarshalBinary(data))

			_, err := q.ReadFrom(bytes.NewReader(data))
			require.Error(t, err)
		}

		// The remaining input is checked before allocating.
		require.ErrorIs(t, q.UnmarshalBinary([]byte{0, 0, 0, 0x10, 0, 0, 0, 0}), io.ErrUnexpectedEOF)

		require.Equal(t, []float64{4, 5}, q.Coefficients())
	})

	t.Run("JSON", func(t *testing.T) {
		data, err := json.Marshal(New(1, -2, 1))
		require.NoError(t, err)
		require.JSONEq(t, `{"coefficients":[1,-2,1]}`, string(data))

		var q Polynomial
		require.NoError(t, json.Unmarshal(data, &q))
		require.Equal(t, []float64{1, -2, 1}, q.Coefficients())

		require.NoError(t, json.Unmarshal([]byte(`{"coefficients":[3,0,0]}`), &q))
		require.Equal(t, []float64{3}, q.Coefficients())

		require.NoError(t, json.Unmarshal([]byte(`{}`), &q))
		require.Equal(t, []float64{0}, q.Coefficients())

		require.Error(t, json.Unmarshal([]byte(`{"coefficients":"x"}`), &q))
	})
}

func mustMarshal(t *testing.T, p Polynomial) []byte {
	data, err := p.MarshalBinary()
	require.NoError(t, err)
	return data
}
