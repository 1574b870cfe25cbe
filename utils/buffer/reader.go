package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ReadUint64 reads a little-endian uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	var nint int
	if nint, err = r.Read(bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadUint64Slice fills c with little-endian words read from r.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {
	return readWords(r, len(c), func(i int, w uint64) { c[i] = w })
}

// ReadFloat64Slice fills c with float64 values decoded from their IEEE-754 bits.
func ReadFloat64Slice(r Reader, c []float64) (n int64, err error) {
	return readWords(r, len(c), func(i int, w uint64) { c[i] = math.Float64frombits(w) })
}

func readWords(r Reader, size int, set func(i int, w uint64)) (n int64, err error) {

	for start := 0; start < size; {

		// Peek at most what is left to decode
		want := (size - start) << 3
		if s := r.Size(); s < want {
			want = s
		}

		// Always ask for at least one word so that an exhausted
		// reader reports io.EOF instead of looping.
		if want < 8 {
			want = 8
		}

		var slice []byte
		if slice, err = r.Peek(want); err != nil {
			return n, fmt.Errorf("cannot ReadUint64Slice: %w", err)
		}

		buffered := len(slice) >> 3

		for i := 0; i < buffered; i++ {
			set(start+i, binary.LittleEndian.Uint64(slice[i<<3:]))
		}

		var inc int
		inc, err = r.Discard(buffered << 3)
		n += int64(inc)
		if err != nil {
			return
		}

		start += buffered
	}

	return
}
