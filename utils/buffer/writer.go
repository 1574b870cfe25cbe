package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes c to w in little-endian order.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]
	binary.LittleEndian.PutUint64(buf, c)
	nint, err := w.Write(buf)
	return int64(nint), err
}

// WriteUint64Slice writes c to w, each word in little-endian order.
// It fills the internal buffer of w, flushes, and repeats until c is consumed.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {
	return writeWords(w, len(c), func(i int) uint64 { return c[i] })
}

// WriteFloat64Slice writes the IEEE-754 bits of c to w.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {
	return writeWords(w, len(c), func(i int) uint64 { return math.Float64bits(c[i]) })
}

func writeWords(w Writer, size int, word func(i int) uint64) (n int64, err error) {

	for start := 0; start < size; {

		available := w.Available() >> 3

		if available == 0 {
			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot WriteUint64Slice: available buffer/8 is zero even after flush")
			}
		}

		end := start + available
		if end > size {
			end = size
		}

		buf := w.AvailableBuffer()[:(end-start)<<3]
		for i := start; i < end; i++ {
			binary.LittleEndian.PutUint64(buf[(i-start)<<3:], word(i))
		}

		var inc int
		inc, err = w.Write(buf)
		n += int64(inc)
		if err != nil {
			return
		}

		start = end
	}

	return
}
