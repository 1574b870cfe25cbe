// Package sampling implements sampling of bytes and floating-point values from a PRNG.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

// RandUint64 reads a uniform value in [0, 2^64-1] from r.
func RandUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("cannot RandUint64: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// RandFloat64 reads a uniform value in [min, max) from r.
func RandFloat64(r io.Reader, min, max float64) (float64, error) {
	u, err := RandUint64(r)
	if err != nil {
		return 0, fmt.Errorf("cannot RandFloat64: %w", err)
	}
	// 53 random bits give every representable multiple of 2^-53 in [0, 1).
	f := float64(u>>11) / (1 << 53)
	return min + f*(max-min), nil
}

// RandSign reads a uniform value in {-1, 1} from r.
func RandSign(r io.Reader) (float64, error) {
	u, err := RandUint64(r)
	if err != nil {
		return 0, fmt.Errorf("cannot RandSign: %w", err)
	}
	if u&1 == 0 {
		return 1, nil
	}
	return -1, nil
}
