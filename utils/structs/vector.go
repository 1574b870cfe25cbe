package structs

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tuneinsight/polyalg/utils/buffer"
	"golang.org/x/exp/slices"
)

// Vector is a slice of 64-bit words with a length-prefixed binary encoding.
type Vector[T Word] []T

// CopyNew returns a deep copy of the object.
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {
	vcpy = make(Vector[T], len(v))
	copy(vcpy, v)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)<<3
}

// WriteTo writes the object on an io.Writer: the length as a little-endian
// uint64 followed by one little-endian word per component. It implements
// the io.WriterTo interface and writes exactly v.BinarySize() bytes.
//
// Unless w implements buffer.Writer it is wrapped into a bufio.Writer.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(v))); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		switch vt := any([]T(v)).(type) {
		case []float64:
			if inc, err = buffer.WriteFloat64Slice(w, vt); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteFloat64Slice: %w", err)
			}
		case []uint64:
			if inc, err = buffer.WriteUint64Slice(w, vt); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteUint64Slice: %w", err)
			}
		case []int64:
			words := make([]uint64, len(vt))
			for i := range vt {
				words[i] = uint64(vt[i])
			}
			if inc, err = buffer.WriteUint64Slice(w, words); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteUint64Slice: %w", err)
			}
		}

		n += inc

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// readChunkSize is the number of components ReadFrom decodes before growing the vector.
const readChunkSize = 1 << 12

// ReadFrom reads the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// The vector grows by chunks of readChunkSize components as data arrives, so
// that a corrupted length prefix cannot trigger a large allocation. When r is
// a *buffer.Buffer, a length larger than the remaining bytes is rejected
// before anything is allocated.
//
// Unless r implements buffer.Reader it is wrapped into a bufio.Reader.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var size uint64

		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if size > math.MaxInt32 {
			return n, fmt.Errorf("cannot ReadFrom: invalid vector size %d", size)
		}

		if b, ok := r.(*buffer.Buffer); ok && size > uint64(b.Size()>>3) {
			return n, fmt.Errorf("cannot ReadFrom: vector size %d exceeds the %d remaining bytes: %w", size, b.Size(), io.ErrUnexpectedEOF)
		}

		*v = (*v)[:0]

		for read := 0; read < int(size); {

			m := int(size) - read
			if m > readChunkSize {
				m = readChunkSize
			}

			*v = slices.Grow(*v, m)
			*v = (*v)[:read+m]

			inc, err = readWords(r, []T((*v)[read:read+m]))
			n += inc

			if err != nil {
				*v = (*v)[:read]
				return
			}

			read += m
		}

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

func readWords[T Word](r buffer.Reader, v []T) (n int64, err error) {

	switch vt := any(v).(type) {
	case []float64:
		if n, err = buffer.ReadFloat64Slice(r, vt); err != nil {
			return n, fmt.Errorf("buffer.ReadFloat64Slice: %w", err)
		}
	case []uint64:
		if n, err = buffer.ReadUint64Slice(r, vt); err != nil {
			return n, fmt.Errorf("buffer.ReadUint64Slice: %w", err)
		}
	case []int64:
		words := make([]uint64, len(vt))
		if n, err = buffer.ReadUint64Slice(r, words); err != nil {
			return n, fmt.Errorf("buffer.ReadUint64Slice: %w", err)
		}
		for i := range vt {
			vt[i] = int64(words[i])
		}
	}

	return
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a component-wise exact comparison.
func (v Vector[T]) Equal(other Vector[T]) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}
