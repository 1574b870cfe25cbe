package polynomial

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tuneinsight/polyalg/utils/structs"
)

// BinarySize returns the serialized size of the object in bytes.
func (p Polynomial) BinarySize() int {
	return structs.Vector[float64](p.coefficients()).BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// The encoding is the number of coefficients as a little-endian uint64
// followed by the IEEE-754 bits of each coefficient, lowest power first.
func (p Polynomial) WriteTo(w io.Writer) (n int64, err error) {
	return structs.Vector[float64](p.coefficients()).WriteTo(w)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The decoded coefficients are normalized.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {
	var v structs.Vector[float64]
	if n, err = v.ReadFrom(r); err != nil {
		return n, fmt.Errorf("cannot ReadFrom: %w", err)
	}
	*p = newOwned(v)
	return
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p Polynomial) MarshalBinary() (data []byte, err error) {
	return structs.Vector[float64](p.coefficients()).MarshalBinary()
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	var v structs.Vector[float64]
	if err = v.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("cannot UnmarshalBinary: %w", err)
	}
	*p = newOwned(v)
	return
}

type polynomialJSON struct {
	Coefficients []float64 `json:"coefficients"`
}

// MarshalJSON encodes p as {"coefficients":[c0, c1, ...]}.
func (p Polynomial) MarshalJSON() ([]byte, error) {
	return json.Marshal(polynomialJSON{Coefficients: p.coefficients()})
}

// UnmarshalJSON decodes the output of MarshalJSON. An absent or empty
// coefficient list decodes to the zero polynomial.
func (p *Polynomial) UnmarshalJSON(data []byte) (err error) {
	var pj polynomialJSON
	if err = json.Unmarshal(data, &pj); err != nil {
		return fmt.Errorf("cannot UnmarshalJSON: %w", err)
	}
	*p = newOwned(pj.Coefficients)
	return
}
