// Package structs implements generic containers of numeric words and their serialization.
package structs

// Word is the set of 64-bit component types a Vector can serialize.
type Word interface {
	uint64 | int64 | float64
}

// BinarySizer is implemented by objects that know their serialized size in bytes.
type BinarySizer interface {
	BinarySize() int
}
