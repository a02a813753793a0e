package ga

import "errors"

var (
	// ErrIndexOutOfRange is returned when a bit, word or gene index falls outside its container.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidRange is returned when a multi-bit access would cross a word boundary.
	ErrInvalidRange = errors.New("invalid bit range")
	// ErrSizeMismatch is returned when two genomes of different length are combined.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrFieldOverflow is returned when an input value does not fit its declared field width.
	ErrFieldOverflow = errors.New("input field overflow")
	ErrInvalidShape    = errors.New("invalid gene shape")
	ErrInvalidRate     = errors.New("rate must be between 0 and 1")
	ErrNegativeFitness = errors.New("negative fitness")
	ErrEmptyPool       = errors.New("empty gene pool")
)
