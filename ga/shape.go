package ga

import (
	"fmt"
	"math/bits"

	"github.com/samber/lo"
)

// maxInBits caps the total input width so a single gene stays addressable and of sane size.
const maxInBits = 30

// Shape describes the lookup table a gene encodes. InFields holds the bit width of
// each input dimension, packed low to high in declaration order. OutFields holds the
// widths that together make up one table entry.
type Shape struct {
	InFields  []int
	OutFields []int
}

// InBits returns the total input width.
func (s Shape) InBits() int { return lo.Sum(s.InFields) }

// OutBits returns the width of one table entry.
func (s Shape) OutBits() int { return lo.Sum(s.OutFields) }

// Entries returns the number of distinct input tuples, 2^InBits.
func (s Shape) Entries() int { return 1 << uint(s.InBits()) }

// GeneLength returns the number of bits needed to store the whole table.
func (s Shape) GeneLength() int { return s.Entries() * s.OutBits() }

// Validate checks that every field width is positive and that the table fits.
func (s Shape) Validate() error {
	if len(s.InFields) == 0 {
		return fmt.Errorf("no input fields: %w", ErrInvalidShape)
	}
	if len(s.OutFields) == 0 {
		return fmt.Errorf("no output fields: %w", ErrInvalidShape)
	}
	for i, w := range s.InFields {
		if w <= 0 {
			return fmt.Errorf("input field %d has width %d: %w", i, w, ErrInvalidShape)
		}
	}
	for i, w := range s.OutFields {
		if w <= 0 {
			return fmt.Errorf("output field %d has width %d: %w", i, w, ErrInvalidShape)
		}
	}
	if in := s.InBits(); in > maxInBits {
		return fmt.Errorf("%d input bits exceeds %d: %w", in, maxInBits, ErrInvalidShape)
	}
	if out := s.OutBits(); out > 64 {
		return fmt.Errorf("%d output bits exceeds 64: %w", out, ErrInvalidShape)
	}
	hi, low := bits.Mul64(uint64(s.Entries()), uint64(s.OutBits()))
	if hi != 0 || low > uint64(maxInt) {
		return fmt.Errorf("gene length overflows int: %w", ErrInvalidShape)
	}
	return nil
}

func (s Shape) clone() Shape {
	return Shape{
		InFields:  append([]int(nil), s.InFields...),
		OutFields: append([]int(nil), s.OutFields...),
	}
}

const maxInt = int(^uint(0) >> 1)
