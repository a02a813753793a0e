package ga

import (
	"fmt"
	"io"
	"iter"
	"math/bits"
	"strings"
)

// BitVector is a fixed-size sequence of bits packed into storage words.
// Bit i lives in word i/WordBits at position i%WordBits.
type BitVector struct {
	layout *Layout
	size   int
	words  []uint64
}

// NewBitVector allocates a zeroed vector of size bits using the given layout.
// A nil layout selects DefaultLayout. It panics if size is negative.
func NewBitVector(layout *Layout, size int) *BitVector {
	if size < 0 {
		panic(fmt.Sprintf("ga: negative bit vector size %d", size))
	}
	if layout == nil {
		layout = DefaultLayout
	}
	return &BitVector{
		layout: layout,
		size:   size,
		words:  make([]uint64, layout.NumWords(size)),
	}
}

// Len returns the number of bits in the vector.
func (b *BitVector) Len() int { return b.size }

// Layout returns the packing layout shared by this vector.
func (b *BitVector) Layout() *Layout { return b.layout }

// WordBits returns the number of bits held by each storage word.
func (b *BitVector) WordBits() int { return b.layout.wordBits }

// WordMax returns the largest value a storage word can hold.
func (b *BitVector) WordMax() uint64 { return b.layout.fullMask }

// NumWords returns the number of storage words.
func (b *BitVector) NumWords() int { return len(b.words) }

func (b *BitVector) checkIndex(index int) error {
	if index < 0 || index >= b.size {
		return fmt.Errorf("bit %d of %d: %w", index, b.size, ErrIndexOutOfRange)
	}
	return nil
}

// Bit returns the bit at index as 0 or 1.
func (b *BitVector) Bit(index int) (uint, error) {
	if err := b.checkIndex(index); err != nil {
		return 0, err
	}
	return b.bit(index), nil
}

func (b *BitVector) bit(index int) uint {
	w, mask := b.layout.locate(index)
	if b.words[w]&mask != 0 {
		return 1
	}
	return 0
}

// SetBit sets the bit at index. Any non-zero value sets the bit to one.
func (b *BitVector) SetBit(index int, value uint) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	w, mask := b.layout.locate(index)
	if value != 0 {
		b.words[w] |= mask
	} else {
		b.words[w] &^= mask
	}
	return nil
}

// FlipBit complements the bit at index.
func (b *BitVector) FlipBit(index int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	b.flip(index)
	return nil
}

func (b *BitVector) flip(index int) {
	w, mask := b.layout.locate(index)
	b.words[w] ^= mask
}

// checkRange validates a numBits-wide run starting at index. The run must stay
// inside the vector and inside the word that holds index.
func (b *BitVector) checkRange(index, numBits int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	if numBits < 0 || numBits > b.layout.wordBits {
		return fmt.Errorf("%d bits at %d: %w", numBits, index, ErrInvalidRange)
	}
	if off := index % b.layout.wordBits; off+numBits > b.layout.wordBits {
		return fmt.Errorf("%d bits at %d cross a %d-bit word boundary: %w", numBits, index, b.layout.wordBits, ErrInvalidRange)
	}
	if index+numBits > b.size {
		return fmt.Errorf("%d bits at %d run past %d: %w", numBits, index, b.size, ErrInvalidRange)
	}
	return nil
}

// Range returns numBits bits starting at index, low bit first. The run must lie
// entirely within the word containing index.
func (b *BitVector) Range(index, numBits int) (uint64, error) {
	if err := b.checkRange(index, numBits); err != nil {
		return 0, err
	}
	off := index % b.layout.wordBits
	mask := b.layout.rangeMask(off, numBits)
	return (b.words[index/b.layout.wordBits] & mask) >> uint(off), nil
}

// SetRange stores the low numBits bits of value starting at index. Higher bits of
// value are discarded. The run must lie entirely within the word containing index.
func (b *BitVector) SetRange(index, numBits int, value uint64) error {
	if err := b.checkRange(index, numBits); err != nil {
		return err
	}
	off := index % b.layout.wordBits
	mask := b.layout.rangeMask(off, numBits)
	w := index / b.layout.wordBits
	b.words[w] = b.words[w]&^mask | (value<<uint(off))&mask
	return nil
}

// Word returns storage word w.
func (b *BitVector) Word(w int) (uint64, error) {
	if w < 0 || w >= len(b.words) {
		return 0, fmt.Errorf("word %d of %d: %w", w, len(b.words), ErrIndexOutOfRange)
	}
	return b.words[w], nil
}

// SetWord replaces storage word w. Bits above WordBits are discarded.
func (b *BitVector) SetWord(w int, value uint64) error {
	if w < 0 || w >= len(b.words) {
		return fmt.Errorf("word %d of %d: %w", w, len(b.words), ErrIndexOutOfRange)
	}
	b.words[w] = value & b.layout.fullMask
	return nil
}

// CopyFrom replaces every word of b with the words of other.
func (b *BitVector) CopyFrom(other *BitVector) error {
	if b.size != other.size || len(b.words) != len(other.words) {
		return fmt.Errorf("copy %d bits into %d: %w", other.size, b.size, ErrSizeMismatch)
	}
	copy(b.words, other.words)
	return nil
}

// Clone returns an independent copy of b.
func (b *BitVector) Clone() *BitVector {
	c := NewBitVector(b.layout, b.size)
	copy(c.words, b.words)
	return c
}

// Equal reports whether both vectors have the same size and identical words.
func (b *BitVector) Equal(other *BitVector) bool {
	if b.size != other.size || len(b.words) != len(other.words) {
		return false
	}
	for i, w := range b.words {
		if other.words[i] != w {
			return false
		}
	}
	return true
}

// OnesCount returns the number of set bits.
func (b *BitVector) OnesCount() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// All yields every index together with its bit value, from index 0 upward.
func (b *BitVector) All() iter.Seq2[int, uint] {
	return func(yield func(int, uint) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.bit(i)) {
				return
			}
		}
	}
}

// Indices yields 0 through Len()-1.
func (b *BitVector) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Dump writes one line per storage word, most significant bit first.
func (b *BitVector) Dump(w io.Writer) error {
	format := fmt.Sprintf("  %%0%db\n", b.layout.wordBits)
	for _, word := range b.words {
		if _, err := fmt.Fprintf(w, format, word); err != nil {
			return err
		}
	}
	return nil
}

func (b *BitVector) String() string {
	var sb strings.Builder
	_ = b.Dump(&sb)
	return sb.String()
}
