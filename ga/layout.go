package ga

import (
	"fmt"
	"math/bits"
)

// Layout describes how bits are packed into storage words. It is computed once and
// shared read-only by every BitVector and GenePool built from it.
type Layout struct {
	wordBits int
	fullMask uint64
	masks    []uint64 // masks[i] == 1 << i
}

// DefaultLayout packs bits into words of the platform's native width.
var DefaultLayout = MustLayout(bits.UintSize)

// NewLayout returns a layout for words of wordBits bits. Supported widths are 8, 16, 32 and 64.
func NewLayout(wordBits int) (*Layout, error) {
	switch wordBits {
	case 8, 16, 32, 64:
	default:
		return nil, fmt.Errorf("unsupported word width %d (want 8, 16, 32 or 64)", wordBits)
	}
	l := &Layout{
		wordBits: wordBits,
		masks:    make([]uint64, wordBits),
	}
	for i := range l.masks {
		l.masks[i] = 1 << uint(i)
	}
	if wordBits == 64 {
		l.fullMask = ^uint64(0)
	} else {
		l.fullMask = 1<<uint(wordBits) - 1
	}
	return l, nil
}

// MustLayout is like NewLayout but panics on an unsupported width.
func MustLayout(wordBits int) *Layout {
	l, err := NewLayout(wordBits)
	if err != nil {
		panic(err)
	}
	return l
}

// WordBits returns the number of usable bits per storage word.
func (l *Layout) WordBits() int { return l.wordBits }

// WordMax returns the largest value a storage word can hold, 2^WordBits - 1.
func (l *Layout) WordMax() uint64 { return l.fullMask }

// NumWords returns how many words are needed to hold size bits. At least one word
// is always allocated.
func (l *Layout) NumWords(size int) int {
	n := (size + l.wordBits - 1) / l.wordBits
	if n == 0 {
		n = 1
	}
	return n
}

// locate splits a bit index into its word index and the mask selecting it.
func (l *Layout) locate(index int) (int, uint64) {
	return index / l.wordBits, l.masks[index%l.wordBits]
}

// rangeMask returns the mask for numBits bits starting at offset within a word.
func (l *Layout) rangeMask(offset, numBits int) uint64 {
	if numBits == 64 {
		return ^uint64(0)
	}
	return (1<<uint(numBits) - 1) << uint(offset)
}
