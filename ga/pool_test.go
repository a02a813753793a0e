package ga

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcIndexPacksFieldsLowFirst(t *testing.T) {
	p := newTestPool(t, Shape{InFields: []int{2, 5, 5}, OutFields: []int{1}}, 1, false, nil, NewRand(1))
	assert.Equal(t, 4096, p.GeneLength())
	assert.Equal(t, 0, p.CalcIndex([]int{0, 0, 0}))
	assert.Equal(t, 1, p.CalcIndex([]int{1, 0, 0}))
	assert.Equal(t, 4, p.CalcIndex([]int{0, 1, 0}))
	assert.Equal(t, 1<<7, p.CalcIndex([]int{0, 0, 1}))
}

func TestCalcIndexIsBijective(t *testing.T) {
	p := newTestPool(t, Shape{InFields: []int{2, 3}, OutFields: []int{1}}, 0, false, nil, NewRand(1))
	assert.Equal(t, 0, p.CalcIndex([]int{0, 0}))
	assert.Equal(t, 1, p.CalcIndex([]int{1, 0}))
	assert.Equal(t, 4, p.CalcIndex([]int{0, 1}))
	assert.Equal(t, 31, p.CalcIndex([]int{3, 7}))

	seen := make(map[int]bool)
	for a := 0; a < 4; a++ {
		for b := 0; b < 8; b++ {
			idx, err := p.CalcIndexChecked([]int{a, b})
			require.NoError(t, err)
			assert.False(t, seen[idx], "index %d produced twice", idx)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 32)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, 32)
}

func TestCalcIndexOverflow(t *testing.T) {
	p := newTestPool(t, Shape{InFields: []int{2, 3}, OutFields: []int{1}}, 0, false, nil, NewRand(1))
	// The unchecked encoder lets an over-wide value spill into the next field.
	assert.Equal(t, p.CalcIndex([]int{0, 1}), p.CalcIndex([]int{4, 0}))

	_, err := p.CalcIndexChecked([]int{4, 0})
	assert.ErrorIs(t, err, ErrFieldOverflow)
	_, err = p.CalcIndexChecked([]int{-1, 0})
	assert.ErrorIs(t, err, ErrFieldOverflow)
	_, err = p.CalcIndexChecked([]int{1})
	assert.ErrorIs(t, err, ErrFieldOverflow)
}

func TestResultSingleBit(t *testing.T) {
	p := newTestPool(t, Shape{InFields: []int{2, 5, 5}, OutFields: []int{1}}, 2, false, nil, NewRand(1))
	inputs := []int{1, 20, 10}
	idx := p.CalcIndex(inputs)
	require.NoError(t, p.Set(1, idx, 1))

	v, err := p.Result(1, inputs)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
	v, err = p.Result(0, inputs)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = p.Result(1, []int{4, 0, 0})
	assert.ErrorIs(t, err, ErrFieldOverflow)
	_, err = p.Result(2, inputs)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestResultMultiBitAcrossWords(t *testing.T) {
	// 3-bit entries in 8-bit words straddle word boundaries.
	p := newTestPool(t, Shape{InFields: []int{2, 2}, OutFields: []int{1, 2}}, 1, false, layout8, NewRand(1))
	assert.Equal(t, 48, p.GeneLength())
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			in := []int{a, b}
			require.NoError(t, p.SetResult(0, in, uint64(p.CalcIndex(in)*5%8)))
		}
	}
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			in := []int{a, b}
			v, err := p.Result(0, in)
			require.NoError(t, err)
			assert.Equal(t, uint64(p.CalcIndex(in)*5%8), v, "inputs %v", in)
		}
	}
}

func TestRandomizedPoolsAreSeeded(t *testing.T) {
	shape := Shape{InFields: []int{6}, OutFields: []int{1}}
	a := newTestPool(t, shape, 5, true, layout8, NewRand(42))
	b := newTestPool(t, shape, 5, true, layout8, NewRand(42))
	c := newTestPool(t, shape, 5, false, layout8, NewRand(42))
	for id := 0; id < 5; id++ {
		ga, _ := a.Gene(id)
		gb, _ := b.Gene(id)
		gc, _ := c.Gene(id)
		assert.True(t, ga.Bits.Equal(gb.Bits))
		assert.Zero(t, gc.Bits.OnesCount())
		for w := 0; w < ga.Bits.NumWords(); w++ {
			word, _ := ga.Bits.Word(w)
			assert.LessOrEqual(t, word, uint64(0xFF))
		}
	}
	g0, _ := a.Gene(0)
	g1, _ := a.Gene(1)
	assert.False(t, g0.Bits.Equal(g1.Bits))
}

func TestAddAndClear(t *testing.T) {
	shape := Shape{InFields: []int{4}, OutFields: []int{1}}
	p := newTestPool(t, shape, 1, true, nil, NewRand(7))
	mating := p.EmptyLike()
	assert.Equal(t, 0, mating.Len())

	src, _ := p.Gene(0)
	src.Fitness = 47
	require.NoError(t, mating.Add(src))
	require.Equal(t, 1, mating.Len())

	cp, _ := mating.Gene(0)
	assert.True(t, cp.Bits.Equal(src.Bits))
	assert.Equal(t, 47, cp.Fitness)
	require.NoError(t, cp.Bits.FlipBit(0))
	assert.False(t, cp.Bits.Equal(src.Bits), "added gene must be an independent copy")

	assert.ErrorIs(t, mating.Add(NewGene(nil, 8)), ErrSizeMismatch)

	mating.Clear()
	assert.Equal(t, 0, mating.Len())
	_, err := mating.Gene(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestPassThroughAccess(t *testing.T) {
	// Bit-poking walkthrough: 256-bit genes in 64-bit words.
	p := newTestPool(t, Shape{InFields: []int{2, 2, 4}, OutFields: []int{1}}, 2, false, layout64, NewRand(1))
	for _, i := range []int{1, 0, 63, 127, 128, 191} {
		require.NoError(t, p.Set(0, i, 1))
		v, err := p.Get(0, i)
		require.NoError(t, err)
		assert.Equal(t, uint(1), v)
	}
	require.NoError(t, p.SetMult(0, 7, 2, 3))
	require.NoError(t, p.SetMult(0, 35, 8, 255))
	require.NoError(t, p.SetMult(1, 68, 8, 243))
	v, err := p.GetMult(1, 68, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(243), v)
	v, err = p.GetMult(0, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x183), v)

	assert.ErrorIs(t, p.SetMult(0, 60, 8, 1), ErrInvalidRange)
	_, err = p.Get(5, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, p.Set(0, 256, 1), ErrIndexOutOfRange)
}

func TestInvalidShapes(t *testing.T) {
	tests := []Shape{
		{},
		{InFields: []int{2}},
		{InFields: []int{0}, OutFields: []int{1}},
		{InFields: []int{2}, OutFields: []int{-1}},
		{InFields: []int{20, 20}, OutFields: []int{1}},
		{InFields: []int{1}, OutFields: []int{40, 40}},
	}
	for _, shape := range tests {
		_, err := NewGenePool(shape, 1, false, nil, NewRand(1))
		assert.ErrorIs(t, err, ErrInvalidShape, "%+v", shape)
	}
	_, err := NewGenePool(Shape{InFields: []int{1}, OutFields: []int{1}}, -1, false, nil, NewRand(1))
	assert.Error(t, err)
	_, err = NewGenePool(Shape{InFields: []int{1}, OutFields: []int{1}}, 1, false, nil, nil)
	assert.Error(t, err)
}

func TestPoolDump(t *testing.T) {
	p := newTestPool(t, Shape{InFields: []int{3}, OutFields: []int{1}}, 2, false, layout8, NewRand(1))
	require.NoError(t, p.Set(1, 0, 1))
	var buf bytes.Buffer
	require.NoError(t, p.Dump(&buf))
	assert.Equal(t, "Gene 0:\n  00000000\n  fitness: 0\nGene 1:\n  00000001\n  fitness: 0\n", buf.String())
}
