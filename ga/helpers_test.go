package ga

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed draws. Once a script runs out, Intn returns 0,
// Float64 returns 0.99 and Uint64 returns 0.
type scriptedRand struct {
	ints   []int
	floats []float64
	words  []uint64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		panic("scripted Intn value out of range")
	}
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Uint64() uint64 {
	if len(r.words) == 0 {
		return 0
	}
	v := r.words[0]
	r.words = r.words[1:]
	return v
}

var layout8 = MustLayout(8)
var layout64 = MustLayout(64)

// onesCounter scores a gene by its number of set bits.
func onesCounter(p *GenePool) Evaluator {
	return EvaluatorFunc(func(id int) (int, error) {
		g, err := p.Gene(id)
		if err != nil {
			return 0, err
		}
		return g.Bits.OnesCount(), nil
	})
}

func newTestPool(t *testing.T, shape Shape, capacity int, randomize bool, layout *Layout, rng Rand) *GenePool {
	t.Helper()
	p, err := NewGenePool(shape, capacity, randomize, layout, rng)
	require.NoError(t, err)
	return p
}

func fillGene(t *testing.T, g *Gene, value uint) {
	t.Helper()
	for i := range g.Bits.Indices() {
		require.NoError(t, g.Bits.SetBit(i, value))
	}
}
