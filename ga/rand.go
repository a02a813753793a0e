package ga

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Rand is the source of randomness used by a GenePool. Draw order is part of the
// observable trajectory of a run, so pools never reach for global state.
type Rand interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// Uint64 returns 64 uniformly random bits.
	Uint64() uint64
}

type chachaRand struct {
	rng *frand.RNG
	buf [8]byte
}

// NewRand returns a deterministic ChaCha-backed generator seeded from seed.
// The same seed always yields the same sequence.
func NewRand(seed uint64) Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return &chachaRand{rng: frand.NewCustom(key[:], 1024, 12)}
}

// RandomSeed draws a non-zero seed from system entropy.
func RandomSeed() uint64 {
	for {
		if s := frand.Uint64n(^uint64(0)); s != 0 {
			return s
		}
	}
}

func (r *chachaRand) Intn(n int) int { return r.rng.Intn(n) }

func (r *chachaRand) Float64() float64 { return r.rng.Float64() }

func (r *chachaRand) Uint64() uint64 {
	r.rng.Read(r.buf[:])
	return binary.LittleEndian.Uint64(r.buf[:])
}
