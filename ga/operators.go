package ga

import "fmt"

// Cross exchanges the low k bits of genes idA and idB in place. Bits at and above k
// keep their original owner.
func (p *GenePool) Cross(idA, idB, k int) error {
	a, err := p.Gene(idA)
	if err != nil {
		return err
	}
	b, err := p.Gene(idB)
	if err != nil {
		return err
	}
	return p.Crossover(a, b, k)
}

// Crossover exchanges the low k bits of a and b in place. Applying it twice with the
// same k restores both genes.
func (p *GenePool) Crossover(a, b *Gene, k int) error {
	return crossover(a.Bits, b.Bits, k)
}

func crossover(a, b *BitVector, k int) error {
	if a.size != b.size || len(a.words) != len(b.words) {
		return fmt.Errorf("cross %d bits with %d: %w", a.size, b.size, ErrSizeMismatch)
	}
	if k < 0 || k > a.size {
		return fmt.Errorf("crossover point %d of %d: %w", k, a.size, ErrIndexOutOfRange)
	}
	wb := a.layout.wordBits
	w := k / wb
	for i := 0; i < w; i++ {
		a.words[i], b.words[i] = b.words[i], a.words[i]
	}
	start := w * wb
	numBits := k - start
	if numBits == 0 {
		return nil
	}
	va, err := a.Range(start, numBits)
	if err != nil {
		return err
	}
	vb, err := b.Range(start, numBits)
	if err != nil {
		return err
	}
	if err := a.SetRange(start, numBits, vb); err != nil {
		return err
	}
	return b.SetRange(start, numBits, va)
}

// Mutate flips each bit of g independently with probability rate.
func (p *GenePool) Mutate(g *Gene, rate float64) error {
	if rate < 0 || rate > 1 {
		return fmt.Errorf("mutation rate %v: %w", rate, ErrInvalidRate)
	}
	mutate(g.Bits, rate, p.rng)
	return nil
}

func mutate(b *BitVector, rate float64, rng Rand) {
	for i := range b.Indices() {
		if rng.Float64() < rate {
			b.flip(i)
		}
	}
}
