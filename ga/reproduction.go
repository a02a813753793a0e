package ga

import "fmt"

// Selection rebuilds mating as a roulette wheel over p. Slot 0 always holds a copy
// of the current best gene. Each gene then gets floor(fitness*Len()/totalFitness)
// copies. Remainders are dropped, so the mating pool is usually smaller than
// Len()+1. With totalFitness == 0 only the elite copy is added.
func (p *GenePool) Selection(mating *GenePool, totalFitness int) error {
	if len(p.genes) == 0 {
		return fmt.Errorf("selection: %w", ErrEmptyPool)
	}
	if mating.geneLength != p.geneLength {
		return fmt.Errorf("mating pool genes have %d bits, want %d: %w", mating.geneLength, p.geneLength, ErrSizeMismatch)
	}
	if totalFitness < 0 {
		return fmt.Errorf("total fitness %d: %w", totalFitness, ErrNegativeFitness)
	}
	mating.Clear()
	if err := mating.Add(p.genes[p.best]); err != nil {
		return err
	}
	if totalFitness == 0 {
		return nil
	}
	n := len(p.genes)
	for _, g := range p.genes {
		share := g.Fitness * n / totalFitness
		for j := 0; j < share; j++ {
			if err := mating.Add(g); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reproduction refills every slot of p from mating. Each slot starts from a random
// parent ("mom"). With probability crossoverRate it is crossed at a random point
// with a second random parent ("dad"). It is then mutated at mutationRate. Fitness
// values are left stale until the next fitness pass. Finally slot 0 is overwritten
// with mating's elite entry, bits and fitness, so the previous best survives
// unmutated.
func (p *GenePool) Reproduction(mating *GenePool, mutationRate, crossoverRate float64) error {
	if mutationRate < 0 || mutationRate > 1 {
		return fmt.Errorf("mutation rate %v: %w", mutationRate, ErrInvalidRate)
	}
	if crossoverRate < 0 || crossoverRate > 1 {
		return fmt.Errorf("crossover rate %v: %w", crossoverRate, ErrInvalidRate)
	}
	if len(mating.genes) == 0 {
		return fmt.Errorf("reproduction: mating %w", ErrEmptyPool)
	}
	if mating.geneLength != p.geneLength {
		return fmt.Errorf("mating pool genes have %d bits, want %d: %w", mating.geneLength, p.geneLength, ErrSizeMismatch)
	}
	if len(p.genes) == 0 {
		return nil
	}

	mom := NewBitVector(p.layout, p.geneLength)
	dad := NewBitVector(p.layout, p.geneLength)
	for _, g := range p.genes {
		m := p.rng.Intn(len(mating.genes))
		d := p.rng.Intn(len(mating.genes))
		if err := mom.CopyFrom(mating.genes[m].Bits); err != nil {
			return err
		}
		if p.rng.Float64() < crossoverRate {
			if err := dad.CopyFrom(mating.genes[d].Bits); err != nil {
				return err
			}
			if err := crossover(mom, dad, p.rng.Intn(p.geneLength)); err != nil {
				return err
			}
		}
		mutate(mom, mutationRate, p.rng)
		if err := g.Bits.CopyFrom(mom); err != nil {
			return err
		}
	}

	elite := mating.genes[0]
	if err := p.genes[0].CopyFrom(elite); err != nil {
		return err
	}
	p.genes[0].Fitness = elite.Fitness
	return nil
}
