package ga

// Stagnation tracks the best fitness of each generation and reports when it has
// stopped improving.
type Stagnation struct {
	MaxStagnation  int   // generations without improvement before a run is stagnant; 0 disables
	FitnessHistory []int // best fitness per generation
	LastImproved   int
	bestEver       int
}

// NewStagnation creates a tracker. maxStagnation <= 0 disables stagnation.
func NewStagnation(maxStagnation int) *Stagnation {
	return &Stagnation{MaxStagnation: maxStagnation, bestEver: -1}
}

// Update records generation's best fitness and reports whether the run is stagnant.
func (s *Stagnation) Update(generation, bestFitness int) bool {
	s.FitnessHistory = append(s.FitnessHistory, bestFitness)
	if bestFitness > s.bestEver {
		s.bestEver = bestFitness
		s.LastImproved = generation
	}
	return s.IsStagnant(generation)
}

// IsStagnant reports whether MaxStagnation generations have passed since the last
// improvement.
func (s *Stagnation) IsStagnant(generation int) bool {
	if s.MaxStagnation <= 0 {
		return false
	}
	return generation-s.LastImproved >= s.MaxStagnation
}
