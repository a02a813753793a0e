package ga

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes one fitness pass.
type GenerationStats struct {
	Generation  int
	Total       int
	Mean        float64
	Stdev       float64
	Best        int
	BestID      int
	MatingSize  int
	Evaluations int
}

// Stats returns fitness statistics for the pool's last fitness pass.
func (p *GenePool) Stats(generation, total int) GenerationStats {
	fitnesses := lo.Map(p.genes, func(g *Gene, _ int) float64 {
		return float64(g.Fitness)
	})
	s := GenerationStats{
		Generation:  generation,
		Total:       total,
		Best:        p.bestFitness,
		BestID:      p.best,
		Evaluations: len(fitnesses),
	}
	switch len(fitnesses) {
	case 0:
	case 1:
		s.Mean = fitnesses[0]
	default:
		s.Mean, s.Stdev = stat.MeanStdDev(fitnesses, nil)
	}
	return s
}
