package ga

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Evaluator scores one gene of a pool. It is called exactly once per gene per
// generation and must return a non-negative score.
type Evaluator interface {
	Fitness(geneID int) (int, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(geneID int) (int, error)

// Fitness calls f(geneID).
func (f EvaluatorFunc) Fitness(geneID int) (int, error) { return f(geneID) }

// GenerationObserver is implemented by evaluators that want to know when a new
// generation's fitness pass begins.
type GenerationObserver interface {
	StartGeneration(generation int)
}

// Fitness scores every gene in id order, records each score on its gene and returns
// the total. The best gene is the first one with the highest score.
func (p *GenePool) Fitness(eval Evaluator) (int, error) {
	scores := make([]int, len(p.genes))
	for id := range p.genes {
		f, err := eval.Fitness(id)
		if err != nil {
			return 0, fmt.Errorf("failed to evaluate gene %d: %w", id, err)
		}
		scores[id] = f
	}
	return p.storeScores(scores)
}

// FitnessParallel is Fitness with gene ids fanned out over at most workers
// goroutines. Scores are merged in id order, so the total and the best gene match a
// serial pass. eval must be safe for concurrent use.
func (p *GenePool) FitnessParallel(ctx context.Context, eval Evaluator, workers int) (int, error) {
	if workers <= 1 {
		return p.Fitness(eval)
	}
	scores := make([]int, len(p.genes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for id := range p.genes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := eval.Fitness(id)
			if err != nil {
				return fmt.Errorf("failed to evaluate gene %d: %w", id, err)
			}
			scores[id] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return p.storeScores(scores)
}

func (p *GenePool) storeScores(scores []int) (int, error) {
	for id, f := range scores {
		if f < 0 {
			return 0, fmt.Errorf("gene %d scored %d: %w", id, f, ErrNegativeFitness)
		}
	}
	total := 0
	p.best, p.bestFitness = 0, 0
	for id, f := range scores {
		p.genes[id].Fitness = f
		if f > p.bestFitness {
			p.best, p.bestFitness = id, f
		}
		total += f
	}
	return total, nil
}
