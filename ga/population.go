package ga

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Population holds the state of an evolutionary run: the gene pool under evolution,
// the transient mating pool and the bookkeeping the generation loop needs.
type Population struct {
	Config     *Config
	Pool       *GenePool
	Mating     *GenePool
	Stagnation *Stagnation
	Generation int
	Seed       uint64
	BestGene   *Gene // best gene seen in any generation
	History    []GenerationStats
	Stagnant   bool
}

// NewPopulation creates the first generation described by config.
func NewPopulation(config *Config) (*Population, error) {
	seed := config.GA.Seed
	if seed == 0 {
		seed = RandomSeed()
	}
	return newPopulation(config, seed, config.GA.Randomize)
}

func newPopulation(config *Config, seed uint64, randomize bool) (*Population, error) {
	layout, err := config.Genome.Layout()
	if err != nil {
		return nil, fmt.Errorf("failed to create word layout: %w", err)
	}
	pool, err := NewGenePool(config.Genome.Shape(), config.GA.PopSize, randomize, layout, NewRand(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to create gene pool: %w", err)
	}
	return &Population{
		Config:     config,
		Pool:       pool,
		Mating:     pool.EmptyLike(),
		Stagnation: NewStagnation(config.GA.MaxStagnation),
		Seed:       seed,
	}, nil
}

// RunGeneration executes a single generation: fitness, selection and reproduction.
// It returns the best gene if the fitness threshold was met this generation,
// otherwise nil.
func (p *Population) RunGeneration(ctx context.Context, eval Evaluator) (*Gene, error) {
	logger := zerolog.Ctx(ctx)
	p.Generation++
	genStartTime := time.Now()

	if obs, ok := eval.(GenerationObserver); ok {
		obs.StartGeneration(p.Generation)
	}

	logger.Debug().Int("generation", p.Generation).Msg("evaluating fitness")
	total, err := p.Pool.FitnessParallel(ctx, eval, p.Config.GA.Workers)
	if err != nil {
		return nil, fmt.Errorf("fitness evaluation failed in generation %d: %w", p.Generation, err)
	}

	bestID, bestFitness := p.Pool.Best()
	if p.BestGene == nil || bestFitness > p.BestGene.Fitness {
		best, err := p.Pool.Gene(bestID)
		if err != nil {
			return nil, err
		}
		p.BestGene = best.Clone()
		logger.Debug().Int("generation", p.Generation).Int("id", bestID).Int("fitness", bestFitness).Msg("new best gene")
	}

	if !p.Config.GA.NoFitnessTermination && p.BestGene.Fitness >= p.Config.GA.FitnessThreshold {
		p.record(logger, p.Pool.Stats(p.Generation, total), genStartTime)
		return p.BestGene, nil
	}
	p.Stagnant = p.Stagnation.Update(p.Generation, bestFitness)

	logger.Debug().Int("generation", p.Generation).Msg("selecting")
	if err := p.Pool.Selection(p.Mating, total); err != nil {
		return nil, fmt.Errorf("selection failed in generation %d: %w", p.Generation, err)
	}
	stats := p.Pool.Stats(p.Generation, total)
	stats.MatingSize = p.Mating.Len()

	logger.Debug().Int("generation", p.Generation).Msg("reproducing")
	if err := p.Pool.Reproduction(p.Mating, p.Config.GA.MutationRate, p.Config.GA.CrossoverRate); err != nil {
		return nil, fmt.Errorf("reproduction failed in generation %d: %w", p.Generation, err)
	}
	p.record(logger, stats, genStartTime)
	return nil, nil
}

func (p *Population) record(logger *zerolog.Logger, stats GenerationStats, start time.Time) {
	p.History = append(p.History, stats)
	logger.Info().
		Int("generation", stats.Generation).
		Float64("mean", stats.Mean).
		Float64("stdev", stats.Stdev).
		Int("best", stats.Best).
		Int("best_id", stats.BestID).
		Int("mating_size", stats.MatingSize).
		Dur("elapsed", time.Since(start)).
		Msg("generation")
}

// Run executes generations until the configured count is reached, the fitness
// threshold is met or the run stagnates. It returns the best gene seen.
func (p *Population) Run(ctx context.Context, eval Evaluator) (*Gene, error) {
	logger := zerolog.Ctx(ctx)
	for p.Generation < p.Config.GA.Generations {
		if err := ctx.Err(); err != nil {
			return p.BestGene, err
		}
		winner, err := p.RunGeneration(ctx, eval)
		if err != nil {
			return p.BestGene, err
		}
		if winner != nil {
			logger.Info().Int("generation", p.Generation).Int("fitness", winner.Fitness).Msg("fitness threshold met")
			return winner, nil
		}
		if p.Stagnant {
			logger.Info().Int("generation", p.Generation).Int("last_improved", p.Stagnation.LastImproved).Msg("run stagnated")
			break
		}
	}
	return p.BestGene, nil
}
