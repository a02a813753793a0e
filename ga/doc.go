// Package ga provides a bit-packed genetic algorithm whose genes are lookup tables.
//
// A gene is a string of bits stored in fixed-width words. A Shape describes how the
// gene is read: a set of small integer input fields is packed into a table index, and
// each index selects an entry of one or more output bits. Evolving a population of
// genes therefore evolves a policy from every input combination to an answer.
//
// Each generation scores every gene with a user Evaluator, builds a fitness-
// proportional mating pool that always carries the current best gene, and refills
// the population through single-point crossover and per-bit mutation.
//
// Basic usage:
//
//	// Load configuration
//	config, err := ga.LoadConfig("path/to/config.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create a new population
//	pop, err := ga.NewPopulation(config)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	// Run with your fitness function until the configured generation count,
//	// the fitness threshold or stagnation ends the run
//	best, err := pop.Run(ctx, ga.EvaluatorFunc(func(id int) (int, error) {
//		g, err := pop.Pool.Gene(id)
//		if err != nil {
//			return 0, err
//		}
//		return g.Bits.OnesCount(), nil
//	}))
package ga
