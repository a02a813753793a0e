package ga

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/samber/lo"
)

// geneSaveData is the serialized form of a Gene.
type geneSaveData struct {
	Words   []uint64
	Fitness int
}

// PopulationSaveData holds the parts of a Population needed to resume a run. The
// config is not saved; it is reloaded from the original file.
type PopulationSaveData struct {
	Generation     int
	Seed           uint64
	WordBits       int
	GeneLength     int
	Genes          []geneSaveData
	BestGene       *geneSaveData
	History        []GenerationStats
	FitnessHistory []int
	LastImproved   int
}

func saveGene(g *Gene) geneSaveData {
	return geneSaveData{Words: append([]uint64(nil), g.Bits.words...), Fitness: g.Fitness}
}

func (d geneSaveData) restore(layout *Layout, length int) (*Gene, error) {
	g := NewGene(layout, length)
	if len(d.Words) != len(g.Bits.words) {
		return nil, fmt.Errorf("saved gene has %d words, want %d: %w", len(d.Words), len(g.Bits.words), ErrSizeMismatch)
	}
	copy(g.Bits.words, d.Words)
	g.Fitness = d.Fitness
	return g, nil
}

// SaveCheckpoint saves the current state of the Population to a gzip-compressed file.
// The random source's internal state is not saved; a resumed run is reseeded from
// the saved seed and generation.
func (p *Population) SaveCheckpoint(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	saveData := PopulationSaveData{
		Generation:     p.Generation,
		Seed:           p.Seed,
		WordBits:       p.Pool.layout.wordBits,
		GeneLength:     p.Pool.geneLength,
		Genes:          lo.Map(p.Pool.genes, func(g *Gene, _ int) geneSaveData { return saveGene(g) }),
		History:        p.History,
		FitnessHistory: p.Stagnation.FitnessHistory,
		LastImproved:   p.Stagnation.LastImproved,
	}
	if p.BestGene != nil {
		best := saveGene(p.BestGene)
		saveData.BestGene = &best
	}

	if err := gob.NewEncoder(gzWriter).Encode(saveData); err != nil {
		return fmt.Errorf("failed to encode population data: %w", err)
	}
	return nil
}

// LoadCheckpoint loads a Population state from a checkpoint file.
// It requires the original configuration file path to reconstruct the Config object.
func LoadCheckpoint(checkpointPath string, configPath string) (*Population, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config '%s' for checkpoint: %w", configPath, err)
	}
	return loadCheckpoint(checkpointPath, config)
}

func loadCheckpoint(checkpointPath string, config *Config) (*Population, error) {
	file, err := os.Open(checkpointPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint file '%s': %w", checkpointPath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for checkpoint: %w", err)
	}
	defer gzReader.Close()

	saveData := PopulationSaveData{}
	if err := gob.NewDecoder(gzReader).Decode(&saveData); err != nil {
		return nil, fmt.Errorf("failed to decode population data from checkpoint: %w", err)
	}

	// Reseed so a resumed run does not replay the draws of generation 0.
	p, err := newPopulation(config, saveData.Seed+uint64(saveData.Generation), false)
	if err != nil {
		return nil, err
	}
	if saveData.WordBits != p.Pool.layout.wordBits || saveData.GeneLength != p.Pool.geneLength {
		return nil, fmt.Errorf("checkpoint holds %d-bit genes in %d-bit words, config wants %d in %d: %w",
			saveData.GeneLength, saveData.WordBits, p.Pool.geneLength, p.Pool.layout.wordBits, ErrSizeMismatch)
	}

	p.Pool.genes = make([]*Gene, 0, len(saveData.Genes))
	for i, gd := range saveData.Genes {
		g, err := gd.restore(p.Pool.layout, p.Pool.geneLength)
		if err != nil {
			return nil, fmt.Errorf("failed to restore gene %d: %w", i, err)
		}
		p.Pool.genes = append(p.Pool.genes, g)
	}
	if saveData.BestGene != nil {
		if p.BestGene, err = saveData.BestGene.restore(p.Pool.layout, p.Pool.geneLength); err != nil {
			return nil, fmt.Errorf("failed to restore best gene: %w", err)
		}
	}
	p.Seed = saveData.Seed
	p.Generation = saveData.Generation
	p.History = saveData.History
	p.Stagnation.FitnessHistory = saveData.FitnessHistory
	p.Stagnation.LastImproved = saveData.LastImproved
	for _, f := range saveData.FitnessHistory {
		p.Stagnation.bestEver = max(p.Stagnation.bestEver, f)
	}
	return p, nil
}
