package ga

import (
	"fmt"
	"math/bits"

	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for a run.
type Config struct {
	GA     RunConfig
	Genome GenomeConfig
}

// RunConfig holds parameters for the generation loop and the genetic operators.
type RunConfig struct {
	PopSize              int     `ini:"pop_size"`
	Generations          int     `ini:"generations"`
	MutationRate         float64 `ini:"mutation_rate"`
	CrossoverRate        float64 `ini:"crossover_rate"`
	Randomize            bool    `ini:"randomize"`
	Seed                 uint64  `ini:"seed"`    // 0 draws a seed from system entropy
	Workers              int     `ini:"workers"` // >1 evaluates fitness concurrently
	FitnessThreshold     int     `ini:"fitness_threshold"`
	NoFitnessTermination bool    `ini:"no_fitness_termination"`
	MaxStagnation        int     `ini:"max_stagnation"` // 0 disables
}

// GenomeConfig holds the lookup-table shape and storage layout of each gene.
type GenomeConfig struct {
	InFields  []int `ini:"in_fields" delim:" "`
	OutFields []int `ini:"out_fields" delim:" "`
	WordBits  int   `ini:"word_bits"` // 0 selects the platform word size
}

// Shape returns the lookup-table shape described by the config.
func (gc *GenomeConfig) Shape() Shape {
	return Shape{InFields: gc.InFields, OutFields: gc.OutFields}
}

// Layout returns the word layout described by the config.
func (gc *GenomeConfig) Layout() (*Layout, error) {
	return NewLayout(gc.WordBits)
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	config, err := ParseConfig(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

// ParseConfig reads configuration from any source accepted by ini.Load: a file
// name, a []byte or an io.Reader.
func ParseConfig(source interface{}) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         false,
		UnescapeValueCommentSymbols: true,
	}, source)
	if err != nil {
		return nil, err
	}

	config := &Config{
		GA: RunConfig{
			Randomize:            true,
			NoFitnessTermination: true,
		},
	}
	if err := cfg.Section("GA").MapTo(&config.GA); err != nil {
		return nil, fmt.Errorf("failed to map [GA] section: %w", err)
	}
	if err := cfg.Section("Genome").MapTo(&config.Genome); err != nil {
		return nil, fmt.Errorf("failed to map [Genome] section: %w", err)
	}

	if config.Genome.WordBits == 0 {
		config.Genome.WordBits = bits.UintSize
	}
	if len(config.Genome.OutFields) == 0 {
		config.Genome.OutFields = []int{1}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every parameter for a usable range.
func (c *Config) Validate() error {
	if c.GA.PopSize < 1 {
		return fmt.Errorf("config error: pop_size must be positive")
	}
	if c.GA.Generations < 0 {
		return fmt.Errorf("config error: generations cannot be negative")
	}
	if c.GA.MutationRate < 0 || c.GA.MutationRate > 1 {
		return fmt.Errorf("config error: mutation_rate must be between 0 and 1")
	}
	if c.GA.CrossoverRate < 0 || c.GA.CrossoverRate > 1 {
		return fmt.Errorf("config error: crossover_rate must be between 0 and 1")
	}
	if c.GA.Workers < 0 {
		return fmt.Errorf("config error: workers cannot be negative")
	}
	if c.GA.FitnessThreshold < 0 {
		return fmt.Errorf("config error: fitness_threshold cannot be negative")
	}
	if c.GA.MaxStagnation < 0 {
		return fmt.Errorf("config error: max_stagnation cannot be negative")
	}
	if _, err := c.Genome.Layout(); err != nil {
		return fmt.Errorf("config error: word_bits: %w", err)
	}
	if err := c.Genome.Shape().Validate(); err != nil {
		return fmt.Errorf("config error: in_fields/out_fields: %w", err)
	}
	return nil
}
