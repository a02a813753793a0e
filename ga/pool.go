package ga

import (
	"fmt"
	"io"
)

// GenePool is an ordered collection of genes that all encode the same lookup-table
// shape. Gene ids are positions in insertion order.
type GenePool struct {
	shape      Shape
	geneLength int
	layout     *Layout
	rng        Rand

	genes       []*Gene
	best        int
	bestFitness int
}

// NewGenePool allocates capacity genes of shape.GeneLength() bits. When randomize is
// set, every storage word of every gene is drawn independently from rng. A nil
// layout selects DefaultLayout.
func NewGenePool(shape Shape, capacity int, randomize bool, layout *Layout, rng Rand) (*GenePool, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, fmt.Errorf("negative pool capacity %d", capacity)
	}
	if rng == nil {
		return nil, fmt.Errorf("gene pool requires a random source")
	}
	if layout == nil {
		layout = DefaultLayout
	}
	p := &GenePool{
		shape:      shape.clone(),
		geneLength: shape.GeneLength(),
		layout:     layout,
		rng:        rng,
		genes:      make([]*Gene, 0, capacity),
	}
	for i := 0; i < capacity; i++ {
		g := NewGene(layout, p.geneLength)
		if randomize {
			for w := range g.Bits.words {
				g.Bits.words[w] = rng.Uint64() & layout.fullMask
			}
		}
		p.genes = append(p.genes, g)
	}
	return p, nil
}

// EmptyLike returns a zero-capacity pool sharing p's shape, layout and random
// source. It is the usual way to build a mating pool.
func (p *GenePool) EmptyLike() *GenePool {
	return &GenePool{
		shape:      p.shape,
		geneLength: p.geneLength,
		layout:     p.layout,
		rng:        p.rng,
	}
}

// Len returns the number of genes in the pool.
func (p *GenePool) Len() int { return len(p.genes) }

// Shape returns the lookup-table shape shared by every gene.
func (p *GenePool) Shape() Shape { return p.shape.clone() }

// GeneLength returns the number of bits in each gene.
func (p *GenePool) GeneLength() int { return p.geneLength }

// Layout returns the word layout shared by every gene.
func (p *GenePool) Layout() *Layout { return p.layout }

// Best returns the id and fitness of the best gene found by the last fitness pass.
func (p *GenePool) Best() (int, int) { return p.best, p.bestFitness }

// Gene returns the gene with the given id.
func (p *GenePool) Gene(id int) (*Gene, error) {
	if id < 0 || id >= len(p.genes) {
		return nil, fmt.Errorf("gene %d of %d: %w", id, len(p.genes), ErrIndexOutOfRange)
	}
	return p.genes[id], nil
}

// Add appends a copy of g, bits and fitness, growing the pool by one.
func (p *GenePool) Add(g *Gene) error {
	if g.Len() != p.geneLength {
		return fmt.Errorf("add %d-bit gene to %d-bit pool: %w", g.Len(), p.geneLength, ErrSizeMismatch)
	}
	ng := NewGene(p.layout, p.geneLength)
	if err := ng.CopyFrom(g); err != nil {
		return err
	}
	ng.Fitness = g.Fitness
	p.genes = append(p.genes, ng)
	return nil
}

// Clear removes every gene, leaving the pool with zero capacity.
func (p *GenePool) Clear() {
	p.genes = nil
	p.best, p.bestFitness = 0, 0
}

// CalcIndex encodes a tuple of input values as one table index. Field i is shifted
// left by the widths of all fields before it. Values are not checked: one wider than
// its field spills into the next field. Use CalcIndexChecked for untrusted input.
func (p *GenePool) CalcIndex(inputs []int) int {
	index, shift := 0, 0
	for i, w := range p.shape.InFields {
		index += inputs[i] << uint(shift)
		shift += w
	}
	return index
}

// CalcIndexChecked is CalcIndex with arity and per-field width validation.
func (p *GenePool) CalcIndexChecked(inputs []int) (int, error) {
	if len(inputs) != len(p.shape.InFields) {
		return 0, fmt.Errorf("got %d inputs for %d fields: %w", len(inputs), len(p.shape.InFields), ErrFieldOverflow)
	}
	for i, w := range p.shape.InFields {
		if inputs[i] < 0 || inputs[i] >= 1<<uint(w) {
			return 0, fmt.Errorf("input %d value %d does not fit %d bits: %w", i, inputs[i], w, ErrFieldOverflow)
		}
	}
	return p.CalcIndex(inputs), nil
}

// Result decodes the table entry gene id holds for the given input tuple.
func (p *GenePool) Result(id int, inputs []int) (uint64, error) {
	g, offset, err := p.entry(id, inputs)
	if err != nil {
		return 0, err
	}
	var value uint64
	err = p.walkEntry(offset, func(pos, n, shift int) error {
		v, err := g.Bits.Range(pos, n)
		value |= v << uint(shift)
		return err
	})
	return value, err
}

// SetResult stores value as gene id's table entry for the given input tuple.
func (p *GenePool) SetResult(id int, inputs []int, value uint64) error {
	g, offset, err := p.entry(id, inputs)
	if err != nil {
		return err
	}
	return p.walkEntry(offset, func(pos, n, shift int) error {
		return g.Bits.SetRange(pos, n, value>>uint(shift))
	})
}

func (p *GenePool) entry(id int, inputs []int) (*Gene, int, error) {
	g, err := p.Gene(id)
	if err != nil {
		return nil, 0, err
	}
	index, err := p.CalcIndexChecked(inputs)
	if err != nil {
		return nil, 0, err
	}
	return g, index * p.shape.OutBits(), nil
}

// walkEntry splits the table entry at offset into word-local runs.
func (p *GenePool) walkEntry(offset int, fn func(pos, n, shift int) error) error {
	wb := p.layout.wordBits
	remaining, shift := p.shape.OutBits(), 0
	for remaining > 0 {
		n := min(remaining, wb-offset%wb)
		if err := fn(offset, n, shift); err != nil {
			return err
		}
		offset += n
		shift += n
		remaining -= n
	}
	return nil
}

// Get returns bit index of gene id.
func (p *GenePool) Get(id, index int) (uint, error) {
	g, err := p.Gene(id)
	if err != nil {
		return 0, err
	}
	return g.Bits.Bit(index)
}

// Set sets bit index of gene id.
func (p *GenePool) Set(id, index int, value uint) error {
	g, err := p.Gene(id)
	if err != nil {
		return err
	}
	return g.Bits.SetBit(index, value)
}

// GetMult returns numBits bits of gene id starting at index, within one word.
func (p *GenePool) GetMult(id, index, numBits int) (uint64, error) {
	g, err := p.Gene(id)
	if err != nil {
		return 0, err
	}
	return g.Bits.Range(index, numBits)
}

// SetMult stores numBits bits of value into gene id starting at index, within one word.
func (p *GenePool) SetMult(id, index, numBits int, value uint64) error {
	g, err := p.Gene(id)
	if err != nil {
		return err
	}
	return g.Bits.SetRange(index, numBits, value)
}

// Dump writes every gene in id order.
func (p *GenePool) Dump(w io.Writer) error {
	for i, g := range p.genes {
		if _, err := fmt.Fprintf(w, "Gene %d:\n", i); err != nil {
			return err
		}
		if err := g.Dump(w); err != nil {
			return err
		}
	}
	return nil
}
