package ga

import (
	"fmt"
	"io"
)

// Gene is one candidate solution: a bit string plus the score it earned in the
// most recent fitness pass.
type Gene struct {
	Bits    *BitVector
	Fitness int
}

// NewGene allocates a zeroed gene of size bits.
func NewGene(layout *Layout, size int) *Gene {
	return &Gene{Bits: NewBitVector(layout, size)}
}

// Len returns the number of bits in the gene.
func (g *Gene) Len() int { return g.Bits.Len() }

// CopyFrom copies the bits of other into g. Fitness is left untouched; callers
// that need it carried over copy it themselves.
func (g *Gene) CopyFrom(other *Gene) error {
	return g.Bits.CopyFrom(other.Bits)
}

// Clone returns a deep copy of g, fitness included.
func (g *Gene) Clone() *Gene {
	return &Gene{Bits: g.Bits.Clone(), Fitness: g.Fitness}
}

// Dump writes the gene's words followed by its fitness.
func (g *Gene) Dump(w io.Writer) error {
	if err := g.Bits.Dump(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  fitness: %d\n", g.Fitness)
	return err
}
