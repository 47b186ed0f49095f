package slots

import (
	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/utils"
)

// RNG returns a value in [0, n). Injectable for testing.
type RNG func(n int) int

// Generator draws grids cell by cell with no correlation between cells.
type Generator struct {
	rng RNG
}

// NewGenerator creates a generator. A nil rng uses the crypto-backed source.
func NewGenerator(rng RNG) *Generator {
	if rng == nil {
		rng = utils.SecureIntn
	}
	return &Generator{rng: rng}
}

// Generate fills a rows × reels grid from the symbol set. If every weight is
// zero the draw is uniform; otherwise symbols are picked by cumulative weight.
func (g *Generator) Generate(rows, reels int, set []domain.SymbolWeight) domain.Grid {
	grid := domain.NewGrid(rows, reels)
	total := totalWeight(set)
	for r := 0; r < rows; r++ {
		for c := 0; c < reels; c++ {
			grid[r][c] = g.draw(set, total)
		}
	}
	return grid
}

func (g *Generator) draw(set []domain.SymbolWeight, total int) domain.Symbol {
	if total == 0 {
		return set[g.rng(len(set))].Symbol
	}

	roll := g.rng(total)
	cumulative := 0
	for _, sw := range set {
		cumulative += sw.Weight
		if roll < cumulative {
			return sw.Symbol
		}
	}

	// Unreachable while roll < total
	return set[len(set)-1].Symbol
}

func totalWeight(set []domain.SymbolWeight) int {
	total := 0
	for _, sw := range set {
		total += sw.Weight
	}
	return total
}
