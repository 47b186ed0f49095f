package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/utils"
)

func TestGenerator_Shape(t *testing.T) {
	gen := NewGenerator(utils.NewSeededIntn(1))
	set := []domain.SymbolWeight{{Symbol: CH}, {Symbol: BA}}

	grid := gen.Generate(4, 6, set)

	require.NoError(t, grid.CheckShape(4, 6))
	for _, row := range grid {
		for _, s := range row {
			assert.Contains(t, []domain.Symbol{CH, BA}, s)
		}
	}
}

func TestGenerator_UniformWhenUnweighted(t *testing.T) {
	set := []domain.SymbolWeight{{Symbol: CH}, {Symbol: BA}, {Symbol: SE}}
	rng := &countingRNG{values: []int{0, 1, 2, 1, 0, 2}}
	gen := NewGenerator(rng.next)

	grid := gen.Generate(2, 3, set)

	assert.Equal(t, domain.Grid{{CH, BA, SE}, {BA, CH, SE}}, grid)
	assert.Equal(t, 6, rng.calls)
}

func TestGenerator_Weighted(t *testing.T) {
	set := []domain.SymbolWeight{
		{Symbol: CH, Weight: 5},
		{Symbol: WI, Weight: 1},
		{Symbol: SC, Weight: 0},
		{Symbol: SE, Weight: 4},
	}

	tests := []struct {
		roll int
		want domain.Symbol
	}{
		{roll: 0, want: CH},
		{roll: 4, want: CH},
		{roll: 5, want: WI},
		{roll: 6, want: SE},
		{roll: 9, want: SE},
	}

	for _, tt := range tests {
		var gotN int
		gen := NewGenerator(func(n int) int {
			gotN = n
			return tt.roll
		})

		grid := gen.Generate(1, 1, set)

		assert.Equal(t, 10, gotN, "roll is drawn over the total weight")
		assert.Equal(t, tt.want, grid[0][0], "roll %d", tt.roll)
	}
}

func TestGenerator_ZeroWeightNeverDrawn(t *testing.T) {
	set := []domain.SymbolWeight{{Symbol: CH, Weight: 3}, {Symbol: SC, Weight: 0}, {Symbol: BA, Weight: 2}}
	gen := NewGenerator(utils.NewSeededIntn(7))

	for i := 0; i < 200; i++ {
		grid := gen.Generate(3, 5, set)
		for _, row := range grid {
			assert.NotContains(t, row, SC)
		}
	}
}

func TestNewGenerator_DefaultSource(t *testing.T) {
	gen := NewGenerator(nil)
	grid := gen.Generate(3, 5, []domain.SymbolWeight{{Symbol: DI}})
	for _, row := range grid {
		for _, s := range row {
			assert.Equal(t, DI, s)
		}
	}
}
