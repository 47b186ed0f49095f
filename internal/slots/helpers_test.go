package slots

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/slotengine/internal/domain"
)

// Short symbol aliases keep grids readable in tests
const (
	CH = domain.SymbolCherry
	BA = domain.SymbolBar
	SE = domain.SymbolSeven
	ST = domain.SymbolStar
	DI = domain.SymbolDiamond
	CO = domain.SymbolCoin
	WI = domain.SymbolWild
	SC = domain.SymbolScatter
)

// exampleConfig is the reference machine: default bet 10, {3:50, 4:200, 5:1000},
// a single middle-row payline and a three-scatter bonus.
func exampleConfig() domain.MachineConfig {
	cfg := ClassicConfig()
	cfg.Paylines = []domain.PaylinePattern{HorizontalLine(PaylineHorizontal2, 1, DefaultReels)}
	cfg.PayoutTable = domain.PayoutTable{3: 50, 4: 200, 5: 1000}
	cfg.ScatterPayoutTable = domain.PayoutTable{3: 100, 4: 400, 5: 2000}
	cfg.DefaultBet = 10
	cfg.MinBet = 1
	cfg.MaxBet = 500
	return cfg
}

// fillerGrid is a 3×5 grid with no line wins and no scatters.
func fillerGrid() domain.Grid {
	return domain.Grid{
		{CH, BA, ST, DI, CO},
		{DI, CO, CH, BA, ST},
		{BA, ST, DI, CO, CH},
	}
}

// withRow returns g with row r replaced.
func withRow(g domain.Grid, r int, row ...domain.Symbol) domain.Grid {
	out := g.Clone()
	out[r] = row
	return out
}

func newTestEngine(t *testing.T, cfg domain.MachineConfig, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, opts...)
	require.NoError(t, err)
	return e
}

// countingRNG wraps a fixed sequence and records how often it was asked.
type countingRNG struct {
	values []int
	calls  int
}

func (c *countingRNG) next(n int) int {
	v := 0
	if len(c.values) > 0 {
		v = c.values[c.calls%len(c.values)]
	}
	c.calls++
	return v % n
}
