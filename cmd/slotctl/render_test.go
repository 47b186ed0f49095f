package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/slots"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Seven", displayName(domain.SymbolSeven))
	assert.Equal(t, "Scatter", displayName(domain.SymbolScatter))
	assert.Equal(t, "Wild", displayName(domain.SymbolWild))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "1,000", formatAmount(1000))
	assert.Equal(t, "-2,500,000", formatAmount(-2_500_000))
}

func TestParseGrid(t *testing.T) {
	grid, err := parseGrid([]string{"seven, wild ,BAR"})
	require.NoError(t, err)
	assert.Equal(t, domain.Grid{{domain.SymbolSeven, domain.SymbolWild, domain.SymbolBar}}, grid)

	_, err = parseGrid([]string{"SEVEN,,BAR"})
	assert.ErrorIs(t, err, domain.ErrUnexpectedSymbol)
}

func TestRenderReport_ListsTriggersInOrder(t *testing.T) {
	r := &slots.SimulationReport{
		Spins: 10, Bet: 10, TotalWagered: 100, TotalPaid: 95, RTP: 0.95,
		Triggers: map[string]int{slots.TriggerJackpot: 1, slots.TriggerBigWin: 3},
	}

	out := renderReport(domain.Machine{Name: "Classic"}, r, time.Second)

	assert.Contains(t, out, "95.0000%")
	big := strings.Index(out, "Big Win")
	jack := strings.Index(out, "Jackpot")
	require.NotEqual(t, -1, big)
	require.NotEqual(t, -1, jack)
	assert.Less(t, big, jack)
}
