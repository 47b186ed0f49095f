package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/slots"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagSeed, flagConfig, flagMachine, flagJSON, flagVerbose = 0, "", "classic", false, false
	flagSpinBet, flagSpinCount, flagEvaluateBet = 0, 1, 0
	flagSimSpins, flagSimBet, flagSimWorkers = 100_000, 0, slots.DefaultSimWorkers

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// barsRows pays three BARs on the middle line of the built-in machine and nothing else.
var barsRows = []string{
	"CHERRY,BAR,STAR,DIAMOND,COIN",
	"BAR,BAR,BAR,CHERRY,CHERRY",
	"BAR,STAR,DIAMOND,COIN,CHERRY",
}

func TestEvaluateCommand_JSON(t *testing.T) {
	out, err := execute(t, append([]string{"evaluate", "--json", "--bet", "20"}, barsRows...)...)
	require.NoError(t, err)

	var res domain.SpinResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, int64(20), res.BetAmount)
	assert.Equal(t, int64(100), res.TotalPayout)
}

func TestEvaluateCommand_Rendered(t *testing.T) {
	out, err := execute(t, append([]string{"evaluate"}, barsRows...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Bar")
	assert.Contains(t, out, "HORIZONTAL_2")
	assert.Contains(t, out, "Total 50")
}

func TestVerboseLogsMachineSource(t *testing.T) {
	out, err := execute(t, append([]string{"evaluate", "--verbose"}, barsRows...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded machine")
	assert.Contains(t, out, "machine_id=classic")

	quiet, err := execute(t, append([]string{"evaluate"}, barsRows...)...)
	require.NoError(t, err)
	assert.NotContains(t, quiet, "Loaded machine")
}

func TestEvaluateCommand_BadSymbol(t *testing.T) {
	_, err := execute(t, "evaluate", "SEVEN,LEMON,SEVEN")
	assert.ErrorIs(t, err, domain.ErrUnexpectedSymbol)
}

func TestSpinCommand_SeededIsReproducible(t *testing.T) {
	a, err := execute(t, "spin", "--seed", "11", "--count", "3", "--json")
	require.NoError(t, err)
	b, err := execute(t, "spin", "--seed", "11", "--count", "3", "--json")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSpinCommand_RejectsBet(t *testing.T) {
	_, err := execute(t, "spin", "--bet", "999999")
	assert.ErrorIs(t, err, domain.ErrInvalidBet)
}

func TestSimulateCommand(t *testing.T) {
	out, err := execute(t, "simulate", "--spins", "2000", "--seed", "5", "--workers", "2", "--json")
	require.NoError(t, err)

	var report slots.SimulationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2000, report.Spins)
	assert.Equal(t, int64(2000*slots.ClassicDefaultBet), report.TotalWagered)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`id: tiny
rows: 1
reels: 3
symbols: [{symbol: CHERRY}, {symbol: SEVEN}]
paylines:
  - name: CENTER
    cells: [{row: 0, reel: 0}, {row: 0, reel: 1}, {row: 0, reel: 2}]
payout_table: {3: 40}
default_bet: 1
min_bet: 1
max_bet: 10
`), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("id: broken\nrows: 0\n"), 0o600))

	out, err := execute(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "tiny: 1x3")

	out, err = execute(t, "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join("..", "..", "configs", "machines", "tiny.yaml")

	out, err := execute(t, "--config", path, "evaluate", "--json", "SEVEN,SEVEN,SEVEN")
	require.NoError(t, err)

	var res domain.SpinResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "tiny", res.MachineID)
	assert.Equal(t, int64(40), res.TotalPayout)
}
