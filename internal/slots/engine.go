package slots

import (
	"fmt"

	"github.com/osse101/slotengine/internal/domain"
)

// Engine evaluates spins for one validated machine configuration.
// It holds no per-spin state and is safe for concurrent use as long as its
// RNG is.
type Engine struct {
	cfg     domain.MachineConfig
	gen     *Generator
	symbols map[domain.Symbol]bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRNG replaces the crypto-backed random source.
func WithRNG(rng RNG) Option {
	return func(e *Engine) {
		e.gen = NewGenerator(rng)
	}
}

// NewEngine validates cfg and builds an engine from a private copy of it.
func NewEngine(cfg domain.MachineConfig, opts ...Option) (*Engine, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cloneConfig(cfg),
		gen:     NewGenerator(nil),
		symbols: make(map[domain.Symbol]bool, len(cfg.Symbols)),
	}
	for _, sw := range cfg.Symbols {
		e.symbols[sw.Symbol] = true
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() domain.MachineConfig {
	return cloneConfig(e.cfg)
}

// WithRNG returns an engine sharing this configuration but drawing from rng.
func (e *Engine) WithRNG(rng RNG) *Engine {
	clone := *e
	clone.gen = NewGenerator(rng)
	return &clone
}

// ValidateBet enforces minBet ≤ bet ≤ maxBet.
func (e *Engine) ValidateBet(bet int64) error {
	if bet < e.cfg.MinBet {
		return fmt.Errorf("%w: minimum bet is %d, got %d", domain.ErrInvalidBet, e.cfg.MinBet, bet)
	}
	if bet > e.cfg.MaxBet {
		return fmt.Errorf("%w: maximum bet is %d, got %d", domain.ErrInvalidBet, e.cfg.MaxBet, bet)
	}
	return nil
}

// Spin rejects an out-of-range bet, then draws a fresh grid and evaluates it.
func (e *Engine) Spin(bet int64) (*domain.SpinResult, error) {
	if err := e.ValidateBet(bet); err != nil {
		return nil, err
	}
	grid := e.gen.Generate(e.cfg.Rows, e.cfg.Reels, e.cfg.Symbols)
	return e.evaluate(grid, bet)
}

// Evaluate scores a caller-supplied grid. The grid must match the machine's
// shape and contain only symbols from its set.
func (e *Engine) Evaluate(grid domain.Grid, bet int64) (*domain.SpinResult, error) {
	if err := e.ValidateBet(bet); err != nil {
		return nil, err
	}
	return e.evaluate(grid, bet)
}

func (e *Engine) evaluate(grid domain.Grid, bet int64) (*domain.SpinResult, error) {
	if err := grid.CheckShape(e.cfg.Rows, e.cfg.Reels); err != nil {
		return nil, err
	}
	if err := e.checkSymbols(grid); err != nil {
		return nil, err
	}

	lines := make([]LineMatch, 0, len(e.cfg.Paylines))
	for _, p := range e.cfg.Paylines {
		m, err := ResolvePayline(grid, p)
		if err != nil {
			return nil, err
		}
		lines = append(lines, m)
	}

	scatter, err := ResolveScatter(grid, e.cfg.ScatterPayoutTable)
	if err != nil {
		return nil, err
	}

	result := Aggregate(lines, scatter, bet, e.cfg)
	result.Grid = grid.Clone()
	return result, nil
}

// checkSymbols fails on any cell outside the configured set. Such a cell means
// the grid was not produced for this machine.
func (e *Engine) checkSymbols(grid domain.Grid) error {
	for r, row := range grid {
		for c, s := range row {
			if !e.symbols[s] {
				return fmt.Errorf("%w: %s at row %d reel %d is not in the machine's symbol set", domain.ErrUnexpectedSymbol, s, r, c)
			}
		}
	}
	return nil
}

func cloneConfig(cfg domain.MachineConfig) domain.MachineConfig {
	out := cfg
	out.Symbols = append([]domain.SymbolWeight(nil), cfg.Symbols...)
	out.Paylines = make([]domain.PaylinePattern, len(cfg.Paylines))
	for i, p := range cfg.Paylines {
		out.Paylines[i] = domain.PaylinePattern{
			Name:  p.Name,
			Cells: append([]domain.Position(nil), p.Cells...),
		}
	}
	out.PayoutTable = cloneTable(cfg.PayoutTable)
	out.ScatterPayoutTable = cloneTable(cfg.ScatterPayoutTable)
	if cfg.SymbolPayouts != nil {
		out.SymbolPayouts = make(map[domain.Symbol]domain.PayoutTable, len(cfg.SymbolPayouts))
		for s, t := range cfg.SymbolPayouts {
			out.SymbolPayouts[s] = cloneTable(t)
		}
	}
	return out
}

func cloneTable(t domain.PayoutTable) domain.PayoutTable {
	if t == nil {
		return nil
	}
	out := make(domain.PayoutTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
