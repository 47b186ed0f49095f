package domain

import (
	"sort"
	"time"
)

// PaylinePattern is a named path of one cell per reel across the grid.
type PaylinePattern struct {
	Name  string     `json:"name" yaml:"name" validate:"required,max=64"`
	Cells []Position `json:"cells" yaml:"cells" validate:"required,dive"`
}

// PayoutTable maps a match count to the amount paid at the default bet.
type PayoutTable map[int]int64

// Counts returns the table keys in ascending order.
func (t PayoutTable) Counts() []int {
	counts := make([]int, 0, len(t))
	for n := range t {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	return counts
}

// MinCount returns the smallest payable count, or 0 for an empty table.
func (t PayoutTable) MinCount() int {
	counts := t.Counts()
	if len(counts) == 0 {
		return 0
	}
	return counts[0]
}

// Lookup returns the amount for the highest key not above count.
// Counts below the minimum key pay nothing.
func (t PayoutTable) Lookup(count int) int64 {
	var (
		best  int64
		found bool
	)
	for _, n := range t.Counts() {
		if n > count {
			break
		}
		best, found = t[n], true
	}
	if !found {
		return 0
	}
	return best
}

// SymbolWeight declares a symbol in the machine's set and its relative draw frequency.
// Zero weights across the whole set mean uniform draws.
type SymbolWeight struct {
	Symbol Symbol `json:"symbol" yaml:"symbol" validate:"required"`
	Weight int    `json:"weight,omitempty" yaml:"weight,omitempty" validate:"gte=0"`
}

// MachineConfig is the full, read-only configuration of one slot machine.
type MachineConfig struct {
	Rows     int              `json:"rows" yaml:"rows" validate:"required,min=1,max=10"`
	Reels    int              `json:"reels" yaml:"reels" validate:"required,min=2,max=10"`
	Symbols  []SymbolWeight   `json:"symbols" yaml:"symbols" validate:"required,min=1,dive"`
	Paylines []PaylinePattern `json:"paylines" yaml:"paylines" validate:"required,min=1,dive"`

	PayoutTable        PayoutTable            `json:"payout_table" yaml:"payout_table" validate:"required,min=1"`
	SymbolPayouts      map[Symbol]PayoutTable `json:"symbol_payouts,omitempty" yaml:"symbol_payouts,omitempty"`
	ScatterPayoutTable PayoutTable            `json:"scatter_payout_table,omitempty" yaml:"scatter_payout_table,omitempty"`

	DefaultBet int64 `json:"default_bet" yaml:"default_bet" validate:"required,gt=0"`
	MinBet     int64 `json:"min_bet" yaml:"min_bet" validate:"required,gt=0"`
	MaxBet     int64 `json:"max_bet" yaml:"max_bet" validate:"required,gtefield=MinBet"`
	MaxPayout  int64 `json:"max_payout,omitempty" yaml:"max_payout,omitempty" validate:"gte=0"` // 0 = uncapped
}

// HasSymbol reports whether s belongs to the configured symbol set.
func (c MachineConfig) HasSymbol(s Symbol) bool {
	for _, sw := range c.Symbols {
		if sw.Symbol == s {
			return true
		}
	}
	return false
}

// Machine is a persisted, named machine configuration.
type Machine struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Version   int           `json:"version"`
	Config    MachineConfig `json:"config"`
	UpdatedAt time.Time     `json:"updated_at"`
}
