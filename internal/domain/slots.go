package domain

// WildSubstitution records a WILD inside a winning run and the symbol it stood in for.
type WildSubstitution struct {
	Index      int      `json:"index"` // Offset along the payline (0 = first reel)
	Cell       Position `json:"cell"`
	PromotedTo Symbol   `json:"promoted_to"`
}

// LineResult is the evaluation of one payline.
type LineResult struct {
	Payline       string             `json:"payline"`
	Symbol        Symbol             `json:"symbol,omitempty"` // Anchor; WILD for an all-wild run
	Matches       int                `json:"matches"`
	Symbols       []Symbol           `json:"symbols"`          // Post-substitution
	Original      []Symbol           `json:"original"`         // As drawn
	Substitutions []WildSubstitution `json:"substitutions,omitempty"`
	Cells         []Position         `json:"cells,omitempty"` // Cells of the matched run
	Payout        int64              `json:"payout"`
}

// IsWin reports whether the line paid.
func (l LineResult) IsWin() bool { return l.Payout > 0 }

// ScatterResult is the grid-wide scatter evaluation.
type ScatterResult struct {
	Count  int        `json:"count"`
	Cells  []Position `json:"cells"`
	Payout int64      `json:"payout"`
}

// SpinResult represents the outcome of one evaluated grid
type SpinResult struct {
	ID          string         `json:"id,omitempty"`
	MachineID   string         `json:"machine_id,omitempty"`
	Grid        Grid           `json:"grid"`
	BetAmount   int64          `json:"bet_amount"`
	TotalPayout int64          `json:"total_payout"`
	Lines       []LineResult   `json:"lines"`
	Scatter     *ScatterResult `json:"scatter,omitempty"` // Nil unless scatters paid
	Capped      bool           `json:"capped,omitempty"`  // Total clamped to the machine's max payout
	TriggerType string         `json:"trigger_type"`      // "normal", "big_win", "jackpot", "mega_jackpot"
}

// WinningLines returns only the lines that paid.
func (r *SpinResult) WinningLines() []LineResult {
	var out []LineResult
	for _, l := range r.Lines {
		if l.IsWin() {
			out = append(out, l)
		}
	}
	return out
}

// NetChange is what the caller credits (positive) or debits (negative) for this spin.
func (r *SpinResult) NetChange() int64 {
	return r.TotalPayout - r.BetAmount
}
