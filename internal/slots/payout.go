package slots

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/slotengine/internal/domain"
)

var (
	decimalTwo = decimal.NewFromInt(2)
	decimalOne = decimal.NewFromInt(1)
)

// ScalePayout converts a table amount quoted at defaultBet into the payout for
// bet: amount × bet / defaultBet, rounded half-up to the nearest unit.
// The product is held as a decimal since amount × bet can overflow int64.
func ScalePayout(amount, bet, defaultBet int64) int64 {
	if amount <= 0 || bet <= 0 || defaultBet <= 0 {
		return 0
	}
	num := decimal.NewFromInt(amount).Mul(decimal.NewFromInt(bet))
	den := decimal.NewFromInt(defaultBet)

	q, r := num.QuoRem(den, 0)
	if r.Mul(decimalTwo).GreaterThanOrEqual(den) {
		q = q.Add(decimalOne)
	}
	return q.IntPart()
}

// lineAmount returns the table amount (at the default bet) for a resolved line.
func lineAmount(cfg domain.MachineConfig, m LineMatch) int64 {
	if !m.Payable() {
		return 0
	}
	if m.Anchor.IsWild() {
		return highestAmount(cfg, m.Matches)
	}
	if t, ok := cfg.SymbolPayouts[m.Anchor]; ok {
		return t.Lookup(m.Matches)
	}
	return cfg.PayoutTable.Lookup(m.Matches)
}

// highestAmount is what an all-wild run pays: the best rate any table offers
// for that length.
func highestAmount(cfg domain.MachineConfig, matches int) int64 {
	best := cfg.PayoutTable.Lookup(matches)
	for _, t := range cfg.SymbolPayouts {
		if v := t.Lookup(matches); v > best {
			best = v
		}
	}
	return best
}

// Aggregate prices every line and the scatter at the given bet and sums them.
// Each component is rounded on its own, so the total is exactly the sum of the
// reported payouts regardless of order. Inputs are not modified.
func Aggregate(lines []LineMatch, scatter ScatterMatch, bet int64, cfg domain.MachineConfig) *domain.SpinResult {
	result := &domain.SpinResult{
		BetAmount: bet,
		Lines:     make([]domain.LineResult, 0, len(lines)),
	}

	var total int64
	for _, m := range lines {
		payout := ScalePayout(lineAmount(cfg, m), bet, cfg.DefaultBet)
		lr := domain.LineResult{
			Payline:       m.Payline,
			Matches:       m.Matches,
			Symbols:       m.Symbols(),
			Original:      append([]domain.Symbol(nil), m.Original...),
			Substitutions: append([]domain.WildSubstitution(nil), m.Substitutions...),
			Cells:         append([]domain.Position(nil), m.Cells...),
			Payout:        payout,
		}
		if m.Anchor != domain.SymbolInvalid {
			lr.Symbol = m.Anchor
		}
		result.Lines = append(result.Lines, lr)
		total += payout
	}

	if scatter.Triggered(cfg.ScatterPayoutTable) {
		payout := ScalePayout(scatter.Amount, bet, cfg.DefaultBet)
		result.Scatter = &domain.ScatterResult{
			Count:  scatter.Count,
			Cells:  append([]domain.Position(nil), scatter.Cells...),
			Payout: payout,
		}
		total += payout
	}

	if cfg.MaxPayout > 0 && total > cfg.MaxPayout {
		total = cfg.MaxPayout
		result.Capped = true
	}
	result.TotalPayout = total
	result.TriggerType = classifyWin(total, bet)
	return result
}

// classifyWin buckets the spin by total payout as a multiple of the bet.
func classifyWin(total, bet int64) string {
	if bet <= 0 || total <= 0 {
		return TriggerNormal
	}
	multiplier := float64(total) / float64(bet)
	switch {
	case multiplier >= MegaJackpotThreshold:
		return TriggerMegaJackpot
	case multiplier >= JackpotThreshold:
		return TriggerJackpot
	case multiplier >= BigWinThreshold:
		return TriggerBigWin
	default:
		return TriggerNormal
	}
}
