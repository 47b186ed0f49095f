package slots

import (
	"fmt"

	"github.com/osse101/slotengine/internal/domain"
)

// LineMatch is the outcome of walking one payline, before any money is involved.
type LineMatch struct {
	Payline       string
	Original      []domain.Symbol
	Anchor        domain.Symbol // SymbolInvalid when the line cannot match at all
	Matches       int
	Substitutions []domain.WildSubstitution
	Cells         []domain.Position
}

// Payable reports whether the run is long enough to be looked up.
func (m LineMatch) Payable() bool {
	return m.Anchor != domain.SymbolInvalid && m.Matches >= MinLineMatch
}

// Symbols returns the line with substituted wilds shown as their anchor.
func (m LineMatch) Symbols() []domain.Symbol {
	return applySubstitutions(m.Original, m.Substitutions)
}

// ResolvePayline walks the pattern from reel 0 and measures the run of the
// anchor symbol, wilds included. The first break ends the run. SCATTER never
// takes part in a line: a scatter in the first cell or as the anchor gives 0.
func ResolvePayline(grid domain.Grid, pattern domain.PaylinePattern) (LineMatch, error) {
	m := LineMatch{
		Payline:  pattern.Name,
		Original: make([]domain.Symbol, len(pattern.Cells)),
	}
	for i, c := range pattern.Cells {
		if !grid.Contains(c) {
			return LineMatch{}, fmt.Errorf("%w: payline %q cell (%d,%d): %s", domain.ErrInvalidGrid, pattern.Name, c.Row, c.Reel, domain.ErrMsgInvalidPosition)
		}
		s := grid.At(c)
		if !s.Valid() {
			return LineMatch{}, fmt.Errorf("%w: %d at row %d reel %d", domain.ErrUnexpectedSymbol, uint8(s), c.Row, c.Reel)
		}
		m.Original[i] = s
	}

	if len(m.Original) == 0 || m.Original[0].IsScatter() {
		return m, nil
	}

	anchor := findAnchor(m.Original)
	if anchor.IsScatter() {
		return m, nil
	}

	for i, s := range m.Original {
		if s != anchor && !s.IsWild() {
			break
		}
		m.Matches++
		m.Cells = append(m.Cells, pattern.Cells[i])
	}
	m.Anchor = anchor
	m.Substitutions = substituteWilds(m.Original[:m.Matches], pattern.Cells, anchor)
	return m, nil
}
