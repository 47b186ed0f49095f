package slots

import "github.com/osse101/slotengine/internal/domain"

// findAnchor returns the first non-wild symbol on the line, or WILD when the
// whole line is wild.
func findAnchor(line []domain.Symbol) domain.Symbol {
	for _, s := range line {
		if !s.IsWild() {
			return s
		}
	}
	return domain.SymbolWild
}

// substituteWilds reports each wild in the matched run promoted to the anchor.
// An all-wild run has nothing concrete to promote to, so it yields none.
func substituteWilds(run []domain.Symbol, cells []domain.Position, anchor domain.Symbol) []domain.WildSubstitution {
	if anchor.IsWild() {
		return nil
	}
	var subs []domain.WildSubstitution
	for i, s := range run {
		if s.IsWild() {
			subs = append(subs, domain.WildSubstitution{
				Index:      i,
				Cell:       cells[i],
				PromotedTo: anchor,
			})
		}
	}
	return subs
}

// applySubstitutions returns a copy of line with substituted wilds replaced.
func applySubstitutions(line []domain.Symbol, subs []domain.WildSubstitution) []domain.Symbol {
	out := append([]domain.Symbol(nil), line...)
	for _, sub := range subs {
		out[sub.Index] = sub.PromotedTo
	}
	return out
}
