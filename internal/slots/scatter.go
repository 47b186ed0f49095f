package slots

import (
	"fmt"

	"github.com/osse101/slotengine/internal/domain"
)

// ScatterMatch is the grid-wide scatter count and the table amount it earns
// at the default bet.
type ScatterMatch struct {
	Count  int
	Cells  []domain.Position
	Amount int64
}

// Triggered reports whether the count reached the table's smallest key.
func (m ScatterMatch) Triggered(table domain.PayoutTable) bool {
	return len(table) > 0 && m.Count >= table.MinCount()
}

// ResolveScatter counts SCATTER cells anywhere on the grid, in row-major order,
// and looks the count up in table. Paylines play no part.
func ResolveScatter(grid domain.Grid, table domain.PayoutTable) (ScatterMatch, error) {
	var m ScatterMatch
	for r, row := range grid {
		for c, s := range row {
			if !s.Valid() {
				return ScatterMatch{}, fmt.Errorf("%w: %d at row %d reel %d", domain.ErrUnexpectedSymbol, uint8(s), r, c)
			}
			if s.IsScatter() {
				m.Count++
				m.Cells = append(m.Cells, domain.Position{Row: r, Reel: c})
			}
		}
	}
	m.Amount = table.Lookup(m.Count)
	return m, nil
}
