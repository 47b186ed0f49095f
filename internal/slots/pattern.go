package slots

import (
	"fmt"

	"github.com/osse101/slotengine/internal/domain"
)

// PatternFromRows builds a payline that visits rows[i] on reel i.
func PatternFromRows(name string, rows ...int) domain.PaylinePattern {
	cells := make([]domain.Position, len(rows))
	for reel, row := range rows {
		cells[reel] = domain.Position{Row: row, Reel: reel}
	}
	return domain.PaylinePattern{Name: name, Cells: cells}
}

// HorizontalLine builds a straight payline along one row.
func HorizontalLine(name string, row, reels int) domain.PaylinePattern {
	rows := make([]int, reels)
	for i := range rows {
		rows[i] = row
	}
	return PatternFromRows(name, rows...)
}

// StandardPaylines returns the five classic lines for a three-row machine:
// the three rows, a V and an inverted V.
func StandardPaylines(reels int) []domain.PaylinePattern {
	v := make([]int, reels)
	inv := make([]int, reels)
	for i := range v {
		// distance from the nearest edge reel, clamped to the bottom row
		d := i
		if reels-1-i < d {
			d = reels - 1 - i
		}
		if d > 2 {
			d = 2
		}
		v[i] = d
		inv[i] = 2 - d
	}
	return []domain.PaylinePattern{
		HorizontalLine(PaylineHorizontal1, 0, reels),
		HorizontalLine(PaylineHorizontal2, 1, reels),
		HorizontalLine(PaylineHorizontal3, 2, reels),
		PatternFromRows(PaylineV, v...),
		PatternFromRows(PaylineInvertedV, inv...),
	}
}

// ValidatePattern checks that p has exactly one cell per reel, reels strictly
// increasing from 0, and every row inside the grid.
func ValidatePattern(p domain.PaylinePattern, rows, reels int) error {
	if len(p.Cells) != reels {
		return fmt.Errorf("%w: payline %q has %d cells, expected %d", domain.ErrInvalidConfig, p.Name, len(p.Cells), reels)
	}
	for i, c := range p.Cells {
		if c.Reel != i {
			return fmt.Errorf("%w: payline %q cell %d is on reel %d, expected reel %d", domain.ErrInvalidConfig, p.Name, i, c.Reel, i)
		}
		if c.Row < 0 || c.Row >= rows {
			return fmt.Errorf("%w: payline %q cell %d row %d outside 0..%d", domain.ErrInvalidConfig, p.Name, i, c.Row, rows-1)
		}
	}
	return nil
}
