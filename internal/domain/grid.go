package domain

import (
	"fmt"
	"strings"
)

// Position addresses one cell of a grid.
type Position struct {
	Row  int `json:"row" yaml:"row" validate:"gte=0"`
	Reel int `json:"reel" yaml:"reel" validate:"gte=0"`
}

// Grid is a rows × reels matrix of symbols, indexed grid[row][reel].
type Grid [][]Symbol

// NewGrid allocates an empty grid of the given shape.
func NewGrid(rows, reels int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]Symbol, reels)
	}
	return g
}

// ParseGrid builds a grid from symbol names, one slice per row.
func ParseGrid(rows [][]string) (Grid, error) {
	g := make(Grid, len(rows))
	for r, row := range rows {
		g[r] = make([]Symbol, len(row))
		for c, name := range row {
			s, err := ParseSymbol(name)
			if err != nil {
				return nil, fmt.Errorf("row %d reel %d: %w", r, c, err)
			}
			g[r][c] = s
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Reels returns the number of reels (columns).
func (g Grid) Reels() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Contains reports whether p is inside the grid.
func (g Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Reel >= 0 && p.Reel < g.Reels()
}

// At returns the symbol at p. Callers check Contains first.
func (g Grid) At(p Position) Symbol {
	return g[p.Row][p.Reel]
}

// CheckShape verifies the grid is exactly rows × reels.
func (g Grid) CheckShape(rows, reels int) error {
	if len(g) != rows {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidGrid, rows, len(g))
	}
	for r, row := range g {
		if len(row) != reels {
			return fmt.Errorf("%w: row %d has %d reels, expected %d", ErrInvalidGrid, r, len(row), reels)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]Symbol(nil), row...)
	}
	return out
}

func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, s := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s.String())
		}
	}
	return sb.String()
}
