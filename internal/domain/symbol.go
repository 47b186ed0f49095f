package domain

import (
	"fmt"
	"strings"
)

// Symbol is a reel symbol. The zero value is not a valid symbol.
type Symbol uint8

const (
	SymbolInvalid Symbol = iota
	SymbolCherry
	SymbolBar
	SymbolSeven
	SymbolStar
	SymbolDiamond
	SymbolCoin
	SymbolWild
	SymbolScatter
)

var symbolNames = [...]string{
	SymbolInvalid: "INVALID",
	SymbolCherry:  "CHERRY",
	SymbolBar:     "BAR",
	SymbolSeven:   "SEVEN",
	SymbolStar:    "STAR",
	SymbolDiamond: "DIAMOND",
	SymbolCoin:    "COIN",
	SymbolWild:    "WILD",
	SymbolScatter: "SCATTER",
}

// AllSymbols lists every valid symbol in declaration order.
var AllSymbols = []Symbol{
	SymbolCherry,
	SymbolBar,
	SymbolSeven,
	SymbolStar,
	SymbolDiamond,
	SymbolCoin,
	SymbolWild,
	SymbolScatter,
}

// ParseSymbol converts a symbol name (case-insensitive) into a Symbol.
func ParseSymbol(name string) (Symbol, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, s := range AllSymbols {
		if symbolNames[s] == upper {
			return s, nil
		}
	}
	return SymbolInvalid, fmt.Errorf("%w: %q", ErrUnexpectedSymbol, name)
}

// String returns the upper-case symbol name.
func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// Valid reports whether s is one of the declared symbols.
func (s Symbol) Valid() bool {
	return s > SymbolInvalid && s <= SymbolScatter
}

// IsWild reports whether s substitutes on paylines.
func (s Symbol) IsWild() bool { return s == SymbolWild }

// IsScatter reports whether s pays by grid-wide count.
func (s Symbol) IsScatter() bool { return s == SymbolScatter }

// IsPlain reports whether s is an ordinary line symbol.
func (s Symbol) IsPlain() bool { return s.Valid() && !s.IsWild() && !s.IsScatter() }

// MarshalText implements encoding.TextMarshaler so symbols travel as names in JSON and YAML.
func (s Symbol) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedSymbol, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
