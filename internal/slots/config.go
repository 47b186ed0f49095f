package slots

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/slotengine/internal/domain"
)

var validate = newConfigValidator()

// newConfigValidator names fields by their json tag so errors read like the machine file.
func newConfigValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ClassicConfig returns the built-in 3×5 machine: all eight symbols drawn
// uniformly, five standard lines, three-scatter bonus.
func ClassicConfig() domain.MachineConfig {
	symbols := make([]domain.SymbolWeight, len(domain.AllSymbols))
	for i, s := range domain.AllSymbols {
		symbols[i] = domain.SymbolWeight{Symbol: s}
	}
	return domain.MachineConfig{
		Rows:               DefaultRows,
		Reels:              DefaultReels,
		Symbols:            symbols,
		Paylines:           StandardPaylines(DefaultReels),
		PayoutTable:        domain.PayoutTable{3: 50, 4: 200, 5: 1000},
		ScatterPayoutTable: domain.PayoutTable{3: 100, 4: 500, 5: 2500},
		DefaultBet:         ClassicDefaultBet,
		MinBet:             ClassicMinBet,
		MaxBet:             ClassicMaxBet,
	}
}

// ValidateConfig checks a machine configuration once, up front. Every failure
// wraps domain.ErrInvalidConfig; an engine is never built from a config that fails.
func ValidateConfig(cfg domain.MachineConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, describeValidation(err))
	}

	if err := validateSymbols(cfg); err != nil {
		return err
	}

	names := make(map[string]bool, len(cfg.Paylines))
	for _, p := range cfg.Paylines {
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate payline %q", domain.ErrInvalidConfig, p.Name)
		}
		names[p.Name] = true
		if err := ValidatePattern(p, cfg.Rows, cfg.Reels); err != nil {
			return err
		}
	}

	if err := validateTable("payout_table", cfg.PayoutTable, MinLineMatch, cfg.Reels); err != nil {
		return err
	}
	for s, t := range cfg.SymbolPayouts {
		if !s.IsPlain() {
			return fmt.Errorf("%w: symbol_payouts may only key plain symbols, got %s", domain.ErrInvalidConfig, s)
		}
		if !cfg.HasSymbol(s) {
			return fmt.Errorf("%w: symbol_payouts references %s which is not in the symbol set", domain.ErrInvalidConfig, s)
		}
		if len(t) == 0 {
			return fmt.Errorf("%w: symbol_payouts.%s: %s", domain.ErrInvalidConfig, s, domain.ErrMsgEmptyPayoutTable)
		}
		if err := validateTable("symbol_payouts."+s.String(), t, MinLineMatch, cfg.Reels); err != nil {
			return err
		}
	}

	if len(cfg.ScatterPayoutTable) > 0 {
		if !cfg.HasSymbol(domain.SymbolScatter) {
			return fmt.Errorf("%w: scatter_payout_table set but SCATTER is not in the symbol set", domain.ErrInvalidConfig)
		}
		if err := validateTable("scatter_payout_table", cfg.ScatterPayoutTable, MinScatterPays, cfg.Rows*cfg.Reels); err != nil {
			return err
		}
	}

	if cfg.DefaultBet <= 0 {
		return fmt.Errorf("%w: default_bet must be positive", domain.ErrInvalidConfig)
	}
	if cfg.MinBet > cfg.MaxBet {
		return fmt.Errorf("%w: min_bet %d exceeds max_bet %d", domain.ErrInvalidConfig, cfg.MinBet, cfg.MaxBet)
	}
	return nil
}

func validateSymbols(cfg domain.MachineConfig) error {
	seen := make(map[domain.Symbol]bool, len(cfg.Symbols))
	plain := false
	for _, sw := range cfg.Symbols {
		if !sw.Symbol.Valid() {
			return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, domain.ErrMsgUnexpectedSymbol)
		}
		if seen[sw.Symbol] {
			return fmt.Errorf("%w: symbol %s declared twice", domain.ErrInvalidConfig, sw.Symbol)
		}
		seen[sw.Symbol] = true
		if sw.Symbol.IsPlain() {
			plain = true
		}
	}
	if !plain {
		return fmt.Errorf("%w: symbol set needs at least one plain symbol", domain.ErrInvalidConfig)
	}
	return nil
}

// validateTable enforces key bounds and non-decreasing amounts.
func validateTable(name string, t domain.PayoutTable, minKey, maxKey int) error {
	var prev int64
	for i, n := range t.Counts() {
		if n < minKey || n > maxKey {
			return fmt.Errorf("%w: %s key %d outside %d..%d", domain.ErrInvalidConfig, name, n, minKey, maxKey)
		}
		amount := t[n]
		if amount < 0 {
			return fmt.Errorf("%w: %s[%d] is negative", domain.ErrInvalidConfig, name, n)
		}
		if i > 0 && amount < prev {
			return fmt.Errorf("%w: %s: %s (%d pays %d, less than %d)", domain.ErrInvalidConfig, name, domain.ErrMsgNonMonotonicTable, n, amount, prev)
		}
		prev = amount
	}
	return nil
}

// describeValidation flattens validator errors into one line without leaking Go type names.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Namespace())
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", field, e.Tag(), e.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", field, e.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
