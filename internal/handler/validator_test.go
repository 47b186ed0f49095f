package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/slotengine/internal/domain"
)

func TestValidator_MachineID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"classic", true},
		{"tiny-3x1", true},
		{"vip_room_2", true},
		{"", false},
		{"Classic", false},
		{"-leading", false},
		{"has space", false},
		{"../etc", false},
		{string(make([]byte, 65)), false},
	}

	for _, tt := range tests {
		err := GetValidator().ValidateVar(tt.id, "required,machine_id")
		assert.Equal(t, tt.valid, err == nil, "id %q", tt.id)
	}
}

func TestValidator_Symbol(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateVar("seven", "symbol"))
	assert.NoError(t, v.ValidateVar(domain.SymbolWild, "symbol"))
	assert.Error(t, v.ValidateVar("LEMON", "symbol"))
	assert.Error(t, v.ValidateVar(domain.SymbolInvalid, "symbol"))
	assert.Error(t, v.ValidateVar(domain.Symbol(200), "symbol"))
}

func TestFormatValidationError(t *testing.T) {
	t.Run("uses json field names", func(t *testing.T) {
		err := GetValidator().ValidateStruct(SimulateRequest{Spins: 0, Workers: 100})
		require.Error(t, err)

		fields := FormatValidationError(err)

		assert.Equal(t, "This field is required", fields["spins"])
		assert.Equal(t, "Must be at most 64", fields["workers"])
	})

	t.Run("grid cells", func(t *testing.T) {
		req := EvaluateRequest{Grid: domain.Grid{{domain.SymbolSeven, domain.SymbolInvalid}}}
		err := GetValidator().ValidateStruct(req)
		require.Error(t, err)

		fields := FormatValidationError(err)

		assert.Equal(t, "Unknown symbol", fields["grid[0][1]"])
	})

	t.Run("non validation error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
