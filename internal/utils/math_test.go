package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureRandomInt(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     int
		wantErr bool
	}{
		{name: "single value range", min: 5, max: 5},
		{name: "small range", min: 0, max: 9},
		{name: "negative bounds", min: -10, max: -1},
		{name: "inverted range rejected", min: 10, max: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				got, err := SecureRandomInt(tt.min, tt.max)
				if tt.wantErr {
					require.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got, tt.min)
				assert.LessOrEqual(t, got, tt.max)
			}
		})
	}
}

func TestSecureIntn_Range(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := SecureIntn(4)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 4, "all values should appear over 1000 draws")
}

func TestNewSeededIntn(t *testing.T) {
	t.Run("same seed gives same sequence", func(t *testing.T) {
		a := NewSeededIntn(42)
		b := NewSeededIntn(42)
		for i := 0; i < 100; i++ {
			assert.Equal(t, a(1000), b(1000))
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := NewSeededIntn(1)
		b := NewSeededIntn(2)
		same := 0
		for i := 0; i < 100; i++ {
			if a(1_000_000) == b(1_000_000) {
				same++
			}
		}
		assert.Less(t, same, 5)
	})

	t.Run("concurrent use", func(t *testing.T) {
		rng := NewSeededIntn(7)
		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 500; i++ {
					v := rng(10)
					assert.True(t, v >= 0 && v < 10)
				}
			}()
		}
		wg.Wait()
	})
}
