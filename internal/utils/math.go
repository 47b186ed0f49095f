package utils

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"
	"sync"
)

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Fallback only, see SecureIntn
}

// SecureRandomInt returns a random integer between min and max (inclusive) using crypto/rand
func SecureRandomInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("min cannot be greater than max")
	}
	diff := big.NewInt(int64(max - min + 1))
	n, err := crand.Int(crand.Reader, diff)
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + min, nil
}

// SecureIntn returns a crypto-random integer in [0, n). n must be positive.
// If the system entropy source fails it falls back to math/rand rather than stalling a spin.
func SecureIntn(n int) int {
	v, err := SecureRandomInt(0, n-1)
	if err != nil {
		return RandomInt(0, n-1)
	}
	return v
}

// NewSeededIntn returns a deterministic [0, n) source for reproducible runs.
// The returned function is safe for concurrent use.
func NewSeededIntn(seed int64) func(int) int {
	var mu sync.Mutex
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Reproducibility, not secrecy
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		return r.Intn(n)
	}
}
