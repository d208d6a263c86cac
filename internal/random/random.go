// internal/random/random.go
//
// Uniform integer sources for target selection.
//   - CryptoSource: crypto/rand backed, the engine's fallback when no
//     source is injected.
//   - Seeded: math/rand/v2 PCG, deterministic for a given seed. The game
//     binary always plays on one, seeded from NewSeed, NUMGUESS_SEED or the
//     daily seed, so any session can be replayed.
//
// Both draw from the inclusive range [min, max] and panic if min > max;
// callers validate bounds first.

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"math/rand/v2"
	"sync"
)

// CryptoSource draws targets from crypto/rand. It is safe for concurrent use.
type CryptoSource struct {
	r io.Reader // nil means crypto/rand.Reader
}

// NewCryptoSource returns the default source.
func NewCryptoSource() CryptoSource { return CryptoSource{} }

// IntRange returns a uniform integer in [min, max]. It panics if the
// system entropy source fails, since any fallback value would be guessable.
func (c CryptoSource) IntRange(min, max int) int {
	mustOrder(min, max)
	r := c.r
	if r == nil {
		r = crand.Reader
	}
	lo := big.NewInt(int64(min))
	span := new(big.Int).Sub(big.NewInt(int64(max)), lo)
	span.Add(span, big.NewInt(1))
	n, err := crand.Int(r, span)
	if err != nil {
		panic(fmt.Sprintf("random: read crypto source: %v", err))
	}
	return int(n.Add(n, lo).Int64())
}

// Seeded is a deterministic PCG source.
type Seeded struct {
	mu sync.Mutex // guards r
	r  *rand.Rand
}

// NewSeeded creates a source whose sequence depends only on seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, 0))}
}

// IntRange returns a uniform integer in [min, max].
func (s *Seeded) IntRange(min, max int) int {
	mustOrder(min, max)
	s.mu.Lock()
	defer s.mu.Unlock()
	// span wraps to 0 only when the range covers every int
	span := uint64(max-min) + 1
	if span == 0 {
		return int(s.r.Uint64())
	}
	return min + int(s.r.Uint64N(span))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func mustOrder(min, max int) {
	if min > max {
		panic(fmt.Sprintf("random: invalid range [%d, %d]", min, max))
	}
}
