package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// RNG abstracts the uniform random source used by the engine.
// Every card construction and every per-turn expiry check draws exactly one value.
type RNG interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// NewRNG returns a seeded pseudo-random source. Equal seeds yield equal games.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
