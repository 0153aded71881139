package service

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// SleepDelayer implements ports.Delayer with a blocking sleep.
type SleepDelayer struct{}

// Delay blocks for d. It deliberately ignores request cancellation.
func (SleepDelayer) Delay(d time.Duration) {
	time.Sleep(d)
}

// RandomHashSource implements ports.HashSource with a non-cryptographic PRNG.
// Output looks like "0x1f3a9c0d77e2b410...": cosmetic, never a real tx hash.
type RandomHashSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomHashSource creates a hash source seeded from the runtime generator.
func NewRandomHashSource() *RandomHashSource {
	return NewSeededHashSource(rand.Uint64(), rand.Uint64())
}

// NewSeededHashSource creates a reproducible hash source.
func NewSeededHashSource(seed1, seed2 uint64) *RandomHashSource {
	return &RandomHashSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// TxHash returns a fresh mock hash.
func (h *RandomHashSource) TxHash() string {
	h.mu.Lock()
	v := h.rng.Uint64()
	h.mu.Unlock()
	return fmt.Sprintf("0x%016x...", v)
}
