package services

import (
	"math/rand/v2"
	"sync"
)

const (
	tripCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	TripCodeLength   = 6
)

// TripCodeGenerator hands out short shareable trip codes. Codes are not
// checked for uniqueness.
type TripCodeGenerator interface {
	Next() string
}

// RandomTripCodes draws each character uniformly from [A-Za-z0-9].
// Safe for concurrent use.
type RandomTripCodes struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewTripCodeGenerator() *RandomTripCodes {
	return NewSeededTripCodeGenerator(rand.Uint64())
}

// NewSeededTripCodeGenerator returns a generator with a reproducible sequence.
func NewSeededTripCodeGenerator(seed uint64) *RandomTripCodes {
	return &RandomTripCodes{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *RandomTripCodes) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, TripCodeLength)
	for i := range b {
		b[i] = tripCodeAlphabet[g.rng.IntN(len(tripCodeAlphabet))]
	}
	return string(b)
}

var defaultTripCodes TripCodeGenerator = NewTripCodeGenerator()
