package lotto

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstract
// Any math/rand/v2 Source works; the engine only needs Uint64.
type RandomSource = rand.Source

// crypto random : default generation method
type cryptoRNG struct{}

func (cryptoRNG) Uint64() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// fall back to math/rand/v2
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG (e.g. tests, seeded draws)
func NewSeededRNG(seed uint64) RandomSource {
	return rand.NewPCG(seed, 0)
}
