package lotto

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"math/rand/v2"
	"strconv"
	"time"
)

// SeedModulus bounds every derived seed to [0, 10^8).
const SeedModulus = 100_000_000

// SpatialScale is the exclusive upper bound of the mock spatial signal.
const SpatialScale = 1000.0

// SeedMaterial is the per-draw input of the spacetime seed. It is never stored.
type SeedMaterial struct {
	Timestamp time.Time
	Spatial   float64 // in [0, SpatialScale)
}

// NewSeedMaterial pairs now with a spatial value drawn from aux.
// aux stands in for an external sensor signal.
func NewSeedMaterial(now time.Time, aux RandomSource) SeedMaterial {
	if aux == nil {
		aux = DefaultRNG()
	}
	return SeedMaterial{
		Timestamp: now,
		Spatial:   rand.New(aux).Float64() * SpatialScale,
	}
}

// String renders "<unix seconds>.<microseconds>-<spatial>".
func (m SeedMaterial) String() string {
	us := m.Timestamp.UnixMicro()
	return fmt.Sprintf("%d.%06d-%s", us/1_000_000, us%1_000_000, strconv.FormatFloat(m.Spatial, 'f', -1, 64))
}

// DeriveSeed hashes the rendered material with SHA-256, reads the digest as a
// big-endian integer and reduces it modulo SeedModulus.
// Equal material always yields the same seed.
func DeriveSeed(m SeedMaterial) uint64 {
	sum := sha256.Sum256([]byte(m.String()))
	n := new(big.Int).SetBytes(sum[:])
	return n.Mod(n, big.NewInt(SeedModulus)).Uint64()
}
