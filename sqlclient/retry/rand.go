package retry

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand/v2"
)

// Source yields uniform random values for jitter draws.
//
// A Source may be shared by strategy instances running on different
// goroutines and must be safe for concurrent use. Strategies never call it
// with a zero bound.
type Source interface {
	// Uint64N returns a uniform value in [0, n). n must be greater than zero.
	Uint64N(n uint64) uint64
}

// DefaultSource is the process-wide jitter source. It draws from crypto/rand
// and degrades through two fallback layers so a draw never stalls:
//   - a math/rand/v2 PCG seeded from crypto/rand, since rand.Read uses a
//     different code path than rand.Int and may succeed independently;
//   - a deterministic midpoint when even seeding fails, trading jitter
//     quality for progress under severe entropy exhaustion.
var DefaultSource Source = cryptoSource{}

type cryptoSource struct{}

func (cryptoSource) Uint64N(n uint64) uint64 {
	v, err := rand.Int(rand.Reader, new(big.Int).SetUint64(n))
	if err != nil {
		return fallbackUint64N(n)
	}

	return v.Uint64()
}

// fallbackDivisor is used when crypto/rand fails completely.
const fallbackDivisor = 2

func fallbackUint64N(n uint64) uint64 {
	var seed [8]byte

	if _, err := rand.Read(seed[:]); err != nil {
		return n / fallbackDivisor
	}

	rng := mrand.New(
		mrand.NewPCG(binary.LittleEndian.Uint64(seed[:]), 0),
	) // #nosec G404 -- Fallback when crypto/rand fails

	return rng.Uint64N(n)
}
