package wall

import (
	"math/rand/v2"
)

// NewRand builds the deterministic random source used for decoration
// draws. A fixed seed reproduces the same sequence of decorations, which
// the tests rely on.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Decorate draws a fresh set of seed attributes for a placement. The tape
// color is resolved by the caller beforehand (see pkg/tape) so that this
// function stays pure given the injected random source.
func Decorate(rng *rand.Rand, tapeColor string) Decoration {
	return Decoration{
		TapeTilt:      rng.IntN(2) == 1,
		TapeColor:     tapeColor,
		WoodVariant:   1 + rng.IntN(3),
		OrnateVariant: 1 + rng.IntN(3),
	}
}
