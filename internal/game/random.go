package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// NewRNG builds the session's PRNG from a seed. The same seed replays the
// same run: fish draws, bite waits, and fight wander all come from here.
func NewRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
