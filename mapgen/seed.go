package mapgen

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// ResolveSeed turns the configured seed into the PRNG seed. With useRandom
// the clock decides; otherwise the seed string is hashed with FNV-1a 64 over
// its UTF-8 bytes, which is stable across platforms and Go releases.
func ResolveSeed(seed string, useRandom bool, now func() time.Time) int64 {
	if useRandom {
		return now().UnixNano()
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))

	return int64(h.Sum64())
}

// newRand returns the single pseudo-random stream of one generation run.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
