// Package rng centralizes random-source construction for the randomized
// components (text generation, random walks).
//
// Goals:
//   - Determinism: same seed ⇒ identical selections across runs.
//   - Encapsulation: callers inject a *rand.Rand; nothing reads a hidden global.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines without external locking (session.Session serializes access).
package rng

import (
	"math/rand"
	"time"
)

// DefaultSeed is the fixed seed used when callers pass seed==0 to FromSeed.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// NewRandom returns a time-seeded *rand.Rand for callers that did not ask for
// reproducibility.
func NewRandom() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Pick returns a uniformly random element of items, or "" and false when items is empty.
// If r==nil a DefaultSeed stream is used.
//
// Complexity: O(1).
func Pick(r *rand.Rand, items []string) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	if r == nil {
		r = FromSeed(0)
	}

	return items[r.Intn(len(items))], true
}
