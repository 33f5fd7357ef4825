// Package randutil builds the single pseudo-random source a training session draws from.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so a logged seed replays a session.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns seed unchanged, or a wall-clock seed when seed is zero.
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Source is a seeded RNG together with the seed it was built from.
type Source struct {
	*rand.Rand
	Seed int64
}

// NewSource resolves seed and wraps the resulting RNG.
func NewSource(seed int64) Source {
	s := Resolve(seed)
	return Source{Rand: New(s), Seed: s}
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
