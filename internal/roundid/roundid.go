// Package roundid generates sortable identifiers for dealt rounds: a 48-bit
// millisecond timestamp followed by random bits, encoded as 26 characters of
// Crockford base32.
package roundid

import (
	"fmt"
	"strings"
	"time"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	// Length is the number of characters in an ID.
	Length = 26
)

// RandSource is the subset of *rand.Rand the generator needs.
type RandSource interface {
	IntN(n int) int
}

// Generator issues round IDs from an injected random source and clock so a
// seeded session reproduces the same IDs under a mock clock.
type Generator struct {
	rng RandSource
	now func() time.Time
}

// New returns a generator. A nil now uses time.Now.
func New(rng RandSource, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

// Next returns a new ID.
func (g *Generator) Next() string {
	var raw [16]byte

	ms := g.now().UnixMilli()
	for i := range 6 {
		raw[i] = byte(ms >> (40 - 8*i))
	}
	for i := 6; i < 16; i++ {
		raw[i] = byte(g.rng.IntN(256))
	}

	// version 7, RFC 4122 variant
	raw[6] = (raw[6] & 0x0f) | 0x70
	raw[8] = (raw[8] & 0x3f) | 0x80

	return encode(raw)
}

// encode writes the 128 bits as 26 five-bit groups, left-padded with two zero bits.
func encode(raw [16]byte) string {
	var sb strings.Builder
	sb.Grow(Length)
	for i := range Length {
		// bit offset into the 130-bit padded value
		start := i*5 - 2
		var v byte
		for b := range 5 {
			pos := start + b
			v <<= 1
			if pos < 0 {
				continue
			}
			if raw[pos/8]&(0x80>>(pos%8)) != 0 {
				v |= 1
			}
		}
		sb.WriteByte(alphabet[v])
	}
	return sb.String()
}

// Validate checks that id looks like a round ID.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("round ID first character must be 0-7, got %c", id[0])
	}
	for i := range len(id) {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
