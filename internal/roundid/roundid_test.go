package roundid

import (
	"strings"
	"testing"
	"time"

	"github.com/lox/preflop-trainer/internal/randutil"
)

func TestNext(t *testing.T) {
	g := New(randutil.New(1), nil)
	id := g.Next()

	if len(id) != Length {
		t.Errorf("expected %d characters, got %d", Length, len(id))
	}
	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
}

func TestNextUnique(t *testing.T) {
	g := New(randutil.New(2), nil)
	ids := make(map[string]bool)

	for range 100 {
		id := g.Next()
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestNextDeterministic(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	now := func() time.Time { return fixed }

	a := New(randutil.New(9), now).Next()
	b := New(randutil.New(9), now).Next()
	if a != b {
		t.Errorf("same seed and clock produced %s and %s", a, b)
	}
}

func TestNextTimeSorted(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	now := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}
	g := New(randutil.New(3), now)

	prev := g.Next()
	for range 10 {
		id := g.Next()
		if strings.Compare(prev, id) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", prev, id)
		}
		prev = id
	}
}

func TestEncodeKnownValues(t *testing.T) {
	var zero [16]byte
	if got := encode(zero); got != strings.Repeat("0", Length) {
		t.Errorf("zero encoded as %s", got)
	}

	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}
	if got := encode(ones); got != "7"+strings.Repeat("z", Length-1) {
		t.Errorf("all-ones encoded as %s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h2xcejqtf2nbrexx3vqjhp41", false},
		{"too short", "01h2xce", true},
		{"first char too large", "81h2xcejqtf2nbrexx3vqjhp41", true},
		{"invalid character", "01h2xcejqtf2nbrexx3vqjhp4u", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
