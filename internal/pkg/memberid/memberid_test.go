package memberid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNew_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := New()
		assert.Regexp(t, `^DL-[A-Z0-9]{6}$`, id)
		assert.True(t, Valid(id))
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"well formed", "DL-A1B2C3", true},
		{"all digits", "DL-123456", true},
		{"missing prefix", "A1B2C3", false},
		{"lowercase", "DL-a1b2c3", false},
		{"too short", "DL-A1B2C", false},
		{"too long", "DL-A1B2C3D", false},
		{"empty", "", false},
		{"wrong prefix", "XX-A1B2C3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Valid(tt.id))
		})
	}
}

// TestNewAlwaysValidProperty checks generated IDs always satisfy the
// validator, across many draws.
func TestNewAlwaysValidProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		// The draw only drives repetition; New takes no input.
		_ = rapid.IntRange(0, 1).Draw(rt, "seed")
		if id := New(); !Valid(id) {
			rt.Fatalf("generated invalid id %q", id)
		}
	})
}
