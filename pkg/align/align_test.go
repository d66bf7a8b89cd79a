package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		width     int
		alignment Alignment
		want      string
	}{
		{"right pads on the left", "abc", 6, Right, "   abc"},
		{"left pads on the right", "abc", 6, Left, "abc   "},
		{"exact width unchanged", "abc", 3, Right, "abc"},
		{"wider than target unchanged", "abcdef", 3, Left, "abcdef"},
		{"empty string", "", 3, Right, "   "},
		{"zero width", "abc", 0, Left, "abc"},
		{"default alignment pads right", "x", 3, Default, "  x"},
		{"wide runes measured in cells", "日本", 6, Right, "  日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pad(tt.input, tt.width, tt.alignment))
		})
	}
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 3, Width("abc"))
	assert.Equal(t, 4, Width("日本"))
	assert.Equal(t, 0, Width(""))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(Left))
	assert.True(t, Valid(Right))
	assert.False(t, Valid(Default))
	assert.False(t, Valid(Alignment("center")))
}
