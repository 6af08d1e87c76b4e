package braillefb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// maskToBlock lays out a dot mask as a row-major 2x4 block
func maskToBlock(mask uint8) [8]bool {
	// bit n of the mask is dot n+1
	positions := [8]int{
		0, // dot 1 (0,0)
		2, // dot 2 (0,1)
		4, // dot 3 (0,2)
		1, // dot 4 (1,0)
		3, // dot 5 (1,1)
		5, // dot 6 (1,2)
		6, // dot 7 (0,3)
		7, // dot 8 (1,3)
	}
	var block [8]bool
	for bit, pos := range positions {
		block[pos] = mask&(1<<bit) != 0
	}
	return block
}

func TestGlyphs(t *testing.T) {
	table := Glyphs()
	assert.Equal(t, '⠀', table[0])
	assert.Equal(t, '⣿', table[255])
	for i, r := range table {
		assert.Equal(t, rune(0x2800+i), r)
	}
}

func TestEncodeBlockAllPatterns(t *testing.T) {
	for mask := range 256 {
		block := maskToBlock(uint8(mask))
		assert.Equal(t, rune(0x2800+mask), EncodeBlock(block[:], 0, 0, 2, 4), "mask %08b", mask)
		assert.Equal(t, rune(0x2800+mask), ToChar(block), "mask %08b", mask)
	}
}

func TestToChar(t *testing.T) {
	tests := []struct {
		name  string
		block [8]bool
		want  rune
	}{
		{
			name:  "empty",
			block: [8]bool{},
			want:  '⠀',
		},
		{
			name: "full",
			block: [8]bool{
				true, true,
				true, true,
				true, true,
				true, true,
			},
			want: '⣿',
		},
		{
			name: "mixed",
			block: [8]bool{
				true, false,
				true, true,
				true, false,
				false, true,
			},
			want: '⢗',
		},
		{
			name: "bottom row only",
			block: [8]bool{
				false, false,
				false, false,
				false, false,
				true, true,
			},
			want: '⣀',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToChar(tt.block))
		})
	}
}

type level uint8

type lit bool

func TestToCharPixelTypes(t *testing.T) {
	assert.Equal(t, '⢗', ToChar([8]uint8{1, 0, 1, 1, 1, 0, 0, 1}))
	assert.Equal(t, '⢗', ToChar([8]int{1, 0, 7, 1, -1, 0, 0, 1}))
	assert.Equal(t, '⢗', ToChar([8]float64{0.5, 0, 1, 1, 1, 0, 0, 2}))
	assert.Equal(t, '⢗', ToChar([8]level{255, 0, 1, 1, 1, 0, 0, 1}))
	assert.Equal(t, '⢗', ToChar([8]lit{true, false, true, true, true, false, false, true}))
}

func TestEncodeBlockOutOfRange(t *testing.T) {
	// 3x5, every pixel set
	buf := make([]bool, 3*5)
	for i := range buf {
		buf[i] = true
	}

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{name: "inside", x: 0, y: 0, want: '⣿'},
		{name: "right edge", x: 2, y: 0, want: '⡇'},
		{name: "bottom edge", x: 0, y: 4, want: '⠉'},
		{name: "corner", x: 2, y: 4, want: '⠁'},
		{name: "outside", x: 4, y: 8, want: '⠀'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeBlock(buf, tt.x, tt.y, 3, 5))
		})
	}
}
