package braillefb

// Dot numbering of a braille cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// dotOffsets lists the (dx, dy) of each dot from dot 8 down to dot 1 so that
// shifting left and ORing produces the mask in the order of the Unicode
// Braille Patterns block (bit 0 = dot 1 ... bit 7 = dot 8).
var dotOffsets = [8][2]int{
	{1, 3}, // 8
	{0, 3}, // 7
	{1, 2}, // 6
	{1, 1}, // 5
	{1, 0}, // 4
	{0, 2}, // 3
	{0, 1}, // 2
	{0, 0}, // 1
}

const (
	// CellWidth is the number of pixels covered by one glyph horizontally
	CellWidth = 2
	// CellHeight is the number of pixels covered by one glyph vertically
	CellHeight = 4

	// BlankGlyph is the empty braille pattern (U+2800)
	BlankGlyph rune = 0x2800
	// Linebreak terminates every character row
	Linebreak rune = '\n'
)

// Pixel is any value that can be reduced to a single bit. A pixel is set
// when it differs from its type's zero value.
type Pixel interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

func isSet[T Pixel](v T) bool {
	var zero T
	return v != zero
}

// Glyph returns the braille pattern for an 8-bit dot mask.
func Glyph(mask uint8) rune {
	return BlankGlyph + rune(mask)
}

// Glyphs returns all 256 braille patterns indexed by their dot mask.
func Glyphs() [256]rune {
	var table [256]rune
	for i := range table {
		table[i] = Glyph(uint8(i))
	}
	return table
}

// EncodeBlock encodes the 2x4 block whose top-left pixel is (x, y) in buf.
// Dots falling outside width x height read as unset.
func EncodeBlock[T Pixel](buf []T, x, y, width, height int) rune {
	return Glyph(blockMask(buf, x, y, width, height))
}

func blockMask[T Pixel](buf []T, x, y, width, height int) uint8 {
	var mask uint8
	for _, d := range dotOffsets {
		mask <<= 1
		xx, yy := x+d[0], y+d[1]
		if xx < 0 || yy < 0 || xx >= width || yy >= height {
			continue
		}
		if isSet(buf[xx+yy*width]) {
			mask |= 1
		}
	}
	return mask
}

// ToChar converts a single row-major 2x4 block into its braille pattern.
//
//	ToChar([8]bool{
//		true, false,
//		true, true,
//		true, false,
//		false, true,
//	}) == '⢗'
func ToChar[T Pixel](block [8]T) rune {
	return EncodeBlock(block[:], 0, 0, CellWidth, CellHeight)
}
