package braillefb

import (
	"fmt"
	"math"
	"strings"
)

// View renders a borrowed row-major pixel buffer as braille text.
//
// Every character row holds ceil(width/2) glyphs followed by a linebreak.
// A View never mutates or copies the buffer; changing the buffer while the
// View is in use gives undefined output.
type View[T Pixel] struct {
	buf    []T
	width  int
	height int

	charsPerRow int // glyphs per row + 1 for the linebreak
	charRows    int
}

// New creates a View over buf.
//
// It panics if len(buf) != width*height.
func New[T Pixel](buf []T, width, height int) *View[T] {
	if width < 0 || height < 0 || (height != 0 && width > math.MaxInt/height) || len(buf) != width*height {
		panic(fmt.Sprintf("braillefb: supplied slice does not match width * height (len %d, %dx%d)", len(buf), width, height))
	}

	return &View[T]{
		buf:         buf,
		width:       width,
		height:      height,
		charsPerRow: ceilDiv(width, CellWidth) + 1,
		charRows:    ceilDiv(height, CellHeight),
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

type offsetKind int

const (
	offsetChar offsetKind = iota
	offsetLinebreak
	offsetEnd
)

// offsets maps a linear index to the pixel origin of its glyph, a
// linebreak, or the end of the sequence.
func (v *View[T]) offsets(index int) (kind offsetKind, x, y int) {
	if index < 0 || index >= v.Len() {
		return offsetEnd, 0, 0
	}
	if index > 0 && (index+1)%v.charsPerRow == 0 {
		return offsetLinebreak, 0, 0
	}

	y = (index / v.charsPerRow) * CellHeight
	if y >= v.height {
		return offsetEnd, 0, 0
	}
	x = (index % v.charsPerRow) * CellWidth

	return offsetChar, x, y
}

// Get returns the character at index, including linebreaks. The boolean is
// false once index is past the end of the view.
func (v *View[T]) Get(index int) (rune, bool) {
	switch kind, x, y := v.offsets(index); kind {
	case offsetChar:
		return EncodeBlock(v.buf, x, y, v.width, v.height), true
	case offsetLinebreak:
		return Linebreak, true
	default:
		return 0, false
	}
}

// At is like Get but panics when index is out of bounds.
func (v *View[T]) At(index int) rune {
	r, ok := v.Get(index)
	if !ok {
		panic(fmt.Sprintf("braillefb: index out of bounds: the len is %d but the index is %d", v.Len(), index))
	}
	return r
}

// CharsPerRow returns the number of characters in a row, trailing linebreak included.
func (v *View[T]) CharsPerRow() int { return v.charsPerRow }

// CharRows returns the number of character rows.
func (v *View[T]) CharRows() int { return v.charRows }

// Len returns the number of characters, linebreaks included, the view yields.
func (v *View[T]) Len() int { return v.charRows * v.charsPerRow }

// IsEmpty reports whether the underlying buffer holds no pixels.
func (v *View[T]) IsEmpty() bool { return len(v.buf) == 0 }

// Width returns the buffer width in pixels.
func (v *View[T]) Width() int { return v.width }

// Height returns the buffer height in pixels.
func (v *View[T]) Height() int { return v.height }

// Line renders character row `row` without its linebreak.
func (v *View[T]) Line(row int) string {
	if row < 0 || row >= v.charRows {
		return ""
	}

	var sb strings.Builder
	v.writeRow(&sb, row, false)
	return sb.String()
}

// Lines renders every character row without linebreaks.
func (v *View[T]) Lines() []string {
	lines := make([]string, 0, v.charRows)
	for row := range v.charRows {
		lines = append(lines, v.Line(row))
	}
	return lines
}

// writeRow appends the characters of one row to sb.
func (v *View[T]) writeRow(sb *strings.Builder, row int, linebreak bool) {
	start := row * v.charsPerRow
	end := start + v.charsPerRow
	if !linebreak {
		end--
	}
	sb.Grow((end - start) * 3)
	for i := start; i < end; i++ {
		if r, ok := v.Get(i); ok {
			sb.WriteRune(r)
		}
	}
}
