package braillefb

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseGrid turns rows of '#' and '.' into a row-major buffer
func parseGrid(t *testing.T, rows ...string) ([]bool, int, int) {
	t.Helper()
	var (
		buf   []bool
		width int
	)
	for _, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if width == 0 {
			width = len(row)
		}
		require.Len(t, row, width, "ragged grid")
		for _, c := range row {
			buf = append(buf, c == '#')
		}
	}
	return buf, width, len(rows)
}

func sampleView(t *testing.T) *View[bool] {
	buf, w, h := parseGrid(t,
		"# . # #",
		"# . . #",
		"# . # #",
		"# # . .",
		"# # . #",
		"# # . #",
		". . # #",
		"# . # .",
	)
	return New(buf, w, h)
}

func TestNewPanicsOnLengthMismatch(t *testing.T) {
	tests := []struct {
		name          string
		len           int
		width, height int
	}{
		{name: "too short", len: 7, width: 2, height: 4},
		{name: "too long", len: 9, width: 2, height: 4},
		{name: "zero width with pixels", len: 4, width: 0, height: 4},
		{name: "zero height with pixels", len: 4, width: 4, height: 0},
		{name: "negative", len: 4, width: -2, height: -2},
		{name: "area overflows int", len: 0, width: 1 << (strconv.IntSize / 2), height: 1 << (strconv.IntSize / 2)},
		{name: "area overflows int unevenly", len: 0, width: 3, height: math.MaxInt/2 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() {
				New(make([]bool, tt.len), tt.width, tt.height)
			})
		})
	}
}

func TestViewDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		charsPerRow   int
		charRows      int
		len           int
	}{
		{name: "exact blocks", width: 4, height: 8, charsPerRow: 3, charRows: 2, len: 6},
		{name: "padded", width: 3, height: 5, charsPerRow: 3, charRows: 2, len: 6},
		{name: "single block", width: 2, height: 4, charsPerRow: 2, charRows: 1, len: 2},
		{name: "single pixel", width: 1, height: 1, charsPerRow: 2, charRows: 1, len: 2},
		{name: "wide", width: 128, height: 64, charsPerRow: 65, charRows: 16, len: 1040},
		{name: "empty", width: 0, height: 0, charsPerRow: 1, charRows: 0, len: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(make([]bool, tt.width*tt.height), tt.width, tt.height)
			assert.Equal(t, tt.charsPerRow, v.CharsPerRow())
			assert.Equal(t, tt.charRows, v.CharRows())
			assert.Equal(t, tt.len, v.Len())
			assert.Equal(t, tt.width, v.Width())
			assert.Equal(t, tt.height, v.Height())
		})
	}
}

func TestViewIsEmpty(t *testing.T) {
	assert.True(t, New([]bool{}, 0, 0).IsEmpty())
	assert.True(t, New([]uint8(nil), 0, 3).IsEmpty())
	assert.False(t, New([]bool{false}, 1, 1).IsEmpty())
}

func TestViewRender(t *testing.T) {
	v := sampleView(t)
	assert.Equal(t, "⣇⠽\n⡛⡼\n", v.String())
	assert.Equal(t, 3, v.CharsPerRow())
	assert.Equal(t, 2, v.CharRows())
}

func TestViewRenderTopHalf(t *testing.T) {
	buf, w, h := parseGrid(t,
		"# . # #",
		"# . . #",
		"# . # #",
		"# # . .",
	)
	v := New(buf, w, h)

	r, ok := v.Get(0)
	require.True(t, ok)
	assert.Equal(t, '⣇', r)
	assert.Equal(t, '⠽', v.At(1))
	assert.Equal(t, '\n', v.At(2))
	_, ok = v.Get(3)
	assert.False(t, ok)
	assert.Equal(t, "⣇⠽\n", v.String())
}

func TestViewPadding(t *testing.T) {
	buf := make([]bool, 3*5)
	for i := range buf {
		buf[i] = true
	}
	v := New(buf, 3, 5)
	assert.Equal(t, "⣿⡇\n⠉⠁\n", v.String())
}

func TestViewLinebreakPlacement(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 4}, {3, 5}, {4, 8}, {7, 3}, {10, 13}, {33, 17}}

	for _, size := range sizes {
		w, h := size[0], size[1]
		v := New(make([]bool, w*h), w, h)
		for i := range v.Len() {
			r, ok := v.Get(i)
			require.True(t, ok, "%dx%d index %d", w, h, i)
			isBreak := i > 0 && (i+1)%v.CharsPerRow() == 0
			assert.Equal(t, isBreak, r == '\n', "%dx%d index %d", w, h, i)
		}
		_, ok := v.Get(v.Len())
		assert.False(t, ok, "%dx%d past the end", w, h)
		_, ok = v.Get(v.Len() + v.CharsPerRow() - 1)
		assert.False(t, ok, "%dx%d past the end on a linebreak slot", w, h)
		_, ok = v.Get(-1)
		assert.False(t, ok)
	}
}

func TestViewSingleBlank(t *testing.T) {
	v := New(make([]bool, 2*4), 2, 4)
	assert.Equal(t, 2, v.CharsPerRow())
	assert.Equal(t, 1, v.CharRows())
	assert.Equal(t, 2, v.Len())

	r, ok := v.Get(0)
	assert.True(t, ok)
	assert.Equal(t, '⠀', r)
	r, ok = v.Get(1)
	assert.True(t, ok)
	assert.Equal(t, '\n', r)
	_, ok = v.Get(2)
	assert.False(t, ok)
}

func TestViewZeroWidth(t *testing.T) {
	// Index 0 is never a linebreak, even when rows hold no glyphs
	v := New([]bool{}, 0, 5)
	assert.Equal(t, 1, v.CharsPerRow())
	assert.Equal(t, 2, v.CharRows())
	assert.Equal(t, '⠀', v.At(0))
	assert.Equal(t, '\n', v.At(1))
	assert.Equal(t, "⠀\n", v.String())
}

func TestViewAtPanics(t *testing.T) {
	v := sampleView(t)
	assert.PanicsWithValue(t, "braillefb: index out of bounds: the len is 6 but the index is 6", func() {
		v.At(6)
	})
	assert.NotPanics(t, func() {
		v.At(5)
	})
}

func TestViewLines(t *testing.T) {
	v := sampleView(t)
	assert.Equal(t, []string{"⣇⠽", "⡛⡼"}, v.Lines())
	assert.Equal(t, "⡛⡼", v.Line(1))
	assert.Empty(t, v.Line(2))
	assert.Empty(t, v.Line(-1))
	assert.Equal(t, v.String(), strings.Join(v.Lines(), "\n")+"\n")
}

func TestViewDoesNotMutateBuffer(t *testing.T) {
	buf, w, h := parseGrid(t, "# .", ". #", "# #", ". .")
	orig := append([]bool(nil), buf...)
	v := New(buf, w, h)
	_ = v.String()
	_ = v.ParallelString(8)
	assert.Equal(t, orig, buf)
}
