package braillefb

import (
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Iter walks a View one character at a time. The cursor belongs to the Iter,
// so any number of Iters may walk the same View concurrently.
type Iter[T Pixel] struct {
	view  *View[T]
	index int
}

// Iter returns a new iterator positioned at the first character.
func (v *View[T]) Iter() *Iter[T] {
	return &Iter[T]{view: v}
}

// Next returns the next character, or false when the view is exhausted.
func (it *Iter[T]) Next() (rune, bool) {
	r, ok := it.view.Get(it.index)
	if !ok {
		return 0, false
	}
	it.index++
	return r, true
}

// Reset rewinds the iterator to the first character.
func (it *Iter[T]) Reset() {
	it.index = 0
}

// Remaining returns how many characters Next will still yield.
func (it *Iter[T]) Remaining() int {
	return max(it.view.Len()-it.index, 0)
}

// All returns a sequence over every character of the view, linebreaks
// included. Each range over the sequence starts from the beginning.
func (v *View[T]) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		it := v.Iter()
		for {
			r, ok := it.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Traverse is like All but also yields the index of each character.
func (v *View[T]) Traverse() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i := 0; ; i++ {
			r, ok := v.Get(i)
			if !ok || !yield(i, r) {
				return
			}
		}
	}
}

// String renders the whole view, one linebreak after every row.
func (v *View[T]) String() string {
	var sb strings.Builder
	sb.Grow(v.Len() * utf8.UTFMax)
	for r := range v.All() {
		sb.WriteRune(r)
	}
	return sb.String()
}

// WriteTo writes the rendered view to w.
func (v *View[T]) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for row := range v.charRows {
		var sb strings.Builder
		v.writeRow(&sb, row, true)
		n, err := io.WriteString(w, sb.String())
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
