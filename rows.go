package braillefb

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// Constants for parallel rendering
const (
	DefaultRenderWorkers = 4  // Number of parallel workers for rendering rows
	minParallelRows      = 16 // Below this row count a single goroutine is faster
)

// Row buffer pool to reuse rendering buffers
var rowBufferPool = sync.Pool{
	New: func() any {
		// Room for a 128 glyph row; braille glyphs are 3 bytes in UTF-8
		buf := make([]byte, 0, 129*3)
		return &buf
	},
}

// appendRow appends one character row, linebreak included, to dst
func (v *View[T]) appendRow(dst []byte, row int) []byte {
	start := row * v.charsPerRow
	for i := start; i < start+v.charsPerRow; i++ {
		if r, ok := v.Get(i); ok {
			dst = utf8.AppendRune(dst, r)
		}
	}
	return dst
}

// renderRow renders one character row, linebreak included, into a pooled buffer
func (v *View[T]) renderRow(row int) string {
	bufPtr := rowBufferPool.Get().(*[]byte)
	defer rowBufferPool.Put(bufPtr)

	*bufPtr = v.appendRow((*bufPtr)[:0], row)

	// string() copies, so the buffer can go back to the pool
	return string(*bufPtr)
}

// ParallelString renders the view with multiple goroutines, one row per job.
// The output is identical to String.
func (v *View[T]) ParallelString(workers int) string {
	if workers <= 0 {
		workers = DefaultRenderWorkers
	}
	if v.charRows < minParallelRows || workers == 1 {
		// For small views, single-threaded is faster
		return v.String()
	}

	rows := make([]string, v.charRows)

	var wg sync.WaitGroup
	numWorkers := min(v.charRows, workers)

	jobs := make(chan int, v.charRows)

	// Start workers
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range jobs {
				rows[row] = v.renderRow(row)
			}
		}()
	}

	// Send jobs
	for row := range v.charRows {
		jobs <- row
	}
	close(jobs)

	wg.Wait()
	return strings.Join(rows, "")
}
