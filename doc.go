/*
Package braillefb renders 1-bit pixel buffers as Unicode braille text.

Every braille pattern (U+2800 to U+28FF) covers a block of 2x4 dots, so a
width x height buffer becomes ceil(height/4) rows of ceil(width/2) glyphs,
each row followed by a linebreak. Dimensions that are not multiples of the
block size are padded with unset dots.

Basic Usage:

	// ⣇⠽
	// ⡛⡼
	pixels := []bool{
	    true, false, true, true,
	    true, false, false, true,
	    true, false, true, true,
	    true, true, false, false,
	    true, true, false, true,
	    true, true, false, true,
	    false, false, true, true,
	    true, false, true, false,
	}

	v := braillefb.New(pixels, 4, 8)
	fmt.Print(v) // "⣇⠽\n⡛⡼\n"

	// Random access, linebreaks included
	r, ok := v.Get(0) // '⣇', true
	r = v.At(2)       // '\n'
	_, ok = v.Get(6)  // ok == false

	// Lazy traversal, restartable from the first character every time
	for r := range v.All() {
	    fmt.Printf("%c", r)
	}

Pixels may be any bool, integer or float type; a pixel is set when it is
not zero. A View borrows its buffer and never modifies it, so any number of
goroutines may read the same View at once.

Images:

	img, err := braillefb.Open("image.png")
	if err != nil {
	    log.Fatal(err)
	}

	err = img.Width(80).Threshold(0.4).Dither(true).Print()
	if err != nil {
	    log.Fatal(err)
	}

Images are scaled to fit the requested size in character cells (the terminal
size when none is given), optionally filtered for contrast or edges, and then
reduced to one bit per pixel by a brightness threshold or by dithering.
*/
package braillefb
