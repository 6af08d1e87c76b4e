/*
Copyright © 2026 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/apex/log"
	braillefb "github.com/blacktop/go-braillefb"
	"github.com/blacktop/go-braillefb/internal/fractal"
	"github.com/spf13/cobra"
)

var mandelbrotFlags struct {
	width       int
	height      int
	iterations  int
	cutoff      int
	interactive bool
}

func init() {
	f := mandelbrotCmd.Flags()
	f.IntVarP(&mandelbrotFlags.width, "width", "W", 64, "Width in character cells")
	f.IntVarP(&mandelbrotFlags.height, "height", "H", 24, "Height in character cells")
	f.IntVar(&mandelbrotFlags.iterations, "iterations", 50, "Maximum iterations per pixel")
	f.IntVar(&mandelbrotFlags.cutoff, "cutoff", 45, "Pixels escaping after more iterations are drawn")
	f.BoolVarP(&mandelbrotFlags.interactive, "interactive", "i", false, "Open an interactive viewer")
	rootCmd.AddCommand(mandelbrotCmd)
}

// mandelbrotParams converts character cells into fractal parameters
func mandelbrotParams(cols, rows int) fractal.Params {
	p := fractal.DefaultParams(cols*braillefb.CellWidth, rows*braillefb.CellHeight)
	p.MaxIterations = mandelbrotFlags.iterations
	p.Cutoff = mandelbrotFlags.cutoff
	return p
}

// renderMandelbrot rasterizes p and writes the braille text to w
func renderMandelbrot(ctx context.Context, w io.Writer, p fractal.Params) error {
	start := time.Now()
	buf, err := fractal.Mandelbrot(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to rasterize mandelbrot set: %w", err)
	}
	log.WithFields(log.Fields{
		"width":    p.Width,
		"height":   p.Height,
		"duration": time.Since(start),
	}).Debug("Rasterized mandelbrot set")

	_, err = io.WriteString(w, braillefb.New(buf, p.Width, p.Height).ParallelString(0))
	return err
}

// mandelbrotCmd renders the mandelbrot set
var mandelbrotCmd = &cobra.Command{
	Use:     "mandelbrot",
	Aliases: []string{"mb"},
	Short:   "Render the mandelbrot set as braille",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cols, rows := mandelbrotFlags.width, mandelbrotFlags.height
		if err := validateSize(cols, rows); err != nil {
			return err
		}
		if cols == 0 || rows == 0 {
			return fmt.Errorf("width and height must be greater than 0")
		}
		if mandelbrotFlags.iterations <= 0 {
			return fmt.Errorf("iterations must be greater than 0")
		}

		if mandelbrotFlags.interactive {
			p := mandelbrotParams(cols, rows)
			return runViewer(mandelbrotSource{params: p, reset: p})
		}

		return renderMandelbrot(cmd.Context(), cmd.OutOrStdout(), mandelbrotParams(cols, rows))
	},
}
