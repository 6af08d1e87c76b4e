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
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	braillefb "github.com/blacktop/go-braillefb"
	"github.com/spf13/cobra"
)

var imageFlags struct {
	width       int
	height      int
	threshold   float64
	contrast    float32
	dither      bool
	invert      bool
	edges       bool
	lab         bool
	interactive bool
}

func init() {
	f := imageCmd.Flags()
	f.IntVarP(&imageFlags.width, "width", "W", 0, "Width in character cells (0 = fit terminal)")
	f.IntVarP(&imageFlags.height, "height", "H", 0, "Height in character cells (0 = fit terminal)")
	f.Float64VarP(&imageFlags.threshold, "threshold", "t", braillefb.DefaultThreshold, "Brightness threshold between 0 and 1")
	f.Float32Var(&imageFlags.contrast, "contrast", 0, "Contrast adjustment in percent (-100..100)")
	f.BoolVarP(&imageFlags.dither, "dither", "d", false, "Use Floyd-Steinberg dithering")
	f.BoolVar(&imageFlags.invert, "invert", false, "Draw dark pixels as dots")
	f.BoolVarP(&imageFlags.edges, "edges", "e", false, "Draw Sobel edges only")
	f.BoolVar(&imageFlags.lab, "lab", false, "Measure brightness as CIE L* lightness")
	f.BoolVarP(&imageFlags.interactive, "interactive", "i", false, "Open an interactive viewer")
	rootCmd.AddCommand(imageCmd)
}

func imageOptions() braillefb.Options {
	opts := braillefb.DefaultOptions()
	opts.Width = imageFlags.width
	opts.Height = imageFlags.height
	opts.Threshold = imageFlags.threshold
	opts.Contrast = imageFlags.contrast
	opts.Dither = imageFlags.dither
	opts.Invert = imageFlags.invert
	opts.Edges = imageFlags.edges
	if imageFlags.lab {
		opts.Luminance = braillefb.LumaCIELab
	}
	return opts
}

func validateThreshold(t float64) error {
	if t < 0 || t > 1 {
		return fmt.Errorf("threshold must be between 0 and 1: got %v", t)
	}
	return nil
}

// imageCmd renders an image file
var imageCmd = &cobra.Command{
	Use:     "image <FILE>",
	Aliases: []string{"img"},
	Short:   "Render an image file as braille",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateSize(imageFlags.width, imageFlags.height); err != nil {
			return err
		}
		if err := validateThreshold(imageFlags.threshold); err != nil {
			return err
		}

		opts := imageOptions()
		log.WithFields(log.Fields{
			"path":      args[0],
			"threshold": opts.Threshold,
			"luminance": opts.Luminance,
			"dither":    opts.Dither,
		}).Debug("Rendering image")

		if imageFlags.interactive {
			if _, err := os.Stat(args[0]); err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			return runViewer(imageSource{path: args[0], opts: opts})
		}

		img, err := braillefb.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}

		start := time.Now()
		v, err := img.Options(opts).View()
		if err != nil {
			return fmt.Errorf("failed to render image: %w", err)
		}
		log.Debugf("Converted %dx%d pixels into %dx%d cells in %s",
			v.Width(), v.Height(), v.CharsPerRow()-1, v.CharRows(), time.Since(start))

		_, err = v.WriteTo(cmd.OutOrStdout())
		return err
	},
}
