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
	"slices"
	"strings"

	braillefb "github.com/blacktop/go-braillefb"
	"github.com/spf13/cobra"
)

// sample is a 4x8 bitmap that renders to "⣇⠽\n⡛⡼\n"
const sample = `
# . # #
# . . #
# . # #
# # . .
# # . #
# # . #
. . # #
# . # .
`

// parseBitmap reads a grid of '#' (set) and '.' (unset) separated by
// whitespace, one pixel row per line
func parseBitmap(grid string) (pix []bool, width, height int, err error) {
	for line := range strings.Lines(grid) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if width == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, 0, 0, fmt.Errorf("row %d has %d pixels, want %d", height, len(fields), width)
		}
		for _, f := range fields {
			switch f {
			case "#":
				pix = append(pix, true)
			case ".":
				pix = append(pix, false)
			default:
				return nil, 0, 0, fmt.Errorf("invalid pixel %q in row %d", f, height)
			}
		}
		height++
	}
	return pix, width, height, nil
}

// demoCmd prints the built-in sample bitmaps
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print sample braille renderings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		pix, width, height, err := parseBitmap(sample)
		if err != nil {
			return err
		}
		if _, err := braillefb.New(pix, width, height).WriteTo(out); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}

		// A fully set 128x64 block
		full := slices.Repeat([]bool{true}, 128*64)
		_, err = braillefb.New(full, 128, 64).WriteTo(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
