// Package fractal rasterizes the Mandelbrot set into 1-bit pixel buffers.
package fractal

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Params describes the region of the complex plane to rasterize
type Params struct {
	Width  int
	Height int

	// MinRe and MaxRe bound the real axis; the imaginary span follows from
	// the aspect ratio starting at MinIm.
	MinRe float64
	MaxRe float64
	MinIm float64

	MaxIterations int
	// Pixels escaping after more than Cutoff iterations are set
	Cutoff int
}

// DefaultParams returns a view of the whole set for the given pixel size
func DefaultParams(width, height int) Params {
	return Params{
		Width:         width,
		Height:        height,
		MinRe:         -2.0,
		MaxRe:         2.0,
		MinIm:         -1.2,
		MaxIterations: 50,
		Cutoff:        45,
	}
}

// MaxIm returns the top of the imaginary axis
func (p Params) MaxIm() float64 {
	return p.MinIm + (p.MaxRe-p.MinRe)*float64(p.Height)/float64(p.Width)
}

// Pan shifts the region by fractions of the real axis span in both
// directions
func (p Params) Pan(dx, dy float64) Params {
	span := p.MaxRe - p.MinRe
	p.MinRe += dx * span
	p.MaxRe += dx * span
	p.MinIm += dy * span
	return p
}

// Zoom scales the region around its center; factors below 1 zoom in
func (p Params) Zoom(factor float64) Params {
	if factor <= 0 {
		return p
	}
	centerRe := (p.MinRe + p.MaxRe) / 2
	centerIm := (p.MinIm + p.MaxIm()) / 2
	halfRe := (p.MaxRe - p.MinRe) / 2 * factor
	halfIm := (p.MaxIm() - p.MinIm) / 2 * factor
	p.MinRe = centerRe - halfRe
	p.MaxRe = centerRe + halfRe
	p.MinIm = centerIm - halfIm
	return p
}

// Resize changes the pixel size keeping the real axis and the center of the
// imaginary axis
func (p Params) Resize(width, height int) Params {
	if p.Width <= 0 || p.Height <= 0 {
		p.Width, p.Height = width, height
		return p
	}
	centerIm := (p.MinIm + p.MaxIm()) / 2
	p.Width, p.Height = width, height
	p.MinIm = centerIm - (p.MaxRe-p.MinRe)*float64(height)/float64(width)/2
	return p
}

func (p Params) validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return errors.New("fractal: width and height must be greater than 0")
	case p.MaxRe <= p.MinRe:
		return errors.New("fractal: real axis is empty")
	case p.MaxIterations <= 0:
		return errors.New("fractal: max iterations must be greater than 0")
	}
	return nil
}

// Mandelbrot rasterizes the set into a row-major buffer of Width*Height
// pixels. Rows are computed concurrently.
func Mandelbrot(ctx context.Context, p Params) ([]bool, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	buf := make([]bool, p.Width*p.Height)

	maxIm := p.MaxIm()
	reFactor := (p.MaxRe - p.MinRe) / float64(max(p.Width-1, 1))
	imFactor := (maxIm - p.MinIm) / float64(max(p.Height-1, 1))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for y := range p.Height {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cIm := maxIm - float64(y)*imFactor
			row := buf[y*p.Width : (y+1)*p.Width]
			for x := range row {
				cRe := p.MinRe + float64(x)*reFactor
				row[x] = escapeTime(cRe, cIm, p.MaxIterations) > p.Cutoff
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}

// escapeTime returns the last iteration before the orbit of c leaves the
// radius 2 disc, or MaxIterations-1 when it never does
func escapeTime(cRe, cIm float64, maxIterations int) int {
	zRe, zIm := cRe, cIm
	out := 0
	for i := range maxIterations {
		zRe2, zIm2 := zRe*zRe, zIm*zIm
		out = i
		if zRe2+zIm2 > 4 {
			break
		}
		zIm = 2*zRe*zIm + cIm
		zRe = zRe2 - zIm2 + cRe
	}
	return out
}
