package braillefb

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"slices"

	"github.com/disintegration/gift"
	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"
)

var (
	// ErrEmptyPath is returned when opening an image without a path
	ErrEmptyPath = errors.New("path cannot be empty")
	// ErrNoSource is returned when an Image has nothing to decode
	ErrNoSource = errors.New("no image source configured")
)

// Bitmap is a row-major 1-bit pixel buffer
type Bitmap struct {
	Pix    []bool
	Width  int
	Height int
}

// Clone returns a deep copy of the bitmap
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{Pix: slices.Clone(b.Pix), Width: b.Width, Height: b.Height}
}

// View returns a braille view over the bitmap
func (b *Bitmap) View() *View[bool] {
	return New(b.Pix, b.Width, b.Height)
}

// Image converts a picture into braille text with a fluent API for configuration
type Image struct {
	source image.Image
	reader io.Reader
	path   string

	opts Options
}

// NewImage creates a new Image from an image.Image
func NewImage(img image.Image) *Image {
	if img == nil {
		return nil
	}
	return &Image{
		source: img,
		opts:   DefaultOptions(),
	}
}

// Open creates a new Image from a file path
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &Image{
		path: path,
		opts: DefaultOptions(),
	}, nil
}

// From creates a new Image from an io.Reader
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	return &Image{
		reader: r,
		opts:   DefaultOptions(),
	}
}

// Width sets the target width in character cells
func (i *Image) Width(w int) *Image {
	i.opts.Width = max(w, 0)
	return i
}

// Height sets the target height in character cells
func (i *Image) Height(h int) *Image {
	i.opts.Height = max(h, 0)
	return i
}

// Size sets both width and height in character cells
func (i *Image) Size(w, h int) *Image {
	return i.Width(w).Height(h)
}

// Threshold sets the brightness in [0,1] at which a pixel becomes a dot
func (i *Image) Threshold(t float64) *Image {
	i.opts.Threshold = t
	return i
}

// Luminance sets how pixel brightness is measured
func (i *Image) Luminance(l Luminance) *Image {
	i.opts.Luminance = l
	return i
}

// Dither enables Floyd-Steinberg dithering
func (i *Image) Dither(d bool) *Image {
	i.opts.Dither = d
	return i
}

// Invert makes dots mark dark pixels
func (i *Image) Invert(inv bool) *Image {
	i.opts.Invert = inv
	return i
}

// Edges enables Sobel edge detection
func (i *Image) Edges(e bool) *Image {
	i.opts.Edges = e
	return i
}

// Contrast sets the contrast adjustment in percent
func (i *Image) Contrast(pct float32) *Image {
	i.opts.Contrast = pct
	return i
}

// Options replaces every conversion option at once
func (i *Image) Options(opts Options) *Image {
	i.opts = opts
	return i
}

// Bitmap converts the image into a 1-bit buffer. Results for images opened
// from a path are cached; every call returns a copy the caller may modify.
func (i *Image) Bitmap() (*Bitmap, error) {
	opts := i.opts.resolve()
	key := cacheKey{path: i.path, opts: opts}
	if bm, ok := cachedBitmap(key); ok {
		return bm, nil
	}

	img, err := i.loadImage()
	if err != nil {
		return nil, err
	}

	bm := Convert(img, opts)
	storeBitmap(key, bm)
	return bm, nil
}

// View converts the image and returns a braille view over the result
func (i *Image) View() (*View[bool], error) {
	bm, err := i.Bitmap()
	if err != nil {
		return nil, err
	}
	return bm.View(), nil
}

// Render generates the braille text for the image
func (i *Image) Render() (string, error) {
	v, err := i.View()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Print outputs the braille text to stdout
func (i *Image) Print() error {
	v, err := i.View()
	if err != nil {
		return err
	}
	_, err = v.WriteTo(os.Stdout)
	return err
}

// loadImage loads the image from the configured source
func (i *Image) loadImage() (image.Image, error) {
	if i.source != nil {
		return i.source, nil
	}

	if i.path != "" {
		file, err := os.Open(i.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		img, _, err := image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		i.source = img
		return img, nil
	}

	if i.reader != nil {
		img, _, err := image.Decode(i.reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		i.source = img
		return img, nil
	}

	return nil, ErrNoSource
}

// resolve normalizes the options and fills in the terminal size when no
// dimension was given
func (o Options) resolve() Options {
	o = o.normalize()
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = terminalSize()
	}
	return o
}

// terminalSize returns the terminal size in character cells
func terminalSize() (cols, rows int) {
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 && height > 0 {
		return width, height
	}
	// Fallback to reasonable defaults if terminal size detection fails
	return fallbackCols, fallbackRows
}

// Convert scales, filters and thresholds img into a bitmap. opts.Width and
// opts.Height must not both be zero.
func Convert(img image.Image, opts Options) *Bitmap {
	opts = opts.normalize()

	w, h := targetSize(img.Bounds(), opts)
	if w == 0 || h == 0 {
		return &Bitmap{}
	}

	img = scaleImage(img, w, h)
	img = filterImage(img, opts)

	if opts.Dither {
		return ditherBitmap(img, opts)
	}
	return thresholdBitmap(img, opts)
}

// targetSize fits the source bounds into the character cell box while
// maintaining aspect ratio. Braille dots are roughly square, so a cell of
// 2x4 dots maps to 2x4 source pixels.
func targetSize(bounds image.Rectangle, opts Options) (width, height int) {
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}

	boxW, boxH := opts.Width*CellWidth, opts.Height*CellHeight

	switch {
	case boxW == 0 && boxH == 0:
		return 0, 0
	case boxH == 0:
		// Only width specified, calculate height maintaining aspect ratio
		return boxW, max((boxW*srcH)/srcW, 1)
	case boxW == 0:
		// Only height specified, calculate width maintaining aspect ratio
		return max((boxH*srcW)/srcH, 1), boxH
	}

	ratio := min(float64(boxW)/float64(srcW), float64(boxH)/float64(srcH))
	return max(int(float64(srcW)*ratio), 1), max(int(float64(srcH)*ratio), 1)
}

// scaleImage resizes img to exactly width x height
func scaleImage(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)

	return dst
}

// filterImage applies contrast and edge detection
func filterImage(img image.Image, opts Options) image.Image {
	var filters []gift.Filter
	if opts.Contrast != 0 {
		filters = append(filters, gift.Contrast(opts.Contrast))
	}
	if opts.Edges {
		filters = append(filters, gift.Grayscale(), gift.Sobel())
	}
	if len(filters) == 0 {
		return img
	}

	g := gift.New(filters...)
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)

	return dst
}

// brightness returns the lightness of c in [0,1]
func brightness(c color.Color, lum Luminance) float64 {
	switch lum {
	case LumaCIELab:
		col, ok := colorful.MakeColor(c)
		if !ok {
			return 0
		}
		l, _, _ := col.Lab()
		return min(max(l, 0), 1)
	default:
		return float64(color.GrayModel.Convert(c).(color.Gray).Y) / 0xff
	}
}

func transparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0
}

// thresholdBitmap sets every pixel at least as bright as the threshold
func thresholdBitmap(img image.Image, opts Options) *Bitmap {
	bounds := img.Bounds()
	bm := &Bitmap{
		Pix:    make([]bool, bounds.Dx()*bounds.Dy()),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.At(x, y)
			if transparent(c) {
				continue
			}
			on := brightness(c, opts.Luminance) >= opts.Threshold
			bm.Pix[(x-bounds.Min.X)+(y-bounds.Min.Y)*bm.Width] = on != opts.Invert
		}
	}

	return bm
}

var monochrome = color.Palette{color.Black, color.White}

// ditherBitmap reduces img to black and white with Floyd-Steinberg error
// diffusion; white pixels become dots
func ditherBitmap(img image.Image, opts Options) *Bitmap {
	bounds := img.Bounds()
	dst := image.NewPaletted(bounds, monochrome)
	draw.FloydSteinberg.Draw(dst, bounds, img, bounds.Min)

	bm := &Bitmap{
		Pix:    make([]bool, bounds.Dx()*bounds.Dy()),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if transparent(img.At(x, y)) {
				continue
			}
			on := dst.ColorIndexAt(x, y) == 1
			bm.Pix[(x-bounds.Min.X)+(y-bounds.Min.Y)*bm.Width] = on != opts.Invert
		}
	}

	return bm
}

// Convenience functions for quick rendering

// Render renders an image with default settings
func Render(img image.Image) (string, error) {
	if img == nil {
		return "", errors.New("image cannot be nil")
	}
	return NewImage(img).Render()
}

// RenderFile renders an image file with default settings
func RenderFile(path string) (string, error) {
	img, err := Open(path)
	if err != nil {
		return "", err
	}
	return img.Render()
}

// Print prints an image with default settings
func Print(img image.Image) error {
	if img == nil {
		return errors.New("image cannot be nil")
	}
	return NewImage(img).Print()
}

// PrintFile prints an image file with default settings
func PrintFile(path string) error {
	img, err := Open(path)
	if err != nil {
		return err
	}
	return img.Print()
}
