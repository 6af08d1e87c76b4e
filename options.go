package braillefb

// Luminance selects how a pixel's brightness is measured before thresholding
type Luminance int

const (
	// LumaRec601 uses the ITU-R BT.601 weights of image/color's gray model
	LumaRec601 Luminance = iota
	// LumaCIELab uses the perceptual CIE L* lightness
	LumaCIELab
)

// String returns the luminance model name
func (l Luminance) String() string {
	switch l {
	case LumaRec601:
		return "rec601"
	case LumaCIELab:
		return "lab"
	default:
		return "unknown"
	}
}

// DefaultThreshold is the brightness at and above which a pixel becomes a dot
const DefaultThreshold = 0.5

// Fallback size in character cells when the terminal size is unknown
const (
	fallbackCols = 80
	fallbackRows = 24
)

// Options contains all options for converting an image into a bitmap
type Options struct {
	// Width and Height are the target size in character cells. A zero
	// dimension is derived from the other one keeping the aspect ratio; when
	// both are zero the terminal size is used.
	Width  int
	Height int

	// Threshold in [0,1]; pixels at least this bright become dots
	Threshold float64
	Luminance Luminance

	Dither   bool    // Floyd-Steinberg dithering instead of a hard threshold
	Invert   bool    // Dots mark dark pixels instead of bright ones
	Edges    bool    // Sobel edge detection before thresholding
	Contrast float32 // Contrast adjustment in percent (-100..100), 0 disables
}

// DefaultOptions returns the options used by NewImage, Open and From
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Luminance: LumaRec601,
	}
}

// normalize clamps out of range values
func (o Options) normalize() Options {
	o.Width = max(o.Width, 0)
	o.Height = max(o.Height, 0)
	o.Threshold = min(max(o.Threshold, 0), 1)
	o.Contrast = min(max(o.Contrast, -100), 100)
	return o
}
