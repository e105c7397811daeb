package img2text

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wbrown/img2text/imageutil"
)

// DefaultScaleFactor is applied to both image dimensions when none is given.
const DefaultScaleFactor = 0.25

//go:generate mockgen -destination=mock_collaborators_test.go -package=img2text . Decoder,Resizer

// Decoder reads an image file into an RGB image.
type Decoder interface {
	Decode(path string) (*imageutil.RGBAImage, error)
}

// Resizer resamples an RGB image to exact dimensions.
type Resizer interface {
	Resize(img *imageutil.RGBAImage, width, height int) *imageutil.RGBAImage
}

// FileDecoder decodes files with imageutil.LoadImage.
type FileDecoder struct{}

func (FileDecoder) Decode(path string) (*imageutil.RGBAImage, error) {
	return imageutil.LoadImage(path)
}

// ScaleResizer resizes with imageutil.Resize using its Interpolation.
type ScaleResizer struct {
	Interpolation imageutil.Interpolation
}

func (r ScaleResizer) Resize(img *imageutil.RGBAImage, width, height int) *imageutil.RGBAImage {
	return imageutil.Resize(img, width, height, r.Interpolation)
}

// Params are the inputs of one conversion.
type Params struct {
	ImagePath   string
	Character   string
	ScaleFactor float64
}

// DefaultParams returns Params for path with the default character and
// scale factor.
func DefaultParams(path string) Params {
	return Params{
		ImagePath:   path,
		Character:   DefaultCharacter,
		ScaleFactor: DefaultScaleFactor,
	}
}

// Validate checks the character and scale factor. It does no I/O.
func (p Params) Validate() error {
	if err := checkCharacter(p.Character); err != nil {
		return err
	}
	if err := checkScaleFactor(p.ScaleFactor); err != nil {
		return err
	}
	if p.ImagePath == "" {
		return valueError("image path is required (-i)", nil)
	}
	return nil
}

// ParseScaleFactor parses a scale factor given as text, e.g. "0.5".
func ParseScaleFactor(text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, valueError("-x value should be a number", err)
	}
	if err := checkScaleFactor(f); err != nil {
		return 0, err
	}
	return f, nil
}

func checkScaleFactor(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return valueError("-x value should be a positive number", nil)
	}
	return nil
}

// ScaledSize returns floor(width*factor) by floor(height*factor).
func ScaledSize(width, height int, factor float64) (int, int) {
	return int(math.Floor(float64(width) * factor)),
		int(math.Floor(float64(height) * factor))
}

// Converter runs the load, scale and render pipeline. The zero value is
// not usable; create one with NewConverter.
type Converter struct {
	decoder Decoder
	resizer Resizer
	logger  *log.Logger
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a Converter that decodes with FileDecoder and
// resizes with Catmull-Rom unless options say otherwise.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		decoder: FileDecoder{},
		resizer: ScaleResizer{Interpolation: imageutil.InterpolationArea},
		logger:  log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithDecoder replaces the image decoder.
func WithDecoder(d Decoder) ConverterOption {
	return func(c *Converter) {
		c.decoder = d
	}
}

// WithResizer replaces the resizer.
func WithResizer(r Resizer) ConverterOption {
	return func(c *Converter) {
		c.resizer = r
	}
}

// WithInterpolation resizes with imageutil.Resize using interp.
func WithInterpolation(interp imageutil.Interpolation) ConverterOption {
	return WithResizer(ScaleResizer{Interpolation: interp})
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) ConverterOption {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Load validates p, decodes p.ImagePath and resizes it by p.ScaleFactor.
// Decoder failures are returned as KindDecode errors carrying the
// decoder's message unchanged.
func (c *Converter) Load(p Params) (*imageutil.RGBAImage, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	img, err := c.decoder.Decode(p.ImagePath)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Err: err}
	}
	if img == nil || img.RGBA == nil {
		return nil, typeError("image should be a decoded image")
	}
	c.logger.Debug("decoded image", "path", p.ImagePath,
		"width", img.Width(), "height", img.Height())

	width, height := ScaledSize(img.Width(), img.Height(), p.ScaleFactor)
	resized := c.resizer.Resize(img, width, height)
	c.logger.Debug("resized image", "scale", p.ScaleFactor,
		"width", width, "height", height)

	return resized, nil
}

// Convert loads the image described by p and renders it as text.
func (c *Converter) Convert(p Params) (string, error) {
	img, err := c.Load(p)
	if err != nil {
		return "", err
	}
	return ImageToText(img, p.Character)
}

// ParseParams builds Params from text arguments. The character is checked
// before the scale factor is parsed.
func ParseParams(path, character, scale string) (Params, error) {
	if err := checkCharacter(character); err != nil {
		return Params{}, err
	}
	factor, err := ParseScaleFactor(scale)
	if err != nil {
		return Params{}, err
	}
	p := Params{
		ImagePath:   path,
		Character:   character,
		ScaleFactor: factor,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// DrawImageAsText converts the image at path with the default Converter,
// taking the scale factor as text.
func DrawImageAsText(path, character, scale string) (string, error) {
	p, err := ParseParams(path, character, scale)
	if err != nil {
		return "", err
	}
	return NewConverter().Convert(p)
}
