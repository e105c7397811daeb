package img2text

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/wbrown/img2text/imageutil"
)

// PNGOptions controls how RenderTextPNG lays out glyphs.
type PNGOptions struct {
	// FontSize is the glyph size in points. Defaults to 12.
	FontSize float64
	// DPI defaults to 72, making one point one pixel.
	DPI float64
	// Background fills cells behind the glyphs. Defaults to black.
	Background color.Color
}

func (o PNGOptions) withDefaults() PNGOptions {
	if o.FontSize <= 0 {
		o.FontSize = 12
	}
	if o.DPI <= 0 {
		o.DPI = 72
	}
	if o.Background == nil {
		o.Background = color.Black
	}
	return o
}

var (
	monoOnce sync.Once
	monoFont *truetype.Font
	monoErr  error
)

// monospace returns the parsed Go Mono font.
func monospace() (*truetype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = freetype.ParseFont(gomono.TTF)
	})
	return monoFont, monoErr
}

// RenderTextPNG draws the text-art of img as a raster: one cell per pixel,
// each holding character in that pixel's color, the way a true-color
// terminal would show the output of ImageToText.
func RenderTextPNG(img image.Image, character string, opts PNGOptions) (*image.RGBA, error) {
	if err := checkImage(img); err != nil {
		return nil, err
	}
	if err := checkCharacter(character); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	ttf, err := monospace()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     opts.DPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	// All Go Mono glyphs share one advance, so any rune gives the cell width.
	advance, ok := face.GlyphAdvance([]rune(character)[0])
	if !ok {
		advance, _ = face.GlyphAdvance('M')
	}
	metrics := face.Metrics()
	cellW := max(advance.Ceil(), 1)
	cellH := max((metrics.Ascent + metrics.Descent).Ceil(), 1)
	baseline := metrics.Ascent.Ceil()

	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*cellW, bounds.Dy()*cellH))
	draw.Draw(out, out.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(opts.DPI)
	ctx.SetFont(ttf)
	ctx.SetFontSize(opts.FontSize)
	ctx.SetClip(out.Bounds())
	ctx.SetDst(out)
	ctx.SetHinting(font.HintingFull)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := y - bounds.Min.Y
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			col := x - bounds.Min.X
			ctx.SetSrc(image.NewUniform(imageutil.RGBFromColor(img.At(x, y)).ToColor()))
			pt := freetype.Pt(col*cellW, row*cellH+baseline)
			if _, err := ctx.DrawString(character, pt); err != nil {
				return nil, fmt.Errorf("failed to draw glyph at (%d,%d): %w", col, row, err)
			}
		}
	}

	return out, nil
}

// SaveTextPNG renders img with RenderTextPNG and writes the result to path.
func SaveTextPNG(img image.Image, character, path string, opts PNGOptions) error {
	out, err := RenderTextPNG(img, character, opts)
	if err != nil {
		return err
	}
	return imageutil.SavePNG(out, path)
}
