// Package img2text renders raster images as text-art colored with ANSI
// 24-bit escapes, one glyph per pixel.
package img2text

import (
	"image"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/wbrown/img2text/imageutil"
)

// DefaultCharacter is the glyph drawn for every pixel when none is given.
const DefaultCharacter = "#"

// ImageToText renders img as text-art: one Colorize(character) per pixel,
// rows top to bottom, pixels left to right, and a newline after every row.
//
// It returns a KindType error if img is nil and a KindValue error if
// character is not exactly one rune. An image with no columns renders as
// one newline per row.
func ImageToText(img image.Image, character string) (string, error) {
	if err := checkImage(img); err != nil {
		return "", err
	}
	if err := checkCharacter(character); err != nil {
		return "", err
	}

	bounds := img.Bounds()
	var sb strings.Builder
	sb.Grow(bounds.Dy() * (bounds.Dx()*glyphSize(len(character)) + 1))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := imageutil.RGBFromColor(img.At(x, y))
			writeColorized(&sb, int(c.R), int(c.G), int(c.B), character)
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// checkImage rejects nil images, including typed nil pointers such as a
// nil *imageutil.RGBAImage stored in the interface.
func checkImage(img image.Image) error {
	if img == nil {
		return typeError("image should be a decoded image")
	}
	if v := reflect.ValueOf(img); v.Kind() == reflect.Pointer && v.IsNil() {
		return typeError("image should be a decoded image")
	}
	if rgba, ok := img.(*imageutil.RGBAImage); ok && rgba.RGBA == nil {
		return typeError("image should be a decoded image")
	}
	return nil
}

func checkCharacter(character string) error {
	if utf8.RuneCountInString(character) != 1 {
		return valueError("Character length should be 1", nil)
	}
	return nil
}
