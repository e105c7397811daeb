// Package imageutil holds the decoded-image plumbing used by img2text:
// an RGB pixel wrapper around image.RGBA, file decoding and resampling.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.RGBA.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB, dropping the alpha channel
// without premultiplying it into the color channels.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
// Every pixel stored through this package is fully opaque.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to an opaque RGBAImage whose
// bounds start at the origin.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.SetRGB(x-bounds.Min.X, y-bounds.Min.Y, RGBFromColor(img.At(x, y)))
		}
	}
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, c.ToColor())
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
