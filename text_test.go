package img2text

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/img2text/imageutil"
)

func TestImageToTextRedPair(t *testing.T) {
	red := imageutil.RGB{R: 255}
	img := imageutil.CreatePixelImage(2, 1, red, red)

	got, err := ImageToText(img, "#")
	require.NoError(t, err)

	glyph := "\x1b[38;2;255;0;0m#\x1b[0m"
	assert.Equal(t, glyph+glyph+"\n", got)
}

func TestImageToTextShape(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 2}, {8, 5}, {16, 1}, {1, 9}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		img := imageutil.CreateColorBarsImage(w, h)

		got, err := ImageToText(img, "@")
		require.NoError(t, err)

		require.True(t, strings.HasSuffix(got, "\n"))
		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		require.Len(t, lines, h, "size %dx%d", w, h)
		for i, line := range lines {
			assert.Equal(t, w, strings.Count(line, Reset), "glyphs on line %d of %dx%d", i, w, h)
			assert.Equal(t, w, strings.Count(line, "@"), "characters on line %d of %dx%d", i, w, h)
		}
	}
}

func TestImageToTextRowMajorOrder(t *testing.T) {
	img := imageutil.CreatePixelImage(2, 2,
		imageutil.RGB{R: 1}, imageutil.RGB{R: 2},
		imageutil.RGB{R: 3}, imageutil.RGB{R: 4},
	)

	got, err := ImageToText(img, "x")
	require.NoError(t, err)

	want := Colorize(1, 0, 0, "x") + Colorize(2, 0, 0, "x") + "\n" +
		Colorize(3, 0, 0, "x") + Colorize(4, 0, 0, "x") + "\n"
	assert.Equal(t, want, got)
}

func TestImageToTextAcceptsAnyImage(t *testing.T) {
	// Bounds off the origin and a non-RGBA color model.
	src := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	src.SetNRGBA(10, 20, color.NRGBA{R: 9, G: 8, B: 7, A: 255})
	src.SetNRGBA(11, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 64})

	got, err := ImageToText(src, "*")
	require.NoError(t, err)
	assert.Equal(t, Colorize(9, 8, 7, "*")+Colorize(1, 2, 3, "*")+"\n", got)
}

func TestImageToTextCharacterLength(t *testing.T) {
	img := imageutil.CreateSolidImage(2, 2, imageutil.RGB{G: 255})

	for _, c := range []string{"", "##", "ab", "é#"} {
		_, err := ImageToText(img, c)
		require.Error(t, err, "character %q", c)
		assert.Equal(t, KindValue, KindOf(err))
		assert.Equal(t, "Character length should be 1", err.Error())
	}

	for _, c := range []string{"#", "é", "█"} {
		_, err := ImageToText(img, c)
		assert.NoError(t, err, "character %q", c)
	}
}

func TestImageToTextRejectsNilImage(t *testing.T) {
	var typedNil *imageutil.RGBAImage
	inputs := map[string]image.Image{
		"nil interface":   nil,
		"typed nil":       typedNil,
		"empty wrapper":   &imageutil.RGBAImage{},
		"nil *image.RGBA": (*image.RGBA)(nil),
	}
	for name, img := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := ImageToText(img, "#")
			require.Error(t, err)
			assert.Equal(t, KindType, KindOf(err))
		})
	}
}

func TestImageToTextTypeCheckedBeforeCharacter(t *testing.T) {
	_, err := ImageToText(nil, "##")
	assert.Equal(t, KindType, KindOf(err))
}

func TestImageToTextEmptyImages(t *testing.T) {
	got, err := ImageToText(imageutil.NewRGBAImage(0, 3), "#")
	require.NoError(t, err)
	assert.Equal(t, "\n\n\n", got)

	got, err = ImageToText(imageutil.NewRGBAImage(4, 0), "#")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = ImageToText(imageutil.NewRGBAImage(0, 0), "#")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestImageToTextIdempotent(t *testing.T) {
	img := imageutil.CreateGradientImage(12, 7)

	first, err := ImageToText(img, "#")
	require.NoError(t, err)
	second, err := ImageToText(img, "#")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
