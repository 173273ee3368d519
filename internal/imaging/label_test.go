package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestDrawLabel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	fg := color.RGBA{255, 255, 255, 255}
	bg := color.RGBA{0, 0, 0, 180}
	drawLabel(img, 10, 10, "50,50", fg, bg)

	hasWhite := false
	hasBlack := false
	for y := 9; y < 20; y++ {
		for x := 9; x < 40; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r > 200<<8 {
				hasWhite = true
			}
			if r < 50<<8 {
				hasBlack = true
			}
		}
	}

	if !hasWhite {
		t.Error("label should have white pixels (text)")
	}
	if !hasBlack {
		t.Error("label should have dark pixels (background)")
	}
}

func TestDrawLabel_BoundsCheck(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))

	fg := color.RGBA{255, 255, 255, 255}
	bg := color.RGBA{0, 0, 0, 180}

	// These should not panic even if the label extends past the image
	// bounds.
	drawLabel(img, 15, 15, "100,100", fg, bg)
	drawLabel(img, 0, 0, "0,0", fg, bg)
	drawLabel(img, -5, -5, "test", fg, bg)
}

func TestDrawLabel_EmptyString(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))

	fg := color.RGBA{255, 255, 255, 255}
	bg := color.RGBA{0, 0, 0, 180}

	drawLabel(img, 10, 10, "", fg, bg)
}

func TestDrawLabel_UnknownChars(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))

	fg := color.RGBA{255, 255, 255, 255}
	bg := color.RGBA{0, 0, 0, 180}

	// Unknown characters (e.g. vertex index labels never need letters, but
	// this must not panic if one sneaks in) are skipped.
	drawLabel(img, 10, 10, "abc123", fg, bg)
}
