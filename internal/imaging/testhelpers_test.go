package imaging

import (
	"image"
	"image/color"
)

// createInMemoryImage returns a uniformly colored RGBA image of the given
// size, used by tests that don't care about pixel content.
func createInMemoryImage(width, height int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage returns an RGBA image with a simple quadrant pattern,
// used by tests that need distinguishable regions (crop correctness etc.).
func createPatternImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	midX, midY := width/2, height/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case x < midX && y < midY:
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			case x >= midX && y < midY:
				img.Set(x, y, color.RGBA{0, 255, 0, 255})
			case x < midX && y >= midY:
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			default:
				img.Set(x, y, color.RGBA{255, 255, 0, 255})
			}
		}
	}
	return img
}
