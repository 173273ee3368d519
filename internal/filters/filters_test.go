package filters

import (
	"testing"

	"github.com/docbound/docbound-mcp/internal/raster"
)

func uniformRaster(t *testing.T, w, h int, r, g, b, a byte) raster.Raster {
	t.Helper()
	pix := make([]byte, 4*w*h)
	for i := 0; i < w*h; i++ {
		pix[i*4] = r
		pix[i*4+1] = g
		pix[i*4+2] = b
		pix[i*4+3] = a
	}
	ras, err := raster.NewRaster(w, h, pix)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	return ras
}

func TestGrayscalePreservesUniformLuminance(t *testing.T) {
	r := uniformRaster(t, 10, 10, 128, 128, 128, 255)
	g, err := Grayscale(r)
	if err != nil {
		t.Fatalf("Grayscale: %v", err)
	}
	for _, v := range g.Pix {
		if v != 128 {
			t.Fatalf("expected uniform 128, got %d", v)
		}
	}
}

func TestGrayscaleIgnoresAlpha(t *testing.T) {
	r1 := uniformRaster(t, 4, 4, 200, 10, 30, 0)
	r2 := uniformRaster(t, 4, 4, 200, 10, 30, 255)
	g1, _ := Grayscale(r1)
	g2, _ := Grayscale(r2)
	for i := range g1.Pix {
		if g1.Pix[i] != g2.Pix[i] {
			t.Fatalf("alpha changed grayscale output at %d: %d vs %d", i, g1.Pix[i], g2.Pix[i])
		}
	}
}

func TestGaussianBlurUniformIsUnchanged(t *testing.T) {
	r := uniformRaster(t, 20, 20, 60, 60, 60, 255)
	g, _ := Grayscale(r)
	blurred, err := GaussianBlur(g, 2)
	if err != nil {
		t.Fatalf("GaussianBlur: %v", err)
	}
	for _, v := range blurred.Pix {
		if v != 60 {
			t.Fatalf("uniform blur changed value: got %d, want 60", v)
		}
	}
}

func TestGaussianBlurSmoothsSpike(t *testing.T) {
	g, _ := raster.NewGrayBuffer(11, 11)
	g.Set(5, 5, 255)

	blurred, err := GaussianBlur(g, 2)
	if err != nil {
		t.Fatalf("GaussianBlur: %v", err)
	}
	if blurred.At(5, 5) >= 255 {
		t.Error("center of spike should be reduced by blur")
	}
	if blurred.At(4, 5) == 0 {
		t.Error("neighbor of spike should receive some of the blur")
	}
}

func TestSobelBorderIsZero(t *testing.T) {
	r := uniformRaster(t, 12, 12, 0, 0, 0, 255)
	for x := 5; x < 8; x++ {
		for y := 0; y < 12; y++ {
			i := (y*12 + x) * 4
			r.Pix[i], r.Pix[i+1], r.Pix[i+2] = 255, 255, 255
		}
	}
	g, _ := Grayscale(r)
	edges, err := Sobel(g)
	if err != nil {
		t.Fatalf("Sobel: %v", err)
	}
	for x := 0; x < edges.Width; x++ {
		if edges.At(x, 0) != 0 || edges.At(x, edges.Height-1) != 0 {
			t.Fatalf("border row not zero at x=%d", x)
		}
	}
	for y := 0; y < edges.Height; y++ {
		if edges.At(0, y) != 0 || edges.At(edges.Width-1, y) != 0 {
			t.Fatalf("border column not zero at y=%d", y)
		}
	}
}

func TestSobelUniformHasNoEdges(t *testing.T) {
	r := uniformRaster(t, 10, 10, 90, 90, 90, 255)
	g, _ := Grayscale(r)
	edges, err := Sobel(g)
	if err != nil {
		t.Fatalf("Sobel: %v", err)
	}
	for _, v := range edges.Pix {
		if v != 0 {
			t.Fatalf("uniform image produced nonzero Sobel output: %d", v)
		}
	}
}

func TestAdaptiveMeanThresholdUniformIsAllZero(t *testing.T) {
	g, _ := raster.NewGrayBuffer(30, 30)
	for i := range g.Pix {
		g.Pix[i] = 100
	}
	mask, err := AdaptiveMeanThreshold(g, 15, 5)
	if err != nil {
		t.Fatalf("AdaptiveMeanThreshold: %v", err)
	}
	for _, v := range mask.Pix {
		if v != 0 {
			t.Fatalf("uniform image should threshold to all zero, got %d", v)
		}
	}
}

func TestAdaptiveMeanThresholdDarkSpotIsWhite(t *testing.T) {
	g, _ := raster.NewGrayBuffer(30, 30)
	for i := range g.Pix {
		g.Pix[i] = 200
	}
	// Small dark patch well below the local mean.
	for y := 12; y < 18; y++ {
		for x := 12; x < 18; x++ {
			g.Set(x, y, 20)
		}
	}
	mask, err := AdaptiveMeanThreshold(g, 15, 5)
	if err != nil {
		t.Fatalf("AdaptiveMeanThreshold: %v", err)
	}
	if mask.At(15, 15) != 255 {
		t.Error("dark patch center should threshold to white")
	}
}

func TestDilateGrowsWhiteRegion(t *testing.T) {
	m, _ := raster.NewMask(10, 10)
	m.Set(5, 5, 255)

	out, err := Dilate(m, 1)
	if err != nil {
		t.Fatalf("Dilate: %v", err)
	}
	if out.At(5, 5) != 255 || out.At(4, 5) != 255 || out.At(6, 6) != 255 {
		t.Error("dilate should spread white into the 3x3 neighborhood")
	}
	if out.At(0, 0) != 0 {
		t.Error("dilate should not spread beyond its radius")
	}
}

func TestErodeShrinksWhiteRegion(t *testing.T) {
	m, _ := raster.NewMask(10, 10)
	for y := 3; y < 7; y++ {
		for x := 3; x < 7; x++ {
			m.Set(x, y, 255)
		}
	}
	out, err := Erode(m, 1)
	if err != nil {
		t.Fatalf("Erode: %v", err)
	}
	if out.At(3, 3) != 0 {
		t.Error("erode should remove the edge of the white region")
	}
	if out.At(5, 5) != 255 {
		t.Error("erode should keep the interior of a large enough region white")
	}
}

func TestCombineLogicalOr(t *testing.T) {
	edges, _ := raster.NewGrayBuffer(2, 1)
	threshold, _ := raster.NewMask(2, 1)
	edges.Set(0, 0, 60) // above default threshold 50
	threshold.Set(1, 0, 200) // above 128

	out, err := Combine(edges, threshold, -1)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if out.At(0, 0) != 255 || out.At(1, 0) != 255 {
		t.Error("combine should OR both conditions to white")
	}
}

func TestCombineDimensionMismatch(t *testing.T) {
	edges, _ := raster.NewGrayBuffer(2, 2)
	threshold, _ := raster.NewMask(3, 3)
	_, err := Combine(edges, threshold, 50)
	if !raster.IsKind(err, raster.InvalidInput) {
		t.Fatalf("expected InvalidInput for dimension mismatch, got %v", err)
	}
}
