package imaging

import (
	"encoding/base64"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/docbound/docbound-mcp/internal/geometry"
)

func TestExtractBoundary(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := ExtractBoundary(img, geometry.BBox{X: 0, Y: 0, Width: 50, Height: 50}, 0, 1.0)
	if err != nil {
		t.Fatalf("ExtractBoundary failed: %v", err)
	}

	if result.Width != 50 || result.Height != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if _, err := base64.StdEncoding.DecodeString(result.ImageBase64); err != nil {
		t.Errorf("failed to decode base64: %v", err)
	}
}

func TestExtractBoundary_Padding(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := ExtractBoundary(img, geometry.BBox{X: 20, Y: 20, Width: 40, Height: 40}, 10, 1.0)
	if err != nil {
		t.Fatalf("ExtractBoundary with padding failed: %v", err)
	}

	// bbox 20,20-60,60 padded by 10 on every side -> 10,10-70,70
	if result.Width != 60 || result.Height != 60 {
		t.Errorf("padded dimensions: got %dx%d, want 60x60", result.Width, result.Height)
	}
}

func TestExtractBoundary_PaddingClampedToImageBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	// Padding would push the box outside the image on every side; it should
	// clamp rather than error.
	result, err := ExtractBoundary(img, geometry.BBox{X: 0, Y: 0, Width: 100, Height: 100}, 25, 1.0)
	if err != nil {
		t.Fatalf("ExtractBoundary failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("clamped dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
}

func TestExtractBoundary_Scale(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := ExtractBoundary(img, geometry.BBox{X: 0, Y: 0, Width: 50, Height: 50}, 0, 2.0)
	if err != nil {
		t.Fatalf("ExtractBoundary with scale failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("scaled dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
}

func TestExtractBoundary_ScaleDown(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := ExtractBoundary(img, geometry.BBox{X: 0, Y: 0, Width: 100, Height: 100}, 0, 0.5)
	if err != nil {
		t.Fatalf("ExtractBoundary with scale down failed: %v", err)
	}
	if result.Width != 50 || result.Height != 50 {
		t.Errorf("scaled-down dimensions: got %dx%d, want 50x50", result.Width, result.Height)
	}
}

func TestExtractBoundary_CollapsedRegion(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{255, 0, 0, 255})

	// A box entirely past the image's right edge clamps x1 and x2 to the
	// same value and must be rejected rather than silently produce an empty
	// image.
	_, err := ExtractBoundary(img, geometry.BBox{X: 50, Y: 0, Width: 20, Height: 5}, 0, 1.0)
	if err == nil {
		t.Error("ExtractBoundary should fail for a bounding box outside the image")
	}
}

func TestExtractBoundary_VerifyContent(t *testing.T) {
	img := createPatternImage(100, 100)

	// Top-left quadrant is red in createPatternImage.
	result, err := ExtractBoundary(img, geometry.BBox{X: 0, Y: 0, Width: 50, Height: 50}, 0, 1.0)
	if err != nil {
		t.Fatalf("ExtractBoundary failed: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	extracted, err := png.Decode(strings.NewReader(string(decoded)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}

	r, g, b, _ := extracted.At(25, 25).RGBA()
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	if r8 != 255 || g8 != 0 || b8 != 0 {
		t.Errorf("extracted region color: got (%d,%d,%d), want (255,0,0)", r8, g8, b8)
	}
}

func TestExtractBoundary_FractionalBBoxTruncates(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	// detect.Boundary bounding rects come from geometry.BoundingBox on
	// float polygon points; ExtractBoundary must truncate rather than
	// reject non-integer coordinates.
	result, err := ExtractBoundary(img, geometry.BBox{X: 10.7, Y: 10.2, Width: 29.9, Height: 29.1}, 0, 1.0)
	if err != nil {
		t.Fatalf("ExtractBoundary with fractional bbox failed: %v", err)
	}
	if result.Width == 0 || result.Height == 0 {
		t.Error("expected a non-empty extracted region")
	}
}
