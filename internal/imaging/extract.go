package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/docbound/docbound-mcp/internal/geometry"
)

// ExtractResult contains an extracted image region encoded as base64 PNG.
type ExtractResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// ExtractBoundary crops the source image to rect — typically a detected
// boundary's BoundingRect — expanded by padding pixels on every side and
// clamped to the image's own bounds, then optionally rescales the result.
// It is the "cut out a detected page" counterpart to RenderBoundaries'
// visual overlay: where RenderBoundaries draws the boundary in place,
// ExtractBoundary pulls just that axis-aligned region out as its own image.
// No perspective correction is applied.
func ExtractBoundary(img image.Image, rect geometry.BBox, padding int, scale float64) (*ExtractResult, error) {
	bounds := img.Bounds()

	x1 := int(rect.X) - padding
	y1 := int(rect.Y) - padding
	x2 := int(rect.X+rect.Width) + padding
	y2 := int(rect.Y+rect.Height) + padding

	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("boundary bounding box (%.0f,%.0f,%.0f,%.0f) collapses to an empty region after padding/clamping", rect.X, rect.Y, rect.Width, rect.Height)
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode extracted region: %w", err)
	}

	return &ExtractResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
