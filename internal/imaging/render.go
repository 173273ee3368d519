package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/docbound/docbound-mcp/internal/detect"
	"github.com/docbound/docbound-mcp/internal/raster"
)

// RenderOptions configures RenderBoundaries.
type RenderOptions struct {
	// StrokeWidth is the outline thickness in pixels. Defaults to 2 when
	// <= 0.
	StrokeWidth int

	// LabelVertices draws each vertex's index next to it using the
	// bitmap digit font.
	LabelVertices bool

	// ShowIntermediate, instead of drawing boundaries, tiles the four
	// named intermediate buffers into a 2x2 contact sheet.
	ShowIntermediate bool
}

// RenderBoundaries draws result's boundaries as stroked, distinctly colored
// polygons over r, or — if opts.ShowIntermediate is set — tiles r's
// intermediate buffers into a debug contact sheet instead. It never mutates
// r and never writes to disk; the caller decides what to do with the
// returned PNG bytes.
func RenderBoundaries(r raster.Raster, result detect.Result, opts RenderOptions) ([]byte, error) {
	if opts.ShowIntermediate {
		return renderContactSheet(result)
	}

	strokeWidth := opts.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 2
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	copy(canvas.Pix, r.Pix)

	for i, b := range result.Boundaries {
		hue := 360 * float64(i) / math.Max(1, float64(len(result.Boundaries)))
		c := colorful.Hsv(hue, 0.65, 0.9)
		rr, gg, bb := c.RGB255()
		strokeColor := color.RGBA{R: rr, G: gg, B: bb, A: 255}

		n := len(b.Points)
		for j := 0; j < n; j++ {
			a := b.Points[j]
			next := b.Points[(j+1)%n]
			drawThickLine(canvas, a, next, strokeColor, strokeWidth)
		}

		if opts.LabelVertices {
			for idx, p := range b.Points {
				drawLabel(canvas, int(p.X)+2, int(p.Y)+2, fmt.Sprintf("%d", idx), color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 180})
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode boundary overlay: %w", err)
	}
	return buf.Bytes(), nil
}

// drawThickLine draws a Bresenham line from a to b, repeated on
// width-1 parallel offsets to approximate a stroke of the given width.
func drawThickLine(img *image.NRGBA, a, b raster.Point, c color.RGBA, width int) {
	for offset := 0; offset < width; offset++ {
		drawBresenhamLine(img, int(a.X), int(a.Y)+offset, int(b.X), int(b.Y)+offset, c)
	}
}

func drawBresenhamLine(img *image.NRGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	bounds := img.Bounds()
	for {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			img.Set(x, y, c)
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// renderContactSheet tiles the four named intermediate buffers into a 2x2
// grid: grayscale, edges, threshold, processed, in that reading order.
func renderContactSheet(result detect.Result) ([]byte, error) {
	order := []detect.IntermediateKey{detect.StageGrayscale, detect.StageEdges, detect.StageThreshold, detect.StageProcessed}

	var w, h int
	for _, k := range order {
		if buf, ok := result.Intermediate[k]; ok {
			w, h = buf.Width, buf.Height
			break
		}
	}
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("no intermediate buffers available to tile")
	}

	sheet := image.NewNRGBA(image.Rect(0, 0, 2*w, 2*h))
	positions := []image.Point{{0, 0}, {w, 0}, {0, h}, {w, h}}

	for i, k := range order {
		buf, ok := result.Intermediate[k]
		if !ok {
			continue
		}
		tile := grayBufferToImage(buf)
		draw.Draw(sheet, image.Rect(positions[i].X, positions[i].Y, positions[i].X+w, positions[i].Y+h), tile, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, sheet); err != nil {
		return nil, fmt.Errorf("failed to encode contact sheet: %w", err)
	}
	return buf.Bytes(), nil
}

func grayBufferToImage(g raster.GrayBuffer) image.Image {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	copy(img.Pix, g.Pix)
	return img
}
