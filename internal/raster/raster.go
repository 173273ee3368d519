package raster

// Point is a 2D coordinate in pixel space. Raw contour points hold integer
// values; the approximator and geometry packages operate on the same type
// once points start moving around as real numbers.
type Point struct {
	X, Y float64
}

// Raster is the immutable input to a single detect call: a packed, 8-bit
// RGBA image, row-major, origin top-left. Callers own the backing slice;
// the pipeline never writes through it.
type Raster struct {
	Width  int
	Height int
	Pix    []byte // length 4*Width*Height
}

// NewRaster validates and wraps a packed RGBA buffer. It is the first
// InvalidInput check point in the pipeline, per the failure-surface policy:
// dimension/length problems are raised before any processing happens.
func NewRaster(width, height int, pix []byte) (Raster, error) {
	if width <= 0 || height <= 0 {
		return Raster{}, InvalidInputf("raster dimensions must be positive, got %dx%d", width, height)
	}
	want := 4 * width * height
	if len(pix) != want {
		return Raster{}, InvalidInputf("raster pixel buffer length %d inconsistent with %dx%d (want %d)", len(pix), width, height, want)
	}
	return Raster{Width: width, Height: height, Pix: pix}, nil
}

// GrayBuffer is a single-channel 8-bit buffer with the same dimensions as
// the source raster. Every intermediate stage of the pipeline produces a
// fresh one; none are shared or mutated after the stage that produced them
// completes.
type GrayBuffer struct {
	Width  int
	Height int
	Pix    []byte // length Width*Height
}

// NewGrayBuffer allocates a zeroed buffer of the given dimensions.
// Allocation failure (or a dimension overflow that would request an
// impossible allocation) surfaces as OutOfMemory rather than panicking the
// caller's goroutine, per the pipeline's failure-surface policy.
func NewGrayBuffer(width, height int) (GrayBuffer, error) {
	pix, err := safeAlloc(width, height)
	if err != nil {
		return GrayBuffer{}, err
	}
	return GrayBuffer{Width: width, Height: height, Pix: pix}, nil
}

// safeAlloc guards make([]byte, n) against both integer overflow in the
// width*height product and a runtime allocation panic, reporting both as
// OutOfMemory instead of letting either crash the process.
func safeAlloc(width, height int) (buf []byte, err error) {
	if width <= 0 || height <= 0 {
		return nil, OutOfMemoryf("cannot allocate buffer of non-positive size %dx%d", width, height)
	}
	n := width * height
	if n/width != height {
		return nil, OutOfMemoryf("buffer size %dx%d overflows", width, height)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, OutOfMemoryf("allocation of %d bytes failed: %v", n, r)
		}
	}()
	return make([]byte, n), nil
}

// At reads a pixel with clamp-to-edge boundary handling: out-of-bounds
// coordinates are replicated from the nearest edge. This is the default
// sampling policy for every filter in this pipeline unless a stage states
// otherwise (the adaptive threshold stage does).
func (g GrayBuffer) At(x, y int) uint8 {
	if x < 0 {
		x = 0
	} else if x >= g.Width {
		x = g.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.Height {
		y = g.Height - 1
	}
	return g.Pix[y*g.Width+x]
}

// AtChecked reads a pixel without clamping, reporting whether (x, y) was
// in bounds. Stages that need to distinguish "actually sampled" pixels from
// clamped ones (the adaptive threshold's in-bounds-only window mean) use
// this instead of At.
func (g GrayBuffer) AtChecked(x, y int) (v uint8, ok bool) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0, false
	}
	return g.Pix[y*g.Width+x], true
}

// Set writes a pixel. No bounds checking; callers index within Width/Height.
func (g GrayBuffer) Set(x, y int, v uint8) {
	g.Pix[y*g.Width+x] = v
}

// Mask is a GrayBuffer whose values are restricted to {0, 255}. The
// restriction is a contract enforced by every producer (threshold, combine,
// morphology), not by this type itself.
type Mask struct {
	GrayBuffer
}

// NewMask allocates a zeroed mask (all pixels 0, i.e. black) of the given
// dimensions.
func NewMask(width, height int) (Mask, error) {
	gb, err := NewGrayBuffer(width, height)
	if err != nil {
		return Mask{}, err
	}
	return Mask{GrayBuffer: gb}, nil
}
