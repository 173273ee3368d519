package detect

import "github.com/docbound/docbound-mcp/internal/raster"

// Options configures a single detect/DetectEnhanced run. The zero value is
// not valid on its own; construct via DefaultOptions and override fields, or
// call Validate before use.
type Options struct {
	MinAreaRatio  float64
	MaxAreaRatio  float64
	EdgeThreshold int
	BlurRadius    int
}

// DefaultOptions returns the recognized-field defaults.
func DefaultOptions() Options {
	return Options{
		MinAreaRatio:  0.02,
		MaxAreaRatio:  0.95,
		EdgeThreshold: 50,
		BlurRadius:    2,
	}
}

// Validate checks every field against its permitted range, returning a
// raster.InvalidInput error describing the first violation found.
func (o Options) Validate() error {
	if o.MinAreaRatio <= 0 || o.MinAreaRatio >= 1 {
		return raster.InvalidInputf("minAreaRatio must be in (0,1), got %v", o.MinAreaRatio)
	}
	if o.MaxAreaRatio <= 0 || o.MaxAreaRatio >= 1 {
		return raster.InvalidInputf("maxAreaRatio must be in (0,1), got %v", o.MaxAreaRatio)
	}
	if o.EdgeThreshold < 0 || o.EdgeThreshold > 255 {
		return raster.InvalidInputf("edgeThreshold must be in [0,255], got %v", o.EdgeThreshold)
	}
	if o.BlurRadius < 1 {
		return raster.InvalidInputf("blurRadius must be >= 1, got %v", o.BlurRadius)
	}
	return nil
}
