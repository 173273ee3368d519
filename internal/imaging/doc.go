// Package imaging is the boundary between the core detection pipeline and
// real image files: loading/decoding, converting a decoded image.Image into
// the raster.Raster the pipeline consumes, rendering detected boundaries
// back onto the source image for visual inspection, a diagnostic contact
// sheet of the pipeline's intermediate buffers, and extracting a detected
// boundary's region into its own cropped image.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based, X rightward, Y
// downward, matching image.Image and internal/raster.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Rendering and conversion functions
// are stateless.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as file I/O failures,
// unsupported formats, and encoding errors during output.
package imaging
