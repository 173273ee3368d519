// Package filters implements the pixel-level stages of the detection
// pipeline: grayscale extraction, Gaussian blur, Sobel gradient magnitude,
// adaptive mean thresholding, and morphological dilate/erode.
//
// Every function here is pure: it reads one or more input buffers and
// returns a freshly allocated output buffer of identical dimensions. None
// of them retain references to their inputs or mutate them. Unless a
// function's doc comment says otherwise, out-of-bounds sampling uses
// clamp-to-edge (the nearest in-bounds pixel is replicated).
package filters
