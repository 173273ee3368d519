// Package detect orchestrates the full boundary-detection pipeline:
// grayscale, blur, Sobel, threshold, morphology, contour tracing, polygon
// approximation, and classification, plus a multi-strategy runner that
// retries the pipeline under a fixed set of option overrides.
package detect
