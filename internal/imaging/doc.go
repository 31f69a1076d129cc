// Package imaging provides the pixel-level building blocks of the ball
// detection pipeline: image loading and downscaling, grayscale conversion,
// Gaussian smoothing, Sobel edge extraction, color space math, and overlay
// rendering of results.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward and Y increases downward. Loader output carries a
// Scale factor relating working-resolution coordinates to the original
// image; everything else in this package works in whichever space the
// caller's buffer is in.
//
// # Buffers
//
// The RGBA PixelBuffer produced by the loader is treated as immutable.
// Derived data (grayscale, blurred, edge maps) is returned as fresh
// single-channel byte slices of the same width × height, so stages can run
// over the same source without synchronization.
//
// # Color Representation
//
// Colors appear in two forms: 8-bit RGB for sampling and averaging, and
// HSV (H in degrees 0-360, S and V in percent 0-100) for classification.
// HSV is used for matching because it isolates brightness in V, which makes
// hue comparisons tolerant of uneven table lighting. Hue intervals may wrap
// past 360, e.g. a red range of [340, 10].
package imaging
