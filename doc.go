// Package convolve applies integer kernel filters to raster images.
//
// # Overview
//
// A filter computes, for every pixel of a processing region, the weighted
// sum of the pixel and its neighbors under a square kernel, divides it by a
// divisor and clamps the result to the channel range. Gray and RGB images
// with 8 or 16 bits per channel are supported; alpha is carried through
// unchanged.
//
// # Quick Start
//
//	img, err := convolve.LoadImage("photo.png")
//	if err != nil {
//		return err
//	}
//
//	blur := convolve.NewGaussianBlur(2.0, 7)
//	if err := blur.ApplyInPlace(img); err != nil {
//		return err
//	}
//
// # Filters
//
//   - Convolution: any kernel, optional dynamic divisor at region borders
//   - Correlation: any kernel, fixed divisor everywhere
//   - Mean, Blur, Sharpen, Edges: fixed kernels on top of Convolution
//   - GaussianBlur: Gaussian kernel on top of Correlation
//   - SharpenEx: unsharp kernel derived from a Gaussian, on top of Convolution
//
// # Borders
//
// Kernel cells that fall outside the processing region are skipped, so a
// sub-region is filtered exactly as if it were a whole image. With dynamic
// divisors enabled a border pixel is normalized by the weights that were
// actually applied.
//
// # In-place processing
//
// Neighbor reads must not observe freshly written pixels, so ApplyInPlace
// filters from a pooled snapshot of the image into the image itself.
// ApplyTo rejects overlapping source and destination buffers.
package convolve
