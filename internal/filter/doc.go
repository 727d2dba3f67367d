// Package filter implements integer kernel convolution over image buffers.
//
// Convolve and Correlate share one per-pixel loop, instantiated once for
// 8-bit and once for 16-bit channels:
//   - Convolve optionally renormalizes border pixels by the applied weights
//   - Correlate always divides by the configured divisor
//
// Kernels are square and odd-sized. GaussianKernel produces the integer
// kernels used by the Gaussian blur and sharpen filters.
//
// Neither function allocates. Callers own both buffers and must not pass
// overlapping ones.
package filter
