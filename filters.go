package convolve

import "github.com/gogpu/convolve/internal/filter"

// NewMean returns a 3x3 box filter. Each pixel becomes the average of its
// neighborhood.
func NewMean() *Convolution {
	return newFixedConvolution("mean", filter.BoxKernel(3).Rows())
}

// NewBlur returns a 5x5 blur with pyramid weights:
//
//	1 2 3 2 1
//	2 4 5 4 2
//	3 5 6 5 3
//	2 4 5 4 2
//	1 2 3 2 1
func NewBlur() *Convolution {
	return newFixedConvolution("blur", [][]int{
		{1, 2, 3, 2, 1},
		{2, 4, 5, 4, 2},
		{3, 5, 6, 5, 3},
		{2, 4, 5, 4, 2},
		{1, 2, 3, 2, 1},
	})
}

// NewSharpen returns a 3x3 sharpen filter:
//
//	 0 -1  0
//	-1  5 -1
//	 0 -1  0
func NewSharpen() *Convolution {
	return newFixedConvolution("sharpen", [][]int{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	})
}

// NewEdges returns a 3x3 Laplacian edge detector. The kernel sums to zero,
// so the divisor is 1 and raw differences pass through, clamped at zero.
//
//	 0 -1  0
//	-1  4 -1
//	 0 -1  0
func NewEdges() *Convolution {
	return newFixedConvolution("edges", [][]int{
		{0, -1, 0},
		{-1, 4, -1},
		{0, -1, 0},
	})
}
