package filter

import (
	"errors"
	"math"
)

// Kernel size limits.
const (
	MinKernelSize = 3
	MaxKernelSize = 25
)

// Gaussian parameter limits.
const (
	MinSigma        = 0.5
	MaxSigma        = 5.0
	MinGaussianSize = 3
	MaxGaussianSize = 21
)

// maxGaussianWeight caps the center weight of a discrete Gaussian kernel.
const maxGaussianWeight = math.MaxUint16

// ErrInvalidKernelSize is returned for kernels that are not square, not odd,
// or outside [MinKernelSize, MaxKernelSize].
var ErrInvalidKernelSize = errors.New("filter: invalid kernel size")

// Kernel is a square matrix of integer weights stored row-major.
type Kernel struct {
	Size    int
	Weights []int
}

// NewKernel validates rows and copies them into a Kernel.
func NewKernel(rows [][]int) (Kernel, error) {
	size := len(rows)
	if size < MinKernelSize || size > MaxKernelSize || size%2 == 0 {
		return Kernel{}, ErrInvalidKernelSize
	}

	weights := make([]int, 0, size*size)
	for _, row := range rows {
		if len(row) != size {
			return Kernel{}, ErrInvalidKernelSize
		}
		weights = append(weights, row...)
	}

	return Kernel{Size: size, Weights: weights}, nil
}

// At returns the weight at row i, column j.
func (k Kernel) At(i, j int) int {
	return k.Weights[i*k.Size+j]
}

// Radius returns the distance from the center cell to the kernel edge.
func (k Kernel) Radius() int {
	return k.Size / 2
}

// Sum returns the sum of all weights.
func (k Kernel) Sum() int {
	sum := 0
	for _, w := range k.Weights {
		sum += w
	}
	return sum
}

// Rows returns a copy of the kernel as a slice of rows.
func (k Kernel) Rows() [][]int {
	rows := make([][]int, k.Size)
	for i := range rows {
		rows[i] = append([]int(nil), k.Weights[i*k.Size:(i+1)*k.Size]...)
	}
	return rows
}

// BoxKernel returns a size x size kernel of ones. size is not validated.
func BoxKernel(size int) Kernel {
	weights := make([]int, size*size)
	for i := range weights {
		weights[i] = 1
	}
	return Kernel{Size: size, Weights: weights}
}

// ClampSigma limits sigma to [MinSigma, MaxSigma].
func ClampSigma(sigma float64) float64 {
	if math.IsNaN(sigma) {
		return MinSigma
	}
	return math.Max(MinSigma, math.Min(MaxSigma, sigma))
}

// ClampGaussianSize forces size odd and limits it to
// [MinGaussianSize, MaxGaussianSize].
func ClampGaussianSize(size int) int {
	return max(MinGaussianSize, min(MaxGaussianSize, size|1))
}

// gaussian2D is the normalized 2D Gaussian density at (x, y).
func gaussian2D(x, y, sigma float64) float64 {
	sqrSigma := sigma * sigma
	return math.Exp((x*x+y*y)/(-2*sqrSigma)) / (2 * math.Pi * sqrSigma)
}

// GaussianKernel generates a discrete 2D Gaussian kernel.
//
// Density samples are scaled relative to the corner sample, the smallest
// one. Scale factors k/corner for k = 1..5 are tried, each capped so the
// center stays within 65535, and the one leaving the smallest squared
// fractional remainder over all cells wins. Weights are then truncated, so
// a corner computed as 0.999... counts as 0 and its remainder as ~1.
//
// sigma and size are clamped with ClampSigma and ClampGaussianSize.
func GaussianKernel(sigma float64, size int) Kernel {
	sigma = ClampSigma(sigma)
	size = ClampGaussianSize(size)

	r := size / 2
	samples := make([]float64, size*size)
	for i := range size {
		for j := range size {
			samples[i*size+j] = gaussian2D(float64(j-r), float64(i-r), sigma)
		}
	}

	minVal := samples[0]
	maxVal := samples[r*size+r]

	factor := minVal
	minError := math.MaxFloat64
	for k := 1; k <= 5; k++ {
		f := float64(k) / minVal
		if maxVal*f > maxGaussianWeight {
			f = maxGaussianWeight / maxVal
		}

		e := 0.0
		for _, s := range samples {
			v := s * f
			frac := v - float64(int(v))
			e += frac * frac
		}
		if e < minError {
			minError = e
			factor = f
		}
	}

	weights := make([]int, len(samples))
	for i, s := range samples {
		weights[i] = int(s * factor)
	}
	return Kernel{Size: size, Weights: weights}
}
