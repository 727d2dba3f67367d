package convolve

import (
	"github.com/gogpu/convolve/internal/filter"
)

// SharpenEx sharpens with an unsharp-mask kernel derived from a Gaussian.
//
// With G the Gaussian kernel and S its sum, the center weight becomes
// 2*S - G[c][c], every other weight is negated, and the divisor is S.
// Border pixels use the dynamic divisor.
type SharpenEx struct {
	sigma  float64
	size   int
	filter *Convolution
}

var _ Filter = (*SharpenEx)(nil)

// NewSharpenEx creates a Gaussian sharpen filter. Out of range parameters
// are clamped as in GaussianKernel.
func NewSharpenEx(sigma float64, size int) *SharpenEx {
	s := &SharpenEx{
		sigma: filter.ClampSigma(sigma),
		size:  filter.ClampGaussianSize(size),
	}
	s.rebuild()
	return s
}

// DefaultSharpenEx creates a Gaussian sharpen filter with sigma 1.4 and size 5.
func DefaultSharpenEx() *SharpenEx {
	return NewSharpenEx(DefaultSigma, DefaultSize)
}

// Sigma returns the Gaussian standard deviation.
func (s *SharpenEx) Sigma() float64 {
	return s.sigma
}

// SetSigma sets the standard deviation, clamped to [0.5, 5].
func (s *SharpenEx) SetSigma(sigma float64) {
	s.sigma = filter.ClampSigma(sigma)
	s.rebuild()
}

// Size returns the kernel side length.
func (s *SharpenEx) Size() int {
	return s.size
}

// SetSize sets the kernel side length, made odd and clamped to [3, 21].
func (s *SharpenEx) SetSize(size int) {
	s.size = filter.ClampGaussianSize(size)
	s.rebuild()
}

// Kernel returns a copy of the current sharpening kernel.
func (s *SharpenEx) Kernel() [][]int {
	return s.filter.Kernel()
}

// Divisor returns the current divisor, the sum of the source Gaussian.
func (s *SharpenEx) Divisor() int {
	return s.filter.Divisor()
}

func (s *SharpenEx) rebuild() {
	k, divisor := sharpenKernel(filter.GaussianKernel(s.sigma, s.size))
	spec, err := newKernelSpec(k, WithDivisor(divisor))
	if err != nil {
		panic("convolve: invalid sharpen-ex kernel: " + err.Error())
	}
	s.filter = &Convolution{name: "sharpen-ex", spec: spec}

	Logger().Debug("convolve: gaussian kernel",
		"filter", "sharpen-ex",
		"sigma", s.sigma,
		"size", s.size,
		"divisor", divisor)
}

// sharpenKernel turns a Gaussian into an unsharp-mask kernel and returns it
// with its divisor, the Gaussian sum.
func sharpenKernel(g filter.Kernel) (filter.Kernel, int) {
	sum := g.Sum()
	c := g.Radius()

	weights := make([]int, len(g.Weights))
	for i, w := range g.Weights {
		weights[i] = -w
	}
	weights[c*g.Size+c] = 2*sum - g.At(c, c)
	return filter.Kernel{Size: g.Size, Weights: weights}, sum
}

// Apply filters src into a new image.
func (s *SharpenEx) Apply(src *Image) (*Image, error) {
	return s.filter.Apply(src)
}

// ApplyTo filters region r of src into dst.
func (s *SharpenEx) ApplyTo(src, dst *Image, r Region) error {
	return s.filter.ApplyTo(src, dst, r)
}

// ApplyInPlace filters img in place.
func (s *SharpenEx) ApplyInPlace(img *Image) error {
	return s.filter.ApplyInPlace(img)
}

// ApplyInPlaceRegion filters region r of img in place.
func (s *SharpenEx) ApplyInPlaceRegion(img *Image, r Region) error {
	return s.filter.ApplyInPlaceRegion(img, r)
}
