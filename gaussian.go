package convolve

import (
	"github.com/gogpu/convolve/internal/filter"
)

// Gaussian parameter defaults and limits.
const (
	DefaultSigma = 1.4
	DefaultSize  = 5

	MinSigma        = filter.MinSigma
	MaxSigma        = filter.MaxSigma
	MinGaussianSize = filter.MinGaussianSize
	MaxGaussianSize = filter.MaxGaussianSize
)

// GaussianKernel returns the discrete Gaussian kernel used by GaussianBlur
// and SharpenEx. sigma is clamped to [0.5, 5]; size is made odd and clamped
// to [3, 21]. The result is deterministic.
func GaussianKernel(sigma float64, size int) [][]int {
	return filter.GaussianKernel(sigma, size).Rows()
}

// GaussianBlur blurs with a discrete Gaussian kernel through Correlation.
// The kernel is regenerated whenever Sigma or Size changes.
type GaussianBlur struct {
	sigma  float64
	size   int
	filter *Correlation
}

var _ Filter = (*GaussianBlur)(nil)

// NewGaussianBlur creates a Gaussian blur. Out of range parameters are
// clamped as in GaussianKernel.
func NewGaussianBlur(sigma float64, size int) *GaussianBlur {
	g := &GaussianBlur{
		sigma: filter.ClampSigma(sigma),
		size:  filter.ClampGaussianSize(size),
	}
	g.rebuild()
	return g
}

// DefaultGaussianBlur creates a Gaussian blur with sigma 1.4 and size 5.
func DefaultGaussianBlur() *GaussianBlur {
	return NewGaussianBlur(DefaultSigma, DefaultSize)
}

// Sigma returns the Gaussian standard deviation.
func (g *GaussianBlur) Sigma() float64 {
	return g.sigma
}

// SetSigma sets the standard deviation, clamped to [0.5, 5].
func (g *GaussianBlur) SetSigma(sigma float64) {
	g.sigma = filter.ClampSigma(sigma)
	g.rebuild()
}

// Size returns the kernel side length.
func (g *GaussianBlur) Size() int {
	return g.size
}

// SetSize sets the kernel side length, made odd and clamped to [3, 21].
func (g *GaussianBlur) SetSize(size int) {
	g.size = filter.ClampGaussianSize(size)
	g.rebuild()
}

// Kernel returns a copy of the current kernel.
func (g *GaussianBlur) Kernel() [][]int {
	return g.filter.Kernel()
}

// Divisor returns the current kernel sum.
func (g *GaussianBlur) Divisor() int {
	return g.filter.Divisor()
}

func (g *GaussianBlur) rebuild() {
	k := filter.GaussianKernel(g.sigma, g.size)
	g.filter = &Correlation{name: "gaussian-blur", kernel: k, divisor: k.Sum()}

	Logger().Debug("convolve: gaussian kernel",
		"filter", "gaussian-blur",
		"sigma", g.sigma,
		"size", g.size,
		"divisor", g.filter.divisor)
}

// Apply filters src into a new image.
func (g *GaussianBlur) Apply(src *Image) (*Image, error) {
	return g.filter.Apply(src)
}

// ApplyTo filters region r of src into dst.
func (g *GaussianBlur) ApplyTo(src, dst *Image, r Region) error {
	return g.filter.ApplyTo(src, dst, r)
}

// ApplyInPlace filters img in place.
func (g *GaussianBlur) ApplyInPlace(img *Image) error {
	return g.filter.ApplyInPlace(img)
}

// ApplyInPlaceRegion filters region r of img in place.
func (g *GaussianBlur) ApplyInPlaceRegion(img *Image, r Region) error {
	return g.filter.ApplyInPlaceRegion(img, r)
}
