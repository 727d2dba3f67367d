package convolve

import (
	"github.com/gogpu/convolve/internal/filter"
	"github.com/gogpu/convolve/internal/image"
)

// Correlation applies an arbitrary kernel and divides every pixel by the
// same divisor, border pixels included. It suits kernels that are already
// normalized, such as Gaussians, where a border pixel should darken instead
// of being rescaled.
type Correlation struct {
	name    string
	kernel  filter.Kernel
	divisor int
}

var _ Filter = (*Correlation)(nil)

// NewCorrelation creates a correlation filter. WithDivisor is honored;
// WithDynamicDivisorForEdges is ignored.
func NewCorrelation(rows [][]int, opts ...Option) (*Correlation, error) {
	spec, err := NewKernelSpec(rows, opts...)
	if err != nil {
		return nil, err
	}
	return &Correlation{name: "correlation", kernel: spec.kernel, divisor: spec.divisor}, nil
}

// Kernel returns a copy of the kernel weights.
func (c *Correlation) Kernel() [][]int {
	return c.kernel.Rows()
}

// Divisor returns the divisor used for every pixel.
func (c *Correlation) Divisor() int {
	return c.divisor
}

func (c *Correlation) engine() engine {
	k, divisor := c.kernel, c.divisor
	return func(src, dst *image.ImageBuf, r Region) {
		filter.Correlate(src, dst, r, k, divisor)
	}
}

// Apply filters src into a new image.
func (c *Correlation) Apply(src *Image) (*Image, error) {
	return apply(c.name, c.kernel.Size, c.engine(), src)
}

// ApplyTo filters region r of src into dst.
func (c *Correlation) ApplyTo(src, dst *Image, r Region) error {
	return applyTo(c.name, c.kernel.Size, c.engine(), src, dst, r)
}

// ApplyInPlace filters img in place.
func (c *Correlation) ApplyInPlace(img *Image) error {
	return c.ApplyInPlaceRegion(img, fullRegionOf(img))
}

// ApplyInPlaceRegion filters region r of img in place.
func (c *Correlation) ApplyInPlaceRegion(img *Image, r Region) error {
	return applyInPlace(c.name, c.kernel.Size, c.engine(), img, r)
}
