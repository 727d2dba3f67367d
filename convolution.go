package convolve

import (
	"github.com/gogpu/convolve/internal/filter"
	"github.com/gogpu/convolve/internal/image"
)

// Convolution applies an arbitrary kernel, optionally renormalizing pixels
// at the border of the processing region.
//
// A Convolution may be applied from several goroutines at once as long as
// it is not reconfigured meanwhile.
type Convolution struct {
	name string
	spec KernelSpec
}

var _ Filter = (*Convolution)(nil)

// NewConvolution creates a convolution filter. See NewKernelSpec for the
// validation rules and defaults.
func NewConvolution(rows [][]int, opts ...Option) (*Convolution, error) {
	spec, err := NewKernelSpec(rows, opts...)
	if err != nil {
		return nil, err
	}
	return &Convolution{name: "convolution", spec: spec}, nil
}

// NewConvolutionFromSpec creates a convolution filter from a validated spec.
func NewConvolutionFromSpec(spec KernelSpec) *Convolution {
	return &Convolution{name: "convolution", spec: spec}
}

// newFixedConvolution builds a named filter around a built-in kernel.
func newFixedConvolution(name string, rows [][]int) *Convolution {
	spec, err := NewKernelSpec(rows)
	if err != nil {
		panic("convolve: invalid built-in kernel " + name + ": " + err.Error())
	}
	return &Convolution{name: name, spec: spec}
}

// Spec returns the current kernel spec.
func (c *Convolution) Spec() KernelSpec {
	return c.spec
}

// Kernel returns a copy of the kernel weights.
func (c *Convolution) Kernel() [][]int {
	return c.spec.Kernel()
}

// SetKernel replaces the kernel. The divisor and border policy are kept.
func (c *Convolution) SetKernel(rows [][]int) error {
	spec, err := NewKernelSpec(rows, c.spec.options()...)
	if err != nil {
		return err
	}
	c.spec = spec
	return nil
}

// Divisor returns the normalization divisor.
func (c *Convolution) Divisor() int {
	return c.spec.divisor
}

// SetDivisor replaces the divisor. Zero is rejected with ErrInvalidDivisor.
func (c *Convolution) SetDivisor(divisor int) error {
	if divisor == 0 {
		return ErrInvalidDivisor
	}
	c.spec.divisor = divisor
	return nil
}

// DynamicDivisorForEdges reports whether border pixels are normalized by the
// weights actually applied. Defaults to true.
func (c *Convolution) DynamicDivisorForEdges() bool {
	return c.spec.dynamic
}

// SetDynamicDivisorForEdges sets the border normalization policy.
func (c *Convolution) SetDynamicDivisorForEdges(enabled bool) {
	c.spec.dynamic = enabled
}

func (c *Convolution) engine() engine {
	spec := c.spec
	return func(src, dst *image.ImageBuf, r Region) {
		filter.Convolve(src, dst, r, spec.kernel, spec.divisor, spec.dynamic)
	}
}

// Apply filters src into a new image.
func (c *Convolution) Apply(src *Image) (*Image, error) {
	return apply(c.name, c.spec.Size(), c.engine(), src)
}

// ApplyTo filters region r of src into dst.
func (c *Convolution) ApplyTo(src, dst *Image, r Region) error {
	return applyTo(c.name, c.spec.Size(), c.engine(), src, dst, r)
}

// ApplyInPlace filters img in place.
func (c *Convolution) ApplyInPlace(img *Image) error {
	return c.ApplyInPlaceRegion(img, fullRegionOf(img))
}

// ApplyInPlaceRegion filters region r of img in place.
func (c *Convolution) ApplyInPlaceRegion(img *Image, r Region) error {
	return applyInPlace(c.name, c.spec.Size(), c.engine(), img, r)
}

func fullRegionOf(img *Image) Region {
	if img == nil {
		return Region{}
	}
	return FullRegion(img.Width(), img.Height())
}
