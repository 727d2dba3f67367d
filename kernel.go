package convolve

import (
	"fmt"

	"github.com/gogpu/convolve/internal/filter"
)

// Kernel size limits.
const (
	MinKernelSize = filter.MinKernelSize
	MaxKernelSize = filter.MaxKernelSize
)

// KernelSpec is a validated kernel together with its divisor and border
// policy. It is immutable; filters replace their spec to change it.
type KernelSpec struct {
	kernel  filter.Kernel
	divisor int
	dynamic bool
}

// NewKernelSpec validates rows and builds a KernelSpec.
//
// rows must form a square matrix with an odd side in [3, 25], otherwise
// ErrInvalidKernelSize is returned. Without WithDivisor the divisor is the
// sum of all weights, or 1 when that sum is zero.
func NewKernelSpec(rows [][]int, opts ...Option) (KernelSpec, error) {
	k, err := filter.NewKernel(rows)
	if err != nil {
		return KernelSpec{}, fmt.Errorf("%w: %s", ErrInvalidKernelSize, describeShape(rows))
	}
	return newKernelSpec(k, opts...)
}

// newKernelSpec applies options to an already validated kernel.
func newKernelSpec(k filter.Kernel, opts ...Option) (KernelSpec, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	divisor := o.divisor
	if !o.hasDivisor {
		divisor = k.Sum()
		if divisor == 0 {
			divisor = 1
		}
	} else if divisor == 0 {
		return KernelSpec{}, ErrInvalidDivisor
	}

	return KernelSpec{kernel: k, divisor: divisor, dynamic: o.dynamic}, nil
}

// Kernel returns a copy of the kernel weights.
func (s KernelSpec) Kernel() [][]int {
	return s.kernel.Rows()
}

// Size returns the kernel side length.
func (s KernelSpec) Size() int {
	return s.kernel.Size
}

// Divisor returns the normalization divisor. It is never zero for a spec
// built by NewKernelSpec.
func (s KernelSpec) Divisor() int {
	return s.divisor
}

// DynamicDivisorForEdges reports whether border pixels are normalized by the
// applied weights instead of the divisor.
func (s KernelSpec) DynamicDivisorForEdges() bool {
	return s.dynamic
}

// options returns the options that rebuild s around a different kernel.
func (s KernelSpec) options() []Option {
	return []Option{WithDivisor(s.divisor), WithDynamicDivisorForEdges(s.dynamic)}
}

func describeShape(rows [][]int) string {
	if len(rows) == 0 {
		return "empty kernel"
	}
	for _, row := range rows {
		if len(row) != len(rows) {
			return fmt.Sprintf("%d rows, row of %d columns", len(rows), len(row))
		}
	}
	return fmt.Sprintf("%dx%d", len(rows), len(rows))
}
