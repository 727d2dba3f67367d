package convolve

// Option configures a KernelSpec during creation.
//
// Example:
//
//	// Divisor is the kernel sum, dynamic divisor at borders
//	spec, err := convolve.NewKernelSpec(rows)
//
//	// Explicit divisor, fixed divisor at borders
//	spec, err := convolve.NewKernelSpec(rows,
//	    convolve.WithDivisor(16),
//	    convolve.WithDynamicDivisorForEdges(false))
type Option func(*specOptions)

// specOptions holds optional configuration for KernelSpec creation.
type specOptions struct {
	divisor    int
	hasDivisor bool
	dynamic    bool
}

// defaultOptions returns the default kernel spec options.
func defaultOptions() specOptions {
	return specOptions{
		dynamic: true,
	}
}

// WithDivisor sets an explicit divisor. Zero is rejected with
// ErrInvalidDivisor when the KernelSpec is built.
func WithDivisor(divisor int) Option {
	return func(o *specOptions) {
		o.divisor = divisor
		o.hasDivisor = true
	}
}

// WithDynamicDivisorForEdges controls border normalization. When enabled
// (the default), a pixel whose kernel window is cut by the processing region
// is divided by the sum of the weights actually applied.
//
// Correlation ignores this option.
func WithDynamicDivisorForEdges(enabled bool) Option {
	return func(o *specOptions) {
		o.dynamic = enabled
	}
}
