package convolve

import (
	"errors"

	"github.com/gogpu/convolve/internal/image"
)

// Configuration errors, returned when a kernel or divisor is set.
var (
	// ErrInvalidKernelSize is returned for kernels that are not square,
	// have an even side, or a side outside [3, 25].
	ErrInvalidKernelSize = errors.New("convolve: invalid kernel size")

	// ErrInvalidDivisor is returned when an explicit divisor of zero is set.
	ErrInvalidDivisor = errors.New("convolve: divisor can not be zero")
)

// Precondition errors, returned before any pixel is touched.
var (
	// ErrNilImage is returned when a source or destination image is nil.
	ErrNilImage = errors.New("convolve: nil image")

	// ErrFormatMismatch is returned when source and destination formats differ.
	ErrFormatMismatch = errors.New("convolve: source and destination formats differ")

	// ErrSizeMismatch is returned when source and destination sizes differ.
	ErrSizeMismatch = errors.New("convolve: source and destination sizes differ")

	// ErrSameBuffer is returned when source and destination share memory.
	ErrSameBuffer = errors.New("convolve: source and destination overlap")

	// ErrUnsupportedFormat is returned for images with an unknown pixel format.
	ErrUnsupportedFormat = errors.New("convolve: unsupported pixel format")
)

// I/O errors re-exported from the image layer.
var (
	// ErrUnsupportedCodec is returned when saving to a file format other
	// than PNG, JPEG, BMP and TIFF.
	ErrUnsupportedCodec = image.ErrUnsupportedFormat
)
