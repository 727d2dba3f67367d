package convolve

import (
	"fmt"

	"github.com/gogpu/convolve/internal/image"
)

// Filter is implemented by every filter in this package.
type Filter interface {
	// Apply filters the whole of src into a new image of the same size
	// and format.
	Apply(src *Image) (*Image, error)

	// ApplyTo filters region r of src into the same region of dst.
	// src and dst must share size and format and must not overlap.
	// Pixels of dst outside r are left untouched.
	ApplyTo(src, dst *Image, r Region) error

	// ApplyInPlace filters the whole image in place.
	ApplyInPlace(img *Image) error

	// ApplyInPlaceRegion filters region r of img in place.
	ApplyInPlaceRegion(img *Image, r Region) error
}

// engine runs a configured kernel over region r of src into dst. The region
// is already clipped and non-empty, and the buffers are validated.
type engine func(src, dst *image.ImageBuf, r Region)

// snapshots supplies scratch copies for in-place filtering.
var snapshots = image.Default()

func apply(name string, size int, run engine, src *Image) (*Image, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if !src.Format().IsValid() {
		return nil, ErrUnsupportedFormat
	}

	dst, err := image.NewImageBuf(src.Width(), src.Height(), src.Format())
	if err != nil {
		return nil, fmt.Errorf("convolve: allocate destination: %w", err)
	}

	r := FullRegion(src.Width(), src.Height())
	logApply(name, "copy", size, src.Format(), r)
	run(src, dst, r)
	return dst, nil
}

func applyTo(name string, size int, run engine, src, dst *Image, r Region) error {
	if src == nil || dst == nil {
		return ErrNilImage
	}
	if err := checkPair(src, dst); err != nil {
		Logger().Warn("convolve: filter rejected",
			"filter", name,
			"error", err)
		return err
	}

	r = r.Clip(src.Width(), src.Height())
	if r.Empty() {
		return nil
	}

	logApply(name, "to", size, src.Format(), r)
	run(src, dst, r)
	return nil
}

func applyInPlace(name string, size int, run engine, img *Image, r Region) error {
	if img == nil {
		return ErrNilImage
	}
	if !img.Format().IsValid() {
		return ErrUnsupportedFormat
	}

	r = r.Clip(img.Width(), img.Height())
	if r.Empty() {
		return nil
	}

	snap, err := snapshots.Snapshot(img)
	if err != nil {
		return fmt.Errorf("convolve: snapshot image: %w", err)
	}
	defer snapshots.Put(snap)

	logApply(name, "in-place", size, img.Format(), r)
	run(snap, img, r)
	return nil
}

// checkPair validates a source/destination pair before any pixel is touched.
func checkPair(src, dst *Image) error {
	if !src.Format().IsValid() {
		return ErrUnsupportedFormat
	}
	if src.Format() != dst.Format() {
		return fmt.Errorf("%w: %s vs %s", ErrFormatMismatch, src.Format(), dst.Format())
	}
	if src.Width() != dst.Width() || src.Height() != dst.Height() {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch,
			src.Width(), src.Height(), dst.Width(), dst.Height())
	}
	if src.Overlaps(dst) {
		return ErrSameBuffer
	}
	return nil
}

func logApply(name, mode string, size int, f Format, r Region) {
	Logger().Debug("convolve: apply",
		"filter", name,
		"mode", mode,
		"kernel", size,
		"format", f.String(),
		"x", r.X, "y", r.Y, "w", r.Width, "h", r.Height)
}
