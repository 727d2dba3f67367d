package convolve

import (
	stdimage "image"
	"io"

	"github.com/gogpu/convolve/internal/filter"
	"github.com/gogpu/convolve/internal/image"
)

// Image is a stride-addressed pixel buffer. See NewImage and LoadImage.
type Image = image.ImageBuf

// Format is a pixel storage format.
type Format = image.Format

// Pixel formats accepted by every filter.
const (
	FormatGray8  = image.FormatGray8
	FormatGray16 = image.FormatGray16
	FormatRGB8   = image.FormatRGB8
	FormatRGBA8  = image.FormatRGBA8
	FormatBGRA8  = image.FormatBGRA8
	FormatRGB16  = image.FormatRGB16
	FormatRGBA16 = image.FormatRGBA16
)

// Region is a processing rectangle in pixels. It is clipped to the image
// before use; an empty clip is a no-op.
type Region = filter.Region

// FullRegion returns the region covering a whole width x height image.
func FullRegion(width, height int) Region {
	return filter.Full(width, height)
}

// NewImage allocates a zeroed image with tightly packed rows.
func NewImage(width, height int, format Format) (*Image, error) {
	return image.NewImageBuf(width, height, format)
}

// NewImageWithStride allocates a zeroed image whose rows are stride bytes
// apart. stride must be at least width * bytes per pixel.
func NewImageWithStride(width, height int, format Format, stride int) (*Image, error) {
	return image.NewImageBufWithStride(width, height, format, stride)
}

// ImageFromRaw wraps existing pixel memory without copying.
func ImageFromRaw(data []byte, width, height int, format Format, stride int) (*Image, error) {
	return image.FromRaw(data, width, height, format, stride)
}

// ImageFromStd copies a standard library image. Gray and 16-bit images keep
// their depth; everything else becomes FormatRGBA8. An image with no pixels
// is an error.
func ImageFromStd(img stdimage.Image) (*Image, error) {
	return image.FromStdImage(img)
}

// LoadImage reads a PNG, JPEG, BMP, TIFF or WebP file.
func LoadImage(path string) (*Image, error) {
	return image.Load(path)
}

// DecodeImage decodes a PNG, JPEG, BMP, TIFF or WebP stream.
func DecodeImage(r io.Reader) (*Image, error) {
	return image.Decode(r)
}
