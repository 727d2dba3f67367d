package image

import (
	"encoding/binary"
	"errors"
	"unsafe"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrShapeMismatch is returned when two buffers differ in size or format.
	ErrShapeMismatch = errors.New("image: buffer shape mismatch")
)

// ImageBuf is a stride-addressed pixel buffer.
//
// Pixel (x, y) starts at byte y*Stride() + x*BytesPerPixel(). Rows may carry
// trailing padding; it is never read or written by buffer operations.
// 16-bit channels are stored as little-endian words.
//
// ImageBuf is safe for concurrent reads. Writes require external
// synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf creates a new image buffer with the given dimensions and format.
// Returns an error if dimensions are invalid or format is unknown.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return NewImageBufWithStride(width, height, format, format.RowBytes(width))
}

// NewImageBufWithStride creates a new image buffer with custom stride for alignment.
// Stride must be at least format.RowBytes(width).
func NewImageBufWithStride(width, height int, format Format, stride int) (*ImageBuf, error) {
	if err := validate(width, height, format, stride); err != nil {
		return nil, err
	}

	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw creates an ImageBuf from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the ImageBuf.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*ImageBuf, error) {
	if err := validate(width, height, format, stride); err != nil {
		return nil, err
	}

	requiredSize := stride * height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &ImageBuf{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

func validate(width, height int, format Format, stride int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return ErrInvalidStride
	}
	return nil
}

// Clone creates a deep copy of the image buffer, stride included.
func (b *ImageBuf) Clone() *ImageBuf {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &ImageBuf{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}

// CopyFrom copies the pixels of src into b row by row.
// The buffers must have equal dimensions and format; strides may differ.
func (b *ImageBuf) CopyFrom(src *ImageBuf) error {
	if !b.SameShape(src) {
		return ErrShapeMismatch
	}
	if b.stride == src.stride {
		copy(b.data, src.data)
		return nil
	}
	for y := range b.height {
		copy(b.RowBytes(y), src.RowBytes(y))
	}
	return nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// SameShape reports whether o has the same width, height and format as b.
func (b *ImageBuf) SameShape(o *ImageBuf) bool {
	return o != nil && b.width == o.width && b.height == o.height && b.format == o.format
}

// Overlaps reports whether b and o share any byte of backing memory.
func (b *ImageBuf) Overlaps(o *ImageBuf) bool {
	if o == nil || len(b.data) == 0 || len(o.data) == 0 {
		return false
	}
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
	o0 := uintptr(unsafe.Pointer(unsafe.SliceData(o.data)))
	return b0 < o0+uintptr(len(o.data)) && o0 < b0+uintptr(len(b.data))
}

// RowBytes returns a slice of the pixel data for row y, padding excluded.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	end := start + b.format.RowBytes(b.width)
	return b.data[start:end]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (b *ImageBuf) PixelBytes(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	bpp := b.format.BytesPerPixel()
	return b.data[offset : offset+bpp]
}

// SetPixelBytes sets the raw bytes for pixel (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *ImageBuf) SetPixelBytes(x, y int, pixel []byte) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	bpp := b.format.BytesPerPixel()
	copy(b.data[offset:offset+bpp], pixel)
	return nil
}

// channelOffset returns the byte offset of channel c of pixel (x, y), or -1.
func (b *ImageBuf) channelOffset(x, y, c int) int {
	if c < 0 || c >= b.format.Channels() {
		return -1
	}
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return -1
	}
	return offset + c*b.format.BytesPerChannel()
}

// Channel returns the raw value of channel c at (x, y) in the format's own
// range (0-255 or 0-65535). Returns 0 if out of bounds.
func (b *ImageBuf) Channel(x, y, c int) int {
	offset := b.channelOffset(x, y, c)
	if offset < 0 {
		return 0
	}
	if b.format.BytesPerChannel() == 2 {
		return int(binary.LittleEndian.Uint16(b.data[offset:]))
	}
	return int(b.data[offset])
}

// SetChannel stores v into channel c at (x, y), clamped to the format range.
func (b *ImageBuf) SetChannel(x, y, c, v int) error {
	offset := b.channelOffset(x, y, c)
	if offset < 0 {
		return ErrOutOfBounds
	}
	v = max(0, min(v, b.format.MaxValue()))
	if b.format.BytesPerChannel() == 2 {
		binary.LittleEndian.PutUint16(b.data[offset:], uint16(v))
	} else {
		b.data[offset] = byte(v)
	}
	return nil
}

// GetRGBA returns the color at (x, y) as (r, g, b, a) in 0-255 range.
// For grayscale formats, r=g=b=gray and a=255.
// For formats without alpha, a=255. 16-bit channels are reduced to
// their high byte. Returns (0,0,0,0) if coordinates are out of bounds.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	if b.PixelOffset(x, y) < 0 {
		return 0, 0, 0, 0
	}
	info := b.format.Info()
	shift := uint(info.BitsPerChannel - 8)

	r = uint8(b.Channel(x, y, info.Red) >> shift)
	g = uint8(b.Channel(x, y, info.Green) >> shift)
	bl = uint8(b.Channel(x, y, info.Blue) >> shift)
	a = 255
	if info.HasAlpha {
		a = uint8(b.Channel(x, y, info.Alpha) >> shift)
	}
	return r, g, bl, a
}

// SetRGBA sets the color at (x, y) from (r, g, b, a) in 0-255 range.
// For grayscale formats, uses standard luminance weights.
// 16-bit formats replicate each byte into both halves of the word.
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	if b.PixelOffset(x, y) < 0 {
		return ErrOutOfBounds
	}
	info := b.format.Info()
	widen := func(v uint8) int {
		if info.BitsPerChannel == 16 {
			return int(v) * 0x101
		}
		return int(v)
	}

	if info.IsGrayscale {
		// Standard luminance: 0.299*R + 0.587*G + 0.114*B
		gray := (int(r)*299 + int(g)*587 + int(bl)*114) / 1000
		return b.SetChannel(x, y, 0, widen(uint8(gray)))
	}

	_ = b.SetChannel(x, y, info.Red, widen(r))
	_ = b.SetChannel(x, y, info.Green, widen(g))
	_ = b.SetChannel(x, y, info.Blue, widen(bl))
	if info.HasAlpha {
		_ = b.SetChannel(x, y, info.Alpha, widen(a))
	}
	return nil
}

// Clear sets all pixels to zero.
func (b *ImageBuf) Clear() {
	clear(b.data)
}

// Fill sets every color channel of every pixel to v and alpha, if present,
// to the format maximum. v is clamped to the format range.
func (b *ImageBuf) Fill(v int) {
	info := b.format.Info()
	for y := range b.height {
		for x := range b.width {
			for c := range info.Channels {
				if c == info.Alpha {
					_ = b.SetChannel(x, y, c, b.format.MaxValue())
					continue
				}
				_ = b.SetChannel(x, y, c, v)
			}
		}
	}
}

// ByteSize returns the total size of the image data in bytes.
func (b *ImageBuf) ByteSize() int {
	return len(b.data)
}
