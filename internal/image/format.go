// Package image provides the pixel buffers the convolution engine reads and writes.
//
// Buffers are flat byte slices addressed as base + row*stride, with one of a
// fixed set of pixel formats covering 8 and 16 bits per channel.
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatGray16 is 16-bit grayscale (2 bytes per pixel, little-endian).
	FormatGray16

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA (4 bytes per pixel).
	FormatRGBA8

	// FormatBGRA8 is 32-bit BGRA (4 bytes per pixel).
	// Common on Windows and some GPU formats.
	FormatBGRA8

	// FormatRGB16 is 48-bit RGB (three little-endian 16-bit words per pixel).
	FormatRGB16

	// FormatRGBA16 is 64-bit RGBA (four little-endian 16-bit words per pixel).
	FormatRGBA16

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of channels stored per pixel, alpha included.
	Channels int

	// BitsPerChannel is 8 or 16.
	BitsPerChannel int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool

	// Red, Green, Blue and Alpha are channel indexes within a pixel.
	// Gray formats store their single sample at index 0 for all three
	// color indexes. Alpha is -1 when the format has none.
	Red, Green, Blue, Alpha int
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BytesPerPixel:  1,
		Channels:       1,
		BitsPerChannel: 8,
		IsGrayscale:    true,
		Alpha:          -1,
	},
	FormatGray16: {
		BytesPerPixel:  2,
		Channels:       1,
		BitsPerChannel: 16,
		IsGrayscale:    true,
		Alpha:          -1,
	},
	FormatRGB8: {
		BytesPerPixel:  3,
		Channels:       3,
		BitsPerChannel: 8,
		Red:            0,
		Green:          1,
		Blue:           2,
		Alpha:          -1,
	},
	FormatRGBA8: {
		BytesPerPixel:  4,
		Channels:       4,
		BitsPerChannel: 8,
		HasAlpha:       true,
		Red:            0,
		Green:          1,
		Blue:           2,
		Alpha:          3,
	},
	FormatBGRA8: {
		BytesPerPixel:  4,
		Channels:       4,
		BitsPerChannel: 8,
		HasAlpha:       true,
		Red:            2,
		Green:          1,
		Blue:           0,
		Alpha:          3,
	},
	FormatRGB16: {
		BytesPerPixel:  6,
		Channels:       3,
		BitsPerChannel: 16,
		Red:            0,
		Green:          1,
		Blue:           2,
		Alpha:          -1,
	},
	FormatRGBA16: {
		BytesPerPixel:  8,
		Channels:       4,
		BitsPerChannel: 16,
		HasAlpha:       true,
		Red:            0,
		Green:          1,
		Blue:           2,
		Alpha:          3,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of stored channels, alpha included.
func (f Format) Channels() int {
	return f.Info().Channels
}

// ColorChannels returns the number of channels a neighborhood filter
// processes: 1 for grayscale, 3 for the RGB family.
func (f Format) ColorChannels() int {
	if f.IsGrayscale() {
		return 1
	}
	if !f.IsValid() {
		return 0
	}
	return 3
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// BitsPerChannel returns the number of bits per channel.
func (f Format) BitsPerChannel() int {
	return f.Info().BitsPerChannel
}

// BytesPerChannel returns 1 for 8-bit formats and 2 for 16-bit formats.
func (f Format) BytesPerChannel() int {
	return f.BitsPerChannel() / 8
}

// MaxValue returns the largest channel value: 255 or 65535.
func (f Format) MaxValue() int {
	if f.BitsPerChannel() == 16 {
		return 0xFFFF
	}
	return 0xFF
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGray16:
		return "Gray16"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	case FormatRGB16:
		return "RGB16"
	case FormatRGBA16:
		return "RGBA16"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}
