package image

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP with image.Decode
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// Codec identifies an encoded file format.
type Codec string

// Supported codecs.
const (
	CodecPNG  Codec = "png"
	CodecJPEG Codec = "jpeg"
	CodecBMP  Codec = "bmp"
	CodecTIFF Codec = "tiff"
)

// CodecFromPath picks a codec from the file extension.
func CodecFromPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return CodecPNG, nil
	case ".jpg", ".jpeg":
		return CodecJPEG, nil
	case ".bmp":
		return CodecBMP, nil
	case ".tif", ".tiff":
		return CodecTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load loads an image from the given file path. The format is detected from
// the content, so PNG, JPEG, BMP, TIFF and WebP files load regardless of
// extension. WebP is decode-only.
func Load(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// Save writes the image to path using the codec implied by its extension.
// quality applies to JPEG only.
func (b *ImageBuf) Save(path string, quality int) error {
	codec, err := CodecFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.Encode(f, codec, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes the image to w with the given codec.
func (b *ImageBuf) Encode(w io.Writer, codec Codec, quality int) error {
	img := b.ToStdImage()

	var err error
	switch codec {
	case CodecPNG:
		err = png.Encode(w, img)
	case CodecJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: max(1, min(quality, 100))})
	case CodecBMP:
		err = bmp.Encode(w, img)
	case CodecTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, codec)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", codec, err)
	}
	return nil
}

// EncodeToBytes encodes the image with the given codec and returns the bytes.
func (b *ImageBuf) EncodeToBytes(codec Codec, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Encode(&buf, codec, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromStdImage creates an ImageBuf from a standard library image.Image.
//
// Gray images map to FormatGray8, 16-bit gray to FormatGray16, 16-bit color
// to FormatRGBA16. Everything else is converted to FormatRGBA8.
// Empty images are rejected with ErrInvalidDimensions.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	switch src := img.(type) {
	case *image.Gray:
		buf, err := NewImageBuf(width, height, FormatGray8)
		if err != nil {
			return nil, err
		}
		for y := range height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), src.Pix[start:start+width])
		}
		return buf, nil

	case *image.Gray16:
		buf, err := NewImageBuf(width, height, FormatGray16)
		if err != nil {
			return nil, err
		}
		for y := range height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := buf.RowBytes(y)
			for x := range width {
				// Gray16 in the image package is big-endian
				v := binary.BigEndian.Uint16(src.Pix[start+x*2:])
				binary.LittleEndian.PutUint16(row[x*2:], v)
			}
		}
		return buf, nil

	case *image.NRGBA64, *image.RGBA64:
		buf, err := NewImageBuf(width, height, FormatRGBA16)
		if err != nil {
			return nil, err
		}
		for y := range height {
			row := buf.RowBytes(y)
			for x := range width {
				c := color.NRGBA64Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA64)
				off := x * 8
				binary.LittleEndian.PutUint16(row[off:], c.R)
				binary.LittleEndian.PutUint16(row[off+2:], c.G)
				binary.LittleEndian.PutUint16(row[off+4:], c.B)
				binary.LittleEndian.PutUint16(row[off+6:], c.A)
			}
		}
		return buf, nil

	case *image.NRGBA:
		buf, err := NewImageBuf(width, height, FormatRGBA8)
		if err != nil {
			return nil, err
		}
		for y := range height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), src.Pix[start:start+width*4])
		}
		return buf, nil
	}

	// Paletted, YCbCr, CMYK, premultiplied RGBA and anything else.
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Copy(nrgba, image.Point{}, img, bounds, xdraw.Src, nil)
	return FromRaw(nrgba.Pix, width, height, FormatRGBA8, nrgba.Stride)
}

// ToStdImage converts the ImageBuf to a standard library image.Image.
// Returns *image.Gray, *image.Gray16, *image.NRGBA or *image.NRGBA64.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)
	info := b.format.Info()

	switch b.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray

	case FormatGray16:
		gray16 := image.NewGray16(rect)
		for y := range b.height {
			row := b.RowBytes(y)
			dstStart := y * gray16.Stride
			for x := range b.width {
				v := binary.LittleEndian.Uint16(row[x*2:])
				binary.BigEndian.PutUint16(gray16.Pix[dstStart+x*2:], v)
			}
		}
		return gray16

	case FormatRGB16, FormatRGBA16:
		nrgba64 := image.NewNRGBA64(rect)
		for y := range b.height {
			for x := range b.width {
				a := 0xFFFF
				if info.HasAlpha {
					a = b.Channel(x, y, info.Alpha)
				}
				nrgba64.SetNRGBA64(x, y, color.NRGBA64{
					R: uint16(b.Channel(x, y, info.Red)),
					G: uint16(b.Channel(x, y, info.Green)),
					B: uint16(b.Channel(x, y, info.Blue)),
					A: uint16(a),
				})
			}
		}
		return nrgba64

	case FormatRGBA8:
		nrgba := image.NewNRGBA(rect)
		for y := range b.height {
			copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
		}
		return nrgba

	default:
		// RGB8 and BGRA8 go through the channel table.
		nrgba := image.NewNRGBA(rect)
		for y := range b.height {
			for x := range b.width {
				r, g, bl, a := b.GetRGBA(x, y)
				off := y*nrgba.Stride + x*4
				nrgba.Pix[off] = r
				nrgba.Pix[off+1] = g
				nrgba.Pix[off+2] = bl
				nrgba.Pix[off+3] = a
			}
		}
		return nrgba
	}
}

// Convert returns a copy of b in the target format. Conversions between bit
// depths go through 8-bit RGBA and lose the low byte of 16-bit samples.
func (b *ImageBuf) Convert(target Format) (*ImageBuf, error) {
	if target == b.format {
		return b.Clone(), nil
	}
	dst, err := NewImageBuf(b.width, b.height, target)
	if err != nil {
		return nil, err
	}
	for y := range b.height {
		for x := range b.width {
			r, g, bl, a := b.GetRGBA(x, y)
			_ = dst.SetRGBA(x, y, r, g, bl, a)
		}
	}
	return dst, nil
}
