package filter

import (
	"encoding/binary"

	"github.com/gogpu/convolve/internal/image"
)

// Region is a rectangle of pixels. X+Width and Y+Height are exclusive.
type Region struct {
	X, Y, Width, Height int
}

// Full returns the region covering a width x height image.
func Full(width, height int) Region {
	return Region{Width: width, Height: height}
}

// Empty reports whether the region contains no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Clip intersects r with [0, width) x [0, height).
func (r Region) Clip(width, height int) Region {
	minX := clampInt(r.X, 0, width)
	minY := clampInt(r.Y, 0, height)
	maxX := clampInt(r.X+r.Width, 0, width)
	maxY := clampInt(r.Y+r.Height, 0, height)

	if minX >= maxX || minY >= maxY {
		return Region{X: minX, Y: minY}
	}
	return Region{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Convolve writes the kernel-weighted sum of src into dst for every pixel of r.
//
// Kernel cells whose sample falls outside r are skipped. A pixel whose window
// was truncated this way is normalized by the sum of the applied weights when
// dynamic is set, and by divisor otherwise. A zero effective divisor leaves the
// raw sum. Results are truncated toward zero and clamped to the channel range;
// alpha is copied from src.
//
// src and dst must share width, height and format and must not overlap.
// r is clipped to the image bounds.
func Convolve(src, dst *image.ImageBuf, r Region, k Kernel, divisor int, dynamic bool) {
	process(src, dst, r, k, divisor, dynamic)
}

// Correlate is Convolve with a fixed divisor for every pixel, border pixels
// included.
func Correlate(src, dst *image.ImageBuf, r Region, k Kernel, divisor int) {
	process(src, dst, r, k, divisor, false)
}

func process(src, dst *image.ImageBuf, r Region, k Kernel, divisor int, dynamic bool) {
	r = r.Clip(src.Width(), src.Height())
	if r.Empty() || k.Size == 0 {
		return
	}

	if src.Format().BytesPerChannel() == 2 {
		run(channel16{}, src, dst, r, k, divisor, dynamic)
	} else {
		run(channel8{}, src, dst, r, k, divisor, dynamic)
	}
}

// channelIO reads and writes one channel sample at a byte offset.
type channelIO interface {
	load(data []byte, off int) int64
	store(data []byte, off int, v int64)
}

type channel8 struct{}

func (channel8) load(data []byte, off int) int64 { return int64(data[off]) }

func (channel8) store(data []byte, off int, v int64) { data[off] = byte(v) }

type channel16 struct{}

func (channel16) load(data []byte, off int) int64 {
	return int64(binary.LittleEndian.Uint16(data[off:]))
}

func (channel16) store(data []byte, off int, v int64) {
	binary.LittleEndian.PutUint16(data[off:], uint16(v))
}

// layout describes where the processed channels of a pixel live.
type layout struct {
	bpp      int
	colors   int
	offsets  [3]int
	alpha    int // byte offset of alpha, -1 if none
	maxValue int64
}

func layoutOf(f image.Format) layout {
	info := f.Info()
	bpc := f.BytesPerChannel()
	l := layout{
		bpp:      info.BytesPerPixel,
		colors:   f.ColorChannels(),
		offsets:  [3]int{info.Red * bpc, info.Green * bpc, info.Blue * bpc},
		alpha:    -1,
		maxValue: int64(f.MaxValue()),
	}
	if info.HasAlpha {
		l.alpha = info.Alpha * bpc
	}
	return l
}

func run[C channelIO](ch C, src, dst *image.ImageBuf, r Region, k Kernel, divisor int, dynamic bool) {
	l := layoutOf(src.Format())

	srcData, dstData := src.Data(), dst.Data()
	srcStride, dstStride := src.Stride(), dst.Stride()

	size := k.Size
	radius := k.Radius()
	cells := size * size

	startX, startY := r.X, r.Y
	stopX, stopY := r.X+r.Width, r.Y+r.Height

	for y := startY; y < stopY; y++ {
		for x := startX; x < stopX; x++ {
			var sums [3]int64
			var weightSum int64
			applied := 0

			for i := 0; i < size; i++ {
				sy := y + i - radius
				if sy < startY {
					continue
				}
				if sy >= stopY {
					break
				}
				row := sy * srcStride

				for j := 0; j < size; j++ {
					sx := x + j - radius
					if sx < startX || sx >= stopX {
						continue
					}

					w := int64(k.Weights[i*size+j])
					p := row + sx*l.bpp
					for c := 0; c < l.colors; c++ {
						sums[c] += w * ch.load(srcData, p+l.offsets[c])
					}
					weightSum += w
					applied++
				}
			}

			div := int64(divisor)
			if applied != cells && dynamic {
				div = weightSum
			}

			d := y*dstStride + x*l.bpp
			for c := 0; c < l.colors; c++ {
				v := sums[c]
				if div != 0 {
					v /= div
				}
				ch.store(dstData, d+l.offsets[c], clampInt64(v, 0, l.maxValue))
			}
			if l.alpha >= 0 {
				ch.store(dstData, d+l.alpha, ch.load(srcData, y*srcStride+x*l.bpp+l.alpha))
			}
		}
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func clampInt64(v, minVal, maxVal int64) int64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
