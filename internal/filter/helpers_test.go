package filter

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/convolve/internal/image"
)

// Test helper functions shared across filter tests.

// allFormats lists every pixel format the engine must handle.
var allFormats = []image.Format{
	image.FormatGray8,
	image.FormatGray16,
	image.FormatRGB8,
	image.FormatRGBA8,
	image.FormatBGRA8,
	image.FormatRGB16,
	image.FormatRGBA16,
}

// grayImage builds a Gray8 image from rows of values.
func grayImage(t testing.TB, rows [][]int) *image.ImageBuf {
	t.Helper()
	return imageFromRows(t, image.FormatGray8, rows)
}

// imageFromRows builds an image whose color channels all hold rows[y][x]
// and whose alpha, if any, is opaque.
func imageFromRows(t testing.TB, format image.Format, rows [][]int) *image.ImageBuf {
	t.Helper()
	buf, err := image.NewImageBuf(len(rows[0]), len(rows), format)
	if err != nil {
		t.Fatalf("NewImageBuf: %v", err)
	}
	info := format.Info()
	for y, row := range rows {
		for x, v := range row {
			for c := range info.Channels {
				if c == info.Alpha {
					_ = buf.SetChannel(x, y, c, format.MaxValue())
					continue
				}
				_ = buf.SetChannel(x, y, c, v)
			}
		}
	}
	return buf
}

// uniformImage builds a width x height image with every color channel set to v.
func uniformImage(t testing.TB, format image.Format, width, height, v int) *image.ImageBuf {
	t.Helper()
	buf, err := image.NewImageBuf(width, height, format)
	if err != nil {
		t.Fatalf("NewImageBuf: %v", err)
	}
	buf.Fill(v)
	return buf
}

// randomImage builds an image with random pixels and random row padding.
func randomImage(t testing.TB, format image.Format, width, height, padding int, seed uint64) *image.ImageBuf {
	t.Helper()
	buf, err := image.NewImageBufWithStride(width, height, format, format.RowBytes(width)+padding)
	if err != nil {
		t.Fatalf("NewImageBufWithStride: %v", err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range buf.Data() {
		buf.Data()[i] = byte(rng.IntN(256))
	}
	return buf
}

// channelRows returns channel c of every pixel as rows.
func channelRows(buf *image.ImageBuf, c int) [][]int {
	rows := make([][]int, buf.Height())
	for y := range rows {
		rows[y] = make([]int, buf.Width())
		for x := range rows[y] {
			rows[y][x] = buf.Channel(x, y, c)
		}
	}
	return rows
}

// identityKernel returns a size x size kernel with a single 1 at the center.
func identityKernel(size int) Kernel {
	k := Kernel{Size: size, Weights: make([]int, size*size)}
	k.Weights[(size/2)*size+size/2] = 1
	return k
}

// mustKernel builds a kernel or fails the test.
func mustKernel(t testing.TB, rows [][]int) Kernel {
	t.Helper()
	k, err := NewKernel(rows)
	if err != nil {
		t.Fatalf("NewKernel(%v) = %v", rows, err)
	}
	return k
}

// equalRows reports whether two matrices are identical.
func equalRows(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
