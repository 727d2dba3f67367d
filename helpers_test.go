package convolve

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

// Test helper functions shared across convolve tests.

// mustImage allocates a zeroed image or fails the test.
func mustImage(t testing.TB, format Format, width, height int) *Image {
	t.Helper()
	img, err := NewImage(width, height, format)
	if err != nil {
		t.Fatalf("NewImage(%d, %d, %v) = %v", width, height, format, err)
	}
	return img
}

// filled returns an image whose color channels hold v and whose alpha is opaque.
func filled(t testing.TB, format Format, width, height, v int) *Image {
	t.Helper()
	img := mustImage(t, format, width, height)
	img.Fill(v)
	return img
}

// gray8 builds a Gray8 image from rows of values.
func gray8(t testing.TB, rows [][]int) *Image {
	t.Helper()
	img := mustImage(t, FormatGray8, len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			_ = img.SetChannel(x, y, 0, v)
		}
	}
	return img
}

// noisy returns an image with random pixel bytes.
func noisy(t testing.TB, format Format, width, height int, seed uint64) *Image {
	t.Helper()
	img := mustImage(t, format, width, height)
	rng := rand.New(rand.NewPCG(seed, 1))
	for i := range img.Data() {
		img.Data()[i] = byte(rng.IntN(256))
	}
	return img
}

// rowsOf returns channel c of img as rows.
func rowsOf(img *Image, c int) [][]int {
	rows := make([][]int, img.Height())
	for y := range rows {
		rows[y] = make([]int, img.Width())
		for x := range rows[y] {
			rows[y][x] = img.Channel(x, y, c)
		}
	}
	return rows
}

// samePixels reports whether a and b hold identical pixel rows.
func samePixels(a, b *Image) bool {
	if !a.SameShape(b) {
		return false
	}
	for y := range a.Height() {
		if !bytes.Equal(a.RowBytes(y), b.RowBytes(y)) {
			return false
		}
	}
	return true
}

// equalMatrix reports whether two matrices are identical.
func equalMatrix(a, b [][]int) bool {
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

// constant returns a width x height matrix of v.
func constant(width, height, v int) [][]int {
	rows := make([][]int, height)
	for y := range rows {
		rows[y] = make([]int, width)
		for x := range rows[y] {
			rows[y][x] = v
		}
	}
	return rows
}
