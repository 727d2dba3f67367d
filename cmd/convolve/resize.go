package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/convolve"
)

// parseSize parses "WxH". An empty string means no resize.
func parseSize(s string) (width, height int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil
	}
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	if width, err = strconv.Atoi(strings.TrimSpace(w)); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if height, err = strconv.Atoi(strings.TrimSpace(h)); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("size %q: dimensions must be positive", s)
	}
	return width, height, nil
}

// resize scales img with bilinear resampling. The result is RGBA8; 16-bit
// images lose their low byte.
func resize(img *convolve.Image, width, height int) (*convolve.Image, error) {
	if img.Width() == width && img.Height() == height {
		return img, nil
	}
	return convolve.ImageFromStd(transform.Resize(img.ToStdImage(), width, height, transform.Linear))
}
