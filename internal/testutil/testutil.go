// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability. The image fixtures
// return raw pixel grids and encoded bytes so callers in any package can
// wrap them into their own types without import cycles.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertInDelta fails the test if got is not within delta of want.
func AssertInDelta(t *testing.T, got, want, delta float64) {
	t.Helper()
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > delta {
		t.Errorf("value = %f, want %f (±%f)", got, want, delta)
	}
}

// UniformPixels returns a w×h row-major float32 grid filled with v.
func UniformPixels(w, h int, v float32) []float32 {
	pix := make([]float32, w*h)
	for i := range pix {
		pix[i] = v
	}
	return pix
}

// GradientPixels returns a w×h row-major grid ramping 0..1 left to right.
func GradientPixels(w, h int) []float32 {
	pix := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = float32(x) / float32(w-1)
		}
	}
	return pix
}

// BlobPixels returns a w×h grid that is zero except for a filled bright
// rectangle, useful for exercising region and mask extraction.
func BlobPixels(w, h, x0, y0, x1, y1 int, v float32) []float32 {
	pix := make([]float32, w*h)
	for y := y0; y < y1 && y < h; y++ {
		for x := x0; x < x1 && x < w; x++ {
			pix[y*w+x] = v
		}
	}
	return pix
}

// GrayPNG encodes a w×h uniform 8-bit grayscale PNG with the given level.
func GrayPNG(t *testing.T, w, h int, level uint8) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = level
	}
	return encodePNG(t, img)
}

// BlobPNG encodes a w×h grayscale PNG that is black except for a bright
// rectangle from (x0,y0) to (x1,y1).
func BlobPNG(t *testing.T, w, h, x0, y0, x1, y1 int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := y0; y < y1 && y < h; y++ {
		for x := x0; x < x1 && x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return encodePNG(t, img)
}

// GradientPNG encodes a w×h grayscale PNG ramping dark to bright left to
// right.
func GradientPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(255 * x / (w - 1))})
		}
	}
	return encodePNG(t, img)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
