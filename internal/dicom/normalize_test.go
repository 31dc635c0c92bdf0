package dicom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/testutil"
)

func smallConfig(size int) *config.DiagnosticConfig {
	return &config.DiagnosticConfig{TargetSize: &size}
}

func TestNormalizeEmptyPayload(t *testing.T) {
	n := NewNormalizer(nil)
	_, err := n.Normalize(nil, FormatAuto)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestNormalizeUnknownMagic(t *testing.T) {
	n := NewNormalizer(nil)
	_, err := n.Normalize([]byte("definitely not an image"), FormatAuto)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestNormalizeCorruptPNG(t *testing.T) {
	n := NewNormalizer(nil)
	corrupt := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0xde, 0xad}
	_, err := n.Normalize(corrupt, FormatAuto)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestNormalizeCorruptDICOM(t *testing.T) {
	n := NewNormalizer(nil)
	payload := make([]byte, 200)
	copy(payload[128:], "DICM")
	_, err := n.Normalize(payload, FormatAuto)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestNormalizeUniformPNG(t *testing.T) {
	n := NewNormalizer(smallConfig(32))
	raw := testutil.GrayPNG(t, 64, 64, 120)

	tn, err := n.Normalize(raw, FormatAuto)
	testutil.AssertNoError(t, err)

	if tn.Width != 32 || tn.Height != 32 {
		t.Fatalf("dims = %dx%d, want 32x32", tn.Width, tn.Height)
	}
	if tn.Source != FormatPNG {
		t.Errorf("Source = %v, want FormatPNG", tn.Source)
	}
	if tn.HasSpacing() {
		t.Error("raster source should carry no spacing")
	}
	// A flat image has no dynamic range; the stretch maps it to zeros.
	for i, v := range tn.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %f, want 0 for flat input", i, v)
		}
	}
}

func TestNormalizeGradientSpansRange(t *testing.T) {
	n := NewNormalizer(smallConfig(64))
	raw := testutil.GradientPNG(t, 128, 128)

	tn, err := n.Normalize(raw, FormatAuto)
	testutil.AssertNoError(t, err)

	var min, max float32 = 1, 0
	for _, v := range tn.Pix {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min > 0.05 {
		t.Errorf("min = %f, want near 0 after stretch", min)
	}
	if max < 0.95 {
		t.Errorf("max = %f, want near 1 after stretch", max)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	n := NewNormalizer(smallConfig(48))
	raw := testutil.BlobPNG(t, 100, 100, 20, 20, 70, 70)

	a, err := n.Normalize(raw, FormatPNG)
	testutil.AssertNoError(t, err)
	b, err := n.Normalize(raw, FormatPNG)
	testutil.AssertNoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated normalization differs (-first +second):\n%s", diff)
	}
}

func TestNormalizeHintOverridesSniff(t *testing.T) {
	n := NewNormalizer(smallConfig(32))
	raw := testutil.GrayPNG(t, 16, 16, 200)

	// A JPEG hint on PNG bytes must fail decode rather than silently sniff.
	_, err := n.Normalize(raw, FormatJPEG)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestStretchPercentilesFlat(t *testing.T) {
	tn := NewTensor(4, 4)
	for i := range tn.Pix {
		tn.Pix[i] = 0.42
	}
	stretchPercentiles(tn)
	for i, v := range tn.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %f, want 0", i, v)
		}
	}
}

func TestStretchPercentilesClipsOutliers(t *testing.T) {
	tn := NewTensor(10, 10)
	for i := range tn.Pix {
		tn.Pix[i] = float32(i) / 99
	}
	stretchPercentiles(tn)
	// Values below p2 and above p98 clip to the range ends.
	if tn.Pix[0] != 0 {
		t.Errorf("low tail = %f, want clipped to 0", tn.Pix[0])
	}
	if tn.Pix[99] != 1 {
		t.Errorf("high tail = %f, want clipped to 1", tn.Pix[99])
	}
	mid := tn.Pix[50]
	if mid <= 0.3 || mid >= 0.7 {
		t.Errorf("mid value = %f, want interior of range", mid)
	}
}
