package diagnose

import (
	"testing"

	"github.com/irmsia-data/anomaly.report/internal/dicom"
	"github.com/irmsia-data/anomaly.report/internal/testutil"
)

// hotHeatmap builds a w×h heatmap that is cold except for a hot rectangle.
func hotHeatmap(w, h, x0, y0, x1, y1 int, v float32) *Heatmap {
	hm := &Heatmap{Width: w, Height: h, Values: make([]float32, w*h)}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hm.Values[y*w+x] = v
		}
	}
	return hm
}

func TestExtractHeatmapRegion(t *testing.T) {
	tn := dicom.NewTensor(64, 64)
	hm := hotHeatmap(64, 64, 10, 10, 40, 40, 0.9)

	regions := NewRegionExtractor(nil).Extract(tn, hm)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	r := regions[0]
	if r.X != 10 || r.Y != 10 || r.W != 30 || r.H != 30 {
		t.Errorf("box = (%d,%d %dx%d), want (10,10 30x30)", r.X, r.Y, r.W, r.H)
	}
	if r.AreaPx != 900 {
		t.Errorf("AreaPx = %d, want 900", r.AreaPx)
	}
	testutil.AssertInDelta(t, r.Confidence, 0.9, 1e-4)
	if r.ID != 0 {
		t.Errorf("ID = %d, want 0", r.ID)
	}
}

func TestExtractDropsSmallComponents(t *testing.T) {
	tn := dicom.NewTensor(64, 64)
	// 5x5 = 25 px, below the 50 px floor.
	hm := hotHeatmap(64, 64, 10, 10, 15, 15, 0.9)

	regions := NewRegionExtractor(nil).Extract(tn, hm)
	if len(regions) != 0 {
		t.Errorf("got %d regions, want 0 for sub-floor component", len(regions))
	}
}

func TestExtractColdHeatmapIsEmptyNotError(t *testing.T) {
	tn := dicom.NewTensor(32, 32)
	hm := &Heatmap{Width: 32, Height: 32, Values: make([]float32, 32*32)}

	regions := NewRegionExtractor(nil).Extract(tn, hm)
	if regions == nil {
		t.Fatal("regions is nil, want empty slice")
	}
	if len(regions) != 0 {
		t.Errorf("got %d regions, want 0", len(regions))
	}
}

func TestExtractEdgeFallback(t *testing.T) {
	// No heatmap: a bright blob's boundary ring supplies the edge evidence.
	tn := tensorFrom(testutil.BlobPixels(64, 64, 16, 16, 48, 48, 1), 64, 64)

	regions := NewRegionExtractor(nil).Extract(tn, nil)
	if len(regions) == 0 {
		t.Fatal("got 0 regions, want edge-derived region")
	}
	for _, r := range regions {
		if r.Confidence != EdgeRegionConfidence {
			t.Errorf("edge region confidence = %f, want %f", r.Confidence, EdgeRegionConfidence)
		}
	}
}

func TestExtractMillimetreMeasurements(t *testing.T) {
	tn := dicom.NewTensor(64, 64)
	tn.SpacingX, tn.SpacingY = 0.5, 0.5
	hm := hotHeatmap(64, 64, 0, 0, 20, 10, 1)

	regions := NewRegionExtractor(nil).Extract(tn, hm)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	r := regions[0]
	testutil.AssertInDelta(t, r.WidthMM, 10, 1e-9)
	testutil.AssertInDelta(t, r.HeightMM, 5, 1e-9)
	testutil.AssertInDelta(t, r.AreaMM2, 50, 1e-9)
	// 20x10 block exposes 2*(20+10) = 60 pixel edges; mean spacing 0.5 mm.
	testutil.AssertInDelta(t, r.PerimeterMM, 30, 1e-9)
}

func TestExtractPerimeterUsesMeanSpacing(t *testing.T) {
	tn := dicom.NewTensor(64, 64)
	tn.SpacingX, tn.SpacingY = 0.4, 0.8
	hm := hotHeatmap(64, 64, 0, 0, 20, 10, 1)

	regions := NewRegionExtractor(nil).Extract(tn, hm)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	r := regions[0]
	testutil.AssertInDelta(t, r.PerimeterMM, r.PerimeterPx*0.6, 1e-9)
}

func TestExtractNoSpacingNoMillimetres(t *testing.T) {
	tn := dicom.NewTensor(64, 64)
	hm := hotHeatmap(64, 64, 0, 0, 20, 10, 1)

	regions := NewRegionExtractor(nil).Extract(tn, hm)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if r := regions[0]; r.WidthMM != 0 || r.AreaMM2 != 0 || r.PerimeterMM != 0 {
		t.Errorf("mm fields = %f/%f/%f, want zero without spacing", r.WidthMM, r.AreaMM2, r.PerimeterMM)
	}
}

func TestResampleHeatmapPreservesHotSpot(t *testing.T) {
	// Upscale a small heatmap and confirm the hot quadrant stays hot.
	hm := hotHeatmap(8, 8, 0, 0, 4, 4, 1)
	out := resampleHeatmap(hm, 32, 32)

	if out[4*32+4] < 0.9 {
		t.Errorf("hot quadrant = %f, want near 1", out[4*32+4])
	}
	if out[28*32+28] > 0.1 {
		t.Errorf("cold quadrant = %f, want near 0", out[28*32+28])
	}
}
