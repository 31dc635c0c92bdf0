package diagnose

import (
	"math"

	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/dicom"
)

// EdgeRegionConfidence is the fixed confidence assigned to regions found
// without an attention heatmap. Edge evidence has no per-pixel score.
const EdgeRegionConfidence = 0.5

// RegionExtractor locates connected anomalous areas in a tensor, preferring
// the classifier's attention heatmap and falling back to edge evidence.
type RegionExtractor struct {
	cfg *config.DiagnosticConfig
}

// NewRegionExtractor returns an extractor using the given configuration, or
// defaults when cfg is nil.
func NewRegionExtractor(cfg *config.DiagnosticConfig) *RegionExtractor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &RegionExtractor{cfg: cfg}
}

// Extract finds regions. With a heatmap it thresholds the resampled heat
// and scores each component by its mean heat; without one it falls back to
// the edge mask at a fixed confidence and a larger area floor. Zero
// detections return an empty slice, never an error. IDs follow detection
// order.
func (e *RegionExtractor) Extract(t *dicom.Tensor, hm *Heatmap) []Region {
	if hm != nil {
		heat := resampleHeatmap(hm, t.Width, t.Height)
		mask := make([]uint8, len(heat))
		threshold := float32(e.cfg.GetHeatmapThreshold())
		for i, v := range heat {
			if v >= threshold {
				mask[i] = 1
			}
		}
		return e.collect(t, mask, e.cfg.GetMinRegionArea(), heat)
	}
	return e.collect(t, edgeMask(t), e.cfg.GetEdgeMinRegionArea(), nil)
}

// collect labels the mask, drops small components, and measures the rest.
// heat, when non-nil, supplies per-region confidence as the component's
// mean heat.
func (e *RegionExtractor) collect(t *dicom.Tensor, mask []uint8, minArea int, heat []float32) []Region {
	w, h := t.Width, t.Height
	labels, count := connectedComponents(mask, w, h)

	regions := make([]Region, 0, count)
	for id := 1; id <= count; id++ {
		minX, minY := w, h
		maxX, maxY := -1, -1
		area := 0
		heatSum := 0.0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if labels[y*w+x] != id {
					continue
				}
				area++
				if heat != nil {
					heatSum += float64(heat[y*w+x])
				}
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
		if area < minArea {
			continue
		}

		perim := componentPerimeter(labels, w, h, id)
		confidence := EdgeRegionConfidence
		if heat != nil {
			confidence = heatSum / float64(area)
		}

		r := Region{
			ID:          len(regions),
			X:           minX,
			Y:           minY,
			W:           maxX - minX + 1,
			H:           maxY - minY + 1,
			AreaPx:      area,
			PerimeterPx: perim,
			Confidence:  confidence,
		}
		if perim > 0 {
			r.Circularity = 4 * math.Pi * float64(area) / (perim * perim)
		}
		if t.HasSpacing() {
			r.WidthMM = float64(r.W) * t.SpacingX
			r.HeightMM = float64(r.H) * t.SpacingY
			r.AreaMM2 = float64(area) * t.SpacingX * t.SpacingY
			r.PerimeterMM = perim * (t.SpacingX + t.SpacingY) / 2
		}
		regions = append(regions, r)
	}
	return regions
}

// resampleHeatmap scales a heatmap to the tensor resolution with bilinear
// interpolation.
func resampleHeatmap(hm *Heatmap, w, h int) []float32 {
	if hm.Width == w && hm.Height == h {
		out := make([]float32, len(hm.Values))
		copy(out, hm.Values)
		return out
	}

	out := make([]float32, w*h)
	sx := float64(hm.Width) / float64(w)
	sy := float64(hm.Height) / float64(h)
	for y := 0; y < h; y++ {
		fy := (float64(y)+0.5)*sy - 0.5
		y0 := int(math.Floor(fy))
		ty := fy - float64(y0)
		y1 := y0 + 1
		y0 = clampInt(y0, 0, hm.Height-1)
		y1 = clampInt(y1, 0, hm.Height-1)

		for x := 0; x < w; x++ {
			fx := (float64(x)+0.5)*sx - 0.5
			x0 := int(math.Floor(fx))
			tx := fx - float64(x0)
			x1 := x0 + 1
			x0 = clampInt(x0, 0, hm.Width-1)
			x1 = clampInt(x1, 0, hm.Width-1)

			top := float64(hm.At(x0, y0))*(1-tx) + float64(hm.At(x1, y0))*tx
			bot := float64(hm.At(x0, y1))*(1-tx) + float64(hm.At(x1, y1))*tx
			out[y*w+x] = float32(top*(1-ty) + bot*ty)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
