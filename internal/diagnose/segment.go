package diagnose

import (
	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/dicom"
)

// Segmenter produces a binary anomaly mask at tensor resolution. The mask
// is a looser delineation than region extraction and is measured
// independently of it.
type Segmenter struct {
	cfg *config.DiagnosticConfig
}

// NewSegmenter returns a segmenter using the given configuration, or
// defaults when cfg is nil.
func NewSegmenter(cfg *config.DiagnosticConfig) *Segmenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Segmenter{cfg: cfg}
}

// Segment builds the mask. With a heatmap it thresholds the resampled heat
// at the mask threshold; without one it falls back to adaptive local-mean
// thresholding. Either path is cleaned with a morphological open then close
// to drop speckle and fill pinholes.
func (s *Segmenter) Segment(t *dicom.Tensor, hm *Heatmap) *SegmentationMask {
	w, h := t.Width, t.Height

	var mask []uint8
	if hm != nil {
		heat := resampleHeatmap(hm, w, h)
		mask = make([]uint8, len(heat))
		threshold := float32(s.cfg.GetMaskThreshold())
		for i, v := range heat {
			if v >= threshold {
				mask[i] = 1
			}
		}
	} else {
		mask = adaptiveThreshold(t)
	}

	mask = morphClose(morphOpen(mask, w, h), w, h)

	_, components := connectedComponents(mask, w, h)
	area := 0
	for _, v := range mask {
		area += int(v)
	}

	return &SegmentationMask{
		Width:      w,
		Height:     h,
		Bits:       mask,
		Components: components,
		AreaPx:     area,
	}
}
