package diagnose

import (
	"context"
	"fmt"

	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/dicom"
	"github.com/irmsia-data/anomaly.report/internal/monitoring"
)

// Options modulate a single analysis run.
type Options struct {
	// ConfidenceThreshold drops regions scored below it. Zero means the
	// configured default.
	ConfidenceThreshold float64
	// IncludeSegmentation controls whether the mask is computed.
	IncludeSegmentation bool
	// IncludeHeatmap returns the classifier attention map on the result
	// when the classifier produced one.
	IncludeHeatmap bool
}

// Pipeline runs the full local analysis: normalise, classify, localise,
// segment, assemble. The classifier is pluggable; when it fails the
// pipeline falls back to the heuristic so an analysis always completes on
// decodable input.
type Pipeline struct {
	cfg       *config.DiagnosticConfig
	norm      *dicom.Normalizer
	clf       Classifier
	heuristic *HeuristicClassifier
	regions   *RegionExtractor
	seg       *Segmenter
	asm       *Assembler
}

// NewPipeline builds a pipeline around the given classifier. A nil
// classifier uses the heuristic directly.
func NewPipeline(cfg *config.DiagnosticConfig, clf Classifier) *Pipeline {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	heuristic := NewHeuristicClassifier(cfg)
	if clf == nil {
		clf = heuristic
	}
	return &Pipeline{
		cfg:       cfg,
		norm:      dicom.NewNormalizer(cfg),
		clf:       clf,
		heuristic: heuristic,
		regions:   NewRegionExtractor(cfg),
		seg:       NewSegmenter(cfg),
		asm:       NewAssembler(cfg),
	}
}

// Run analyses raw image bytes. Decode failures are terminal and surface
// the dicom package sentinels; classifier failures degrade to the
// heuristic. Identical input produces an identical result.
func (p *Pipeline) Run(ctx context.Context, raw []byte, hint dicom.Format, opts Options) (*DiagnosticResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := p.norm.Normalize(raw, hint)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	c, err := p.clf.Classify(t)
	if err != nil {
		monitoring.Logf("[Pipeline] classifier failed (%v), using heuristic", err)
		c, err = p.heuristic.Classify(t)
		if err != nil {
			return nil, fmt.Errorf("heuristic classify: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var hm *Heatmap
	if c.Class != ClassNormal {
		hm, err = p.clf.Attention(t)
		if err != nil {
			monitoring.Logf("[Pipeline] attention failed (%v), falling back to edges", err)
			hm = nil
		}
	}

	var regions []Region
	var mask *SegmentationMask
	if c.Class != ClassNormal {
		regions = p.regions.Extract(t, hm)
		regions = filterConfidence(regions, p.threshold(opts))
		if opts.IncludeSegmentation {
			mask = p.seg.Segment(t, hm)
		}
	}

	result := p.asm.Assemble(c, regions, mask, t)
	if opts.IncludeHeatmap {
		result.Heatmap = hm
	}
	return &result, nil
}

func (p *Pipeline) threshold(opts Options) float64 {
	if opts.ConfidenceThreshold > 0 {
		return opts.ConfidenceThreshold
	}
	return p.cfg.GetConfidenceThreshold()
}

// filterConfidence drops regions below the threshold, renumbering IDs to
// stay contiguous in detection order.
func filterConfidence(regions []Region, threshold float64) []Region {
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		if r.Confidence >= threshold {
			r.ID = len(out)
			out = append(out, r)
		}
	}
	return out
}
