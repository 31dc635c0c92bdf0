package diagnose

import (
	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/dicom"
)

// Classifier is the opaque inference boundary. Implementations classify a
// canonical tensor and optionally expose an attention heatmap; Attention may
// return (nil, nil) when no spatial evidence exists.
type Classifier interface {
	Classify(t *dicom.Tensor) (Classification, error)
	Attention(t *dicom.Tensor) (*Heatmap, error)
}

// Heuristic confidence levels. The heuristic is intentionally blunt, so its
// anomaly calls carry less confidence than its normal calls.
const (
	heuristicAnomalyConfidence = 0.6
	heuristicNormalConfidence  = 0.8
)

// HeuristicClassifier is the model-free fallback. It flags an anomaly when
// the image is busier than typical anatomy: edge density or intensity
// spread above threshold. It never localises, so Attention returns nil.
type HeuristicClassifier struct {
	cfg *config.DiagnosticConfig
}

// NewHeuristicClassifier returns a heuristic classifier using the given
// configuration, or defaults when cfg is nil.
func NewHeuristicClassifier(cfg *config.DiagnosticConfig) *HeuristicClassifier {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &HeuristicClassifier{cfg: cfg}
}

// Classify labels the tensor "other_anomaly" when edge density exceeds the
// configured threshold or the intensity standard deviation does, otherwise
// "normal". Deterministic for identical tensors.
func (h *HeuristicClassifier) Classify(t *dicom.Tensor) (Classification, error) {
	density := edgeDensity(t)
	_, std := t.Stats()

	if density > h.cfg.GetEdgeDensityThreshold() || std > h.cfg.GetIntensityStdThreshold() {
		return Classification{
			Class:      "other_anomaly",
			Confidence: heuristicAnomalyConfidence,
			Probabilities: map[string]float64{
				"other_anomaly": heuristicAnomalyConfidence,
				ClassNormal:     1 - heuristicAnomalyConfidence,
			},
		}, nil
	}
	return Classification{
		Class:      ClassNormal,
		Confidence: heuristicNormalConfidence,
		Probabilities: map[string]float64{
			ClassNormal:     heuristicNormalConfidence,
			"other_anomaly": 1 - heuristicNormalConfidence,
		},
	}, nil
}

// Attention always returns nil: the heuristic has no spatial evidence.
func (h *HeuristicClassifier) Attention(t *dicom.Tensor) (*Heatmap, error) {
	return nil, nil
}
