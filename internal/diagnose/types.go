// Package diagnose implements the local analysis pipeline: classification,
// region extraction, segmentation, and diagnostic assembly over canonical
// image tensors.
package diagnose

import "errors"

// ErrModelUnavailable indicates the classifier backing a pipeline cannot
// serve; callers fall back to the heuristic classifier.
var ErrModelUnavailable = errors.New("diagnose: model unavailable")

// Classes is the anomaly vocabulary, in canonical order. Index 0 is the
// non-anomalous class.
var Classes = []string{
	"normal",
	"tumor",
	"infection",
	"hemorrhage",
	"fracture",
	"edema",
	"atelectasis",
	"pneumothorax",
	"consolidation",
	"other_anomaly",
}

// ClassNormal is the non-anomalous class label.
const ClassNormal = "normal"

// severeClasses escalate severity one extra rank when detected.
var severeClasses = map[string]bool{
	"tumor":        true,
	"hemorrhage":   true,
	"pneumothorax": true,
}

// Backend tags recorded on a DiagnosticResult.
const (
	BackendRemote = "remote"
	BackendLocal  = "local"
)

// Classification is the raw classifier output before assembly.
type Classification struct {
	Class         string
	Confidence    float64
	Probabilities map[string]float64
}

// Heatmap is a classifier attention map in its own resolution, values in
// [0,1]. It need not match the tensor resolution.
type Heatmap struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Values []float32 `json:"values"`
}

// At returns the heat at (x, y).
func (h *Heatmap) At(x, y int) float32 {
	return h.Values[y*h.Width+x]
}

// Region is a connected anomalous area in tensor pixel coordinates.
// Millimetre fields are zero when the source carried no pixel spacing.
type Region struct {
	ID          int     `json:"id"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	W           int     `json:"w"`
	H           int     `json:"h"`
	AreaPx      int     `json:"area_px"`
	PerimeterPx float64 `json:"perimeter_px"`
	Circularity float64 `json:"circularity"`
	Confidence  float64 `json:"confidence"`
	WidthMM     float64 `json:"width_mm,omitempty"`
	HeightMM    float64 `json:"height_mm,omitempty"`
	AreaMM2     float64 `json:"area_mm2,omitempty"`
	PerimeterMM float64 `json:"perimeter_mm,omitempty"`
	// PathologyLabel carries the primary class the region was attributed
	// to. Empty until assembly.
	PathologyLabel string `json:"pathology_label,omitempty"`
}

// SegmentationMask is a binary per-pixel mask at tensor resolution.
type SegmentationMask struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Bits       []uint8 `json:"-"`
	Components int     `json:"components"`
	AreaPx     int     `json:"area_px"`
}

// Measurements aggregates the quantitative outputs. Region totals and mask
// totals come from independent methods and are reported side by side, never
// reconciled.
type Measurements struct {
	NumRegions          int     `json:"num_regions"`
	TotalRegionAreaPx   int     `json:"total_region_area_px"`
	LargestRegionAreaPx int     `json:"largest_region_area_px"`
	TotalRegionAreaMM2  float64 `json:"total_region_area_mm2,omitempty"`
	MaskComponents      int     `json:"mask_components"`
	SegmentedAreaPx     int     `json:"segmented_area_px"`
	SegmentedAreaMM2    float64 `json:"segmented_area_mm2,omitempty"`
	MeanIntensity       float64 `json:"mean_intensity"`
	StdIntensity        float64 `json:"std_intensity"`
}

// Severity ranks how serious a finding is.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns the ordinal position of the severity, higher is worse.
func (s Severity) Rank() int {
	switch s {
	case SeverityNone:
		return 0
	case SeverityLow:
		return 1
	case SeverityModerate:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// Urgency ranks how fast clinical follow-up should happen.
type Urgency string

const (
	UrgencyRoutine    Urgency = "routine"
	UrgencySemiUrgent Urgency = "semi-urgent"
	UrgencyUrgent     Urgency = "urgent"
	UrgencyImmediate  Urgency = "immediate"
)

// DiagnosticResult is the assembled output of one analysis.
type DiagnosticResult struct {
	PrimaryClass    string             `json:"primary_class"`
	Confidence      float64            `json:"confidence"`
	Probabilities   map[string]float64 `json:"probabilities,omitempty"`
	HasAnomaly      bool               `json:"has_anomaly"`
	Severity        Severity           `json:"severity"`
	Urgency         Urgency            `json:"urgency"`
	Regions         []Region           `json:"regions"`
	Mask            *SegmentationMask  `json:"mask,omitempty"`
	Heatmap         *Heatmap           `json:"heatmap,omitempty"`
	Measurements    Measurements       `json:"measurements"`
	Recommendations []string           `json:"recommendations"`
	Backend         string             `json:"backend"`
}
