package diagnose

import (
	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/dicom"
)

// Severity rule constants
const (
	// lowConfidenceCeiling bounds the "low" severity band
	lowConfidenceCeiling = 0.5
	// moderateConfidenceCeiling bounds the "moderate" severity band
	moderateConfidenceCeiling = 0.75
	// escalationConfidence and escalationAreaPx together force at least
	// "high" when a confident finding covers a substantial area
	escalationConfidence = 0.8
	escalationAreaPx     = 500
)

// classRecommendations maps anomaly classes to their clinical follow-up
// text, in report order.
var classRecommendations = map[string][]string{
	ClassNormal: {
		"No abnormality detected; routine follow-up as clinically indicated.",
	},
	"tumor": {
		"Recommend contrast-enhanced follow-up imaging.",
		"Refer to oncology for further evaluation.",
	},
	"infection": {
		"Correlate with clinical signs of infection.",
		"Consider laboratory workup including inflammatory markers.",
	},
	"hemorrhage": {
		"Immediate clinical correlation advised.",
		"Consider neurosurgical consultation.",
	},
	"fracture": {
		"Orthopedic consultation recommended.",
		"Immobilise pending specialist review.",
	},
	"edema": {
		"Evaluate for underlying cardiac or renal cause.",
	},
	"atelectasis": {
		"Encourage inspiratory effort; consider repeat imaging.",
	},
	"pneumothorax": {
		"Assess for tension physiology.",
		"Consider chest tube placement if large.",
	},
	"consolidation": {
		"Consider pneumonia; correlate with clinical presentation.",
	},
	"other_anomaly": {
		"Nonspecific finding; recommend radiologist review.",
	},
}

// Assembler combines classification, regions, and segmentation into a
// DiagnosticResult via a fixed rule table.
type Assembler struct {
	cfg *config.DiagnosticConfig
}

// NewAssembler returns an assembler using the given configuration, or
// defaults when cfg is nil.
func NewAssembler(cfg *config.DiagnosticConfig) *Assembler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Assembler{cfg: cfg}
}

// Assemble builds the result. A "normal" classification always yields
// severity none and routine urgency regardless of regions. Severity is
// monotone in confidence for a fixed region profile.
func (a *Assembler) Assemble(c Classification, regions []Region, mask *SegmentationMask, t *dicom.Tensor) DiagnosticResult {
	if regions == nil {
		regions = []Region{}
	}
	if c.Class != ClassNormal {
		for i := range regions {
			regions[i].PathologyLabel = c.Class
		}
	}

	severity := a.severity(c, regions)
	result := DiagnosticResult{
		PrimaryClass:    c.Class,
		Confidence:      c.Confidence,
		Probabilities:   c.Probabilities,
		HasAnomaly:      c.Class != ClassNormal,
		Severity:        severity,
		Urgency:         urgencyFor(severity),
		Regions:         regions,
		Mask:            mask,
		Measurements:    measure(regions, mask, t),
		Recommendations: recommendations(c.Class, severity),
		Backend:         BackendLocal,
	}
	return result
}

// severity applies the rule table: confidence bands, area escalation, and
// the severe-class bump.
func (a *Assembler) severity(c Classification, regions []Region) Severity {
	if c.Class == ClassNormal {
		return SeverityNone
	}

	var s Severity
	switch {
	case c.Confidence <= lowConfidenceCeiling:
		s = SeverityLow
	case c.Confidence <= moderateConfidenceCeiling:
		s = SeverityModerate
	default:
		s = SeverityHigh
	}

	if c.Confidence > escalationConfidence && largestArea(regions) > escalationAreaPx && s.Rank() < SeverityHigh.Rank() {
		s = SeverityHigh
	}
	if severeClasses[c.Class] {
		s = escalate(s)
	}
	return s
}

func escalate(s Severity) Severity {
	switch s {
	case SeverityLow:
		return SeverityModerate
	case SeverityModerate:
		return SeverityHigh
	case SeverityHigh, SeverityCritical:
		return SeverityCritical
	default:
		return s
	}
}

func urgencyFor(s Severity) Urgency {
	switch s {
	case SeverityModerate:
		return UrgencySemiUrgent
	case SeverityHigh:
		return UrgencyUrgent
	case SeverityCritical:
		return UrgencyImmediate
	default:
		return UrgencyRoutine
	}
}

func largestArea(regions []Region) int {
	largest := 0
	for _, r := range regions {
		if r.AreaPx > largest {
			largest = r.AreaPx
		}
	}
	return largest
}

// measure aggregates region and mask quantities side by side. The two
// totals come from independent methods and are not reconciled.
func measure(regions []Region, mask *SegmentationMask, t *dicom.Tensor) Measurements {
	m := Measurements{NumRegions: len(regions)}
	for _, r := range regions {
		m.TotalRegionAreaPx += r.AreaPx
		m.TotalRegionAreaMM2 += r.AreaMM2
		if r.AreaPx > m.LargestRegionAreaPx {
			m.LargestRegionAreaPx = r.AreaPx
		}
	}
	if mask != nil {
		m.MaskComponents = mask.Components
		m.SegmentedAreaPx = mask.AreaPx
		if t != nil && t.HasSpacing() {
			m.SegmentedAreaMM2 = float64(mask.AreaPx) * t.SpacingX * t.SpacingY
		}
	}
	if t != nil {
		m.MeanIntensity, m.StdIntensity = t.Stats()
	}
	return m
}

// recommendations returns the class table entries plus severity additions.
func recommendations(class string, s Severity) []string {
	recs := make([]string, 0, 4)
	recs = append(recs, classRecommendations[class]...)
	if len(recs) == 0 {
		recs = append(recs, classRecommendations["other_anomaly"]...)
	}
	switch s {
	case SeverityHigh:
		recs = append(recs, "Expedited radiologist review recommended.")
	case SeverityCritical:
		recs = append(recs, "Urgent clinical attention required.")
	}
	return recs
}
