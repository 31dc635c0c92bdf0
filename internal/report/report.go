// Package report turns a DiagnosticResult into human-readable diagnostic
// reports: narrative text, structured JSON, and an optional HTML chart.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/irmsia-data/anomaly.report/internal/diagnose"
	"github.com/irmsia-data/anomaly.report/internal/timeutil"
)

// Finding is one region's narrative entry.
type Finding struct {
	RegionID    int     `json:"region_id"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// Report is a rendered diagnosis. It is a pure function of the result plus
// the identifiers and timestamp supplied at generation time.
type Report struct {
	ReportID          string                `json:"report_id"`
	RequestID         string                `json:"request_id,omitempty"`
	GeneratedAt       time.Time             `json:"generated_at"`
	OverallAssessment string                `json:"overall_assessment"`
	Summary           string                `json:"summary"`
	Findings          []Finding             `json:"findings"`
	Measurements      diagnose.Measurements `json:"measurements"`
	Recommendations   []string              `json:"recommendations"`
	Severity          diagnose.Severity     `json:"severity"`
	Urgency           diagnose.Urgency      `json:"urgency"`
	Backend           string                `json:"backend"`
}

// Generator renders reports. The clock is injected so report timestamps are
// testable.
type Generator struct {
	clock timeutil.Clock
}

// NewGenerator returns a Generator; a nil clock uses real time.
func NewGenerator(clock timeutil.Clock) *Generator {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &Generator{clock: clock}
}

// Generate renders the result into a report. requestID may be empty for
// local runs.
func (g *Generator) Generate(r *diagnose.DiagnosticResult, requestID string) *Report {
	rep := &Report{
		ReportID:          uuid.NewString(),
		RequestID:         requestID,
		GeneratedAt:       g.clock.Now().UTC(),
		OverallAssessment: assessment(r),
		Summary:           summary(r),
		Findings:          findings(r),
		Measurements:      r.Measurements,
		Recommendations:   r.Recommendations,
		Severity:          r.Severity,
		Urgency:           r.Urgency,
		Backend:           r.Backend,
	}
	return rep
}

// ExportJSON renders the report as indented JSON.
func (r *Report) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}

// Text renders the report as plain text for terminal output.
func (r *Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Diagnostic Report %s\n", r.ReportID)
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format(time.RFC3339))
	if r.RequestID != "" {
		fmt.Fprintf(&b, "Request:   %s\n", r.RequestID)
	}
	fmt.Fprintf(&b, "Backend:   %s\n\n", r.Backend)
	fmt.Fprintf(&b, "Assessment: %s\n", r.OverallAssessment)
	fmt.Fprintf(&b, "Severity:   %s (urgency: %s)\n\n", r.Severity, r.Urgency)
	fmt.Fprintf(&b, "%s\n", r.Summary)

	if len(r.Findings) > 0 {
		b.WriteString("\nFindings:\n")
		for _, f := range r.Findings {
			fmt.Fprintf(&b, "  %s\n", f.Description)
		}
	}

	m := r.Measurements
	b.WriteString("\nMeasurements:\n")
	fmt.Fprintf(&b, "  Regions: %d (total %d px², largest %d px²)\n",
		m.NumRegions, m.TotalRegionAreaPx, m.LargestRegionAreaPx)
	if m.TotalRegionAreaMM2 > 0 {
		fmt.Fprintf(&b, "  Region area: %.1f mm²\n", m.TotalRegionAreaMM2)
	}
	fmt.Fprintf(&b, "  Mask: %d components, %d px segmented\n", m.MaskComponents, m.SegmentedAreaPx)
	if m.SegmentedAreaMM2 > 0 {
		fmt.Fprintf(&b, "  Segmented area: %.1f mm²\n", m.SegmentedAreaMM2)
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}
	return b.String()
}

func assessment(r *diagnose.DiagnosticResult) string {
	if !r.HasAnomaly {
		return "No anomaly detected"
	}
	return fmt.Sprintf("%s detected (%s severity)", titleCase(r.PrimaryClass), r.Severity)
}

func summary(r *diagnose.DiagnosticResult) string {
	if !r.HasAnomaly {
		return fmt.Sprintf("Analysis found no abnormality (confidence %.0f%%).", r.Confidence*100)
	}
	s := fmt.Sprintf("Analysis identified %s with %.0f%% confidence.",
		titleCase(r.PrimaryClass), r.Confidence*100)
	switch n := len(r.Regions); n {
	case 0:
		s += " No discrete region could be localised."
	case 1:
		s += " One region of interest was localised."
	default:
		s += fmt.Sprintf(" %d regions of interest were localised.", n)
	}
	return s
}

func findings(r *diagnose.DiagnosticResult) []Finding {
	out := make([]Finding, 0, len(r.Regions))
	for _, reg := range r.Regions {
		label := ""
		if reg.PathologyLabel != "" {
			label = fmt.Sprintf(" (%s)", titleCase(reg.PathologyLabel))
		}
		desc := fmt.Sprintf("Region %d%s: %dx%d px at (%d,%d), area %d px²",
			reg.ID, label, reg.W, reg.H, reg.X, reg.Y, reg.AreaPx)
		if reg.AreaMM2 > 0 {
			desc += fmt.Sprintf(" (%.1fx%.1f mm, %.1f mm²", reg.WidthMM, reg.HeightMM, reg.AreaMM2)
			if reg.PerimeterMM > 0 {
				desc += fmt.Sprintf(", perimeter %.1f mm", reg.PerimeterMM)
			}
			desc += ")"
		}
		desc += fmt.Sprintf(", confidence %.2f", reg.Confidence)
		out = append(out, Finding{
			RegionID:    reg.ID,
			Description: desc,
			Confidence:  reg.Confidence,
		})
	}
	return out
}

// titleCase renders a class label for prose: underscores to spaces, first
// letter capitalised.
func titleCase(class string) string {
	s := strings.ReplaceAll(class, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
