package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/irmsia-data/anomaly.report/internal/diagnose"
	"github.com/irmsia-data/anomaly.report/internal/timeutil"
)

func anomalyResult() *diagnose.DiagnosticResult {
	return &diagnose.DiagnosticResult{
		PrimaryClass: "tumor",
		Confidence:   0.85,
		HasAnomaly:   true,
		Severity:     diagnose.SeverityCritical,
		Urgency:      diagnose.UrgencyImmediate,
		Regions: []diagnose.Region{
			{ID: 0, X: 10, Y: 12, W: 30, H: 25, AreaPx: 600, Confidence: 0.9,
				WidthMM: 15, HeightMM: 12.5, AreaMM2: 150, PerimeterMM: 48,
				PathologyLabel: "tumor"},
			{ID: 1, X: 50, Y: 60, W: 10, H: 10, AreaPx: 80, Confidence: 0.7},
		},
		Measurements: diagnose.Measurements{
			NumRegions:          2,
			TotalRegionAreaPx:   680,
			LargestRegionAreaPx: 600,
			TotalRegionAreaMM2:  150,
			MaskComponents:      1,
			SegmentedAreaPx:     720,
		},
		Recommendations: []string{"Recommend contrast-enhanced follow-up imaging."},
		Backend:         diagnose.BackendRemote,
	}
}

func normalResult() *diagnose.DiagnosticResult {
	return &diagnose.DiagnosticResult{
		PrimaryClass:    "normal",
		Confidence:      0.8,
		Severity:        diagnose.SeverityNone,
		Urgency:         diagnose.UrgencyRoutine,
		Regions:         []diagnose.Region{},
		Recommendations: []string{"No abnormality detected; routine follow-up as clinically indicated."},
		Backend:         diagnose.BackendLocal,
	}
}

func TestGenerateAnomalyReport(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	g := NewGenerator(timeutil.NewMockClock(now))

	rep := g.Generate(anomalyResult(), "req-123")

	if rep.ReportID == "" {
		t.Error("ReportID empty")
	}
	if rep.RequestID != "req-123" {
		t.Errorf("RequestID = %q, want req-123", rep.RequestID)
	}
	if !rep.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, want %v", rep.GeneratedAt, now)
	}
	if rep.OverallAssessment != "Tumor detected (critical severity)" {
		t.Errorf("OverallAssessment = %q", rep.OverallAssessment)
	}
	if !strings.Contains(rep.Summary, "85% confidence") {
		t.Errorf("Summary = %q, want confidence percentage", rep.Summary)
	}
	if !strings.Contains(rep.Summary, "2 regions") {
		t.Errorf("Summary = %q, want region count", rep.Summary)
	}
	if len(rep.Findings) != 2 {
		t.Fatalf("got %d findings, want 2", len(rep.Findings))
	}
	if !strings.Contains(rep.Findings[0].Description, "150.0 mm²") {
		t.Errorf("finding 0 lacks mm measurement: %q", rep.Findings[0].Description)
	}
	if !strings.Contains(rep.Findings[0].Description, "perimeter 48.0 mm") {
		t.Errorf("finding 0 lacks mm perimeter: %q", rep.Findings[0].Description)
	}
	if !strings.Contains(rep.Findings[0].Description, "(Tumor)") {
		t.Errorf("finding 0 lacks pathology label: %q", rep.Findings[0].Description)
	}
	if strings.Contains(rep.Findings[1].Description, "mm") {
		t.Errorf("finding 1 has mm without spacing: %q", rep.Findings[1].Description)
	}
	if rep.Backend != diagnose.BackendRemote {
		t.Errorf("Backend = %q, want remote", rep.Backend)
	}
}

func TestGenerateNormalReport(t *testing.T) {
	g := NewGenerator(timeutil.NewMockClock(time.Unix(0, 0)))
	rep := g.Generate(normalResult(), "")

	if rep.OverallAssessment != "No anomaly detected" {
		t.Errorf("OverallAssessment = %q", rep.OverallAssessment)
	}
	if len(rep.Findings) != 0 {
		t.Errorf("got %d findings, want 0", len(rep.Findings))
	}
}

func TestReportJSONRoundTrip(t *testing.T) {
	g := NewGenerator(timeutil.NewMockClock(time.Unix(1000, 0)))
	rep := g.Generate(anomalyResult(), "req-9")

	data, err := rep.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ReportID != rep.ReportID {
		t.Errorf("ReportID = %q, want %q", decoded.ReportID, rep.ReportID)
	}
	if decoded.Measurements.NumRegions != 2 {
		t.Errorf("NumRegions = %d, want 2", decoded.Measurements.NumRegions)
	}
}

func TestReportText(t *testing.T) {
	g := NewGenerator(timeutil.NewMockClock(time.Unix(0, 0)))
	text := g.Generate(anomalyResult(), "req-1").Text()

	for _, want := range []string{
		"Assessment: Tumor detected",
		"Severity:   critical (urgency: immediate)",
		"Region 0 (Tumor):",
		"Recommendations:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q:\n%s", want, text)
		}
	}
}

func TestRenderRegionChart(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRegionChart(anomalyResult(), &buf); err != nil {
		t.Fatalf("RenderRegionChart: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Detected Regions") {
		t.Error("chart HTML missing title")
	}
	if !strings.Contains(out, "R0") {
		t.Error("chart HTML missing region label")
	}
}

func TestRenderRegionChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRegionChart(normalResult(), &buf); err != nil {
		t.Fatalf("RenderRegionChart on empty result: %v", err)
	}
}
