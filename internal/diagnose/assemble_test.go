package diagnose

import (
	"testing"

	"github.com/irmsia-data/anomaly.report/internal/dicom"
)

func classified(class string, conf float64) Classification {
	return Classification{Class: class, Confidence: conf}
}

func TestAssembleNormalAlwaysNoneRoutine(t *testing.T) {
	a := NewAssembler(nil)
	// Even with (spurious) regions, normal never escalates.
	regions := []Region{{AreaPx: 5000, Confidence: 0.99}}

	r := a.Assemble(classified(ClassNormal, 0.95), regions, nil, nil)
	if r.Severity != SeverityNone {
		t.Errorf("Severity = %v, want none", r.Severity)
	}
	if r.Urgency != UrgencyRoutine {
		t.Errorf("Urgency = %v, want routine", r.Urgency)
	}
	if r.HasAnomaly {
		t.Error("HasAnomaly = true for normal")
	}
}

func TestAssembleLabelsRegionsWithPrimaryClass(t *testing.T) {
	a := NewAssembler(nil)
	regions := []Region{
		{ID: 0, AreaPx: 100},
		{ID: 1, AreaPx: 60},
	}

	r := a.Assemble(classified("hemorrhage", 0.7), regions, nil, nil)
	for _, reg := range r.Regions {
		if reg.PathologyLabel != "hemorrhage" {
			t.Errorf("region %d PathologyLabel = %q, want hemorrhage", reg.ID, reg.PathologyLabel)
		}
	}

	r = a.Assemble(classified(ClassNormal, 0.9), []Region{{ID: 0, AreaPx: 100}}, nil, nil)
	if got := r.Regions[0].PathologyLabel; got != "" {
		t.Errorf("normal region PathologyLabel = %q, want empty", got)
	}
}

func TestAssembleConfidenceBands(t *testing.T) {
	a := NewAssembler(nil)
	tests := []struct {
		conf float64
		want Severity
	}{
		{0.3, SeverityLow},
		{0.5, SeverityLow},
		{0.6, SeverityModerate},
		{0.75, SeverityModerate},
		{0.9, SeverityHigh},
	}
	for _, tt := range tests {
		r := a.Assemble(classified("infection", tt.conf), nil, nil, nil)
		if r.Severity != tt.want {
			t.Errorf("conf %.2f: Severity = %v, want %v", tt.conf, r.Severity, tt.want)
		}
	}
}

func TestAssembleSevereClassEscalates(t *testing.T) {
	a := NewAssembler(nil)
	tests := []struct {
		class string
		conf  float64
		want  Severity
	}{
		{"tumor", 0.6, SeverityHigh},
		{"hemorrhage", 0.9, SeverityCritical},
		{"pneumothorax", 0.4, SeverityModerate},
		{"infection", 0.6, SeverityModerate}, // not in the severe list
	}
	for _, tt := range tests {
		r := a.Assemble(classified(tt.class, tt.conf), nil, nil, nil)
		if r.Severity != tt.want {
			t.Errorf("%s conf %.2f: Severity = %v, want %v", tt.class, tt.conf, r.Severity, tt.want)
		}
	}
}

func TestAssembleAreaEscalation(t *testing.T) {
	a := NewAssembler(nil)
	big := []Region{{AreaPx: 800}}

	// Confident + large area forces at least high even in a lower band...
	r := a.Assemble(Classification{Class: "infection", Confidence: 0.81}, big, nil, nil)
	if r.Severity.Rank() < SeverityHigh.Rank() {
		t.Errorf("Severity = %v, want at least high", r.Severity)
	}
	// ...but a small area stays in its band.
	small := []Region{{AreaPx: 100}}
	r = a.Assemble(Classification{Class: "infection", Confidence: 0.7}, small, nil, nil)
	if r.Severity != SeverityModerate {
		t.Errorf("Severity = %v, want moderate", r.Severity)
	}
}

func TestAssembleSeverityMonotoneInConfidence(t *testing.T) {
	a := NewAssembler(nil)
	regions := []Region{{AreaPx: 600}}

	prev := -1
	for _, conf := range []float64{0.1, 0.3, 0.5, 0.6, 0.7, 0.8, 0.85, 0.95} {
		r := a.Assemble(Classification{Class: "edema", Confidence: conf}, regions, nil, nil)
		if r.Severity.Rank() < prev {
			t.Fatalf("severity rank decreased at conf %.2f", conf)
		}
		prev = r.Severity.Rank()
	}
}

func TestAssembleUrgencyTracksSeverity(t *testing.T) {
	tests := []struct {
		s    Severity
		want Urgency
	}{
		{SeverityNone, UrgencyRoutine},
		{SeverityLow, UrgencyRoutine},
		{SeverityModerate, UrgencySemiUrgent},
		{SeverityHigh, UrgencyUrgent},
		{SeverityCritical, UrgencyImmediate},
	}
	for _, tt := range tests {
		if got := urgencyFor(tt.s); got != tt.want {
			t.Errorf("urgencyFor(%v) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestAssembleMeasurementsConsistent(t *testing.T) {
	a := NewAssembler(nil)
	tn := dicom.NewTensor(8, 8)
	tn.SpacingX, tn.SpacingY = 2, 2
	regions := []Region{
		{ID: 0, AreaPx: 100, AreaMM2: 400},
		{ID: 1, AreaPx: 60, AreaMM2: 240},
	}
	mask := &SegmentationMask{Width: 8, Height: 8, Components: 3, AreaPx: 200}

	r := a.Assemble(classified("fracture", 0.7), regions, mask, tn)

	m := r.Measurements
	if m.NumRegions != len(r.Regions) {
		t.Errorf("NumRegions = %d, len(Regions) = %d", m.NumRegions, len(r.Regions))
	}
	if m.TotalRegionAreaPx != 160 {
		t.Errorf("TotalRegionAreaPx = %d, want 160", m.TotalRegionAreaPx)
	}
	if m.LargestRegionAreaPx != 100 {
		t.Errorf("LargestRegionAreaPx = %d, want 100", m.LargestRegionAreaPx)
	}
	if m.TotalRegionAreaMM2 != 640 {
		t.Errorf("TotalRegionAreaMM2 = %f, want 640", m.TotalRegionAreaMM2)
	}
	if m.MaskComponents != 3 || m.SegmentedAreaPx != 200 {
		t.Errorf("mask totals = %d/%d, want 3/200", m.MaskComponents, m.SegmentedAreaPx)
	}
	if m.SegmentedAreaMM2 != 800 {
		t.Errorf("SegmentedAreaMM2 = %f, want 800", m.SegmentedAreaMM2)
	}
}

func TestAssembleNilRegionsBecomesEmpty(t *testing.T) {
	a := NewAssembler(nil)
	r := a.Assemble(classified("edema", 0.4), nil, nil, nil)
	if r.Regions == nil {
		t.Error("Regions is nil, want empty slice")
	}
	if r.Measurements.NumRegions != 0 {
		t.Errorf("NumRegions = %d, want 0", r.Measurements.NumRegions)
	}
}

func TestRecommendationsPerClass(t *testing.T) {
	a := NewAssembler(nil)

	r := a.Assemble(classified("tumor", 0.9), nil, nil, nil)
	if len(r.Recommendations) < 3 {
		t.Fatalf("got %d recommendations, want class entries plus severity addition", len(r.Recommendations))
	}
	last := r.Recommendations[len(r.Recommendations)-1]
	if last != "Urgent clinical attention required." {
		t.Errorf("last recommendation = %q, want critical addition", last)
	}

	r = a.Assemble(classified(ClassNormal, 0.8), nil, nil, nil)
	if len(r.Recommendations) != 1 {
		t.Errorf("normal recommendations = %d, want 1", len(r.Recommendations))
	}
}
