package transport

import (
	"github.com/irmsia-data/anomaly.report/internal/diagnose"
	"github.com/irmsia-data/anomaly.report/internal/transport/pb"
)

// resultToProto converts a pipeline result for the wire.
func resultToProto(r *diagnose.DiagnosticResult) *pb.DiagnosticResult {
	out := &pb.DiagnosticResult{
		PrimaryClass:    r.PrimaryClass,
		Confidence:      r.Confidence,
		Probabilities:   r.Probabilities,
		HasAnomaly:      r.HasAnomaly,
		Severity:        string(r.Severity),
		Urgency:         string(r.Urgency),
		Recommendations: r.Recommendations,
		Backend:         r.Backend,
		Measurements: &pb.Measurements{
			NumRegions:          int32(r.Measurements.NumRegions),
			TotalRegionAreaPx:   int64(r.Measurements.TotalRegionAreaPx),
			LargestRegionAreaPx: int64(r.Measurements.LargestRegionAreaPx),
			TotalRegionAreaMm2:  r.Measurements.TotalRegionAreaMM2,
			MaskComponents:      int32(r.Measurements.MaskComponents),
			SegmentedAreaPx:     int64(r.Measurements.SegmentedAreaPx),
			SegmentedAreaMm2:    r.Measurements.SegmentedAreaMM2,
			MeanIntensity:       r.Measurements.MeanIntensity,
			StdIntensity:        r.Measurements.StdIntensity,
		},
	}
	for _, reg := range r.Regions {
		out.Regions = append(out.Regions, &pb.Region{
			Id:             int32(reg.ID),
			X:              int32(reg.X),
			Y:              int32(reg.Y),
			W:              int32(reg.W),
			H:              int32(reg.H),
			AreaPx:         int64(reg.AreaPx),
			PerimeterPx:    reg.PerimeterPx,
			Circularity:    reg.Circularity,
			Confidence:     reg.Confidence,
			WidthMm:        reg.WidthMM,
			HeightMm:       reg.HeightMM,
			AreaMm2:        reg.AreaMM2,
			PerimeterMm:    reg.PerimeterMM,
			PathologyLabel: reg.PathologyLabel,
		})
	}
	if r.Mask != nil {
		out.Mask = &pb.SegmentationMask{
			Width:      int32(r.Mask.Width),
			Height:     int32(r.Mask.Height),
			Bits:       r.Mask.Bits,
			Components: int32(r.Mask.Components),
			AreaPx:     int64(r.Mask.AreaPx),
		}
	}
	if r.Heatmap != nil {
		out.Heatmap = &pb.Heatmap{
			Width:  int32(r.Heatmap.Width),
			Height: int32(r.Heatmap.Height),
			Values: r.Heatmap.Values,
		}
	}
	return out
}

// resultFromProto converts a wire result back to the pipeline type.
func resultFromProto(p *pb.DiagnosticResult) *diagnose.DiagnosticResult {
	if p == nil {
		return nil
	}
	out := &diagnose.DiagnosticResult{
		PrimaryClass:    p.PrimaryClass,
		Confidence:      p.Confidence,
		Probabilities:   p.Probabilities,
		HasAnomaly:      p.HasAnomaly,
		Severity:        diagnose.Severity(p.Severity),
		Urgency:         diagnose.Urgency(p.Urgency),
		Regions:         make([]diagnose.Region, 0, len(p.Regions)),
		Recommendations: p.Recommendations,
		Backend:         p.Backend,
	}
	for _, reg := range p.Regions {
		out.Regions = append(out.Regions, diagnose.Region{
			ID:             int(reg.Id),
			X:              int(reg.X),
			Y:              int(reg.Y),
			W:              int(reg.W),
			H:              int(reg.H),
			AreaPx:         int(reg.AreaPx),
			PerimeterPx:    reg.PerimeterPx,
			Circularity:    reg.Circularity,
			Confidence:     reg.Confidence,
			WidthMM:        reg.WidthMm,
			HeightMM:       reg.HeightMm,
			AreaMM2:        reg.AreaMm2,
			PerimeterMM:    reg.PerimeterMm,
			PathologyLabel: reg.PathologyLabel,
		})
	}
	if p.Mask != nil {
		out.Mask = &diagnose.SegmentationMask{
			Width:      int(p.Mask.Width),
			Height:     int(p.Mask.Height),
			Bits:       p.Mask.Bits,
			Components: int(p.Mask.Components),
			AreaPx:     int(p.Mask.AreaPx),
		}
	}
	if p.Heatmap != nil {
		out.Heatmap = &diagnose.Heatmap{
			Width:  int(p.Heatmap.Width),
			Height: int(p.Heatmap.Height),
			Values: p.Heatmap.Values,
		}
	}
	if p.Measurements != nil {
		out.Measurements = diagnose.Measurements{
			NumRegions:          int(p.Measurements.NumRegions),
			TotalRegionAreaPx:   int(p.Measurements.TotalRegionAreaPx),
			LargestRegionAreaPx: int(p.Measurements.LargestRegionAreaPx),
			TotalRegionAreaMM2:  p.Measurements.TotalRegionAreaMm2,
			MaskComponents:      int(p.Measurements.MaskComponents),
			SegmentedAreaPx:     int(p.Measurements.SegmentedAreaPx),
			SegmentedAreaMM2:    p.Measurements.SegmentedAreaMm2,
			MeanIntensity:       p.Measurements.MeanIntensity,
			StdIntensity:        p.Measurements.StdIntensity,
		}
	}
	return out
}

// optionsToProto converts pipeline options for the wire.
func optionsToProto(o diagnose.Options) *pb.DiagnosticOptions {
	return &pb.DiagnosticOptions{
		ConfidenceThreshold: o.ConfidenceThreshold,
		IncludeSegmentation: o.IncludeSegmentation,
		IncludeHeatmap:      o.IncludeHeatmap,
	}
}

// optionsFromProto converts wire options back to pipeline options.
func optionsFromProto(p *pb.DiagnosticOptions) diagnose.Options {
	if p == nil {
		return diagnose.Options{}
	}
	return diagnose.Options{
		ConfidenceThreshold: p.ConfidenceThreshold,
		IncludeSegmentation: p.IncludeSegmentation,
		IncludeHeatmap:      p.IncludeHeatmap,
	}
}
