package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/irmsia-data/anomaly.report/internal/diagnose"
)

// RenderRegionChart writes an HTML bar chart of per-region areas to w.
// Results without regions render an empty chart rather than failing.
func RenderRegionChart(r *diagnose.DiagnosticResult, w io.Writer) error {
	labels := make([]string, 0, len(r.Regions))
	areas := make([]opts.BarData, 0, len(r.Regions))
	confs := make([]opts.BarData, 0, len(r.Regions))
	for _, reg := range r.Regions {
		labels = append(labels, fmt.Sprintf("R%d", reg.ID))
		areas = append(areas, opts.BarData{Value: reg.AreaPx})
		confs = append(confs, opts.BarData{Value: reg.Confidence})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Region Measurements", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Detected Regions",
			Subtitle: fmt.Sprintf("class=%s severity=%s regions=%d", r.PrimaryClass, r.Severity, len(r.Regions)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Area (px²)"}),
	)
	bar.SetXAxis(labels).
		AddSeries("area", areas).
		AddSeries("confidence", confs)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
