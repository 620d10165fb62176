package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// HTML writes a page with one interactive line chart per panel.
func HTML(w io.Writer, t []float64, panels []Panel, opts ...Option) error {
	if err := validate(t, panels); err != nil {
		return err
	}
	cfg := applyOptions(opts)

	page := components.NewPage()
	page.PageTitle = cfg.title
	chartHeight := strconv.Itoa(max(cfg.height/len(panels), 200)) + "px"
	for _, panel := range panels {
		page.AddCharts(lineChart(t, panel, cfg.width, chartHeight, cfg.maxPoints))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render: write html: %w", err)
	}
	return nil
}

// SaveHTML is HTML into a file.
func SaveHTML(path string, t []float64, panels []Panel, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()
	return HTML(f, t, panels, opts...)
}

func lineChart(t []float64, panel Panel, width int, height string, maxPoints int) *charts.Line {
	dt, dy := Decimate(t, panel.Y, maxPoints)

	xs := make([]string, len(dt))
	data := make([]opts.LineData, len(dy))
	for i := range dt {
		xs[i] = strconv.FormatFloat(dt[i], 'g', 6, 64)
		data[i] = opts.LineData{Value: dy[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: strconv.Itoa(width) + "px", Height: height}),
		charts.WithTitleOpts(opts.Title{Title: panel.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Amplitude"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)
	line.SetXAxis(xs).
		AddSeries(panel.Title, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	return line
}
