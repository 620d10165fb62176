// Package render draws the pipeline stages as stacked time-domain plots,
// either as a PNG image (gonum/plot) or as an interactive HTML page
// (go-echarts).
package render

import (
	"fmt"
	"math"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/simulate"
)

// DefaultMaxPoints bounds the points drawn per panel.
const DefaultMaxPoints = 5000

// Panel is one stacked plot.
type Panel struct {
	Title string
	Y     []float64
}

// Option configures rendering.
type Option func(*config)

type config struct {
	maxPoints int
	width     int // pixels
	height    int // pixels, whole figure
	title     string
}

func defaultConfig() config {
	return config{
		maxPoints: DefaultMaxPoints,
		width:     1000,
		height:    900,
		title:     "Signal Noise Simulator",
	}
}

// WithMaxPoints sets the per-panel point budget. Values below 2 are ignored.
func WithMaxPoints(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.maxPoints = n
		}
	}
}

// WithSize sets the figure size in pixels.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithTitle sets the page title of the HTML output.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Panels returns the three stages of res with the titles of the original
// tool: the clean signal, the noisy signal and the filtered signal, the
// latter two annotated with their SNR.
func Panels(res simulate.Result) []Panel {
	return []Panel{
		{Title: "Original Signal", Y: res.Original},
		{Title: fmt.Sprintf("Noisy Signal (SNR: %s)", formatDB(res.NoisySNR)), Y: res.Noisy},
		{Title: fmt.Sprintf("Filtered Signal (SNR: %s)", formatDB(res.FilteredSNR)), Y: res.Filtered},
	}
}

func formatDB(v float64) string {
	if math.IsInf(v, 1) {
		return "inf dB"
	}
	return fmt.Sprintf("%.2f dB", v)
}

func validate(t []float64, panels []Panel) error {
	if len(panels) == 0 {
		return fmt.Errorf("%w: nothing to render", core.ErrInvalidInput)
	}
	if len(t) == 0 {
		return fmt.Errorf("%w: empty time axis", core.ErrInvalidInput)
	}
	for _, p := range panels {
		if len(p.Y) != len(t) {
			return fmt.Errorf("%w: panel %q has %d samples, time axis %d",
				core.ErrInvalidInput, p.Title, len(p.Y), len(t))
		}
	}
	return nil
}

// Decimate reduces (t, y) to at most maxPoints points. Each bucket keeps its
// minimum and maximum in time order so isolated spikes survive.
func Decimate(t, y []float64, maxPoints int) (dt, dy []float64) {
	n := len(y)
	if maxPoints < 2 || n <= maxPoints {
		return t, y
	}

	buckets := maxPoints / 2
	dt = make([]float64, 0, 2*buckets)
	dy = make([]float64, 0, 2*buckets)
	for b := range buckets {
		lo := b * n / buckets
		hi := (b + 1) * n / buckets
		iMin, iMax := lo, lo
		for i := lo + 1; i < hi; i++ {
			if y[i] < y[iMin] {
				iMin = i
			}
			if y[i] > y[iMax] {
				iMax = i
			}
		}
		first, second := min(iMin, iMax), max(iMin, iMax)
		dt = append(dt, t[first])
		dy = append(dy, y[first])
		if second != first {
			dt = append(dt, t[second])
			dy = append(dy, y[second])
		}
	}
	return dt, dy
}
