// Command signalnoise synthesizes a multi-tone signal, corrupts it with
// noise, removes the noise with a zero-phase filter and reports the SNR
// before and after filtering.
//
// Usage:
//
//	signalnoise [flags]
//
// Examples:
//
//	signalnoise
//	signalnoise -freqs 2,5,10 -amps 1,0.5,0.2 -noise impulse -intensity 0.5
//	signalnoise -filter firwin -order 100 -cutoff 0.05 -seed 42 -png run.png
//	signalnoise -filter bessel -pass highpass -cutoff 0.002 -html run.html
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/internal/logging"
	"github.com/cwbudde/signalnoise/internal/render"
	"github.com/cwbudde/signalnoise/simulate"
	freqstats "github.com/cwbudde/signalnoise/stats/frequency"
	timestats "github.com/cwbudde/signalnoise/stats/time"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	req        simulate.Request
	seed       uint64
	seeded     bool
	maxSamples int
	maxPoints  int
	pngPath    string
	htmlPath   string
	logLevel   string
	dev        bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := simulate.DefaultRequest()
	o := options{req: def}

	fs := flag.NewFlagSet("signalnoise", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Float64Var(&o.req.Duration, "duration", def.Duration, "signal duration in seconds")
	fs.Float64Var(&o.req.SamplingRate, "rate", def.SamplingRate, "sampling rate in Hz")
	freqs := fs.String("freqs", formatFloatList(def.Frequencies), "comma-separated component frequencies in Hz")
	amps := fs.String("amps", formatFloatList(def.Amplitudes), "comma-separated component amplitudes")
	phases := fs.String("phases", formatFloatList(def.Phases), "comma-separated component phases in radians")
	fs.StringVar(&o.req.NoiseType, "noise", def.NoiseType, "noise type: gaussian, impulse or random")
	fs.Float64Var(&o.req.NoiseIntensity, "intensity", def.NoiseIntensity, "noise intensity")
	fs.StringVar(&o.req.FilterType, "filter", def.FilterType, "filter family: butterworth, bessel or firwin")
	fs.StringVar(&o.req.FilterPass, "pass", def.FilterPass, "filter pass: lowpass or highpass")
	fs.IntVar(&o.req.FilterOrder, "order", def.FilterOrder, "filter order")
	fs.Float64Var(&o.req.FilterCutoff, "cutoff", def.FilterCutoff, "cutoff normalized to Nyquist, in (0, 1)")
	fs.StringVar(&o.req.FilterWindow, "window", "", "firwin taper: rectangular, hann, hamming, blackman or kaiser (default hamming)")
	fs.Uint64Var(&o.seed, "seed", 0, "noise seed (default: random)")
	fs.IntVar(&o.maxSamples, "max-samples", core.DefaultMaxSamples, "upper bound on samples per run")
	fs.IntVar(&o.maxPoints, "max-points", render.DefaultMaxPoints, "points per plot panel")
	fs.StringVar(&o.pngPath, "png", "", "write the stage plots to this PNG file")
	fs.StringVar(&o.htmlPath, "html", "", "write interactive stage charts to this HTML file")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&o.dev, "dev", false, "human-readable logs")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: signalnoise [flags]\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Runs the synthesize, noise, filter and evaluate pipeline once.\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seeded = true
		}
	})

	var err error
	if o.req.Frequencies, err = parseFloatList(*freqs); err != nil {
		return options{}, fmt.Errorf("-freqs: %w", err)
	}
	if o.req.Amplitudes, err = parseFloatList(*amps); err != nil {
		return options{}, fmt.Errorf("-amps: %w", err)
	}
	if o.req.Phases, err = parseFloatList(*phases); err != nil {
		return options{}, fmt.Errorf("-phases: %w", err)
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	logger, err := logging.New(o.logLevel, o.dev)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	p, err := o.req.Params()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	simOpts := []simulate.Option{
		simulate.WithLogger(logger),
		simulate.WithMaxSamples(o.maxSamples),
	}
	if o.seeded {
		simOpts = append(simOpts, simulate.WithSeed(o.seed))
	}

	res, err := simulate.New(simOpts...).Run(ctx, p)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := printSummary(stdout, p, res); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	panels := render.Panels(res)
	renderOpts := []render.Option{
		render.WithMaxPoints(o.maxPoints),
		render.WithTitle("signalnoise " + res.ID.String()),
	}
	if o.pngPath != "" {
		if err := render.SavePNG(o.pngPath, res.Time, panels, renderOpts...); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		logger.Info("wrote plot", zap.String("path", o.pngPath))
	}
	if o.htmlPath != "" {
		if err := render.SaveHTML(o.htmlPath, res.Time, panels, renderOpts...); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		logger.Info("wrote charts", zap.String("path", o.htmlPath))
	}
	return 0
}

func printSummary(w io.Writer, p simulate.Params, res simulate.Result) error {
	if _, err := fmt.Fprintf(w, "run      %s\nsamples  %d\nnoise    %s (intensity %g)\nfilter   %s\n\n",
		res.ID, len(res.Time), p.Noise.Kind, p.Noise.Intensity, p.Filter); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Stage\tRMS\tPeak\tCrest [dB]\tCentroid [Hz]\tFlatness\tSNR [dB]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t---\t----\t----------\t-------------\t--------\t--------\n"); err != nil {
		return err
	}

	rows := []struct {
		name string
		x    []float64
		snr  float64
	}{
		{"original", res.Original, math.NaN()},
		{"noisy", res.Noisy, res.NoisySNR},
		{"filtered", res.Filtered, res.FilteredSNR},
	}
	for _, r := range rows {
		st := timestats.Calculate(r.x)
		spec, err := freqstats.Analyze(r.x, p.Time.SampleRate)
		if err != nil {
			return fmt.Errorf("%s spectrum: %w", r.name, err)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.2f\t%.2f\t%.4f\t%s\n",
			r.name, st.RMS, st.Peak, st.CrestFactordB, spec.Centroid, spec.Flatness, formatSNR(r.snr)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func formatSNR(v float64) string {
	switch {
	case math.IsNaN(v):
		return "-"
	case math.IsInf(v, 1):
		return "inf"
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

// parseFloatList parses "1, 0.5,0.2" into a slice. Empty fields are
// rejected; an entirely empty string yields an empty slice.
func parseFloatList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func formatFloatList(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
