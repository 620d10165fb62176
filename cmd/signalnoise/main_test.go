package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quick = []string{"-duration", "0.5", "-rate", "1000", "-log-level", "error"}

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append(append([]string{}, quick...), args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseFloatList(t *testing.T) {
	got, err := parseFloatList(" 2, 5 ,10.5")
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{2, 5, 10.5}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	got, err = parseFloatList("  ")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseFloatList("1,,2")
	require.Error(t, err)
	_, err = parseFloatList("1,abc")
	require.ErrorContains(t, err, "value 2")
}

func TestFormatFloatList_RoundTrip(t *testing.T) {
	in := []float64{0, 1.5708, 3.1416}
	got, err := parseFloatList(formatFloatList(in))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestRun_DefaultsSucceed(t *testing.T) {
	code, stdout, stderr := runArgs(t, "-seed", "1")
	require.Equal(t, 0, code, stderr)
	for _, want := range []string{"samples  500", "butterworth lowpass order=4 cutoff=0.1", "original", "noisy", "filtered", "Centroid [Hz]", "SNR [dB]"} {
		assert.Contains(t, stdout, want)
	}
}

func TestRun_SeedIsDeterministic(t *testing.T) {
	_, a, _ := runArgs(t, "-seed", "42", "-noise", "impulse", "-intensity", "0.3")
	_, b, _ := runArgs(t, "-seed", "42", "-noise", "impulse", "-intensity", "0.3")

	// The first line carries the run id.
	la := strings.SplitN(a, "\n", 2)
	lb := strings.SplitN(b, "\n", 2)
	require.Len(t, la, 2)
	require.Len(t, lb, 2)
	assert.NotEqual(t, la[0], lb[0])
	assert.Equal(t, la[1], lb[1])
}

func TestRun_Errors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"unknown noise", []string{"-noise", "pink"}, 1, "noise"},
		{"unknown filter", []string{"-filter", "chebyshev"}, 1, "filter"},
		{"cutoff out of range", []string{"-cutoff", "1.5"}, 1, "filter"},
		{"length mismatch", []string{"-amps", "1,2"}, 1, "synthesize"},
		{"bad list", []string{"-freqs", "1,x"}, 2, "-freqs"},
		{"bad flag", []string{"-nope"}, 2, ""},
		{"stray args", []string{"extra"}, 2, "unexpected arguments"},
		{"bad log level", []string{"-log-level", "loud"}, 2, "logging"},
		{"too many samples", []string{"-max-samples", "100"}, 1, "synthesize"},
		{"unknown window", []string{"-filter", "firwin", "-window", "bartlett"}, 1, "window"},
		{"order beyond signal", []string{"-filter", "firwin", "-order", "1000000000"}, 1, "filter"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runArgs(t, tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Contains(t, stderr, tc.msg)
		})
	}
}

func TestRun_FIRWindow(t *testing.T) {
	code, stdout, stderr := runArgs(t, "-seed", "2", "-filter", "firwin", "-order", "40", "-window", "kaiser")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "firwin lowpass order=40 cutoff=0.1 window=kaiser")
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-h"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "Usage: signalnoise")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := run(ctx, quick, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "context canceled")
}

func TestRun_WritesPlots(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "run.png")
	htmlPath := filepath.Join(dir, "run.html")

	code, _, stderr := runArgs(t, "-seed", "3", "-filter", "firwin", "-order", "40", "-cutoff", "0.1",
		"-png", pngPath, "-html", htmlPath, "-max-points", "300")
	require.Equal(t, 0, code, stderr)

	img, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	require.Greater(t, len(img), 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), img[:8])

	page, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Filtered Signal")
}
