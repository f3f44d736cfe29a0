// internal/cli/benchmark_sweep_test.go
package pluginperf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledraw1/pluginperf/internal/appconfig"
	"github.com/ledraw1/pluginperf/internal/audio"
	"github.com/ledraw1/pluginperf/internal/benchmark"
	"github.com/ledraw1/pluginperf/internal/export"
	"github.com/ledraw1/pluginperf/internal/plugins"
)

// explodingProc panics on every process call, standing in for a plugin
// that crashes under load.
type explodingProc struct{}

func (p *explodingProc) Prepare(sampleRate float64, blockSize int) error { return nil }
func (p *explodingProc) Release()                                        {}
func (p *explodingProc) SetNonRealtime(nonRealtime bool)                 {}
func (p *explodingProc) SetPrecision(plugins.Precision)                  {}
func (p *explodingProc) SupportsDoublePrecision() bool                   { return true }
func (p *explodingProc) Latency() int                                    { return 0 }
func (p *explodingProc) Parameters() []*plugins.Parameter                { return nil }

func (p *explodingProc) Process32(*audio.Buffer[float32], *plugins.EventBuffer) {
	panic("exploding")
}

func (p *explodingProc) Process64(*audio.Buffer[float64], *plugins.EventBuffer) {
	panic("exploding")
}

func TestSweepFromConfig(t *testing.T) {
	cfg := &appconfig.Config{
		SampleRate:  96000,
		Channels:    4,
		BufferSizes: "128,32",
		WarmupRuns:  3,
		TimedRuns:   9,
		Precision:   "64",
	}
	proc, _, err := plugins.New("gain")
	if err != nil {
		t.Fatalf("New(gain): %v", err)
	}

	sweep, settings, err := sweepFromConfig(cfg, proc)
	if err != nil {
		t.Fatalf("sweepFromConfig error: %v", err)
	}
	if len(sweep.BlockSizes) != 2 || sweep.BlockSizes[0] != 32 || sweep.BlockSizes[1] != 128 {
		t.Fatalf("expected sorted sizes [32 128], got %v", sweep.BlockSizes)
	}
	if sweep.SampleRate != 96000 || sweep.Channels != 4 || sweep.WarmupRuns != 3 || sweep.TimedRuns != 9 {
		t.Fatalf("sweep does not mirror config: %+v", sweep)
	}
	if sweep.Precision != plugins.Precision64 {
		t.Fatalf("expected 64-bit precision for a capable processor, got %v", sweep.Precision)
	}
	if settings.SampleRate != sweep.SampleRate || settings.Precision != sweep.Precision || settings.TimedRuns != sweep.TimedRuns {
		t.Fatalf("settings do not mirror sweep: %+v", settings)
	}
}

func TestSweepFromConfigDowngradesPrecision(t *testing.T) {
	cfg := &appconfig.Config{BufferSizes: "64", Precision: "64"}
	proc, _, err := plugins.New("synthload")
	if err != nil {
		t.Fatalf("New(synthload): %v", err)
	}
	if proc.SupportsDoublePrecision() {
		t.Fatal("synthload unexpectedly supports double precision")
	}

	sweep, settings, err := sweepFromConfig(cfg, proc)
	if err != nil {
		t.Fatalf("sweepFromConfig error: %v", err)
	}
	if sweep.Precision != plugins.Precision32 {
		t.Fatalf("expected downgrade to 32-bit, got %v", sweep.Precision)
	}
	if settings.Precision != plugins.Precision32 {
		t.Fatalf("expected settings to record the downgraded precision, got %v", settings.Precision)
	}
}

func TestSweepFromConfigRejectsBadSizes(t *testing.T) {
	cfg := &appconfig.Config{BufferSizes: "32,noise,128"}
	proc, _, err := plugins.New("passthrough")
	if err != nil {
		t.Fatalf("New(passthrough): %v", err)
	}

	if _, _, err := sweepFromConfig(cfg, proc); err == nil {
		t.Fatal("expected error for unparsable buffer size list")
	}
}

func TestCSVPathFor(t *testing.T) {
	cases := []struct {
		path   string
		plugin string
		want   string
	}{
		{"results.csv", "gain", "results-gain.csv"},
		{"out/perf.csv", "Synth Load", "out/perf-synth-load.csv"},
		{"results", "gain", "results-gain.csv"},
		{"", "gain", ""},
	}
	for _, tc := range cases {
		if got := csvPathFor(tc.path, tc.plugin); got != tc.want {
			t.Errorf("csvPathFor(%q, %q) = %q, want %q", tc.path, tc.plugin, got, tc.want)
		}
	}
}

func TestWriteCSVSkipsFailedSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	desc := plugins.Descriptor{Name: "gain", Path: "builtin:gain", Format: "builtin"}
	settings := export.RunSettings{SampleRate: 48000, Channels: 2, WarmupRuns: 1, TimedRuns: 2}

	ok := benchmark.Result{BlockSize: 64, Stats: &benchmark.Stats{MeanUS: 10, MedianUS: 9, P95US: 12, MinUS: 8, MaxUS: 15}}
	failed := benchmark.Result{BlockSize: 128, Failure: "processor panic: exploding"}

	if err := writeCSV(path, desc, settings, nil, []benchmark.Result{ok, failed}); err != nil {
		t.Fatalf("writeCSV error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read CSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[1], "gain,builtin:gain,builtin,48000,2,") {
		t.Fatalf("unexpected row prefix: %s", lines[1])
	}
	if strings.Contains(string(data), "128") {
		t.Fatalf("failed size leaked into CSV:\n%s", data)
	}
}

func TestBenchmarkOneReportsFailures(t *testing.T) {
	cfg := &appconfig.Config{BufferSizes: "8", WarmupRuns: 0, TimedRuns: 1}
	desc := plugins.Descriptor{Name: "exploding", Path: "test:exploding", Format: "builtin"}

	err := benchmarkOne(cfg, &explodingProc{}, desc, "")
	if err == nil {
		t.Fatal("expected error when every block size fails")
	}
	if !strings.Contains(err.Error(), "1 of 1 buffer sizes failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBenchmarkOneHappyPath(t *testing.T) {
	cfg := &appconfig.Config{BufferSizes: "16", WarmupRuns: 1, TimedRuns: 3}
	proc, desc, err := plugins.New("passthrough")
	if err != nil {
		t.Fatalf("New(passthrough): %v", err)
	}

	if err := benchmarkOne(cfg, proc, desc, ""); err != nil {
		t.Fatalf("benchmarkOne error: %v", err)
	}
}

func TestRunBenchmarkPluginsAggregatesFailures(t *testing.T) {
	prevCfg := currentConfig
	prevFn := benchmarkOneFn
	t.Cleanup(func() {
		currentConfig = prevCfg
		benchmarkOneFn = prevFn
	})
	currentConfig = &appconfig.Config{BufferSizes: "8", TimedRuns: 1}

	var swept []string
	benchmarkOneFn = func(cfg *appconfig.Config, proc plugins.Processor, desc plugins.Descriptor, csvPath string) error {
		swept = append(swept, desc.Name)
		if desc.Name == "gain" {
			return errors.New("boom")
		}
		return nil
	}

	err := runBenchmarkPlugins()
	if err == nil || !strings.Contains(err.Error(), "gain: boom") {
		t.Fatalf("expected aggregated failure for gain, got %v", err)
	}
	if len(swept) != len(plugins.Names()) {
		t.Fatalf("expected all %d plugins swept, got %d", len(plugins.Names()), len(swept))
	}
}
