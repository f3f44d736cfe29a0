// internal/benchmark/measure_test.go
package benchmark

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ledraw1/pluginperf/internal/audio"
	"github.com/ledraw1/pluginperf/internal/plugins"
)

// scriptedProcessor records its lifecycle and burns a configurable amount
// of time per call.
type scriptedProcessor struct {
	events       []string
	calls32      int
	calls64      int
	block        int
	latency      int
	spinFor      time.Duration
	failPrepare  bool
	panicOnBlock int
}

func (p *scriptedProcessor) Prepare(sampleRate float64, blockSize int) error {
	p.events = append(p.events, fmt.Sprintf("prepare:%v:%d", sampleRate, blockSize))
	if p.failPrepare {
		return errors.New("no memory for block buffers")
	}
	p.block = blockSize
	return nil
}

func (p *scriptedProcessor) Release() {
	p.events = append(p.events, "release")
}

func (p *scriptedProcessor) SetNonRealtime(nonRealtime bool) {
	p.events = append(p.events, fmt.Sprintf("nonrealtime:%v", nonRealtime))
}

func (p *scriptedProcessor) SetPrecision(prec plugins.Precision) {
	p.events = append(p.events, "precision:"+prec.String())
}

func (p *scriptedProcessor) SupportsDoublePrecision() bool { return true }

func (p *scriptedProcessor) Latency() int { return p.latency }

func (p *scriptedProcessor) Process32(buf *audio.Buffer[float32], events *plugins.EventBuffer) {
	p.calls32++
	p.work()
}

func (p *scriptedProcessor) Process64(buf *audio.Buffer[float64], events *plugins.EventBuffer) {
	p.calls64++
	p.work()
}

func (p *scriptedProcessor) Parameters() []*plugins.Parameter { return nil }

func (p *scriptedProcessor) work() {
	if p.panicOnBlock != 0 && p.block == p.panicOnBlock {
		panic(fmt.Sprintf("cannot process block %d", p.block))
	}
	if p.spinFor > 0 {
		start := time.Now()
		for time.Since(start) < p.spinFor {
		}
	}
}

func testConfig(proc plugins.Processor) Config {
	return Config{
		Proc:       proc,
		BlockSize:  512,
		Channels:   2,
		SampleRate: 48000,
		WarmupRuns: 5,
		TimedRuns:  20,
		Precision:  plugins.Precision32,
	}
}

func TestMeasureCallCounts(t *testing.T) {
	t.Parallel()

	proc := &scriptedProcessor{latency: 42}
	stats, err := Measure(testConfig(proc))
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}
	if proc.calls32 != 25 {
		t.Fatalf("Process32 called %d times, want warmup+timed = 25", proc.calls32)
	}
	if proc.calls64 != 0 {
		t.Fatalf("Process64 called %d times at 32-bit precision", proc.calls64)
	}
	if stats.LatencySamples != 42 {
		t.Fatalf("latency = %d, want the processor-reported 42", stats.LatencySamples)
	}
}

func TestMeasureLifecycle(t *testing.T) {
	t.Parallel()

	proc := &scriptedProcessor{}
	if _, err := Measure(testConfig(proc)); err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	want := []string{"release", "nonrealtime:false", "precision:32f", "prepare:48000:512"}
	if len(proc.events) < len(want)+1 {
		t.Fatalf("too few lifecycle events: %v", proc.events)
	}
	for i, ev := range want {
		if proc.events[i] != ev {
			t.Fatalf("lifecycle event %d = %q, want %q (all: %v)", i, proc.events[i], ev, proc.events)
		}
	}
	if last := proc.events[len(proc.events)-1]; last != "release" {
		t.Fatalf("final lifecycle event = %q, want release", last)
	}
}

func TestMeasureDoublePrecisionPath(t *testing.T) {
	t.Parallel()

	proc := &scriptedProcessor{}
	cfg := testConfig(proc)
	cfg.Precision = plugins.Precision64

	if _, err := Measure(cfg); err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}
	if proc.calls64 != 25 || proc.calls32 != 0 {
		t.Fatalf("expected 25 double-precision calls, got 64f=%d 32f=%d", proc.calls64, proc.calls32)
	}
}

func TestMeasurePrepareFailure(t *testing.T) {
	t.Parallel()

	proc := &scriptedProcessor{failPrepare: true}
	_, err := Measure(testConfig(proc))
	if err == nil {
		t.Fatal("expected error when Prepare fails")
	}
	if !strings.Contains(err.Error(), "prepare for block 512") {
		t.Fatalf("error does not identify the failing stage: %v", err)
	}
	if proc.calls32 != 0 {
		t.Fatalf("processor was called %d times despite failed Prepare", proc.calls32)
	}
}

func TestMeasureRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	proc := &scriptedProcessor{}
	cfg := testConfig(proc)
	cfg.BlockSize = 0
	if _, err := Measure(cfg); err == nil {
		t.Fatal("expected error for non-positive block size")
	}
	if len(proc.events) != 0 {
		t.Fatalf("processor touched despite invalid config: %v", proc.events)
	}

	cfg = testConfig(proc)
	cfg.Channels = -1
	if _, err := Measure(cfg); err == nil {
		t.Fatal("expected error for non-positive channel count")
	}

	cfg = testConfig(proc)
	cfg.SampleRate = 0
	if _, err := Measure(cfg); err == nil {
		t.Fatal("expected error for non-positive sample rate")
	}

	if _, err := Measure(Config{BlockSize: 512, Channels: 2, SampleRate: 48000}); err == nil {
		t.Fatal("expected error for nil processor")
	}
}

func TestMeasureZeroTimedRuns(t *testing.T) {
	t.Parallel()

	proc := &scriptedProcessor{latency: 7}
	cfg := testConfig(proc)
	cfg.WarmupRuns = 0
	cfg.TimedRuns = 0

	stats, err := Measure(cfg)
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}
	if proc.calls32 != 0 {
		t.Fatalf("expected no calls, got %d", proc.calls32)
	}
	zero := Stats{LatencySamples: 7}
	if stats != zero {
		t.Fatalf("zero iterations should yield zero stats plus latency, got %+v", stats)
	}
}

func TestMeasureFixedCostProcessor(t *testing.T) {
	proc := &scriptedProcessor{spinFor: 100 * time.Microsecond}
	cfg := testConfig(proc)
	cfg.WarmupRuns = 3
	cfg.TimedRuns = 15

	stats, err := Measure(cfg)
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	// The spin guarantees at least 100µs per call; the upper bound is loose
	// to tolerate slow machines.
	if stats.MedianUS < 99 || stats.MedianUS > 5000 {
		t.Fatalf("median %vµs outside the plausible range for a 100µs processor", stats.MedianUS)
	}
	if stats.MeanUS < 99 {
		t.Fatalf("mean %vµs below the spin floor", stats.MeanUS)
	}

	window := 512.0 * 1e6 / 48000.0
	wantRT := stats.MeanUS / window * 100
	if !almostEqual(stats.RTPct, wantRT, 1e-9) {
		t.Fatalf("RTPct = %v, want %v", stats.RTPct, wantRT)
	}
	if !almostEqual(stats.DSPLoadPct, stats.RTPct, 1e-9*stats.RTPct) {
		t.Fatalf("DSPLoadPct %v diverges from RTPct %v", stats.DSPLoadPct, stats.RTPct)
	}
	if stats.MinUS > stats.MedianUS || stats.MedianUS > stats.P95US || stats.P95US > stats.MaxUS {
		t.Fatalf("quantiles not monotone: %+v", stats)
	}
}
