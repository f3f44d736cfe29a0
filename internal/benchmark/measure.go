// internal/benchmark/measure.go
package benchmark

import (
	"fmt"
	"time"

	"github.com/ledraw1/pluginperf/internal/audio"
	"github.com/ledraw1/pluginperf/internal/plugins"
)

// Measure runs the warm-up and timed loops for one configuration and
// reduces the timings to Stats. Scheduling is the caller's concern; Measure
// itself spawns no goroutines and blocks until done.
func Measure(cfg Config) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}

	proc := cfg.Proc
	proc.Release()
	proc.SetNonRealtime(false)
	proc.SetPrecision(cfg.Precision)
	// A fresh Prepare per block size forces the processor to resize its
	// internal buffers, so that cost surfaces in the first timed call.
	if err := proc.Prepare(cfg.SampleRate, cfg.BlockSize); err != nil {
		return Stats{}, fmt.Errorf("prepare for block %d: %w", cfg.BlockSize, err)
	}
	defer proc.Release()

	var durations []float64
	if cfg.Precision == plugins.Precision64 {
		durations = timeCalls[float64](cfg, proc.Process64)
	} else {
		durations = timeCalls[float32](cfg, proc.Process32)
	}

	latency := proc.Latency()
	stats := Reduce(durations, cfg.BlockSize, cfg.SampleRate)
	stats.LatencySamples = latency
	return stats, nil
}

// timeCalls drives the shared loop at one sample width. The same noise
// buffer and a cleared event buffer are presented on every call; the
// processor overwrites the buffer in place, so state carried between calls
// is the processor's own. Durations are appended in call order.
func timeCalls[S audio.Sample](cfg Config, call func(*audio.Buffer[S], *plugins.EventBuffer)) []float64 {
	buf := audio.Noise[S](cfg.Channels, cfg.BlockSize)
	events := &plugins.EventBuffer{}

	for i := 0; i < cfg.WarmupRuns; i++ {
		call(buf, events)
		events.Clear()
	}

	durations := make([]float64, 0, cfg.TimedRuns)
	for i := 0; i < cfg.TimedRuns; i++ {
		start := time.Now()
		call(buf, events)
		durations = append(durations, float64(time.Since(start).Nanoseconds())/1e3)
		events.Clear()
	}
	return durations
}
