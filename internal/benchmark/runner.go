// internal/benchmark/runner.go
package benchmark

import (
	"github.com/ledraw1/pluginperf/internal/plugins"
	"github.com/ledraw1/pluginperf/internal/realtime"
)

// RunSweep measures every positive block size in request order, building a
// fresh real-time context per size. A failed size is recorded as a failure
// Result and the sweep continues with the next size. observe, when non-nil,
// fires after each result is recorded.
func RunSweep(sweep Sweep, proc plugins.Processor, observe func(Result)) []Result {
	results := make([]Result, 0, len(sweep.BlockSizes))
	for _, blockSize := range sweep.BlockSizes {
		if blockSize <= 0 {
			continue
		}

		cfg := Config{
			Proc:       proc,
			BlockSize:  blockSize,
			Channels:   sweep.Channels,
			SampleRate: sweep.SampleRate,
			WarmupRuns: sweep.WarmupRuns,
			TimedRuns:  sweep.TimedRuns,
			Precision:  sweep.Precision,
		}

		period := cfg.Period()
		ctx := realtime.New(realtime.Hints{Period: period, Budget: period / 2})

		var stats Stats
		err := ctx.Run(func() error {
			var merr error
			stats, merr = Measure(cfg)
			return merr
		})

		result := Result{BlockSize: blockSize, Sched: ctx.Grant()}
		if err != nil {
			result.Failure = err.Error()
		} else {
			s := stats
			result.Stats = &s
		}

		results = append(results, result)
		if observe != nil {
			observe(result)
		}
	}
	return results
}
