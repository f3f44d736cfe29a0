// internal/benchmark/types.go
// Package benchmark measures the per-block processing cost of a plugin
// across block sizes and reduces the timings to summary statistics.
package benchmark

import (
	"github.com/ledraw1/pluginperf/internal/realtime"
)

// Stats summarizes the timed samples of one block-size measurement. All
// durations are in microseconds. An empty sample sequence reduces to the
// zero value, never to NaN or Inf.
type Stats struct {
	MeanUS         float64 `json:"mean_us"`
	MedianUS       float64 `json:"median_us"`
	P95US          float64 `json:"p95_us"`
	MinUS          float64 `json:"min_us"`
	MaxUS          float64 `json:"max_us"`
	StdDevUS       float64 `json:"std_dev_us"`
	CVPct          float64 `json:"cv_pct"`
	RTPct          float64 `json:"rt_pct"`
	DSPLoadPct     float64 `json:"dsp_load_pct"`
	LatencySamples int     `json:"latency_samples"`
}

// Result is the outcome of one block size within a sweep: either Stats or
// a failure message, never both.
type Result struct {
	BlockSize int            `json:"block_size"`
	Stats     *Stats         `json:"stats,omitempty"`
	Failure   string         `json:"failure,omitempty"`
	Sched     realtime.Grant `json:"sched"`
}

// OK reports whether the measurement succeeded.
func (r Result) OK() bool {
	return r.Failure == ""
}
