// internal/export/csv.go
// Package export serializes benchmark outcomes: CSV rows for spreadsheet
// workflows and JSON run documents for archival.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ledraw1/pluginperf/internal/benchmark"
	"github.com/ledraw1/pluginperf/internal/plugins"
	"github.com/ledraw1/pluginperf/internal/sysinfo"
)

// RunSettings carries the per-run constants repeated on every CSV row.
type RunSettings struct {
	SampleRate float64           `json:"sample_rate"`
	Channels   int               `json:"channels"`
	Precision  plugins.Precision `json:"precision"`
	WarmupRuns int               `json:"warmup_runs"`
	TimedRuns  int               `json:"timed_runs"`
}

// baseColumns is the fixed row layout; downstream tooling parses columns
// by position.
var baseColumns = []string{
	"plugin_name", "plugin_path", "format", "sr", "channels", "precision",
	"warmup", "iterations", "block_size",
	"mean_us", "median_us", "p95_us", "min_us", "max_us", "std_dev_us",
	"cv_pct", "approx_rt_cpu_pct", "dsp_load_pct", "latency_samples",
}

// systemColumns are appended only when host info was collected.
var systemColumns = []string{
	"cpu_model", "physical_cores", "cpu_speed_mhz", "total_ram_gb", "os_name",
}

// CSVWriter streams one row per successful block-size measurement. The
// header is written before the first row.
type CSVWriter struct {
	w           *csv.Writer
	plugin      plugins.Descriptor
	settings    RunSettings
	sys         *sysinfo.Info
	wroteHeader bool
}

// NewCSVWriter builds a writer for one benchmark run. sys may be nil, in
// which case the system columns are omitted entirely.
func NewCSVWriter(w io.Writer, plugin plugins.Descriptor, settings RunSettings, sys *sysinfo.Info) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w), plugin: plugin, settings: settings, sys: sys}
}

// WriteResult appends the row for one block size.
func (cw *CSVWriter) WriteResult(blockSize int, stats benchmark.Stats) error {
	if !cw.wroteHeader {
		header := baseColumns
		if cw.sys != nil {
			header = append(append([]string{}, baseColumns...), systemColumns...)
		}
		if err := cw.w.Write(header); err != nil {
			return err
		}
		cw.wroteHeader = true
	}

	row := []string{
		cw.plugin.Name,
		cw.plugin.Path,
		cw.plugin.Format,
		strconv.FormatFloat(cw.settings.SampleRate, 'f', -1, 64),
		strconv.Itoa(cw.settings.Channels),
		cw.settings.Precision.String(),
		strconv.Itoa(cw.settings.WarmupRuns),
		strconv.Itoa(cw.settings.TimedRuns),
		strconv.Itoa(blockSize),
		formatUS(stats.MeanUS),
		formatUS(stats.MedianUS),
		formatUS(stats.P95US),
		formatUS(stats.MinUS),
		formatUS(stats.MaxUS),
		formatUS(stats.StdDevUS),
		formatUS(stats.CVPct),
		formatUS(stats.RTPct),
		formatUS(stats.DSPLoadPct),
		strconv.Itoa(stats.LatencySamples),
	}
	if cw.sys != nil {
		row = append(row,
			cw.sys.CPU.Model,
			strconv.Itoa(cw.sys.CPU.PhysicalCores),
			strconv.Itoa(cw.sys.CPU.SpeedMHz),
			strconv.FormatFloat(cw.sys.Memory.TotalGB, 'f', 2, 64),
			cw.sys.OS.Name,
		)
	}
	return cw.w.Write(row)
}

// Flush commits buffered rows and reports any deferred write error.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

func formatUS(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
