// internal/cli/benchmark_sweep.go
package pluginperf

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/ledraw1/pluginperf/internal/appconfig"
	"github.com/ledraw1/pluginperf/internal/benchmark"
	"github.com/ledraw1/pluginperf/internal/export"
	"github.com/ledraw1/pluginperf/internal/logging"
	"github.com/ledraw1/pluginperf/internal/plugins"
	"github.com/ledraw1/pluginperf/internal/sysinfo"
	"github.com/ledraw1/pluginperf/internal/tui"
	"github.com/ledraw1/pluginperf/internal/util"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
)

// benchmarkOneFn is indirected so multi-plugin runs can be tested without
// sweeping every registered plugin.
var benchmarkOneFn = benchmarkOne

// sweepFromConfig translates the merged configuration into the sweep the
// runner executes, plus the settings stamped on every exported row. A 64-bit
// request is downgraded to 32-bit, with a warning, when the processor cannot
// honor it.
func sweepFromConfig(cfg *appconfig.Config, proc plugins.Processor) (benchmark.Sweep, export.RunSettings, error) {
	sizes, err := cfg.BufferSizeList()
	if err != nil {
		return benchmark.Sweep{}, export.RunSettings{}, err
	}
	precision, err := plugins.ParsePrecision(cfg.PrecisionLabel())
	if err != nil {
		return benchmark.Sweep{}, export.RunSettings{}, err
	}
	if precision == plugins.Precision64 && !proc.SupportsDoublePrecision() {
		fmt.Fprintln(os.Stderr, yellow("WARNING: plugin does not support double precision processing; falling back to single precision measurements."))
		precision = plugins.Precision32
	}

	sweep := benchmark.Sweep{
		BlockSizes: sizes,
		Channels:   cfg.ChannelCount(),
		SampleRate: cfg.SampleRateHz(),
		WarmupRuns: cfg.WarmupCount(),
		TimedRuns:  cfg.TimedCount(),
		Precision:  precision,
	}
	settings := export.RunSettings{
		SampleRate: sweep.SampleRate,
		Channels:   sweep.Channels,
		Precision:  sweep.Precision,
		WarmupRuns: sweep.WarmupRuns,
		TimedRuns:  sweep.TimedRuns,
	}
	return sweep, settings, nil
}

// benchmarkOne sweeps a single processor and handles reporting and export.
// Every block size is attempted even when earlier ones fail; the returned
// error reflects failures only after the full sweep ran.
func benchmarkOne(cfg *appconfig.Config, proc plugins.Processor, desc plugins.Descriptor, csvPath string) error {
	sweep, settings, err := sweepFromConfig(cfg, proc)
	if err != nil {
		return err
	}

	var sys *sysinfo.Info
	if cfg.SystemInfo {
		info := sysinfo.Collect()
		sys = &info
	}

	log.Printf("Benchmarking %s across %d buffer sizes (%d warmup, %d timed runs each)",
		desc.Name, sweep.Planned(), sweep.WarmupRuns, sweep.TimedRuns)
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s [%s] %s", desc.Name, desc.Format, desc.Path)))

	var results []benchmark.Result
	if cfg.Live {
		results, err = tui.RunSweep(sweep, proc, desc)
		if err != nil {
			return err
		}
		// The live view owned the terminal while measuring, so the event
		// log and diagnostics are emitted after the fact.
		for _, r := range results {
			logResult(desc.Name, r)
			reportFindings(r)
		}
	} else {
		results = benchmark.RunSweep(sweep, proc, func(r benchmark.Result) {
			printResult(r)
			reportFindings(r)
			logResult(desc.Name, r)
		})
	}

	if csvPath != "" {
		if err := writeCSV(csvPath, desc, settings, sys, results); err != nil {
			return err
		}
	}
	if cfg.JSON {
		doc := export.NewRunDocument(desc, settings, results, sys)
		if _, err := export.WriteRunDocument(doc); err != nil {
			return err
		}
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d buffer sizes failed", failed, len(results))
	}
	return nil
}

// printResult renders one block size on stdout.
func printResult(r benchmark.Result) {
	if !r.OK() {
		fmt.Printf("  >>> block %5d: %s %s\n", r.BlockSize, red("FAILED"), r.Failure)
		return
	}
	s := r.Stats
	line := fmt.Sprintf("  >>> block %5d: mean %9.2fµs  median %9.2fµs  p95 %9.2fµs  rt %6.2f%%  dsp %6.2f%%",
		r.BlockSize, s.MeanUS, s.MedianUS, s.P95US, s.RTPct, s.DSPLoadPct)
	if !r.Sched.Realtime {
		line += fmt.Sprintf("  [sched: %s]", r.Sched.Policy)
	}
	fmt.Println(line)
}

// reportFindings prints the stability diagnostics for one block size on
// stderr. They are advisory; the measurement stands either way.
func reportFindings(r benchmark.Result) {
	if r.Stats == nil {
		return
	}
	for _, f := range benchmark.Diagnose(*r.Stats) {
		label := yellow("WARNING")
		if f.Severity == benchmark.SeverityError {
			label = red("ERROR")
		}
		fmt.Fprintf(os.Stderr, "%s [buffer=%d]: %s\n", label, r.BlockSize, f.Message)
	}
}

func logResult(plugin string, r benchmark.Result) {
	if r.OK() {
		logging.LogMeasurement(plugin, r.BlockSize, r.Stats)
		return
	}
	logging.LogMeasurement(plugin, r.BlockSize, r.Failure)
}

// writeCSV writes one row per successful block size. Failed sizes leave no
// row; the gap is the signal downstream tooling keys on.
func writeCSV(path string, desc plugins.Descriptor, settings export.RunSettings, sys *sysinfo.Info, results []benchmark.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create CSV file %q: %w", path, err)
	}
	defer file.Close()

	cw := export.NewCSVWriter(file, desc, settings, sys)
	for _, r := range results {
		if !r.OK() {
			continue
		}
		if err := cw.WriteResult(r.BlockSize, *r.Stats); err != nil {
			return fmt.Errorf("could not write CSV row: %w", err)
		}
	}
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("could not finalize CSV file %q: %w", path, err)
	}
	log.Printf("CSV results written to %s", path)
	return nil
}

// csvPathFor derives a per-plugin CSV path so multi-plugin runs do not
// overwrite each other's rows.
func csvPathFor(path, plugin string) string {
	if path == "" {
		return ""
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	if ext == "" {
		ext = ".csv"
	}
	return fmt.Sprintf("%s-%s%s", base, util.Slugify(plugin), ext)
}
