package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Sample Rate:     %g Hz\n", cfg.SampleRateHz())
	fmt.Fprintf(out, "  Channels:        %d\n", cfg.ChannelCount())
	fmt.Fprintf(out, "  Buffer Sizes:    %s\n", bufferSizesOrDefault(cfg))
	fmt.Fprintf(out, "  Warmup Runs:     %d\n", cfg.WarmupCount())
	fmt.Fprintf(out, "  Timed Runs:      %d\n", cfg.TimedCount())
	fmt.Fprintf(out, "  Precision:       %s\n", cfg.PrecisionLabel())
	fmt.Fprintf(out, "  CSV Output:      %s\n", orNone(cfg.CSV))
	fmt.Fprintf(out, "  JSON Output:     %v\n", cfg.JSON)
	fmt.Fprintf(out, "  System Info:     %v\n", cfg.SystemInfo)
	fmt.Fprintf(out, "  Live View:       %v\n", cfg.Live)
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
}

func bufferSizesOrDefault(cfg *Config) string {
	if cfg.BufferSizes == "" {
		return DefaultBufferSizes
	}
	return cfg.BufferSizes
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
