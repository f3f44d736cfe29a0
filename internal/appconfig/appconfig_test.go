// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"strings"
	"testing"
)

// TestAccessorFallbacks verifies that every zero-value accessor reports the
// documented default rather than a zero or an error.
func TestAccessorFallbacks(t *testing.T) {
	var cfg Config
	if cfg.SampleRateHz() != DefaultSampleRate {
		t.Fatalf("zero-value sample rate = %v", cfg.SampleRateHz())
	}
	if cfg.ChannelCount() != DefaultChannels {
		t.Fatalf("zero-value channels = %d", cfg.ChannelCount())
	}
	if cfg.PrecisionLabel() != DefaultPrecision {
		t.Fatalf("zero-value precision = %q", cfg.PrecisionLabel())
	}
	if cfg.LogFilePath() != "pluginperf.log" {
		t.Fatalf("zero-value log file = %q", cfg.LogFilePath())
	}

	sizes, err := cfg.BufferSizeList()
	if err != nil {
		t.Fatalf("BufferSizeList on zero value: %v", err)
	}
	if len(sizes) != 10 || sizes[0] != 32 || sizes[9] != 16384 {
		t.Fatalf("default buffer sizes = %v", sizes)
	}

	cfg.WarmupRuns = -3
	cfg.TimedRuns = -1
	if cfg.WarmupCount() != 0 || cfg.TimedCount() != 0 {
		t.Fatalf("negative counts should clamp to zero, got %d/%d", cfg.WarmupCount(), cfg.TimedCount())
	}
}

func TestBufferSizeListRejectsGarbage(t *testing.T) {
	cfg := Config{BufferSizes: "64,notanumber,256"}
	if _, err := cfg.BufferSizeList(); err == nil {
		t.Fatal("expected error for unparseable buffer size")
	}
}

func TestShowConfig(t *testing.T) {
	cfg := Config{
		SampleRate:  44100,
		Channels:    2,
		BufferSizes: "128,256",
		WarmupRuns:  5,
		TimedRuns:   100,
		Precision:   "64",
		CSV:         "out.csv",
	}

	var buf bytes.Buffer
	ShowConfig(&buf, "config/pluginperf.json", &cfg, Config{})
	out := buf.String()
	for _, want := range []string{"Config file: config/pluginperf.json", "44100", "128,256", "out.csv", "Precision:       64"} {
		if !strings.Contains(out, want) {
			t.Fatalf("ShowConfig output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	ShowConfig(&buf, "", nil, Config{})
	out = buf.String()
	if !strings.Contains(out, "No config file loaded (using defaults).") {
		t.Fatalf("fallback banner missing:\n%s", out)
	}
	if !strings.Contains(out, "48000") {
		t.Fatalf("fallback defaults missing:\n%s", out)
	}
}
