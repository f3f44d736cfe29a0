// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"fmt"
	"strings"

	"github.com/ledraw1/pluginperf/internal/util"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/pluginperf.json"

	// DefaultSampleRate is the sample rate used when none is configured.
	DefaultSampleRate = 48000.0
	// DefaultChannels is the channel count used when none is configured.
	DefaultChannels = 2
	// DefaultBufferSizes is the block size sweep used when none is configured.
	DefaultBufferSizes = "32,64,128,256,512,1024,2048,4096,8192,16384"
	// DefaultWarmupRuns is the warm-up iteration count used when none is configured.
	DefaultWarmupRuns = 40
	// DefaultTimedRuns is the timed iteration count used when none is configured.
	DefaultTimedRuns = 400
	// DefaultPrecision is the processing precision used when none is configured.
	DefaultPrecision = "32"
)

// Config represents the top-level application configuration.
type Config struct {
	SampleRate  float64 `json:"sampleRate"`
	Channels    int     `json:"channels"`
	BufferSizes string  `json:"bufferSizes"`
	WarmupRuns  int     `json:"warmupRuns"`
	TimedRuns   int     `json:"timedRuns"`
	Precision   string  `json:"precision"`
	CSV         string  `json:"csv,omitempty"`
	JSON        bool    `json:"json"`
	SystemInfo  bool    `json:"systemInfo"`
	Live        bool    `json:"live"`
	Debug       bool    `json:"debug"`
	LogFile     string  `json:"logFile,omitempty"`
	ConfigPath  string  `json:"-"`
}

// SampleRateHz returns the configured sample rate, falling back to the
// default if not specified.
func (c Config) SampleRateHz() float64 {
	if c.SampleRate <= 0 {
		return DefaultSampleRate
	}
	return c.SampleRate
}

// ChannelCount returns the configured channel count, falling back to the
// default if not specified.
func (c Config) ChannelCount() int {
	if c.Channels <= 0 {
		return DefaultChannels
	}
	return c.Channels
}

// BufferSizeList parses the configured block size sweep, sorted ascending.
func (c Config) BufferSizeList() ([]int, error) {
	spec := strings.TrimSpace(c.BufferSizes)
	if spec == "" {
		spec = DefaultBufferSizes
	}
	sizes, err := util.ParseIntList(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid buffer size list %q: %w", spec, err)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("buffer size list %q is empty", spec)
	}
	return sizes, nil
}

// WarmupCount returns the warm-up iteration count. Negative values behave
// as zero.
func (c Config) WarmupCount() int {
	if c.WarmupRuns < 0 {
		return 0
	}
	return c.WarmupRuns
}

// TimedCount returns the timed iteration count. Negative values behave
// as zero.
func (c Config) TimedCount() int {
	if c.TimedRuns < 0 {
		return 0
	}
	return c.TimedRuns
}

// PrecisionLabel returns the configured precision spelling, falling back
// to the default if not specified.
func (c Config) PrecisionLabel() string {
	if p := strings.TrimSpace(c.Precision); p != "" {
		return p
	}
	return DefaultPrecision
}

// LogFilePath returns the path to the application log file, applying a
// default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "pluginperf.log"
}
