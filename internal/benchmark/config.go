// internal/benchmark/config.go
package benchmark

import (
	"errors"
	"fmt"
	"time"

	"github.com/ledraw1/pluginperf/internal/plugins"
)

// Config describes one block-size measurement. It is built fresh per size
// and never mutated afterwards. The processor is borrowed for the duration
// of the measurement, not owned.
type Config struct {
	Proc       plugins.Processor
	BlockSize  int
	Channels   int
	SampleRate float64
	WarmupRuns int
	TimedRuns  int
	Precision  plugins.Precision
}

// Validate rejects configurations the measurement loop must never see.
func (c Config) Validate() error {
	if c.Proc == nil {
		return errors.New("benchmark: nil processor")
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("benchmark: block size %d is not positive", c.BlockSize)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("benchmark: channel count %d is not positive", c.Channels)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("benchmark: sample rate %v is not positive", c.SampleRate)
	}
	if c.WarmupRuns < 0 {
		return fmt.Errorf("benchmark: warm-up count %d is negative", c.WarmupRuns)
	}
	if c.TimedRuns < 0 {
		return fmt.Errorf("benchmark: timed count %d is negative", c.TimedRuns)
	}
	return nil
}

// Period returns the wall-clock duration one block represents at the
// configured sample rate.
func (c Config) Period() time.Duration {
	if c.SampleRate <= 0 || c.BlockSize <= 0 {
		return 0
	}
	return time.Duration(float64(c.BlockSize) / c.SampleRate * float64(time.Second))
}

// Sweep describes a full run across block sizes against one processor.
type Sweep struct {
	BlockSizes []int
	Channels   int
	SampleRate float64
	WarmupRuns int
	TimedRuns  int
	Precision  plugins.Precision
}

// Planned counts the block sizes a sweep will actually measure.
func (s Sweep) Planned() int {
	n := 0
	for _, size := range s.BlockSizes {
		if size > 0 {
			n++
		}
	}
	return n
}
