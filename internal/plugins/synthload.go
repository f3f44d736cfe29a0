// internal/plugins/synthload.go
package plugins

import (
	"math"
	"time"

	"github.com/chewxy/math32"

	"github.com/ledraw1/pluginperf/internal/audio"
)

// synthload is the controllable-cost foil: audio passes through unchanged
// while the processor burns a configurable amount of CPU per sample and
// optionally sleeps per block. It reports no native 64-bit support, which
// makes it the natural target for exercising the precision downgrade.
type synthload struct {
	base
	cpuLoad *Parameter
	delayUS *Parameter
	latency *Parameter

	sink float64
}

func newSynthLoad() Processor {
	s := &synthload{}
	s.cpuLoad = NewIntParam("cpuload", "CPU Load", "sin/sample", 0, 256, 0)
	s.delayUS = NewIntParam("delay_us", "Block Delay", "µs", 0, 5000, 0)
	s.latency = NewIntParam("latency", "Reported Latency", "samples", 0, 4096, 0)
	s.params = []*Parameter{s.cpuLoad, s.delayUS, s.latency}
	return s
}

func (s *synthload) SupportsDoublePrecision() bool {
	return false
}

func (s *synthload) Latency() int {
	return int(math.Round(s.latency.Plain()))
}

func (s *synthload) Process32(buf *audio.Buffer[float32], events *EventBuffer) {
	load := int(math.Round(s.cpuLoad.Plain()))
	if load > 0 {
		var acc float32
		for ch := 0; ch < buf.Channels(); ch++ {
			for _, sample := range buf.Channel(ch) {
				x := sample
				for k := 0; k < load; k++ {
					x = math32.Sin(x + 0.5)
				}
				acc += x
			}
		}
		s.sink += float64(acc)
	}
	s.delay()
}

func (s *synthload) Process64(buf *audio.Buffer[float64], events *EventBuffer) {
	load := int(math.Round(s.cpuLoad.Plain()))
	if load > 0 {
		var acc float64
		for ch := 0; ch < buf.Channels(); ch++ {
			for _, sample := range buf.Channel(ch) {
				x := sample
				for k := 0; k < load; k++ {
					x = math.Sin(x + 0.5)
				}
				acc += x
			}
		}
		s.sink += acc
	}
	s.delay()
}

// delay sleeps synchronously inside the process call; the blocked time is
// billed to the call like any other processing cost.
func (s *synthload) delay() {
	if us := int(math.Round(s.delayUS.Plain())); us > 0 {
		time.Sleep(time.Duration(us) * time.Microsecond)
	}
}

// spinwait busy-waits a fixed duration per call regardless of block size.
// Its cost is deterministic, which makes it the end-to-end check target.
type spinwait struct {
	base
	procUS *Parameter
}

func newSpinWait() Processor {
	w := &spinwait{}
	w.procUS = NewIntParam("proc_us", "Processing Time", "µs", 0, 10000, 100)
	w.params = []*Parameter{w.procUS}
	return w
}

func (w *spinwait) Process32(buf *audio.Buffer[float32], events *EventBuffer) {
	w.spin()
}

func (w *spinwait) Process64(buf *audio.Buffer[float64], events *EventBuffer) {
	w.spin()
}

func (w *spinwait) spin() {
	d := time.Duration(math.Round(w.procUS.Plain())) * time.Microsecond
	if d <= 0 {
		return
	}
	start := time.Now()
	for time.Since(start) < d {
	}
}
