// internal/plugins/builtins.go
package plugins

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/ledraw1/pluginperf/internal/audio"
)

// base carries the bookkeeping shared by every built-in processor.
type base struct {
	sampleRate  float64
	blockSize   int
	prepared    bool
	nonRealtime bool
	precision   Precision
	params      []*Parameter
}

func (b *base) Prepare(sampleRate float64, blockSize int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("prepare: sample rate %v is not positive", sampleRate)
	}
	if blockSize <= 0 {
		return fmt.Errorf("prepare: block size %d is not positive", blockSize)
	}
	b.sampleRate = sampleRate
	b.blockSize = blockSize
	b.prepared = true
	return nil
}

func (b *base) Release() {
	b.prepared = false
}

func (b *base) SetNonRealtime(nonRealtime bool) {
	b.nonRealtime = nonRealtime
}

func (b *base) SetPrecision(p Precision) {
	b.precision = p
}

func (b *base) SupportsDoublePrecision() bool {
	return true
}

func (b *base) Latency() int {
	return 0
}

func (b *base) Parameters() []*Parameter {
	return b.params
}

func (b *base) param(id string) *Parameter {
	for _, p := range b.params {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// passthrough leaves the buffer untouched: the zero-cost baseline.
type passthrough struct {
	base
}

func newPassthrough() Processor {
	return &passthrough{}
}

func (p *passthrough) Process32(buf *audio.Buffer[float32], events *EventBuffer) {}

func (p *passthrough) Process64(buf *audio.Buffer[float64], events *EventBuffer) {}

// gain applies gain and an optional soft-clip drive stage in place.
type gain struct {
	base
	gainDB *Parameter
	drive  *Parameter
	bypass *Parameter
}

func newGain() Processor {
	g := &gain{}
	g.gainDB = NewFloatParam("gain_db", "Gain", "dB", -24, 24, 0)
	g.drive = NewFloatParam("drive", "Drive", "", 1, 10, 1)
	g.bypass = NewBoolParam("bypass", "Bypass", false)
	g.params = []*Parameter{g.gainDB, g.drive, g.bypass}
	return g
}

func (g *gain) Process32(buf *audio.Buffer[float32], events *EventBuffer) {
	if g.bypass.Bool() {
		return
	}
	amp := math32.Pow(10, float32(g.gainDB.Plain())/20)
	drive := float32(g.drive.Plain())
	for ch := 0; ch < buf.Channels(); ch++ {
		samples := buf.Channel(ch)
		if drive > 1 {
			norm := math32.Tanh(drive)
			for i := range samples {
				samples[i] = math32.Tanh(samples[i]*amp*drive) / norm
			}
			continue
		}
		for i := range samples {
			samples[i] *= amp
		}
	}
}

func (g *gain) Process64(buf *audio.Buffer[float64], events *EventBuffer) {
	if g.bypass.Bool() {
		return
	}
	amp := math.Pow(10, g.gainDB.Plain()/20)
	drive := g.drive.Plain()
	for ch := 0; ch < buf.Channels(); ch++ {
		samples := buf.Channel(ch)
		if drive > 1 {
			norm := math.Tanh(drive)
			for i := range samples {
				samples[i] = math.Tanh(samples[i]*amp*drive) / norm
			}
			continue
		}
		for i := range samples {
			samples[i] *= amp
		}
	}
}
