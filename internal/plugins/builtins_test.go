// internal/plugins/builtins_test.go
package plugins

import (
	"math"
	"testing"
	"time"

	"github.com/ledraw1/pluginperf/internal/audio"
)

func filledBuffer32(channels, frames int, value float32) *audio.Buffer[float32] {
	buf := audio.NewBuffer[float32](channels, frames)
	for ch := 0; ch < channels; ch++ {
		samples := buf.Channel(ch)
		for i := range samples {
			samples[i] = value
		}
	}
	return buf
}

func buffersEqual32(a, b *audio.Buffer[float32]) bool {
	if a.Channels() != b.Channels() || a.Frames() != b.Frames() {
		return false
	}
	for ch := 0; ch < a.Channels(); ch++ {
		as, bs := a.Channel(ch), b.Channel(ch)
		for i := range as {
			if as[i] != bs[i] {
				return false
			}
		}
	}
	return true
}

func mustPrepare(t *testing.T, proc Processor, sampleRate float64, blockSize int) {
	t.Helper()
	if err := proc.Prepare(sampleRate, blockSize); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
}

func TestPassthroughLeavesBufferUntouched(t *testing.T) {
	t.Parallel()

	proc := newPassthrough()
	mustPrepare(t, proc, 48000, 64)

	buf := audio.Noise[float32](2, 64)
	want := audio.Noise[float32](2, 64)
	var events EventBuffer
	proc.Process32(buf, &events)
	if !buffersEqual32(buf, want) {
		t.Fatal("passthrough modified the buffer")
	}
}

func TestBasePrepareValidation(t *testing.T) {
	t.Parallel()

	proc := newPassthrough()
	if err := proc.Prepare(0, 64); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if err := proc.Prepare(48000, 0); err == nil {
		t.Fatal("expected error for zero block size")
	}
	if err := proc.Prepare(48000, -8); err == nil {
		t.Fatal("expected error for negative block size")
	}
}

func TestGainAppliesAmplitude(t *testing.T) {
	t.Parallel()

	proc := newGain()
	mustPrepare(t, proc, 48000, 16)
	setPlain(t, proc, "gain_db", 20)

	buf := filledBuffer32(2, 16, 0.01)
	var events EventBuffer
	proc.Process32(buf, &events)

	for ch := 0; ch < buf.Channels(); ch++ {
		for i, s := range buf.Channel(ch) {
			if math.Abs(float64(s)-0.1) > 1e-4 {
				t.Fatalf("channel %d sample %d = %v, want ~0.1 (+20 dB on 0.01)", ch, i, s)
			}
		}
	}
}

func TestGainBypassIdentity(t *testing.T) {
	t.Parallel()

	proc := newGain()
	mustPrepare(t, proc, 48000, 32)
	setPlain(t, proc, "gain_db", 24)
	setPlain(t, proc, "bypass", 1)

	buf := audio.Noise[float32](2, 32)
	want := audio.Noise[float32](2, 32)
	var events EventBuffer
	proc.Process32(buf, &events)
	if !buffersEqual32(buf, want) {
		t.Fatal("bypassed gain modified the buffer")
	}
}

func TestGainDriveSoftClips(t *testing.T) {
	t.Parallel()

	proc := newGain()
	mustPrepare(t, proc, 48000, 8)
	setPlain(t, proc, "drive", 10)

	buf := filledBuffer32(1, 8, 0.5)
	var events EventBuffer
	proc.Process32(buf, &events)

	// tanh(0.5*10)/tanh(10) saturates just below full scale.
	for i, s := range buf.Channel(0) {
		if s <= 0.5 || s > 1.0 {
			t.Fatalf("sample %d = %v, want soft-clipped into (0.5, 1.0]", i, s)
		}
	}
}

func TestGain64MatchesFormula(t *testing.T) {
	t.Parallel()

	proc := newGain()
	mustPrepare(t, proc, 48000, 4)
	setPlain(t, proc, "gain_db", 6)

	buf := audio.NewBuffer[float64](1, 4)
	in := []float64{0.1, -0.2, 0.3, 0.05}
	copy(buf.Channel(0), in)
	var events EventBuffer
	proc.Process64(buf, &events)

	amp := math.Pow(10, 6.0/20.0)
	for i, s := range buf.Channel(0) {
		if math.Abs(s-in[i]*amp) > 1e-12 {
			t.Fatalf("sample %d = %v, want %v", i, s, in[i]*amp)
		}
	}
}

func TestSynthLoadPassesAudioThrough(t *testing.T) {
	t.Parallel()

	proc := newSynthLoad()
	mustPrepare(t, proc, 48000, 64)
	setPlain(t, proc, "cpuload", 50)

	buf := audio.Noise[float32](2, 64)
	want := audio.Noise[float32](2, 64)
	var events EventBuffer
	proc.Process32(buf, &events)
	if !buffersEqual32(buf, want) {
		t.Fatal("synthload modified the buffer while burning CPU")
	}
}

func TestSynthLoadLatencyReporting(t *testing.T) {
	t.Parallel()

	proc := newSynthLoad()
	if got := proc.Latency(); got != 0 {
		t.Fatalf("default latency = %d, want 0", got)
	}
	setPlain(t, proc, "latency", 128)
	if got := proc.Latency(); got != 128 {
		t.Fatalf("latency = %d, want 128", got)
	}
}

func TestSynthLoadBlockDelay(t *testing.T) {
	proc := newSynthLoad()
	mustPrepare(t, proc, 48000, 32)
	setPlain(t, proc, "delay_us", 2000)

	buf := audio.Noise[float32](2, 32)
	var events EventBuffer
	start := time.Now()
	proc.Process32(buf, &events)
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Fatalf("process call took %v, want at least the 2ms block delay", elapsed)
	}
}

func TestSpinWaitFloor(t *testing.T) {
	proc := newSpinWait()
	mustPrepare(t, proc, 48000, 32)
	setPlain(t, proc, "proc_us", 200)

	buf := audio.Noise[float32](2, 32)
	var events EventBuffer
	start := time.Now()
	proc.Process32(buf, &events)
	if elapsed := time.Since(start); elapsed < 200*time.Microsecond {
		t.Fatalf("process call took %v, want at least 200µs", elapsed)
	}
}

func TestSpinWaitDefault(t *testing.T) {
	t.Parallel()

	proc := newSpinWait()
	p, err := FindParameter(proc, "proc_us")
	if err != nil {
		t.Fatalf("FindParameter: %v", err)
	}
	if got := p.Plain(); got != 100 {
		t.Fatalf("default proc_us = %v, want 100", got)
	}
}

func TestSupportsDoublePrecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"passthrough", true},
		{"gain", true},
		{"synthload", false},
		{"spinwait", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			proc, _, err := New(tt.name)
			if err != nil {
				t.Fatalf("New(%q): %v", tt.name, err)
			}
			if got := proc.SupportsDoublePrecision(); got != tt.want {
				t.Fatalf("SupportsDoublePrecision() = %v, want %v", got, tt.want)
			}
		})
	}
}

func setPlain(t *testing.T, proc Processor, id string, plain float64) {
	t.Helper()
	p, err := FindParameter(proc, id)
	if err != nil {
		t.Fatalf("FindParameter(%q): %v", id, err)
	}
	p.SetPlain(plain)
}
