// internal/plugins/processor.go
// Package plugins defines the processing unit a benchmark drives, the
// parameter and preset model around it, and the registry of built-in units.
package plugins

import (
	"encoding/json"
	"fmt"

	"github.com/ledraw1/pluginperf/internal/audio"
)

// Precision selects the numeric sample width a processor runs at. It is
// fixed before processing begins and never mixed within one run.
type Precision int

const (
	// Precision32 processes 32-bit float samples.
	Precision32 Precision = iota
	// Precision64 processes 64-bit float samples.
	Precision64
)

// String returns the label used in CSV rows and result documents.
func (p Precision) String() string {
	if p == Precision64 {
		return "64f"
	}
	return "32f"
}

// ParsePrecision maps the CLI spellings onto a Precision.
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "32", "32f", "single":
		return Precision32, nil
	case "64", "64f", "double":
		return Precision64, nil
	}
	return Precision32, fmt.Errorf("unknown precision %q (want 32 or 64)", s)
}

// MarshalJSON encodes the precision as its label.
func (p Precision) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes any accepted precision spelling.
func (p *Precision) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePrecision(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Event is one timestamped control message presented alongside audio.
type Event struct {
	Frame int
	Data  [3]byte
}

// EventBuffer carries the events for a single process call. The measurement
// loop always presents it empty.
type EventBuffer struct {
	events []Event
}

// Add appends an event.
func (b *EventBuffer) Add(e Event) {
	b.events = append(b.events, e)
}

// Len returns the number of pending events.
func (b *EventBuffer) Len() int {
	return len(b.events)
}

// Clear drops all pending events, keeping capacity.
func (b *EventBuffer) Clear() {
	b.events = b.events[:0]
}

// Events returns the pending events in insertion order.
func (b *EventBuffer) Events() []Event {
	return b.events
}

// Processor is the unit under test. Callers own the call discipline: one
// goroutine at a time, Prepare after Release, precision fixed before the
// first Process call.
type Processor interface {
	// Prepare sizes internal state for the sample rate and block size of
	// the next run.
	Prepare(sampleRate float64, blockSize int) error
	// Release drops all state tied to a previous Prepare.
	Release()
	// SetNonRealtime switches between real-time and offline processing mode.
	SetNonRealtime(nonRealtime bool)
	// SetPrecision selects the sample width for subsequent processing.
	SetPrecision(p Precision)
	// SupportsDoublePrecision reports whether Process64 does native 64-bit
	// work rather than a 32-bit fallback.
	SupportsDoublePrecision() bool
	// Latency reports the processing latency in samples.
	Latency() int
	// Process32 processes one block of 32-bit samples in place.
	Process32(buf *audio.Buffer[float32], events *EventBuffer)
	// Process64 processes one block of 64-bit samples in place.
	Process64(buf *audio.Buffer[float64], events *EventBuffer)
	// Parameters returns the parameter set in index order.
	Parameters() []*Parameter
}

// StateProvider is implemented by processors whose full state can be
// captured into and restored from a preset.
type StateProvider interface {
	State() []byte
	SetState(data []byte) error
}
