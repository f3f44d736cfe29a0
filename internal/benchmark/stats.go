// internal/benchmark/stats.go
package benchmark

import (
	"math"
	"sort"
)

// Reduce converts per-call durations (µs) into Stats for the given block
// size and sample rate. The input slice is not modified. An empty sequence
// yields all-zero Stats.
func Reduce(durationsUS []float64, blockSize int, sampleRate float64) Stats {
	sorted := make([]float64, len(durationsUS))
	copy(sorted, durationsUS)
	sort.Float64s(sorted)

	n := len(sorted)
	var mean float64
	if n > 0 {
		var sum float64
		for _, d := range sorted {
			sum += d
		}
		mean = sum / float64(n)
	}

	// Population variance: deviations are divided by n, not n-1.
	var variance float64
	if n > 0 {
		for _, d := range sorted {
			diff := d - mean
			variance += diff * diff
		}
		variance /= float64(n)
	}
	stdDev := math.Sqrt(variance)

	var cv float64
	if mean > 0 {
		cv = stdDev / mean * 100
	}

	var minUS, maxUS float64
	if n > 0 {
		minUS, maxUS = sorted[0], sorted[n-1]
	}

	var rtPct float64
	if window := rtWindowUS(blockSize, sampleRate); window > 0 {
		rtPct = mean / window * 100
	}

	var dspLoad float64
	if blockSize > 0 && sampleRate > 0 {
		samplePeriodUS := 1e6 / sampleRate
		dspLoad = (mean / float64(blockSize)) / samplePeriodUS * 100
	}

	return Stats{
		MeanUS:     mean,
		MedianUS:   pick(sorted, 0.5),
		P95US:      pick(sorted, 0.95),
		MinUS:      minUS,
		MaxUS:      maxUS,
		StdDevUS:   stdDev,
		CVPct:      cv,
		RTPct:      rtPct,
		DSPLoadPct: dspLoad,
	}
}

// pick returns the sample at the floor of the interpolation position
// q*(n-1), clamped into range. No averaging between adjacent ranks.
func pick(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q * float64(len(sorted)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// rtWindowUS is the real-time budget one block represents, in microseconds.
func rtWindowUS(blockSize int, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(blockSize) * 1e6 / sampleRate
}
