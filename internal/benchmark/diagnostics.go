// internal/benchmark/diagnostics.go
package benchmark

import "fmt"

// Severity ranks a stability finding.
type Severity int

const (
	// SeverityWarning marks a measurement that is recorded but suspect.
	SeverityWarning Severity = iota
	// SeverityError marks a physically impossible measurement. Still
	// advisory: the measurement is recorded either way.
	SeverityError
)

// Finding is one advisory diagnostic about a Stats record.
type Finding struct {
	Severity Severity
	Message  string
}

const (
	// outlierRatioLimit flags tails more than this many times the median.
	outlierRatioLimit = 3.0
	// cvLimit flags relative spread above this percentage.
	cvLimit = 30.0
)

// Diagnose applies the stability heuristics to one block size's Stats.
// Findings never alter the Stats and never fail the measurement.
func Diagnose(s Stats) []Finding {
	var findings []Finding

	if s.MinUS > s.MedianUS || s.MedianUS > s.MeanUS {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("ordering sanity failed: min %.2fµs, median %.2fµs, mean %.2fµs",
				s.MinUS, s.MedianUS, s.MeanUS),
		})
	}

	if s.MedianUS > 0 && s.P95US/s.MedianUS > outlierRatioLimit {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("high outlier ratio: p95 %.2fµs is %.1fx the median %.2fµs (scheduling jitter or background load)",
				s.P95US, s.P95US/s.MedianUS, s.MedianUS),
		})
	}

	if s.CVPct > cvLimit {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("noisy measurement: coefficient of variation %.1f%% exceeds %.0f%% (consider more warm-up or timed runs)",
				s.CVPct, cvLimit),
		})
	}

	if s.MeanUS <= 0 || s.MedianUS <= 0 {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Message: fmt.Sprintf("invalid measurement: non-positive mean %.2fµs or median %.2fµs points at a clock defect",
				s.MeanUS, s.MedianUS),
		})
	}

	return findings
}
