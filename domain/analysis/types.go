package analysis

import (
	"math"

	"godice/domain/core"
)

// DefaultAlpha is the significance level gating the non-inferiority verdict.
const DefaultAlpha = 0.05

// Sample is the ordered sequence of measurements extracted from one column
// of the input table, missing values already dropped. It is never mutated
// after loading.
type Sample struct {
	Column  core.ColumnKey `json:"column"`
	Values  []float64      `json:"values"`
	Source  string         `json:"source"`  // input file path
	Dropped int            `json:"dropped"` // cells skipped as missing or unparseable
}

// N returns the sample size.
func (s Sample) N() int { return len(s.Values) }

// Descriptive holds the summary statistics of a Sample.
// INVARIANTS:
// - StdDev is the sample standard deviation (n-1 denominator)
// - Q1/Q3 are linear-interpolated percentiles, IQR = Q3 - Q1
type Descriptive struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	IQR    float64 `json:"iqr"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	N      int     `json:"n"`
}

// ReferenceValues are the two user-supplied scalars. The median is display
// only; the mean anchors the non-inferiority threshold.
type ReferenceValues struct {
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
}

// TestResult is the outcome of one evaluation of the one-sided one-sample
// test at a given margin.
type TestResult struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	Margin    float64 `json:"margin"`
	Threshold float64 `json:"threshold"` // reference mean - margin
	DF        float64 `json:"df"`        // n - 1
}

// verdictTolerance absorbs the root finder's convergence error: the
// p-value re-evaluated at the solved margin sits within ~1e-11 of alpha
// on either side, and the boundary must not flip on that noise.
const verdictTolerance = 1e-9

// Pass reports whether non-inferiority is established at the given alpha.
// The comparison is non-strict: a p-value at alpha (within the numeric
// tolerance) passes, so the margin the solver converges to is itself a
// passing margin.
func (r TestResult) Pass(alpha float64) bool {
	return r.PValue <= alpha+verdictTolerance
}

// MarginResult carries the solved non-inferiority margin. Absent when the
// objective has no sign change over the search bracket; the run continues
// with the fields marked unavailable.
type MarginResult struct {
	Margin  float64 `json:"margin"`
	Percent float64 `json:"percent"` // margin / reference mean * 100
	Found   bool    `json:"found"`
	// PercentValid is false when the reference mean is zero and the
	// percentage cannot be derived.
	PercentValid bool `json:"percent_valid"`
}

// Report aggregates everything the run computed for presentation.
type Report struct {
	RunID      core.RunID      `json:"run_id"`
	Source     string          `json:"source"`
	Stats      Descriptive     `json:"stats"`
	References ReferenceValues `json:"references"`
	Margin     MarginResult    `json:"margin"`
	Test       *TestResult     `json:"test,omitempty"` // nil when the margin was not found
	Alpha      float64         `json:"alpha"`
}

// Verdict returns the literal Pass/Fail label for the report.
func (r Report) Verdict() string {
	if r.Test != nil && r.Test.Pass(r.Alpha) {
		return "Pass"
	}
	return "Fail"
}

// Percent derives the margin as a percentage of the reference mean.
// A zero reference mean has no meaningful percentage and reports ok=false
// rather than an infinity.
func Percent(margin, referenceMean float64) (pct float64, ok bool) {
	if referenceMean == 0 || math.IsNaN(referenceMean) {
		return 0, false
	}
	return margin / referenceMean * 100, true
}
