package analysis

import (
	"math"
	"testing"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name   string
		margin float64
		mean   float64
		want   float64
		ok     bool
	}{
		{"ten percent", 0.9, 10, 9, true},
		{"whole scale", 1, 1, 100, true},
		{"zero margin", 0, 0.5, 0, true},
		{"zero reference", 0.5, 0, 0, false},
		{"nan reference", 0.5, math.NaN(), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Percent(tc.margin, tc.mean)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Percent = %g, want %g", got, tc.want)
			}
		})
	}
}

func TestTestResult_PassBoundary(t *testing.T) {
	// non-strict comparison: exactly alpha passes
	if !(TestResult{PValue: 0.05}).Pass(DefaultAlpha) {
		t.Error("p = alpha must pass")
	}
	// solver convergence noise around alpha must not flip the verdict
	if !(TestResult{PValue: 0.05 + 1e-11}).Pass(DefaultAlpha) {
		t.Error("p within tolerance of alpha must pass")
	}
	if (TestResult{PValue: 0.0500001}).Pass(DefaultAlpha) {
		t.Error("p clearly above alpha must fail")
	}
	if !(TestResult{PValue: 0.01}).Pass(DefaultAlpha) {
		t.Error("p below alpha must pass")
	}
}

func TestReport_Verdict(t *testing.T) {
	r := Report{Alpha: DefaultAlpha}
	if got := r.Verdict(); got != "Fail" {
		t.Errorf("verdict without a test result = %q, want Fail", got)
	}

	r.Test = &TestResult{PValue: 0.04}
	if got := r.Verdict(); got != "Pass" {
		t.Errorf("verdict = %q, want Pass", got)
	}
}

func TestSample_N(t *testing.T) {
	if (Sample{}).N() != 0 {
		t.Error("empty sample must have N 0")
	}
	if (Sample{Values: []float64{1, 2}}).N() != 2 {
		t.Error("N must count values")
	}
}
