package stats

import (
	"fmt"
	"math"

	mfstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"godice/domain/analysis"
	"godice/domain/core"
	"godice/ports"
)

// OneSampleTTest is the parametric non-inferiority test: a one-sided
// one-sample Student's t-test of the null "population mean <= threshold"
// against "population mean > threshold", with threshold = referenceMean
// minus the candidate margin.
type OneSampleTTest struct{}

// NewOneSampleTTest creates the parametric test.
func NewOneSampleTTest() *OneSampleTTest {
	return &OneSampleTTest{}
}

// Name returns the test name.
func (t *OneSampleTTest) Name() string {
	return "one_sample_t_greater"
}

// Evaluate runs the test at the given margin. A p-value below the
// significance level means non-inferiority is established at that margin.
func (t *OneSampleTTest) Evaluate(sample analysis.Sample, referenceMean, margin float64) (analysis.TestResult, error) {
	n := sample.N()
	if n < 2 {
		return analysis.TestResult{}, fmt.Errorf("%w: one-sample t-test needs n >= 2, got %d", core.ErrInsufficientData, n)
	}

	mean, err := mfstats.Mean(sample.Values)
	if err != nil {
		return analysis.TestResult{}, err
	}
	stdDev, err := mfstats.StandardDeviationSample(sample.Values)
	if err != nil {
		return analysis.TestResult{}, err
	}
	if stdDev == 0 {
		return analysis.TestResult{}, fmt.Errorf("%w: sample has zero variance", core.ErrInsufficientData)
	}

	threshold := referenceMean - margin
	se := stdDev / math.Sqrt(float64(n))
	statistic := (mean - threshold) / se
	df := float64(n - 1)

	// one-sided "greater": survival of the t-distribution at the statistic
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue := 1 - dist.CDF(statistic)

	return analysis.TestResult{
		Statistic: statistic,
		PValue:    pValue,
		Margin:    margin,
		Threshold: threshold,
		DF:        df,
	}, nil
}

// Func binds the test to the solver's TestFunc port.
func (t *OneSampleTTest) Func() ports.TestFunc {
	return t.Evaluate
}
