package ports

import (
	"godice/domain/analysis"
)

// TestFunc evaluates the one-sided one-sample non-inferiority test at a
// candidate margin: the null "population mean <= referenceMean - margin"
// against "population mean > referenceMean - margin".
type TestFunc func(sample analysis.Sample, referenceMean, margin float64) (analysis.TestResult, error)

// MarginSolverPort finds the margin in [0, 1] at which the test's p-value
// equals the significance level. ErrNoSignChange is the recoverable
// margin-not-found condition; callers must continue with an absent margin.
type MarginSolverPort interface {
	Solve(sample analysis.Sample, referenceMean float64, test TestFunc) (float64, error)
}
