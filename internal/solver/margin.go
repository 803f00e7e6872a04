package solver

import (
	"fmt"

	"godice/domain/analysis"
	"godice/domain/core"
	"godice/internal"
	"godice/ports"
)

// Search bracket for the non-inferiority margin. Dice coefficients live in
// [0, 1], so a degradation larger than the whole scale is meaningless.
const (
	bracketLo = 0.0
	bracketHi = 1.0
)

// MarginSolver locates the margin at which the test's p-value crosses the
// significance level. Implements ports.MarginSolverPort.
type MarginSolver struct {
	alpha  float64
	logger *internal.Logger
}

// NewMarginSolver creates a solver for the given significance level.
func NewMarginSolver(alpha float64, logger *internal.Logger) *MarginSolver {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &MarginSolver{alpha: alpha, logger: logger}
}

// Solve returns the margin m in [0, 1] with p(m) = alpha. The p-value is
// monotonically decreasing in the margin (larger margin, lower threshold,
// larger statistic), so at most one root exists in the bracket. When the
// objective does not change sign across the bracket the margin does not
// exist and core.ErrNoSignChange is returned; callers treat that as an
// absent result, not a failure of the run.
func (s *MarginSolver) Solve(sample analysis.Sample, referenceMean float64, test ports.TestFunc) (float64, error) {
	objective := func(margin float64) (float64, error) {
		result, err := test(sample, referenceMean, margin)
		if err != nil {
			return 0, err
		}
		return result.PValue - s.alpha, nil
	}

	// Diagnostic sweep across the bracket; has no effect on the result.
	for _, margin := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		v, err := objective(margin)
		if err != nil {
			return 0, err
		}
		s.logger.Debug("objective at margin %.2f: %g", margin, v)
	}

	fStart, err := objective(bracketLo)
	if err != nil {
		return 0, err
	}
	fEnd, err := objective(bracketHi)
	if err != nil {
		return 0, err
	}
	if fStart*fEnd > 0 {
		return 0, fmt.Errorf("%w: f(0)=%g, f(1)=%g", core.ErrNoSignChange, fStart, fEnd)
	}

	root, err := Brent(objective, bracketLo, bracketHi, DefaultXTol, DefaultRTol, DefaultMaxIter)
	if err != nil {
		return 0, err
	}
	return root, nil
}
