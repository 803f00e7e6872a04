package solver

import (
	"fmt"
	"math"

	"godice/domain/core"
)

// Reference tolerance defaults: absolute 2e-12, relative 4 times the
// machine epsilon, 100 iterations.
const (
	DefaultXTol    = 2e-12
	DefaultRTol    = 8.881784197001252e-16
	DefaultMaxIter = 100
)

// Objective is a scalar function the root finder can evaluate. Evaluation
// may fail (the non-inferiority test rejects degenerate samples), which
// aborts the search.
type Objective func(x float64) (float64, error)

// Brent finds a root of f on the bracket [a, b] using Brent's method:
// inverse quadratic interpolation and secant steps guarded by bisection.
// The bracket must straddle the root; an endpoint that is exactly zero is
// returned as the root.
func Brent(f Objective, a, b, xtol, rtol float64, maxIter int) (float64, error) {
	xpre, xcur := a, b
	fpre, err := f(xpre)
	if err != nil {
		return 0, err
	}
	fcur, err := f(xcur)
	if err != nil {
		return 0, err
	}

	if fpre == 0 {
		return xpre, nil
	}
	if fcur == 0 {
		return xcur, nil
	}
	if fpre*fcur > 0 {
		return 0, fmt.Errorf("%w: f(%g)=%g and f(%g)=%g have the same sign",
			core.ErrBracketInvalid, a, fpre, b, fcur)
	}

	var xblk, fblk, spre, scur float64

	for i := 0; i < maxIter; i++ {
		if fpre*fcur < 0 {
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			xpre, xcur = xcur, xblk
			xblk = xpre
			fpre, fcur = fcur, fblk
			fblk = fpre
		}

		delta := (xtol + rtol*math.Abs(xcur)) / 2
		sbis := (xblk - xcur) / 2
		if fcur == 0 || math.Abs(sbis) < delta {
			return xcur, nil
		}

		if math.Abs(spre) > delta && math.Abs(fcur) < math.Abs(fpre) {
			var stry float64
			if xpre == xblk {
				// secant step
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// inverse quadratic interpolation
				dpre := (fpre - fcur) / (xpre - xcur)
				dblk := (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
			}
			if 2*math.Abs(stry) < math.Min(math.Abs(spre), 3*math.Abs(sbis)-delta) {
				spre, scur = scur, stry
			} else {
				// interpolation step rejected, bisect
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}

		xpre, fpre = xcur, fcur
		if math.Abs(scur) > delta {
			xcur += scur
		} else if sbis > 0 {
			xcur += delta
		} else {
			xcur -= delta
		}

		fcur, err = f(xcur)
		if err != nil {
			return 0, err
		}
	}

	return xcur, fmt.Errorf("%w after %d iterations", core.ErrMaxIterations, maxIter)
}
