package stats

import (
	"math"
	"sort"

	mfstats "github.com/montanaflynn/stats"

	"godice/domain/analysis"
	"godice/internal/errors"
)

// Describe computes the summary statistics of a sample.
//
// The standard deviation is the sample deviation (n-1 denominator). The
// quartiles use linear interpolation between closest ranks, so they are
// exact on small samples. An empty sample is an error, never NaN output.
// A single-element sample has an undefined sample deviation and reports
// NaN for it; every other field is still well defined.
func Describe(sample analysis.Sample) (analysis.Descriptive, error) {
	var d analysis.Descriptive

	if sample.N() == 0 {
		return d, errors.SchemaError("cannot describe an empty sample")
	}

	mean, err := mfstats.Mean(sample.Values)
	if err != nil {
		return d, errors.Wrap(err, "mean")
	}

	stdDev, err := mfstats.StandardDeviationSample(sample.Values)
	if err != nil {
		return d, errors.Wrap(err, "standard deviation")
	}

	median, err := mfstats.Median(sample.Values)
	if err != nil {
		return d, errors.Wrap(err, "median")
	}

	min, err := mfstats.Min(sample.Values)
	if err != nil {
		return d, errors.Wrap(err, "min")
	}

	max, err := mfstats.Max(sample.Values)
	if err != nil {
		return d, errors.Wrap(err, "max")
	}

	sorted := make([]float64, len(sample.Values))
	copy(sorted, sample.Values)
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)

	d.Mean = mean
	d.StdDev = stdDev
	d.Median = median
	d.Q1 = q1
	d.Q3 = q3
	d.IQR = q3 - q1
	d.Min = min
	d.Max = max
	d.N = sample.N()

	return d, nil
}

// quantile interpolates linearly between the closest ranks of a sorted
// slice. p is in [0, 1].
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
