package testkit

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"godice/domain/analysis"
)

// Kit provides deterministic fixtures for the analysis pipeline tests:
// seeded synthetic Dice samples and CSV files built from them.
type Kit struct {
	rng *rand.Rand
}

// NewKit creates a test kit with a fixed seed so fixtures are identical
// across runs.
func NewKit(seed int64) *Kit {
	return &Kit{rng: rand.New(rand.NewSource(seed))}
}

// DiceSample generates n synthetic Dice coefficients around the given
// mean, clipped to [0, 1].
func (k *Kit) DiceSample(n int, mean, spread float64) analysis.Sample {
	values := make([]float64, n)
	for i := range values {
		v := mean + k.rng.NormFloat64()*spread
		values[i] = math.Max(0, math.Min(1, v))
	}
	return analysis.Sample{Column: "Dice", Values: values}
}

// WriteCSV writes a CSV file with a Dice column (plus a Case column of
// row numbers) into dir and returns its path.
func (k *Kit) WriteCSV(dir string, values []float64) (string, error) {
	var b strings.Builder
	b.WriteString("Case,Dice\n")
	for i, v := range values {
		fmt.Fprintf(&b, "%d,%g\n", i+1, v)
	}

	path := filepath.Join(dir, "dice.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ReferenceFixture is the hand-checked six-subject segmentation sample
// used across the pipeline tests.
func ReferenceFixture() []float64 {
	return []float64{0.80, 0.82, 0.85, 0.78, 0.90, 0.88}
}
