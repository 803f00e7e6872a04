package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godice/domain/analysis"
)

func fullReport() analysis.Report {
	return analysis.Report{
		RunID:  "test-run",
		Source: "input.csv",
		Stats: analysis.Descriptive{
			Mean: 0.85, StdDev: 0.04, Median: 0.86, Q1: 0.82, Q3: 0.88, IQR: 0.06, N: 6,
		},
		References: analysis.ReferenceValues{Median: 0.86, Mean: 10},
		Margin:     analysis.MarginResult{Margin: 0.9, Percent: 9, Found: true, PercentValid: true},
		Test:       &analysis.TestResult{Statistic: 2.1, PValue: 0.04},
		Alpha:      analysis.DefaultAlpha,
	}
}

func TestFormatText_FixedOrder(t *testing.T) {
	text := NewSink().FormatText(fullReport())

	wantInOrder := []string{
		"Calculated Mean: 0.85",
		"Calculated SD: 0.04",
		"Calculated Median: 0.86",
		"Calculated IQR: 0.06",
		"Reference Median: 0.86",
		"Reference Mean: 10",
		"Non-Inferiority Margin: 0.9 (9.00% of mean)",
		"Test Statistic: 2.1",
		"P-Value: 0.04",
		"Non-Inferiority Test Result: Pass",
	}

	pos := -1
	for _, want := range wantInOrder {
		idx := strings.Index(text, want)
		require.GreaterOrEqual(t, idx, 0, "missing %q in:\n%s", want, text)
		assert.Greater(t, idx, pos, "%q out of order", want)
		pos = idx
	}
}

func TestFormatText_PercentageRoundTrip(t *testing.T) {
	// margin 0.9 of a reference mean of 10 is exactly 9.00%
	r := fullReport()
	pct, ok := analysis.Percent(r.Margin.Margin, r.References.Mean)
	require.True(t, ok)
	r.Margin.Percent = pct

	text := NewSink().FormatText(r)
	assert.Contains(t, text, "(9.00% of mean)")
}

func TestFormatText_MarginUnavailable(t *testing.T) {
	r := fullReport()
	r.Margin = analysis.MarginResult{}
	r.Test = nil

	text := NewSink().FormatText(r)
	assert.Contains(t, text, "Non-Inferiority Margin: unavailable")
	assert.Contains(t, text, "Test Statistic: unavailable")
	assert.Contains(t, text, "P-Value: unavailable")
	assert.Contains(t, text, "Non-Inferiority Test Result: Fail")
}

func TestFormatText_ZeroReferencePercentage(t *testing.T) {
	r := fullReport()
	r.References.Mean = 0
	r.Margin.PercentValid = false

	text := NewSink().FormatText(r)
	assert.Contains(t, text, "(% of mean unavailable)")
	assert.NotContains(t, text, "Inf")
}

func TestFormatText_BoundaryVerdict(t *testing.T) {
	// the verdict is non-strict: exactly alpha passes
	r := fullReport()
	r.Test.PValue = 0.05
	assert.Contains(t, NewSink().FormatText(r), "Non-Inferiority Test Result: Pass")

	r.Test.PValue = 0.0500001
	assert.Contains(t, NewSink().FormatText(r), "Non-Inferiority Test Result: Fail")
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	err := NewSink().WriteArtifacts(context.Background(), fullReport(), filepath.Join(dir, "histogram.png"), dir)
	require.NoError(t, err)

	md, err := os.ReadFile(filepath.Join(dir, "report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "![Histogram](histogram.png)")
	assert.Contains(t, string(md), "**Pass**")

	htmlOut, err := os.ReadFile(filepath.Join(dir, "report.html"))
	require.NoError(t, err)
	assert.Contains(t, string(htmlOut), "<table>")
	assert.Contains(t, string(htmlOut), "Non-Inferiority Test Report")
}

func TestWriteArtifacts_NoHistogram(t *testing.T) {
	dir := t.TempDir()
	err := NewSink().WriteArtifacts(context.Background(), fullReport(), "", dir)
	require.NoError(t, err)

	md, err := os.ReadFile(filepath.Join(dir, "report.md"))
	require.NoError(t, err)
	assert.NotContains(t, string(md), "![Histogram]")
}
