package ports

import (
	"context"

	"godice/domain/analysis"
)

// HistogramRenderPort renders the sample distribution with the reference
// and non-inferiority threshold markers.
type HistogramRenderPort interface {
	// RenderHistogram writes the annotated histogram to path.
	RenderHistogram(ctx context.Context, sample analysis.Sample, referenceMean, margin float64, path string) error
}

// ReportSinkPort turns the final Report into its presentation artifacts:
// the text block shown to the user and logged, and any files written next
// to the histogram.
type ReportSinkPort interface {
	// FormatText renders the fixed-order text summary.
	FormatText(report analysis.Report) string

	// WriteArtifacts persists the report files (HTML, and whatever else the
	// sink produces) under outDir. histogramPath is empty when no plot was
	// rendered.
	WriteArtifacts(ctx context.Context, report analysis.Report, histogramPath, outDir string) error
}
