package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"golang.org/x/sync/errgroup"

	"godice/domain/analysis"
	"godice/internal/errors"
)

// Sink renders the final report: the fixed-order text block shown to the
// user, plus markdown and HTML artifacts on disk.
// Implements ports.ReportSinkPort.
type Sink struct{}

// NewSink creates a report sink.
func NewSink() *Sink {
	return &Sink{}
}

// FormatText renders the summary in the fixed report order: descriptive
// statistics, the user-entered references, the solved margin with its
// percentage (or their absence), the test evaluation and the verdict.
func (s *Sink) FormatText(r analysis.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Calculated Mean: %g\n", r.Stats.Mean)
	fmt.Fprintf(&b, "Calculated SD: %g\n", r.Stats.StdDev)
	fmt.Fprintf(&b, "Calculated Median: %g\n", r.Stats.Median)
	fmt.Fprintf(&b, "Calculated IQR: %g\n\n", r.Stats.IQR)

	fmt.Fprintf(&b, "Reference Median: %g\n", r.References.Median)
	b.WriteString("Parametric Test:\n")
	fmt.Fprintf(&b, "Reference Mean: %g\n", r.References.Mean)

	switch {
	case !r.Margin.Found:
		b.WriteString("Non-Inferiority Margin: unavailable\n")
	case r.Margin.PercentValid:
		fmt.Fprintf(&b, "Non-Inferiority Margin: %g (%.2f%% of mean)\n", r.Margin.Margin, r.Margin.Percent)
	default:
		fmt.Fprintf(&b, "Non-Inferiority Margin: %g (%% of mean unavailable)\n", r.Margin.Margin)
	}

	if r.Test != nil {
		fmt.Fprintf(&b, "Test Statistic: %g\n", r.Test.Statistic)
		fmt.Fprintf(&b, "P-Value: %g\n", r.Test.PValue)
	} else {
		b.WriteString("Test Statistic: unavailable\n")
		b.WriteString("P-Value: unavailable\n")
	}

	fmt.Fprintf(&b, "Non-Inferiority Test Result: %s", r.Verdict())
	return b.String()
}

// FormatMarkdown renders the report as a markdown document. histogramRef
// is the relative image reference, empty when no plot was produced.
func (s *Sink) FormatMarkdown(r analysis.Report, histogramRef string) string {
	var b strings.Builder

	b.WriteString("# Non-Inferiority Test Report\n\n")
	fmt.Fprintf(&b, "Run `%s`, input `%s`, n = %d.\n\n", r.RunID, r.Source, r.Stats.N)

	b.WriteString("| Quantity | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Mean | %g |\n", r.Stats.Mean)
	fmt.Fprintf(&b, "| SD | %g |\n", r.Stats.StdDev)
	fmt.Fprintf(&b, "| Median | %g |\n", r.Stats.Median)
	fmt.Fprintf(&b, "| Q1 | %g |\n", r.Stats.Q1)
	fmt.Fprintf(&b, "| Q3 | %g |\n", r.Stats.Q3)
	fmt.Fprintf(&b, "| IQR | %g |\n", r.Stats.IQR)
	fmt.Fprintf(&b, "| Reference Median | %g |\n", r.References.Median)
	fmt.Fprintf(&b, "| Reference Mean | %g |\n", r.References.Mean)

	switch {
	case !r.Margin.Found:
		b.WriteString("| Non-Inferiority Margin | unavailable |\n")
	case r.Margin.PercentValid:
		fmt.Fprintf(&b, "| Non-Inferiority Margin | %g (%.2f%% of mean) |\n", r.Margin.Margin, r.Margin.Percent)
	default:
		fmt.Fprintf(&b, "| Non-Inferiority Margin | %g |\n", r.Margin.Margin)
	}

	if r.Test != nil {
		fmt.Fprintf(&b, "| Test Statistic | %g |\n", r.Test.Statistic)
		fmt.Fprintf(&b, "| P-Value | %g |\n", r.Test.PValue)
	}
	fmt.Fprintf(&b, "| Verdict | **%s** |\n\n", r.Verdict())

	if histogramRef != "" {
		fmt.Fprintf(&b, "![Histogram](%s)\n", histogramRef)
	}
	return b.String()
}

// WriteArtifacts persists report.md and report.html under outDir. The two
// files are independent and written concurrently.
func (s *Sink) WriteArtifacts(ctx context.Context, r analysis.Report, histogramPath, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	histogramRef := ""
	if histogramPath != "" {
		histogramRef = filepath.Base(histogramPath)
	}
	md := s.FormatMarkdown(r, histogramRef)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return os.WriteFile(filepath.Join(outDir, "report.md"), []byte(md), 0o644)
	})
	g.Go(func() error {
		return os.WriteFile(filepath.Join(outDir, "report.html"), toHTML(md), 0o644)
	})
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "failed to write report artifacts")
	}
	return nil
}

func toHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: "Non-Inferiority Test Report",
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML([]byte(md), p, renderer)
}
