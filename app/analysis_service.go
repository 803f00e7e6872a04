package app

import (
	"context"
	"fmt"
	"path/filepath"

	"godice/adapters/stats"
	"godice/domain/analysis"
	"godice/domain/core"
	"godice/internal"
	"godice/internal/config"
	"godice/ports"
)

// AnalysisService drives the pipeline: input acquisition, data loading,
// descriptive statistics, margin solve, test evaluation and reporting.
// Control flows strictly forward; the only recoverable failure is the
// absent margin.
type AnalysisService struct {
	reader   ports.DatasetReaderPort
	prompter ports.PrompterPort
	solver   ports.MarginSolverPort
	test     ports.TestFunc
	plot     ports.HistogramRenderPort
	sink     ports.ReportSinkPort
	cfg      *config.Config
	logger   *internal.Logger
}

// RunRequest defines one analysis invocation. Optional fields fall back
// to interactive prompts.
type RunRequest struct {
	InputPath       string // empty: ask via the file picker
	Column          core.ColumnKey
	ReferenceMedian *float64 // nil: prompt, pre-filled with the sample median
	ReferenceMean   *float64 // nil: prompt, pre-filled with the sample mean
	OutDir          string
	NoPlot          bool
}

// NewAnalysisService wires the pipeline.
func NewAnalysisService(
	reader ports.DatasetReaderPort,
	prompter ports.PrompterPort,
	solver ports.MarginSolverPort,
	test ports.TestFunc,
	plot ports.HistogramRenderPort,
	sink ports.ReportSinkPort,
	cfg *config.Config,
	logger *internal.Logger,
) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{
		reader:   reader,
		prompter: prompter,
		solver:   solver,
		test:     test,
		plot:     plot,
		sink:     sink,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run executes the pipeline once. User cancellation and schema errors are
// reported through the prompter and end the run nominally (nil error);
// only unexpected failures propagate.
func (s *AnalysisService) Run(ctx context.Context, req RunRequest) error {
	runID := core.NewRunID()
	logger := s.logger.WithRun(runID.String())

	path := req.InputPath
	if path == "" {
		picked, err := s.prompter.PickFile(ctx, "Select input file", []string{".csv", ".xlsx"})
		if core.IsCancelled(err) {
			s.prompter.Info(ctx, "Information", "No file selected. Exiting.")
			return nil
		}
		if err != nil {
			return err
		}
		path = picked
	}

	column := req.Column
	if column == "" {
		column = core.ColumnKey(s.cfg.Analysis.Column)
	}

	sample, err := s.reader.ReadColumn(ctx, path, column)
	if core.IsSchemaError(err) {
		s.prompter.Error(ctx, "Error", fmt.Sprintf("%v. Exiting.", err))
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("loaded %d values from column %q of %s (%d dropped)", sample.N(), column, path, sample.Dropped)

	desc, err := stats.Describe(sample)
	if err != nil {
		s.prompter.Error(ctx, "Error", fmt.Sprintf("%v. Exiting.", err))
		return nil
	}

	refMedian, err := s.resolveReference(ctx, req.ReferenceMedian, "Enter the reference median value:", desc.Median)
	if core.IsCancelled(err) {
		s.prompter.Info(ctx, "Information", "No reference median entered. Exiting.")
		return nil
	}
	if err != nil {
		return err
	}

	refMean, err := s.resolveReference(ctx, req.ReferenceMean, "Enter the reference mean value:", desc.Mean)
	if core.IsCancelled(err) {
		s.prompter.Info(ctx, "Information", "No reference mean entered. Exiting.")
		return nil
	}
	if err != nil {
		return err
	}

	margin, testResult, err := s.solveMargin(sample, refMean, logger)
	if err != nil {
		s.prompter.Error(ctx, "Error", fmt.Sprintf("%v. Exiting.", err))
		return nil
	}

	outDir := req.OutDir
	if outDir == "" {
		outDir = s.cfg.Output.Dir
	}

	histogramPath := ""
	if margin.Found && !req.NoPlot {
		histogramPath = filepath.Join(outDir, "histogram.png")
		if err := s.plot.RenderHistogram(ctx, sample, refMean, margin.Margin, histogramPath); err != nil {
			// the report is still worth producing without the figure
			logger.Warn("histogram rendering failed: %v", err)
			histogramPath = ""
		}
	}

	report := analysis.Report{
		RunID:      runID,
		Source:     path,
		Stats:      desc,
		References: analysis.ReferenceValues{Median: refMedian, Mean: refMean},
		Margin:     margin,
		Test:       testResult,
		Alpha:      s.cfg.Analysis.Alpha,
	}

	text := s.sink.FormatText(report)
	s.prompter.ShowReport(ctx, "Non-Inferiority Test Result", text)
	logger.Info("%s", text)

	if err := s.sink.WriteArtifacts(ctx, report, histogramPath, outDir); err != nil {
		return err
	}
	logger.Info("report artifacts written to %s", outDir)
	return nil
}

func (s *AnalysisService) resolveReference(ctx context.Context, flagValue *float64, prompt string, defaultValue float64) (float64, error) {
	if flagValue != nil {
		return *flagValue, nil
	}
	return s.prompter.PromptFloat(ctx, prompt, defaultValue)
}

// solveMargin runs the margin search and, when a margin exists, evaluates
// the test at it. An absent margin (no sign change over the bracket) is
// logged and reported as unavailable, never an error.
func (s *AnalysisService) solveMargin(sample analysis.Sample, refMean float64, logger *internal.Logger) (analysis.MarginResult, *analysis.TestResult, error) {
	m, err := s.solver.Solve(sample, refMean, s.test)
	if core.IsMarginNotFound(err) {
		logger.Warn("failed to find non-inferiority margin for parametric test: %v", err)
		return analysis.MarginResult{}, nil, nil
	}
	if err != nil {
		return analysis.MarginResult{}, nil, err
	}

	result := analysis.MarginResult{Margin: m, Found: true}
	if pct, ok := analysis.Percent(m, refMean); ok {
		result.Percent = pct
		result.PercentValid = true
	} else {
		logger.Warn("%v, margin percentage unavailable", core.ErrZeroReference)
	}

	evaluated, err := s.test(sample, refMean, m)
	if err != nil {
		return analysis.MarginResult{}, nil, err
	}
	return result, &evaluated, nil
}
