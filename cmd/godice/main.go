package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"godice/adapters/file"
	"godice/adapters/plot"
	"godice/adapters/report"
	"godice/adapters/stats"
	"godice/adapters/tui"
	"godice/app"
	"godice/domain/core"
	"godice/internal"
	"godice/internal/config"
	"godice/internal/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath string
		column    string
		refMedian float64
		refMean   float64
		outDir    string
		noPlot    bool
	)

	cmd := &cobra.Command{
		Use:   "godice",
		Short: "Non-inferiority analysis of Dice similarity coefficients",
		Long: `Load a column of Dice similarity coefficients from a CSV or XLSX table,
compute descriptive statistics, solve for the largest non-inferiority
margin that still passes a one-sided one-sample t-test at the 0.05
significance level, and report the verdict with an annotated histogram.

Values not supplied as flags are asked for interactively; the numeric
prompts are pre-filled with the sample median and mean.

Example: godice --input dice.csv --reference-mean 0.84`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel))

			req := app.RunRequest{
				InputPath: inputPath,
				Column:    core.ColumnKey(column),
				OutDir:    outDir,
				NoPlot:    noPlot,
			}
			if cmd.Flags().Changed("reference-median") {
				req.ReferenceMedian = &refMedian
			}
			if cmd.Flags().Changed("reference-mean") {
				req.ReferenceMean = &refMean
			}

			svc := app.NewAnalysisService(
				file.NewDataReader(logger),
				tui.NewPrompter(),
				solver.NewMarginSolver(cfg.Analysis.Alpha, logger),
				stats.NewOneSampleTTest().Func(),
				plot.NewHistogramRenderer(cfg.Analysis.Bins),
				report.NewSink(),
				cfg,
				logger,
			)
			return svc.Run(cmd.Context(), req)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Input CSV/XLSX file (interactive picker when omitted)")
	cmd.Flags().StringVar(&column, "column", "", "Column to analyze (default from GODICE_COLUMN, falling back to Dice)")
	cmd.Flags().Float64Var(&refMedian, "reference-median", 0, "Reference median (prompted when omitted)")
	cmd.Flags().Float64Var(&refMean, "reference-mean", 0, "Reference mean (prompted when omitted)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for histogram.png and report artifacts")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "Skip histogram rendering")

	return cmd
}
