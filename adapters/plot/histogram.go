package plot

import (
	"context"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"godice/domain/analysis"
	"godice/internal/errors"
)

// HistogramRenderer draws the sample distribution with the reference mean
// and the non-inferiority threshold marked as dashed vertical lines.
// Implements ports.HistogramRenderPort.
type HistogramRenderer struct {
	bins int
}

// NewHistogramRenderer creates a renderer with the given bin count.
func NewHistogramRenderer(bins int) *HistogramRenderer {
	if bins < 1 {
		bins = 30
	}
	return &HistogramRenderer{bins: bins}
}

// RenderHistogram writes the annotated histogram PNG to path.
func (r *HistogramRenderer) RenderHistogram(ctx context.Context, sample analysis.Sample, referenceMean, margin float64, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sample.N() == 0 {
		return errors.RenderError("cannot plot an empty sample", nil)
	}

	p := plot.New()
	p.Title.Text = "Distribution of Dice Similarity Coefficient with Mean Non-Inferiority"
	p.X.Label.Text = "Dice Similarity Coefficient"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(sample.Values), r.bins)
	if err != nil {
		return errors.RenderError("histogram binning failed", err)
	}
	hist.FillColor = color.RGBA{R: 100, G: 149, B: 237, A: 128}
	p.Add(hist)
	p.Legend.Add("Test Sample", hist)

	top := r.peakCount(sample.Values)

	refLine, err := verticalLine(referenceMean, top, color.RGBA{R: 214, G: 39, B: 40, A: 255})
	if err != nil {
		return errors.RenderError("reference marker failed", err)
	}
	p.Add(refLine)
	p.Legend.Add("Reference Mean", refLine)

	thrLine, err := verticalLine(referenceMean-margin, top, color.RGBA{R: 44, G: 160, B: 44, A: 255})
	if err != nil {
		return errors.RenderError("threshold marker failed", err)
	}
	p.Add(thrLine)
	p.Legend.Add("Non-Inferiority Threshold", thrLine)

	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.RenderError("failed to save histogram", err)
	}
	return nil
}

// peakCount estimates the tallest bin so the vertical markers span the
// full plot height.
func (r *HistogramRenderer) peakCount(values []float64) float64 {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		return float64(len(values))
	}

	counts := make([]int, r.bins)
	width := (hi - lo) / float64(r.bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= r.bins {
			idx = r.bins - 1
		}
		counts[idx]++
	}

	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}
	return float64(peak)
}

func verticalLine(x, top float64, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	line.LineStyle.Color = c
	return line, nil
}
