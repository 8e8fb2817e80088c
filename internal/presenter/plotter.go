package presenter

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// MakeHistogramPlot renders the risk-gap distribution to filename with
// dashed vertical reference lines at the empirical quantile and the
// theoretical bound. The output format follows the file extension.
func MakeHistogramPlot(gaps []float64, quantile, bound float64, bins, nSimulations, nSamples int, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of generalization error over %d simulations (n=%d)", nSimulations, nSamples)
	p.X.Label.Text = "Generalization error gap: R - R_hat"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(gaps), bins)
	if err != nil {
		return err
	}
	hist.FillColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	p.Add(hist)

	// Высота опорных линий определяется самым высоким бином
	var top float64
	for _, b := range hist.Bins {
		if b.Weight > top {
			top = b.Weight
		}
	}

	qLine, err := verticalLine(quantile, top, color.RGBA{R: 200, A: 255})
	if err != nil {
		return err
	}
	bLine, err := verticalLine(bound, top, color.RGBA{G: 140, A: 255})
	if err != nil {
		return err
	}
	p.Add(qLine, bLine)
	p.Add(plotter.NewGrid())

	p.Legend.Add("Empirical risk gap", hist)
	p.Legend.Add(fmt.Sprintf("95%% quantile (%.4f)", quantile), qLine)
	p.Legend.Add(fmt.Sprintf("PAC bound (%.4f)", bound), bLine)
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 6*vg.Inch, filename)
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
