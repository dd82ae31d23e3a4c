package export

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	atmosphereColor = color.RGBA{R: 204, G: 51, B: 51, A: 255}
	oceanColor      = color.RGBA{R: 51, G: 102, B: 204, A: 255}
)

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

func newLine(xs, ys []float64, c color.RGBA) (*plotter.Line, error) {
	line, err := plotter.NewLine(xys(xs, ys))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	return line, nil
}

// TemperaturePNG renders both layer trajectories into a single labelled
// plot at the given path.
func TemperaturePNG(path, title string, times, atm, ocn []float64) error {
	if len(times) == 0 || len(times) != len(atm) || len(times) != len(ocn) {
		return fmt.Errorf("plot data invalid: %d times, %d atmosphere, %d ocean", len(times), len(atm), len(ocn))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (years)"
	p.Y.Label.Text = "temperature (K)"

	atmLine, err := newLine(times, atm, atmosphereColor)
	if err != nil {
		return err
	}
	ocnLine, err := newLine(times, ocn, oceanColor)
	if err != nil {
		return err
	}

	p.Add(atmLine, ocnLine)
	p.Legend.Add("atmosphere", atmLine)
	p.Legend.Add("ocean", ocnLine)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// GradientPNG renders the atmosphere-ocean temperature difference, the
// driver of heat uptake by the deep layer.
func GradientPNG(path, title string, times, gradient []float64) error {
	if len(times) == 0 || len(times) != len(gradient) {
		return fmt.Errorf("plot data invalid: %d times, %d gradient", len(times), len(gradient))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (years)"
	p.Y.Label.Text = "T_atm - T_ocn (K)"

	line, err := newLine(times, gradient, atmosphereColor)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
