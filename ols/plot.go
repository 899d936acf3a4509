package ols

import (
	"fmt"

	"github.com/sartorproj/easyols/plotting"
)

// PlotOptions overrides the default plot title and labels. All fields are
// optional; the zero value keeps the defaults.
type PlotOptions struct {
	Title       string
	XLabel      string
	YLabel      string
	Description string // appended to the title on its own line
}

// Plot renders a titled scatter chart of the original observations and the
// model's predicted values against the single independent variable, plus a
// horizontal reference line at y=0. The call blocks until the renderer is
// done.
//
// Plotting is supported only for models with exactly one independent
// variable; otherwise a ValidationError is returned. The predicted values
// are stored in the dataset as a derived "Predicted {dependent}" column: the
// first Plot call fails with a ValidationError if that column already
// exists, and later calls on the same instance overwrite the column it
// added.
func (m *Model) Plot(opts *PlotOptions) error {
	if len(m.independentVars) > 1 {
		return newValidationError("Cannot create plot for models with multiple independent variables.")
	}
	if opts == nil {
		opts = &PlotOptions{}
	}

	independentVar := m.independentVars[0]
	predictedCol := "Predicted " + m.dependentVar
	if !m.plotted && m.data.Has(predictedCol) {
		return newValidationError("column %q already exists in dataset", predictedCol)
	}

	predicted, err := m.fitted.Predict(m.data)
	if err != nil {
		return err
	}
	if err := m.data.SetColumn(predictedCol, predicted); err != nil {
		return err
	}
	m.plotted = true

	xs, err := m.data.Column(independentVar)
	if err != nil {
		return err
	}
	ys, err := m.data.Column(m.dependentVar)
	if err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s vs. %s", independentVar, m.dependentVar)
	}
	if opts.Description != "" {
		title += "\n" + opts.Description
	}
	xLabel := opts.XLabel
	if xLabel == "" {
		xLabel = independentVar
	}
	yLabel := opts.YLabel
	if yLabel == "" {
		yLabel = m.dependentVar
	}

	plot := &plotting.ScatterPlot{
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Series: []plotting.Series{
			{Name: "Observed", Color: "blue", MarkerSize: 1, Opacity: 0.5, Points: points(xs, ys)},
			{Name: "Predicted", Color: "red", MarkerSize: 1, Opacity: 0.5, Points: points(xs, predicted)},
		},
		RefLines: []plotting.RefLine{
			{Y: 0, Color: "black", Width: 0.5},
		},
	}

	return m.renderer.Render(plot)
}

func points(xs, ys []float64) []plotting.Point {
	pts := make([]plotting.Point, len(xs))
	for i := range xs {
		pts[i] = plotting.Point{X: xs[i], Y: ys[i]}
	}
	return pts
}
