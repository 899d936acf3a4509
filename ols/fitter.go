package ols

import (
	"github.com/sartorproj/easyols/dataset"
	"github.com/sartorproj/easyols/regression"
)

// UnfitModel is a defined but not yet fitted regression model. Variable
// names must be read from the unfit model; Fit consumes it.
type UnfitModel interface {
	EndogName() string
	ExogNames() []string
	Fit() (FittedModel, error)
}

// FittedModel exposes the fitted values the wrapper narrates and plots.
type FittedModel interface {
	Params() []float64
	PValues() []float64
	Predict(data *dataset.Table) ([]float64, error)
	Summary() string
}

// Fitter builds an unfit model from a formula and a dataset. The default
// Fitter uses the regression package; tests substitute fakes.
type Fitter interface {
	Define(formulaStr string, data *dataset.Table) (UnfitModel, error)
}

type olsFitter struct{}

func (olsFitter) Define(formulaStr string, data *dataset.Table) (UnfitModel, error) {
	m, err := regression.Define(formulaStr, data)
	if err != nil {
		return nil, err
	}
	return olsUnfit{m}, nil
}

type olsUnfit struct {
	m *regression.Model
}

func (u olsUnfit) EndogName() string   { return u.m.EndogName() }
func (u olsUnfit) ExogNames() []string { return u.m.ExogNames() }

func (u olsUnfit) Fit() (FittedModel, error) {
	fitted, err := u.m.Fit()
	if err != nil {
		return nil, err
	}
	return fitted, nil
}
