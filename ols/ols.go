// Package ols provides the EasyOLS wrapper: readable conclusions and plots
// for ordinary least squares fits.
package ols

import (
	"strings"

	"github.com/sartorproj/easyols/dataset"
	"github.com/sartorproj/easyols/formula"
	"github.com/sartorproj/easyols/plotting"
)

// Model is a fitted OLS model wrapper over one dependent variable and one or
// more independent variables of a tabular dataset. It is created fitted and
// is read-only afterward; re-fitting requires constructing a new instance.
//
// The dataset is owned by the model once Plot is invoked: plotting stores the
// predicted values as a derived column in the table.
type Model struct {
	dependentVar    string
	independentVars []string
	data            *dataset.Table

	formulaStr string

	// Internal variable names as they appear in the formula, captured from
	// the unfit model. internalIndependentVars starts with the intercept.
	internalDependentVar    string
	internalIndependentVars []string

	fitted       FittedModel
	coefficients []float64
	confidences  []float64

	fitter   Fitter
	renderer plotting.Renderer
	plotted  bool
}

// Option configures a Model before it is fitted.
type Option func(*Model)

// WithFitter substitutes the regression engine used to define and fit the
// model.
func WithFitter(f Fitter) Option {
	return func(m *Model) { m.fitter = f }
}

// WithRenderer substitutes the plot renderer used by Plot.
func WithRenderer(r plotting.Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// New constructs and fits an OLS model of dependentVar against
// independentVars over the given table. Column names may contain arbitrary
// characters; they are quoted inside the model formula.
//
// It returns a ValidationError if dependentVar is empty, independentVars is
// empty or contains empty names, or data is nil. Errors from the regression
// engine (missing columns, singular designs) propagate unmodified.
func New(dependentVar string, independentVars []string, data *dataset.Table, opts ...Option) (*Model, error) {
	if strings.TrimSpace(dependentVar) == "" {
		return nil, newValidationError("dependent_var must be a non-empty string")
	}
	if len(independentVars) == 0 {
		return nil, newValidationError("independent_vars must be a non-empty string or a list of strings")
	}
	for _, name := range independentVars {
		if strings.TrimSpace(name) == "" {
			return nil, newValidationError("independent_vars must not contain empty names")
		}
	}
	if data == nil {
		return nil, newValidationError("data must be a valid table")
	}

	m := &Model{
		dependentVar:    dependentVar,
		independentVars: append([]string(nil), independentVars...),
		data:            data,
		fitter:          olsFitter{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.renderer == nil {
		m.renderer = plotting.NewServiceRenderer(plotting.DefaultServiceConfig())
	}

	// The order of these steps matters: internal variable names must be
	// captured from the unfit model, before fitting.
	formulaStr, err := formula.Build(m.dependentVar, m.independentVars)
	if err != nil {
		return nil, err
	}
	m.formulaStr = formulaStr

	unfit, err := m.fitter.Define(formulaStr, data)
	if err != nil {
		return nil, err
	}
	m.internalDependentVar = unfit.EndogName()
	m.internalIndependentVars = unfit.ExogNames()

	fitted, err := unfit.Fit()
	if err != nil {
		return nil, err
	}
	m.fitted = fitted
	m.coefficients = fitted.Params()

	pValues := fitted.PValues()
	m.confidences = make([]float64, len(pValues))
	for i, p := range pValues {
		m.confidences[i] = 1 - p // not clamped; valid p-values keep it in [0,1]
	}

	return m, nil
}

// NewSimple constructs and fits an OLS model with a single independent
// variable.
func NewSimple(dependentVar, independentVar string, data *dataset.Table, opts ...Option) (*Model, error) {
	return New(dependentVar, []string{independentVar}, data, opts...)
}

// DependentVar returns the dependent variable column name.
func (m *Model) DependentVar() string {
	return m.dependentVar
}

// IndependentVars returns the independent variable column names in
// declaration order.
func (m *Model) IndependentVars() []string {
	return append([]string(nil), m.independentVars...)
}

// Formula returns the model formula passed to the regression engine.
func (m *Model) Formula() string {
	return m.formulaStr
}

// InternalVariableNames returns the internal names of the fitted variables:
// the intercept first, then the quoted independent variables in declaration
// order. Coefficients and Confidences are aligned with this order.
func (m *Model) InternalVariableNames() []string {
	return append([]string(nil), m.internalIndependentVars...)
}

// Coefficients returns the fitted coefficients of the intercept and the
// independent variables.
func (m *Model) Coefficients() []float64 {
	return append([]float64(nil), m.coefficients...)
}

// Confidences returns 1 minus the p-value of each fitted variable
// (e.g. 0.6 means 60% confident).
func (m *Model) Confidences() []float64 {
	return append([]float64(nil), m.confidences...)
}
