package regression

import (
	"fmt"

	"github.com/sartorproj/easyols/dataset"
)

// FittedModel represents the result of fitting an OLS model.
// It is read-only after creation.
type FittedModel struct {
	formulaStr  string
	endogName   string
	exogNames   []string
	depCol      string
	indepCols   []string
	params      []float64
	stdErrs     []float64
	tStats      []float64
	pValues     []float64
	rSquared    float64
	adjRSquared float64
	fStat       float64
	fPValue     float64
	logLik      float64
	aic         float64
	bic         float64
	numObs      int
	df          int
}

// EndogName returns the internal name of the dependent variable.
func (f *FittedModel) EndogName() string {
	return f.endogName
}

// ExogNames returns the internal names of the model terms, aligned with
// Params and PValues: the intercept first, then the independent variables in
// declaration order.
func (f *FittedModel) ExogNames() []string {
	names := make([]string, len(f.exogNames))
	copy(names, f.exogNames)
	return names
}

// Params returns the fitted coefficients, aligned with ExogNames.
func (f *FittedModel) Params() []float64 {
	params := make([]float64, len(f.params))
	copy(params, f.params)
	return params
}

// StdErrs returns the coefficient standard errors, aligned with ExogNames.
func (f *FittedModel) StdErrs() []float64 {
	stdErrs := make([]float64, len(f.stdErrs))
	copy(stdErrs, f.stdErrs)
	return stdErrs
}

// TStats returns the coefficient t-statistics, aligned with ExogNames.
func (f *FittedModel) TStats() []float64 {
	tStats := make([]float64, len(f.tStats))
	copy(tStats, f.tStats)
	return tStats
}

// PValues returns the two-tailed coefficient p-values, aligned with ExogNames.
func (f *FittedModel) PValues() []float64 {
	pValues := make([]float64, len(f.pValues))
	copy(pValues, f.pValues)
	return pValues
}

// RSquared returns the coefficient of determination.
func (f *FittedModel) RSquared() float64 { return f.rSquared }

// AdjRSquared returns the degrees-of-freedom adjusted R-squared.
func (f *FittedModel) AdjRSquared() float64 { return f.adjRSquared }

// FStat returns the F-statistic against the intercept-only model.
func (f *FittedModel) FStat() float64 { return f.fStat }

// FPValue returns the p-value of the F-statistic.
func (f *FittedModel) FPValue() float64 { return f.fPValue }

// LogLik returns the Gaussian log-likelihood of the fit.
func (f *FittedModel) LogLik() float64 { return f.logLik }

// AIC returns the Akaike information criterion.
func (f *FittedModel) AIC() float64 { return f.aic }

// BIC returns the Bayesian information criterion.
func (f *FittedModel) BIC() float64 { return f.bic }

// NumObs returns the number of observations used in the fit.
func (f *FittedModel) NumObs() int { return f.numObs }

// DF returns the residual degrees of freedom.
func (f *FittedModel) DF() int { return f.df }

// Predict applies the fitted coefficients to the independent variable columns
// of the given table and returns the predicted values of the dependent
// variable, one per row.
func (f *FittedModel) Predict(data *dataset.Table) ([]float64, error) {
	if data == nil {
		return nil, fmt.Errorf("data table must not be nil")
	}

	cols := make([][]float64, len(f.indepCols))
	for j, name := range f.indepCols {
		col, err := data.Column(name)
		if err != nil {
			return nil, fmt.Errorf("independent variable: %w", err)
		}
		cols[j] = col
	}

	n := data.NumRows()
	predicted := make([]float64, n)
	for i := 0; i < n; i++ {
		v := f.params[0]
		for j := range cols {
			v += f.params[j+1] * cols[j][i]
		}
		predicted[i] = v
	}

	return predicted, nil
}
