// Package easyols turns ordinary least squares results into readable conclusions.
//
// EasyOLS is a thin convenience layer over an OLS regression engine: it builds
// a model formula from the column names of a tabular dataset, fits the model,
// and renders the fitted coefficients and p-values as plain-language sentences,
// with an optional scatter plot of observed and predicted values. It works with
// one dependent variable and one or more independent variables, and handles
// column names containing spaces or punctuation by quoting them inside the
// formula.
//
// # Quick Start
//
// Load a dataset and narrate a single-regressor fit:
//
//	opts := dataset.DefaultCSVOptions()
//	opts.Delimiter = ';'
//	table, _ := dataset.LoadCSV("winequality-red.csv", opts)
//
//	model, err := ols.NewSimple("pH", "citric acid", table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model.Summary() // fit summary followed by narrated conclusions
//	model.Plot(nil) // scatter of observed vs. predicted values
//
// Multiple independent variables:
//
//	model, err := ols.New("quality", []string{"alcohol", "sulphates", "pH"}, table)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - ols: the EasyOLS wrapper (validation, narration, plotting)
//   - formula: model formula construction and quoting of column names
//   - regression: formula-driven OLS estimation on gonum
//   - dataset: column-oriented numeric tables and CSV loading
//   - plotting: scatter plot rendering through a sidecar plotting service
package easyols
