// Package ols provides the EasyOLS wrapper: readable conclusions and plots
// for ordinary least squares fits.
//
// A Model is constructed fitted: New validates its arguments, builds the
// model formula, defines the model, captures the internal variable names
// from the unfit model, and fits it. The fitted coefficients and confidences
// (1 minus each p-value) are then available, along with a narrated summary
// and an optional scatter plot.
//
// # Basic Usage
//
//	model, err := ols.NewSimple("pH", "citric acid", table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Fit summary followed by plain-language conclusions
//	model.Summary()
//
//	// Scatter of observed and predicted values
//	err = model.Plot(&ols.PlotOptions{Description: "red wine dataset"})
//
// # Multiple Independent Variables
//
//	model, err := ols.New("quality", []string{"alcohol", "sulphates", "pH"}, table)
//
// Plotting is only supported for single-regressor models; Plot returns a
// ValidationError otherwise.
//
// # Substituting Collaborators
//
// The regression engine and the plot renderer are injectable:
//
//	model, err := ols.NewSimple("pH", "citric acid", table,
//	    ols.WithFitter(fakeFitter),
//	    ols.WithRenderer(fakeRenderer),
//	)
package ols
