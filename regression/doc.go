// Package regression implements formula-driven ordinary least squares models.
//
// Models go through two phases. Define binds a formula to a dataset and
// produces an unfit Model whose variable names are already resolved; Fit
// estimates the coefficients and returns an immutable FittedModel. Variable
// names must be read from the unfit model, so the two-phase API makes the
// ordering explicit.
//
// # Basic Usage
//
// Define and fit a model:
//
//	model, err := regression.Define(`Q("pH") ~ Q("citric acid")`, table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	names := model.ExogNames() // [Intercept Q("citric acid")]
//
//	fitted, err := model.Fit()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	coefs := fitted.Params()   // aligned with names
//	pvals := fitted.PValues()
//
// # Prediction and Summary
//
// Apply the fitted coefficients to a table and print the fit report:
//
//	predicted, _ := fitted.Predict(table)
//	fmt.Println(fitted.Summary())
//
// # Estimation
//
// Coefficients are estimated by solving the normal equations on gonum
// matrices, with an SVD pseudo-inverse fallback when X'X is singular.
// Coefficient p-values are two-tailed Student-t probabilities; the model
// F-statistic is tested against the intercept-only model.
package regression
