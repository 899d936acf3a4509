// Package formula builds and parses model formula strings.
//
// A formula describes the relationship between a dependent variable and one
// or more independent variables for the regression engine:
//
//	Q("pH") ~ Q("citric acid") + Q("alcohol")
//
// Column names are wrapped in the Q("...") escaping call so that names with
// spaces or punctuation can be used. Double quotes are required by the
// formula grammar; single quotes are rejected.
//
// # Building and Parsing
//
// Build a formula from column names:
//
//	f, err := formula.Build("pH", []string{"citric acid"})
//	// Q("pH") ~ Q("citric acid")
//
// Recover the original column name from an internal variable name:
//
//	formula.Unquote(`Q("citric acid")`) // "citric acid"
//	formula.Unquote(formula.Intercept)  // "Intercept", passed through
package formula
