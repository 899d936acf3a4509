package regression

import (
	"fmt"
	"strings"
)

const summaryWidth = 78

// Summary returns a text summary of the fitted model: header statistics
// followed by the coefficient table.
func (f *FittedModel) Summary() string {
	var b strings.Builder

	rule := strings.Repeat("=", summaryWidth)
	title := "OLS Regression Results"
	pad := (summaryWidth - len(title)) / 2

	fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", pad), title)
	fmt.Fprintln(&b, rule)

	left := []struct {
		label string
		value string
	}{
		{"Dep. Variable:", f.endogName},
		{"Model:", "OLS"},
		{"Method:", "Least Squares"},
		{"No. Observations:", fmt.Sprintf("%d", f.numObs)},
		{"Df Residuals:", fmt.Sprintf("%d", f.df)},
		{"Df Model:", fmt.Sprintf("%d", len(f.exogNames)-1)},
	}
	right := []struct {
		label string
		value string
	}{
		{"R-squared:", fmt.Sprintf("%.4f", f.rSquared)},
		{"Adj. R-squared:", fmt.Sprintf("%.4f", f.adjRSquared)},
		{"F-statistic:", fmt.Sprintf("%.4g", f.fStat)},
		{"Prob (F-statistic):", fmt.Sprintf("%.4g", f.fPValue)},
		{"Log-Likelihood:", fmt.Sprintf("%.4f", f.logLik)},
		{"AIC:", fmt.Sprintf("%.4f", f.aic)},
	}

	for i := range left {
		fmt.Fprintf(&b, "%-19s %-18s %-20s %17s\n",
			left[i].label, left[i].value, right[i].label, right[i].value)
	}
	fmt.Fprintf(&b, "%-19s %-18s %-20s %17s\n", "", "", "BIC:", fmt.Sprintf("%.4f", f.bic))

	fmt.Fprintln(&b, rule)

	// Coefficient table
	nameW := 12
	for _, name := range f.exogNames {
		if len(name)+2 > nameW {
			nameW = len(name) + 2
		}
	}

	fmt.Fprintf(&b, "%-*s%12s%12s%12s%12s\n", nameW, "", "coef", "std err", "t", "P>|t|")
	fmt.Fprintln(&b, strings.Repeat("-", summaryWidth))

	for i, name := range f.exogNames {
		fmt.Fprintf(&b, "%-*s%12.4f%12.4f%12.4f%12.3f\n",
			nameW, name, f.params[i], f.stdErrs[i], f.tStats[i], f.pValues[i])
	}

	fmt.Fprint(&b, rule)

	return b.String()
}
