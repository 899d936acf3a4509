package ols

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sartorproj/easyols/formula"
)

// multiple reports whether the model narrates in the multi-regressor form.
// The intercept does not count as an independent variable. Note the strict
// threshold: exactly 2 independent variables narrate in the singular form.
func (m *Model) multiple() bool {
	return len(m.internalIndependentVars)-1 > 2
}

// displayNames returns the human labels of the fitted variables in
// extraction order: "Intercept" followed by the unquoted column names.
func (m *Model) displayNames() []string {
	names := make([]string, len(m.internalIndependentVars))
	for i, v := range m.internalIndependentVars {
		names[i] = formula.Unquote(v)
	}
	return names
}

// Conclusions returns one human-readable sentence per fitted variable, in
// extraction order: the intercept first, then each independent variable.
func (m *Model) Conclusions() []string {
	dependentVar := formula.Unquote(m.internalDependentVar)
	vars := m.displayNames()
	multiple := m.multiple()

	sentences := make([]string, 0, len(vars))
	for i := range vars {
		confidence := fmt.Sprintf("%.2f%%", m.confidences[i]*100)
		coefficient := fmt.Sprintf("%.2f", m.coefficients[i])

		if i == 0 {
			// Intercept: the mean value of the response variable when all
			// predictor variables are zero
			condition := fmt.Sprintf("%s is 0,", vars[1])
			if multiple {
				condition = "all independent variables are 0,"
			}
			sentences = append(sentences, fmt.Sprintf(
				"This model is %s confident when %s the average value of %s is %s.",
				confidence, condition, dependentVar, coefficient))
			continue
		}

		// Regular independent variable: the average change in the response
		// variable for a one unit increase in the predictor, all other
		// predictors held constant
		signed := coefficient
		if v, err := strconv.ParseFloat(coefficient, 64); err == nil && v > 0 {
			signed = "+" + coefficient
		}
		clause := ""
		if multiple {
			clause = " when all other independent variables are held constant"
		}
		sentences = append(sentences, fmt.Sprintf(
			"This model is %s confident increasing %s by 1 will, on average, change %s by %s%s.",
			confidence, vars[i], dependentVar, signed, clause))
	}

	return sentences
}

// WriteSummary writes the regression engine's fit summary followed by the
// narrated conclusions to w.
func (m *Model) WriteSummary(w io.Writer) error {
	if _, err := fmt.Fprintln(w, m.fitted.Summary()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\nConclusions:"); err != nil {
		return err
	}
	if m.multiple() {
		vars := m.displayNames()
		if _, err := fmt.Fprintf(w, "Independent variables: %s\n", strings.Join(vars[1:], ", ")); err != nil {
			return err
		}
	}
	for _, sentence := range m.Conclusions() {
		if _, err := fmt.Fprintln(w, sentence); err != nil {
			return err
		}
	}
	return nil
}

// Summary prints the fit summary and narrated conclusions to standard output.
func (m *Model) Summary() error {
	return m.WriteSummary(os.Stdout)
}
