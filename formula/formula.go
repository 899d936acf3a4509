// Package formula builds and parses model formula strings.
package formula

import (
	"errors"
	"fmt"
	"strings"
)

// Intercept is the internal variable name of the model intercept term.
const Intercept = "Intercept"

// Quote wraps a column name in the escaping function call used inside model
// formulas, allowing names with spaces or punctuation:
//
//	Quote("Foo Bar") == `Q("Foo Bar")`
//
// The name is wrapped in double quotes; the formula grammar rejects single
// quotes for names containing special characters.
func Quote(name string) string {
	return `Q("` + name + `")`
}

// Unquote strips the escaping wrapper from an internal variable name,
// recovering the original column name:
//
//	Unquote(`Q("Foo Bar")`) == "Foo Bar"
//
// The Intercept name and unwrapped terms are returned unchanged.
func Unquote(term string) string {
	if term == Intercept {
		return term
	}
	if strings.HasPrefix(term, `Q("`) && strings.HasSuffix(term, `")`) {
		return term[3 : len(term)-2]
	}
	return term
}

// Build produces a model formula from a dependent column name and one or more
// independent column names. Each name is quoted, and independent terms are
// joined with " + ":
//
//	Q("pH") ~ Q("citric acid") + Q("alcohol")
func Build(dependent string, independents []string) (string, error) {
	if strings.TrimSpace(dependent) == "" {
		return "", errors.New("dependent variable name must not be empty")
	}
	if len(independents) == 0 {
		return "", errors.New("at least one independent variable is required")
	}

	terms := make([]string, len(independents))
	for i, name := range independents {
		if strings.TrimSpace(name) == "" {
			return "", fmt.Errorf("independent variable name at index %d must not be empty", i)
		}
		terms[i] = Quote(name)
	}

	return Quote(dependent) + " ~ " + strings.Join(terms, " + "), nil
}

// Parse splits a model formula into its dependent column name and independent
// column names, stripping the escaping wrapper from each term. It accepts
// both quoted and bare terms. Separators inside a quoted term do not split:
// Q("a + b") is a single column name.
func Parse(formulaStr string) (dependent string, independents []string, err error) {
	parts := splitOutsideQuoted(formulaStr, '~')
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("formula %q must contain a single ~", formulaStr)
	}

	dependent = Unquote(strings.TrimSpace(parts[0]))
	if dependent == "" {
		return "", nil, fmt.Errorf("formula %q has an empty dependent term", formulaStr)
	}

	for _, term := range splitOutsideQuoted(parts[1], '+') {
		term = strings.TrimSpace(term)
		if term == "" {
			return "", nil, fmt.Errorf("formula %q has an empty independent term", formulaStr)
		}
		independents = append(independents, Unquote(term))
	}

	return dependent, independents, nil
}

// splitOutsideQuoted splits s on sep, skipping over Q("...") regions so that
// separator characters inside a quoted column name are preserved. An unclosed
// quote runs to the end of the string.
func splitOutsideQuoted(s string, sep byte) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.HasPrefix(s[i:], `Q("`) {
			end := strings.Index(s[i+3:], `")`)
			if end < 0 {
				break
			}
			i += 3 + end + 1
			continue
		}
		if s[i] == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
