package formula

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSingleIndependent(t *testing.T) {
	f, err := Build("pH", []string{"citric acid"})
	require.NoError(t, err)
	require.Equal(t, `Q("pH") ~ Q("citric acid")`, f)
}

func TestBuildMultipleIndependents(t *testing.T) {
	f, err := Build("Foo Bar", []string{"Bizz Buzz", "Baz - Qux", "plain"})
	require.NoError(t, err)
	require.Equal(t, `Q("Foo Bar") ~ Q("Bizz Buzz") + Q("Baz - Qux") + Q("plain")`, f)
}

func TestBuildPreservesOrder(t *testing.T) {
	names := []string{"c", "a", "b"}
	f, err := Build("y", names)
	require.NoError(t, err)
	require.Equal(t, `Q("y") ~ Q("c") + Q("a") + Q("b")`, f)
}

func TestBuildValidation(t *testing.T) {
	_, err := Build("", []string{"x"})
	require.Error(t, err)

	_, err = Build("   ", []string{"x"})
	require.Error(t, err)

	_, err = Build("y", nil)
	require.Error(t, err)

	_, err = Build("y", []string{"x", ""})
	require.Error(t, err)
}

func TestQuoteUsesDoubleQuotes(t *testing.T) {
	require.Equal(t, `Q("Foo Bar")`, Quote("Foo Bar"))
}

func TestUnquoteRoundTrip(t *testing.T) {
	require.Equal(t, "Foo Bar", Unquote(Quote("Foo Bar")))
	require.Equal(t, "citric acid", Unquote(`Q("citric acid")`))
}

func TestUnquoteInterceptPassthrough(t *testing.T) {
	require.Equal(t, Intercept, Unquote(Intercept))
}

func TestUnquoteBareTermUnchanged(t *testing.T) {
	require.Equal(t, "alcohol", Unquote("alcohol"))
}

func TestParse(t *testing.T) {
	dep, indeps, err := Parse(`Q("pH") ~ Q("citric acid") + Q("alcohol")`)
	require.NoError(t, err)
	require.Equal(t, "pH", dep)
	require.Equal(t, []string{"citric acid", "alcohol"}, indeps)
}

func TestParseBareTerms(t *testing.T) {
	dep, indeps, err := Parse("y ~ a + b")
	require.NoError(t, err)
	require.Equal(t, "y", dep)
	require.Equal(t, []string{"a", "b"}, indeps)
}

func TestParseRoundTrip(t *testing.T) {
	f, err := Build("Foo Bar", []string{"Bizz Buzz", "Baz - Qux"})
	require.NoError(t, err)

	dep, indeps, err := Parse(f)
	require.NoError(t, err)
	require.Equal(t, "Foo Bar", dep)
	require.Equal(t, []string{"Bizz Buzz", "Baz - Qux"}, indeps)
}

func TestParseSeparatorsInsideQuotedNames(t *testing.T) {
	f, err := Build("y", []string{"vitamin C + D", "acid ~ base"})
	require.NoError(t, err)
	require.Equal(t, `Q("y") ~ Q("vitamin C + D") + Q("acid ~ base")`, f)

	dep, indeps, err := Parse(f)
	require.NoError(t, err)
	require.Equal(t, "y", dep)
	require.Equal(t, []string{"vitamin C + D", "acid ~ base"}, indeps)
}

func TestParseQuotedDependentWithTilde(t *testing.T) {
	dep, indeps, err := Parse(`Q("pH ~ approx") ~ Q("citric acid")`)
	require.NoError(t, err)
	require.Equal(t, "pH ~ approx", dep)
	require.Equal(t, []string{"citric acid"}, indeps)
}

func TestParseErrors(t *testing.T) {
	_, _, err := Parse("no tilde here")
	require.Error(t, err)

	_, _, err = Parse("~ x")
	require.Error(t, err)

	_, _, err = Parse("y ~ a + ")
	require.Error(t, err)
}
