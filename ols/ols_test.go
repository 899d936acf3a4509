package ols

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/easyols/dataset"
	"github.com/sartorproj/easyols/formula"
)

// fakeFitted is a canned FittedModel for narration and plotting tests.
type fakeFitted struct {
	params     []float64
	pvalues    []float64
	summary    string
	predicted  []float64
	predictErr error
}

func (f *fakeFitted) Params() []float64  { return append([]float64(nil), f.params...) }
func (f *fakeFitted) PValues() []float64 { return append([]float64(nil), f.pvalues...) }

func (f *fakeFitted) Predict(data *dataset.Table) ([]float64, error) {
	if f.predictErr != nil {
		return nil, f.predictErr
	}
	if f.predicted != nil {
		return append([]float64(nil), f.predicted...), nil
	}
	return make([]float64, data.NumRows()), nil
}

func (f *fakeFitted) Summary() string { return f.summary }

// fakeUnfit records whether variable names were read before fitting.
type fakeUnfit struct {
	endog             string
	exog              []string
	fitted            *fakeFitted
	namesRead         bool
	fitDone           bool
	namesReadAfterFit bool
}

func (u *fakeUnfit) EndogName() string {
	if u.fitDone {
		u.namesReadAfterFit = true
	}
	return u.endog
}

func (u *fakeUnfit) ExogNames() []string {
	if u.fitDone {
		u.namesReadAfterFit = true
	}
	u.namesRead = true
	return append([]string(nil), u.exog...)
}

func (u *fakeUnfit) Fit() (FittedModel, error) {
	u.fitDone = true
	return u.fitted, nil
}

type fakeFitter struct {
	defineCalls int
	gotFormula  string
	unfit       *fakeUnfit
}

func (f *fakeFitter) Define(formulaStr string, data *dataset.Table) (UnfitModel, error) {
	f.defineCalls++
	f.gotFormula = formulaStr
	return f.unfit, nil
}

func newFakeFitter(dep string, indeps []string, params, pvalues []float64) *fakeFitter {
	exog := []string{formula.Intercept}
	for _, v := range indeps {
		exog = append(exog, formula.Quote(v))
	}
	return &fakeFitter{unfit: &fakeUnfit{
		endog: formula.Quote(dep),
		exog:  exog,
		fitted: &fakeFitted{
			params:  params,
			pvalues: pvalues,
			summary: "FAKE MODEL SUMMARY",
		},
	}}
}

func smallTable(t *testing.T) *dataset.Table {
	t.Helper()
	table := dataset.NewTable()
	require.NoError(t, table.AddColumn("x", []float64{1, 2, 3}))
	return table
}

func wineTable(t *testing.T) *dataset.Table {
	t.Helper()
	table := dataset.NewTable()
	require.NoError(t, table.AddColumn("citric acid", []float64{0.0, 0.3, 0.6}))
	require.NoError(t, table.AddColumn("pH", []float64{3.5, 3.4, 3.3}))
	return table
}

func TestNewValidation(t *testing.T) {
	table := smallTable(t)

	cases := []struct {
		name         string
		dependent    string
		independents []string
		table        *dataset.Table
	}{
		{"empty dependent", "", []string{"x"}, table},
		{"blank dependent", "   ", []string{"x"}, table},
		{"no independents", "y", nil, table},
		{"blank independent", "y", []string{"x", ""}, table},
		{"nil table", "y", []string{"x"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fitter := newFakeFitter("y", []string{"x"}, []float64{0, 0}, []float64{0, 0})

			_, err := New(tc.dependent, tc.independents, tc.table, WithFitter(fitter))
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Zero(t, fitter.defineCalls, "validation must fail before any model fitting")
		})
	}
}

func TestNewBuildsFormula(t *testing.T) {
	fitter := newFakeFitter("Foo Bar", []string{"Bizz Buzz", "Baz - Qux"},
		[]float64{0, 0, 0}, []float64{0, 0, 0})

	model, err := New("Foo Bar", []string{"Bizz Buzz", "Baz - Qux"}, smallTable(t), WithFitter(fitter))
	require.NoError(t, err)
	require.Equal(t, `Q("Foo Bar") ~ Q("Bizz Buzz") + Q("Baz - Qux")`, fitter.gotFormula)
	require.Equal(t, fitter.gotFormula, model.Formula())
}

func TestNewCapturesNamesBeforeFitting(t *testing.T) {
	fitter := newFakeFitter("y", []string{"a", "b"}, []float64{0, 0, 0}, []float64{0, 0, 0})

	model, err := New("y", []string{"a", "b"}, smallTable(t), WithFitter(fitter))
	require.NoError(t, err)

	require.True(t, fitter.unfit.namesRead)
	require.False(t, fitter.unfit.namesReadAfterFit,
		"internal variable names must be captured from the unfit model")
	require.Equal(t, []string{"Intercept", `Q("a")`, `Q("b")`}, model.InternalVariableNames())
}

func TestVariableNameCount(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		indeps := make([]string, n)
		values := make([]float64, n+1)
		for i := range indeps {
			indeps[i] = string(rune('a' + i))
		}
		fitter := newFakeFitter("y", indeps, values, values)

		model, err := New("y", indeps, smallTable(t), WithFitter(fitter))
		require.NoError(t, err)
		require.Len(t, model.InternalVariableNames(), n+1)
	}
}

func TestConfidenceIsOneMinusPValue(t *testing.T) {
	fitter := newFakeFitter("y", []string{"x"}, []float64{1, 2}, []float64{0.25, 0.5})

	model, err := New("y", []string{"x"}, smallTable(t), WithFitter(fitter))
	require.NoError(t, err)
	require.Equal(t, []float64{0.75, 0.5}, model.Confidences())
}

func TestNewSimpleWineScenario(t *testing.T) {
	table := wineTable(t)

	model, err := NewSimple("pH", "citric acid", table, WithRenderer(&fakeRenderer{}))
	require.NoError(t, err)

	require.Equal(t, "pH", model.DependentVar())
	require.Equal(t, []string{"citric acid"}, model.IndependentVars())
	require.Equal(t, `Q("pH") ~ Q("citric acid")`, model.Formula())
	require.Equal(t, []string{"Intercept", `Q("citric acid")`}, model.InternalVariableNames())

	coefs := model.Coefficients()
	require.Len(t, coefs, 2)
	require.InDelta(t, 3.5, coefs[0], 1e-8)
	require.InDelta(t, -1.0/3.0, coefs[1], 1e-8)

	sentences := model.Conclusions()
	require.Len(t, sentences, 2)

	require.NoError(t, model.Plot(nil))
}
