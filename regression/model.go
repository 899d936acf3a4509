// Package regression implements formula-driven ordinary least squares models.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/easyols/dataset"
	"github.com/sartorproj/easyols/formula"
)

// Model represents an unfit OLS model bound to a formula and a dataset.
//
// Define builds the design matrix and resolves variable names; Fit estimates
// the coefficients and returns an immutable FittedModel. Variable names are
// available before fitting via EndogName and ExogNames.
type Model struct {
	formulaStr string
	data       *dataset.Table
	endogName  string   // quoted dependent term
	exogNames  []string // Intercept followed by quoted independent terms
	depCol     string   // raw dependent column name
	indepCols  []string // raw independent column names
	y          []float64
	x          *mat.Dense // design matrix with leading intercept column
	fitted     bool
}

// Define creates an unfit OLS model from a formula and a dataset.
// It fails if the formula is malformed or references missing columns.
func Define(formulaStr string, data *dataset.Table) (*Model, error) {
	if data == nil {
		return nil, errors.New("data table must not be nil")
	}

	dep, indeps, err := formula.Parse(formulaStr)
	if err != nil {
		return nil, err
	}

	y, err := data.Column(dep)
	if err != nil {
		return nil, fmt.Errorf("dependent variable: %w", err)
	}

	n := len(y)
	k := len(indeps) + 1
	x := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
	}

	exogNames := make([]string, 0, k)
	exogNames = append(exogNames, formula.Intercept)

	for j, name := range indeps {
		col, err := data.Column(name)
		if err != nil {
			return nil, fmt.Errorf("independent variable: %w", err)
		}
		for i := 0; i < n; i++ {
			x.Set(i, j+1, col[i])
		}
		exogNames = append(exogNames, formula.Quote(name))
	}

	return &Model{
		formulaStr: formulaStr,
		data:       data,
		endogName:  formula.Quote(dep),
		exogNames:  exogNames,
		depCol:     dep,
		indepCols:  indeps,
		y:          y,
		x:          x,
	}, nil
}

// Formula returns the model formula.
func (m *Model) Formula() string {
	return m.formulaStr
}

// EndogName returns the internal name of the dependent variable.
func (m *Model) EndogName() string {
	return m.endogName
}

// ExogNames returns the internal names of the model terms: the intercept
// first, then the independent variables in declaration order.
func (m *Model) ExogNames() []string {
	names := make([]string, len(m.exogNames))
	copy(names, m.exogNames)
	return names
}

// Fit estimates the model coefficients by ordinary least squares and returns
// the fitted model. A model can only be fitted once.
func (m *Model) Fit() (*FittedModel, error) {
	if m.fitted {
		return nil, errors.New("model has already been fitted")
	}

	n, k := m.x.Dims()
	df := n - k
	if df <= 0 {
		return nil, fmt.Errorf("insufficient observations: n=%d with %d parameters", n, k)
	}

	// beta = (X'X)^(-1) X'y, with an SVD pseudo-inverse fallback when X'X
	// is singular (e.g. collinear regressors)
	var xt mat.Dense
	xt.CloneFrom(m.x.T())

	var xtx mat.Dense
	xtx.Mul(&xt, m.x)

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		pinv, perr := pseudoInverse(&xtx)
		if perr != nil {
			return nil, fmt.Errorf("design matrix is singular: %w", perr)
		}
		inv.CloneFrom(pinv)
	}

	yVec := mat.NewVecDense(n, m.y)

	var xty mat.VecDense
	xty.MulVec(&xt, yVec)

	var beta mat.VecDense
	beta.MulVec(&inv, &xty)

	// Residuals
	yhat := mat.NewVecDense(n, nil)
	yhat.MulVec(m.x, &beta)
	resid := mat.NewVecDense(n, nil)
	resid.SubVec(yVec, yhat)
	rss := mat.Dot(resid, resid)

	// Residual variance and coefficient standard errors
	sigma2 := rss / float64(df)

	params := make([]float64, k)
	stdErrs := make([]float64, k)
	tStats := make([]float64, k)
	pValues := make([]float64, k)

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	for i := 0; i < k; i++ {
		params[i] = beta.AtVec(i)
		stdErrs[i] = math.Sqrt(sigma2 * inv.At(i, i))
		if stdErrs[i] == 0 {
			// Perfect fit: the coefficient is exact
			tStats[i] = math.Inf(1)
			if params[i] < 0 {
				tStats[i] = math.Inf(-1)
			}
			pValues[i] = 0
			continue
		}
		tStats[i] = params[i] / stdErrs[i]
		pValues[i] = 2 * tDist.Survival(math.Abs(tStats[i]))
	}

	// Goodness of fit
	yMean := dataset.Mean(m.y)
	tss := 0.0
	for _, v := range m.y {
		diff := v - yMean
		tss += diff * diff
	}
	rSquared := 1 - rss/tss
	adjRSquared := 1 - (1-rSquared)*float64(n-1)/float64(df)

	// F-test against the intercept-only model
	fStat := math.NaN()
	fPValue := math.NaN()
	if k > 1 && rss > 0 {
		fStat = ((tss - rss) / float64(k-1)) / (rss / float64(df))
		fDist := distuv.F{D1: float64(k - 1), D2: float64(df)}
		fPValue = fDist.Survival(fStat)
	}

	// Log-likelihood and information criteria (Gaussian errors)
	logLik := -0.5 * float64(n) * (1 + math.Log(2*math.Pi*rss/float64(n)))
	aic := -2*logLik + 2*float64(k)
	bic := -2*logLik + float64(k)*math.Log(float64(n))

	m.fitted = true

	return &FittedModel{
		formulaStr:  m.formulaStr,
		endogName:   m.endogName,
		exogNames:   m.ExogNames(),
		depCol:      m.depCol,
		indepCols:   append([]string(nil), m.indepCols...),
		params:      params,
		stdErrs:     stdErrs,
		tStats:      tStats,
		pValues:     pValues,
		rSquared:    rSquared,
		adjRSquared: adjRSquared,
		fStat:       fStat,
		fPValue:     fPValue,
		logLik:      logLik,
		aic:         aic,
		bic:         bic,
		numObs:      n,
		df:          df,
	}, nil
}

// pseudoInverse computes the Moore-Penrose pseudo-inverse via SVD.
func pseudoInverse(a *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, errors.New("SVD factorization failed")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	sigma := svd.Values(nil)
	rows, cols := a.Dims()
	sInv := mat.NewDense(cols, rows, nil)

	const tol = 1e-12 // small singular values are truncated
	for i, val := range sigma {
		if val > tol {
			sInv.Set(i, i, 1/val)
		}
	}

	var tmp mat.Dense
	tmp.Mul(&v, sInv)

	var ut mat.Dense
	ut.CloneFrom(u.T())

	var pinv mat.Dense
	pinv.Mul(&tmp, &ut)

	return &pinv, nil
}
