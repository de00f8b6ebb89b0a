package cohort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riskmatch/cohort"
)

// TestCovariance_KnownValues checks the sample covariance of a tiny cohort
// against hand-computed entries.
func TestCovariance_KnownValues(t *testing.T) {
	// Covariates: x = {0, 2, 4}, y = {1, 1, 4}.
	// means: x̄=2, ȳ=2; sample (n−1) covariance:
	//   var(x)  = (4+0+4)/2   = 4
	//   var(y)  = (1+1+4)/2   = 3
	//   cov(x,y)= (2+0+4)/2   = 3
	subjects := []cohort.Subject{
		{ID: "a", Covariates: []float64{0, 1}, Time: 1},
		{ID: "b", Covariates: []float64{2, 1}, Time: 2},
		{ID: "c", Covariates: []float64{4, 4}, Time: 3},
	}

	sigma, err := cohort.Covariance(subjects)
	require.NoError(t, err)
	require.Equal(t, 2, sigma.SymmetricDim())

	assert.InDelta(t, 4.0, sigma.At(0, 0), 1e-12, "var(x)")
	assert.InDelta(t, 3.0, sigma.At(1, 1), 1e-12, "var(y)")
	assert.InDelta(t, 3.0, sigma.At(0, 1), 1e-12, "cov(x,y)")
	assert.Equal(t, sigma.At(0, 1), sigma.At(1, 0), "Σ is symmetric")
}

// TestCovariance_TooFew ensures fewer than two subjects is rejected.
func TestCovariance_TooFew(t *testing.T) {
	one := []cohort.Subject{{ID: "a", Covariates: []float64{1}, Time: 1}}

	_, err := cohort.Covariance(one)
	assert.ErrorIs(t, err, cohort.ErrTooFewSubjects)
}

// TestCovariance_Ragged ensures mismatched covariate lengths are rejected.
func TestCovariance_Ragged(t *testing.T) {
	subjects := []cohort.Subject{
		{ID: "a", Covariates: []float64{1, 2}, Time: 1},
		{ID: "b", Covariates: []float64{1}, Time: 2},
	}

	_, err := cohort.Covariance(subjects)
	assert.ErrorIs(t, err, cohort.ErrCovariateLength)
}
