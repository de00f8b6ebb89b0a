package assign_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/riskmatch/assign"
	"github.com/katalvlaran/riskmatch/cohort"
	"github.com/katalvlaran/riskmatch/mahalanobis"
)

// studyCohort builds the 10-subject reference cohort: ages 25..70 step 5,
// severities 1..10, subjects 3 and 7 treated, times 3..12.
func studyCohort() []cohort.Subject {
	subjects := make([]cohort.Subject, 10)
	for i := range subjects {
		subjects[i] = cohort.Subject{
			ID:         fmt.Sprintf("S%d", i),
			Covariates: []float64{float64(25 + 5*i), float64(1 + i)},
			Treated:    i == 3 || i == 7,
			Time:       float64(3 + i),
		}
	}

	return subjects
}

// identitySigma is the designated reference covariance for the study cohort
// (its age/severity columns are perfectly collinear, so the sample Σ is
// singular by construction — see TestMatch_SingularCohortSigma).
func identitySigma() *mat.SymDense {
	return mat.NewSymDense(2, []float64{1, 0, 0, 1})
}

// TestMatch_StudyCohort runs the full pipeline on the reference cohort and
// checks eligibility, one-to-one structure and the nearest-eligible bound.
func TestMatch_StudyCohort(t *testing.T) {
	subjects := studyCohort()
	opts := assign.DefaultOptions()
	opts.Sigma = identitySigma()

	res, err := assign.Match(subjects, opts)
	require.NoError(t, err)
	assert.Equal(t, assign.StatusOptimal, res.Status)
	assert.Empty(t, res.Unmatched)
	require.Len(t, res.Pairs, 2, "both treated subjects must be matched")

	// Eligibility: S3 treats at time 6, S7 at time 10; matched controls must
	// have been observed at or after those instants.
	eligible := map[string]map[string]bool{
		"S3": {"S4": true, "S5": true, "S6": true, "S8": true, "S9": true},
		"S7": {"S8": true, "S9": true},
	}
	for treated, control := range res.Matching {
		assert.True(t, eligible[treated][control],
			"%s matched to %s outside its risk set", treated, control)
	}

	// One-to-one on the control side.
	assert.NotEqual(t, res.Matching["S3"], res.Matching["S7"], "controls must be distinct")

	// Optimality sanity: total distance must not exceed the sum of each
	// treated subject's single nearest eligible control.
	ctx, err := mahalanobis.NewContext(identitySigma())
	require.NoError(t, err)
	byID := make(map[string][]float64)
	for _, s := range subjects {
		byID[s.ID] = s.Covariates
	}
	var nearestSum float64
	for treated, controls := range eligible {
		nearest := math.Inf(1)
		for control := range controls {
			d, derr := ctx.Distance(byID[treated], byID[control])
			require.NoError(t, derr)
			if d < nearest {
				nearest = d
			}
		}
		nearestSum += nearest
	}
	assert.LessOrEqual(t, res.Objective, nearestSum+1e-9,
		"optimal total must not exceed the nearest-eligible sum")

	// For this cohort the bound is tight: both nearest controls are distinct
	// (S4 and S8, one index step ≈ sqrt(26) each under Σ=I).
	assert.InDelta(t, 2*math.Sqrt(26), res.Objective, 1e-9)
	assert.Equal(t, "S4", res.Matching["S3"])
	assert.Equal(t, "S8", res.Matching["S7"])
}

// TestMatch_UnmatchedIsReported: a treated subject whose treatment time
// exceeds every observation yields an empty risk set and a normal, explicit
// unmatched report — not an unconstrained-variable error.
func TestMatch_UnmatchedIsReported(t *testing.T) {
	subjects := []cohort.Subject{
		{ID: "t-late", Covariates: []float64{1, 0}, Treated: true, Time: 100},
		{ID: "t-ok", Covariates: []float64{2, 1}, Treated: true, Time: 2},
		{ID: "c1", Covariates: []float64{2, 2}, Time: 3},
		{ID: "c2", Covariates: []float64{5, 1}, Time: 4},
	}
	opts := assign.DefaultOptions()
	opts.Sigma = identitySigma()

	res, err := assign.Match(subjects, opts)
	require.NoError(t, err, "an empty risk set is an outcome, not an error")

	assert.Equal(t, []string{"t-late"}, res.Unmatched)
	assert.NotContains(t, res.Matching, "t-late")
	assert.Contains(t, res.Matching, "t-ok")
	assert.Equal(t, assign.StatusOptimal, res.Status)
}

// TestMatch_BalancePenaltyShare verifies the objective decomposition when
// the balance term is on: Objective = Distance + Penalty, penalty positive.
func TestMatch_BalancePenaltyShare(t *testing.T) {
	subjects := studyCohort()

	base := assign.DefaultOptions()
	base.Sigma = identitySigma()
	plain, err := assign.Match(subjects, base)
	require.NoError(t, err)
	assert.Zero(t, plain.Penalty, "weight 0 disables the balance term")

	weighted := base
	weighted.BalancePenaltyWeight = 0.5
	res, err := assign.Match(subjects, weighted)
	require.NoError(t, err)

	assert.Positive(t, res.Penalty)
	assert.InDelta(t, res.Distance+res.Penalty, res.Objective, 1e-9)
	assert.Equal(t, plain.Distance, res.Distance,
		"uniform per-index penalty cannot change this cohort's optimal pairing")
}

// TestMatch_SingularCohortSigma: collinear covariates make the sample Σ
// singular — a configuration error surfaced before any solving happens.
func TestMatch_SingularCohortSigma(t *testing.T) {
	_, err := assign.Match(studyCohort(), assign.DefaultOptions())
	assert.ErrorIs(t, err, mahalanobis.ErrNotPositiveDefinite)
}

// TestMatch_CustomSolverSeam proves the backend is swappable without
// touching risk-set or distance logic.
func TestMatch_CustomSolverSeam(t *testing.T) {
	opts := assign.DefaultOptions()
	opts.Sigma = identitySigma()
	opts.Solver = assign.Exhaustive{}

	res, err := assign.Match(studyCohort(), opts)
	require.NoError(t, err)
	assert.Equal(t, assign.StatusOptimal, res.Status)
	assert.InDelta(t, 2*math.Sqrt(26), res.Objective, 1e-9,
		"reference backend must reproduce the optimum")
}

// TestMatch_BadOptions covers option validation at the façade.
func TestMatch_BadOptions(t *testing.T) {
	opts := assign.DefaultOptions()
	opts.TimeLimit = -1

	_, err := assign.Match(studyCohort(), opts)
	assert.ErrorIs(t, err, assign.ErrBadOptions)
}

// TestMatch_InvalidCohort propagates table-level sentinels unchanged.
func TestMatch_InvalidCohort(t *testing.T) {
	bad := []cohort.Subject{
		{ID: "x", Covariates: []float64{1}, Treated: true, Time: 1},
		{ID: "x", Covariates: []float64{2}, Time: 2},
	}

	_, err := assign.Match(bad, assign.DefaultOptions())
	assert.ErrorIs(t, err, cohort.ErrDuplicateID)
}
