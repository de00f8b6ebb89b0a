package cohort

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrTooFewSubjects is returned when covariance estimation is requested for
// fewer than two subjects (sample covariance is undefined).
var ErrTooFewSubjects = errors.New("cohort: covariance needs at least two subjects")

// Covariance estimates the K×K sample covariance matrix Σ over the covariate
// vectors of the given subjects (treated and controls alike, or a designated
// reference subset chosen by the caller).
//
// The result is computed once per run and shared read-only by the distance
// model. Positive-definiteness is NOT verified here: it is enforced where Σ is
// factored (mahalanobis.NewContext), because singularity is a configuration
// error of the whole run, not a property of this estimator.
//
// Errors: ErrTooFewSubjects, ErrCovariateLength (via Validate-style scan).
//
// Complexity: O(N·K²) for N subjects with K covariates.
func Covariance(subjects []Subject) (*mat.SymDense, error) {
	if len(subjects) < 2 {
		return nil, ErrTooFewSubjects
	}
	var (
		n   = len(subjects)
		dim = len(subjects[0].Covariates)
	)
	if dim == 0 {
		return nil, ErrNoCovariates
	}

	// Pack covariates row-per-subject; reject ragged vectors on the way.
	data := mat.NewDense(n, dim, nil)
	for i, s := range subjects {
		if len(s.Covariates) != dim {
			return nil, ErrCovariateLength
		}
		data.SetRow(i, s.Covariates)
	}

	var sigma mat.SymDense
	stat.CovarianceMatrix(&sigma, data, nil)

	return &sigma, nil
}
