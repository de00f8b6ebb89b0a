// Package assign - unified matching façade.
//
// Match is the canonical entry point for a full run: validate the cohort,
// build risk sets, factor Σ once into an immutable distance context, construct
// the integer program, delegate to the configured backend, and extract the
// Result. Each stage is independently usable; Match only sequences them.
package assign

import (
	"github.com/katalvlaran/riskmatch/cohort"
	"github.com/katalvlaran/riskmatch/mahalanobis"
	"github.com/katalvlaran/riskmatch/riskset"
)

// Match pairs every matchable treated subject with a distinct at-risk control
// at minimum total dissimilarity.
//
// Contracts:
//   - subjects must pass cohort.Validate;
//   - opts.Sigma, when supplied, must match the covariate dimensionality and
//     be positive-definite; nil computes the full-cohort sample covariance.
//
// Errors: cohort sentinels (malformed table), cohort.ErrTooFewSubjects,
// mahalanobis sentinels (bad Σ), ErrBadOptions, ErrInfeasible, ErrTimeLimit.
// Unmatched treated subjects are NOT an error: they are reported in
// Result.Unmatched.
//
// Complexity: risk sets O(T·C), distances O(V·K²) lazily over V eligible
// pairs, then the backend's search (see bnb.go).
func Match(subjects []cohort.Subject, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	// Stage 1: eligibility (validates the cohort internally).
	sets, err := riskset.Build(subjects)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: distance model — Σ factored exactly once per run.
	sigma := opts.Sigma
	if sigma == nil {
		if sigma, err = cohort.Covariance(subjects); err != nil {
			return Result{}, err
		}
	}
	ctx, err := mahalanobis.NewContext(sigma)
	if err != nil {
		return Result{}, err
	}

	// Stage 3: program construction over a lazy pair cache.
	model, err := BuildModel(subjects, sets, mahalanobis.NewCache(ctx, subjects), opts)
	if err != nil {
		return Result{}, err
	}

	// Stage 4: delegate to the backend; surface its status verbatim.
	sol, err := opts.solver().Solve(model, opts)
	if err != nil {
		return Result{}, err
	}

	return model.Extract(sol), nil
}
