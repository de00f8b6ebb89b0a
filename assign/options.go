package assign

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/riskmatch/cohort"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultEps is the improvement tolerance guarding pruning and incumbent
	// acceptance; prevents FP drift from flipping optimality decisions.
	DefaultEps = 1e-9

	// DefaultBalancePenaltyWeight disables the balance term.
	DefaultBalancePenaltyWeight = 0.0

	// DefaultTimeLimit of 0 means "unlimited".
	DefaultTimeLimit = time.Duration(0)
)

// PenaltyFunc is a pluggable objective addition: given a candidate
// (treated, control) pair it returns a non-negative cost added to that
// variable's objective coefficient. It extends the objective — it is never a
// separate solve.
type PenaltyFunc func(treated, control cohort.Subject) float64

// Options configures model construction and solving.
//
// Fields:
//   - BalancePenaltyWeight — real ≥ 0; 0 (default) disables the balance term.
//     When > 0 and Penalty is nil, MeanBalancePenalty(weight) is used.
//   - Penalty  — custom objective addition; overrides the built-in term.
//   - TimeLimit — soft solver budget; 0 means unlimited.
//   - Eps — improvement tolerance (≥ 0).
//   - Solver — combinatorial backend; nil selects BranchAndBound.
//   - Sigma — covariance matrix for the distance model; nil computes the
//     sample covariance of the full cohort. Supply a matrix to use a
//     designated reference subset instead.
type Options struct {
	BalancePenaltyWeight float64
	Penalty              PenaltyFunc
	TimeLimit            time.Duration
	Eps                  float64
	Solver               Solver
	Sigma                *mat.SymDense
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		BalancePenaltyWeight: DefaultBalancePenaltyWeight,
		TimeLimit:            DefaultTimeLimit,
		Eps:                  DefaultEps,
	}
}

// validate checks internal consistency of Options without touching data.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.BalancePenaltyWeight < 0 || math.IsNaN(o.BalancePenaltyWeight) || math.IsInf(o.BalancePenaltyWeight, 0) {
		return ErrBadOptions
	}
	if o.TimeLimit < 0 {
		return ErrBadOptions
	}
	if o.Eps < 0 || math.IsNaN(o.Eps) {
		return ErrBadOptions
	}

	return nil
}

// penalty resolves the effective objective addition: explicit Penalty wins,
// then the built-in mean-balance term when the weight is positive, else none.
func (o Options) penalty() PenaltyFunc {
	if o.Penalty != nil {
		return o.Penalty
	}
	if o.BalancePenaltyWeight > 0 {
		return MeanBalancePenalty(o.BalancePenaltyWeight)
	}

	return nil
}

// solver resolves the effective backend (BranchAndBound by default).
func (o Options) solver() Solver {
	if o.Solver != nil {
		return o.Solver
	}

	return BranchAndBound{}
}

// round1e9 returns x rounded to 1e-9 absolute precision. All reported costs
// are stabilized this way to prevent cross-platform FP drift.
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}
