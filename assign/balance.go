package assign

import (
	"math"

	"github.com/katalvlaran/riskmatch/cohort"
)

// MeanBalancePenalty returns the built-in balance term: a linear surrogate
// that discourages aggregate covariate imbalance between the treated group
// and its matched controls.
//
// Exact group-mean imbalance is nonlinear in the assignment (it depends on
// which pairs are jointly selected), so it cannot be a per-variable
// coefficient. The standard linear surrogate charges each candidate pair its
// own contribution to the group discrepancy — the mean absolute covariate
// difference:
//
//	penalty(t, c) = weight · (1/K) · Σ_k |x_tk − x_ck|
//
// Summed over the selected pairs this upper-bounds (by the triangle
// inequality) the absolute difference of group covariate totals, so driving
// it down drives aggregate imbalance down while keeping the program linear.
//
// Contracts: weight > 0; vectors of equal length (guaranteed by cohort
// validation upstream).
//
// Complexity: O(K) per evaluated pair.
func MeanBalancePenalty(weight float64) PenaltyFunc {
	return func(treated, control cohort.Subject) float64 {
		k := len(treated.Covariates)
		if k == 0 || k != len(control.Covariates) {
			return 0
		}
		var sum float64
		for i := 0; i < k; i++ {
			sum += math.Abs(treated.Covariates[i] - control.Covariates[i])
		}

		return weight * sum / float64(k)
	}
}
