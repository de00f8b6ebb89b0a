// Package mahalanobis computes covariance-normalized dissimilarity between
// covariate vectors:
//
//	d(x, y) = sqrt( (x−y)ᵀ · Σ⁻¹ · (x−y) )
//
// Mahalanobis distance generalizes Euclidean distance by normalizing for
// covariate scale and inter-covariate correlation, which makes it a
// statistically meaningful similarity across heterogeneous clinical and
// demographic features.
//
// Σ is factored exactly once (Cholesky) into an immutable Context that is
// shared read-only by all distance evaluations — explicitly passed context,
// never ambient global state. A singular or non-positive-definite Σ is a
// configuration error surfaced at construction, not a recoverable runtime
// state.
//
// The all-pairs dissimilarity matrix is quadratic in cohort size and mostly
// never consulted; Cache therefore evaluates lazily, memoizing only the
// (treated, eligible-control) pairs the solver actually asks for. Symmetry
// (d(i,j) = d(j,i)) and a zero diagonal hold by construction.
package mahalanobis
