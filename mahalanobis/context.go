package mahalanobis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilCovariance indicates a nil Σ passed to NewContext.
	ErrNilCovariance = errors.New("mahalanobis: nil covariance matrix")

	// ErrNotPositiveDefinite is returned when Σ is singular or not positive
	// definite. This is a configuration error: fix the covariate set (e.g.,
	// drop a linearly dependent column) rather than retrying.
	ErrNotPositiveDefinite = errors.New("mahalanobis: covariance matrix is singular or not positive-definite")

	// ErrDimensionMismatch indicates vectors whose length differs from Σ's
	// order (or from each other).
	ErrDimensionMismatch = errors.New("mahalanobis: covariate vector length mismatch")

	// ErrNaNInf indicates a NaN or ±Inf covariate where finite values are
	// required.
	ErrNaNInf = errors.New("mahalanobis: NaN or Inf covariate")
)

// Context is the immutable distance model: Σ factored once, then shared
// read-only across any number of Distance calls. Safe for concurrent use —
// no field is written after NewContext returns.
type Context struct {
	chol mat.Cholesky
	dim  int
}

// NewContext factors the covariance matrix and returns a ready Context.
//
// Contracts:
//   - sigma must be square, symmetric, positive-definite (invertible).
//
// Errors: ErrNilCovariance, ErrNotPositiveDefinite.
//
// Complexity: O(K³) once, for K covariate dimensions.
func NewContext(sigma *mat.SymDense) (*Context, error) {
	if sigma == nil {
		return nil, ErrNilCovariance
	}

	var ctx Context
	ctx.dim = sigma.SymmetricDim()
	if ctx.dim == 0 {
		return nil, ErrNilCovariance
	}
	// Cholesky succeeds iff Σ is positive-definite; failure covers both the
	// singular and the indefinite misconfiguration in one test.
	if ok := ctx.chol.Factorize(sigma); !ok {
		return nil, ErrNotPositiveDefinite
	}

	return &ctx, nil
}

// Dim returns the covariate dimensionality the context was built for.
func (c *Context) Dim() int { return c.dim }

// Distance returns the Mahalanobis distance between x and y.
//
// Contracts:
//   - len(x) == len(y) == Dim(); all entries finite.
//
// Properties (see package tests): symmetry d(x,y)==d(y,x); identity d(x,x)==0;
// non-negativity.
//
// Errors: ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: O(K²) per call (two triangular solves on the cached factor).
func (c *Context) Distance(x, y []float64) (float64, error) {
	if len(x) != c.dim || len(y) != c.dim {
		return 0, ErrDimensionMismatch
	}

	// diff = x − y, with strict finiteness screening.
	diff := make([]float64, c.dim)
	for i := range diff {
		if isNonFinite(x[i]) || isNonFinite(y[i]) {
			return 0, ErrNaNInf
		}
		diff[i] = x[i] - y[i]
	}

	// Solve Σ·z = diff on the cached factorization, then d² = diffᵀ·z.
	var (
		d = mat.NewVecDense(c.dim, diff)
		z mat.VecDense
	)
	if err := c.chol.SolveVecTo(&z, d); err != nil {
		// Unreachable for a successfully factored Σ; keep the sentinel
		// mapping rather than leaking gonum internals.
		return 0, ErrNotPositiveDefinite
	}
	d2 := mat.Dot(d, &z)
	if d2 < 0 {
		// FP noise near zero; clamp so the square root stays real.
		d2 = 0
	}

	return math.Sqrt(d2), nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
