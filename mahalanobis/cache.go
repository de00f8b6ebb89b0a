package mahalanobis

import (
	"errors"

	"github.com/katalvlaran/riskmatch/cohort"
)

// ErrUnknownSubject indicates a pair lookup naming an id absent from the
// cohort the cache was built over.
var ErrUnknownSubject = errors.New("mahalanobis: unknown subject id")

// Cache is the lazy dissimilarity matrix: distances are computed on first
// request and memoized under an orientation-free key, so d(i,j) and d(j,i)
// share one entry and symmetry holds by construction.
//
// Cache is NOT safe for concurrent use (single-writer memo); the matching
// engine is synchronous, so this costs nothing. Build one Cache per run.
type Cache struct {
	ctx  *Context
	subj map[string][]float64
	memo map[[2]string]float64
}

// NewCache indexes the cohort's covariate vectors for id-keyed lookups.
//
// Complexity: O(N) construction; memoization grows with distinct pairs asked.
func NewCache(ctx *Context, subjects []cohort.Subject) *Cache {
	subj := make(map[string][]float64, len(subjects))
	for _, s := range subjects {
		subj[s.ID] = s.Covariates
	}

	return &Cache{
		ctx:  ctx,
		subj: subj,
		memo: make(map[[2]string]float64),
	}
}

// Between returns the Mahalanobis distance between two subjects by id,
// computing and memoizing it on first use.
//
// Errors: ErrUnknownSubject, plus Context.Distance sentinels.
//
// Complexity: O(K²) on a miss, O(1) on a hit.
func (c *Cache) Between(a, b string) (float64, error) {
	if a == b {
		return 0, nil // zero diagonal, no lookup needed
	}

	key := pairKey(a, b)
	if d, ok := c.memo[key]; ok {
		return d, nil
	}

	xa, ok := c.subj[a]
	if !ok {
		return 0, ErrUnknownSubject
	}
	xb, ok := c.subj[b]
	if !ok {
		return 0, ErrUnknownSubject
	}

	d, err := c.ctx.Distance(xa, xb)
	if err != nil {
		return 0, err
	}
	c.memo[key] = d

	return d, nil
}

// Size reports how many distinct pair distances have been materialized.
func (c *Cache) Size() int { return len(c.memo) }

// pairKey normalizes (a,b) so both orientations hit the same memo entry.
func pairKey(a, b string) [2]string {
	if a < b {
		return [2]string{a, b}
	}

	return [2]string{b, a}
}
