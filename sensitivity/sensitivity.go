package sensitivity

import (
	"errors"
	"math"

	"github.com/katalvlaran/riskmatch/assign"
)

var (
	// ErrBadGamma is returned when Γ < 1, NaN or ±Inf. Γ = 1 means "no
	// hidden bias"; values below it have no interpretation.
	ErrBadGamma = errors.New("sensitivity: gamma must be a finite value >= 1")

	// ErrNoPairs is returned when the matching holds no pairs to analyze.
	ErrNoPairs = errors.New("sensitivity: matching has no pairs")
)

// DefaultDistanceScale is the dissimilarity at which DistanceWeightedScore
// has discounted a pair's score by the factor e.
const DefaultDistanceScale = 1.0

// ScoreFunc is the swappable scoring policy: given the bias strength Γ and
// one matched pair, return a robustness score in (0, 1], monotone
// non-increasing in Γ for any fixed pair.
type ScoreFunc func(gamma float64, pair assign.Pair) float64

// RosenbaumScore is the default policy: the complement of the sign-test
// upper bound. Within a pair, a confounder of strength Γ can push the
// probability that the treated subject is the "wrong" one of the couple up to
// Γ/(1+Γ); the score is twice the remaining even-odds mass,
//
//	score(Γ) = 2/(1+Γ),
//
// so score(1) = 1 (coin flip, fully robust) and score → 0 as Γ → ∞.
// Per-pair covariate detail is deliberately ignored — this is the classical
// distribution-free bound.
func RosenbaumScore(gamma float64, _ assign.Pair) float64 {
	return 2 / (1 + gamma)
}

// DistanceWeightedScore attenuates the Rosenbaum bound by the realized pair
// dissimilarity: a poorly matched pair is less robust at every Γ,
//
//	score(Γ, d) = 2/(1+Γ) · exp(−d/scale).
//
// Monotonicity in Γ and the (0, 1] range are preserved for any scale > 0;
// non-positive scales fall back to DefaultDistanceScale.
func DistanceWeightedScore(scale float64) ScoreFunc {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = DefaultDistanceScale
	}

	return func(gamma float64, pair assign.Pair) float64 {
		return 2 / (1 + gamma) * math.Exp(-pair.Distance/scale)
	}
}

// Analyze scores every matched pair at bias strength Γ using the given
// policy (nil selects RosenbaumScore). The result maps treated id → score.
//
// Contracts: Γ finite and ≥ 1; at least one pair.
//
// Errors: ErrBadGamma, ErrNoPairs.
//
// Complexity: O(P) for P pairs.
func Analyze(pairs []assign.Pair, gamma float64, score ScoreFunc) (map[string]float64, error) {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || gamma < 1 {
		return nil, ErrBadGamma
	}
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}
	if score == nil {
		score = RosenbaumScore
	}

	out := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		out[p.Treated] = score(gamma, p)
	}

	return out, nil
}

// AnalyzeRange evaluates Analyze over a sweep of Γ values against one fixed
// matching — no re-matching, no shared state between evaluations. The i-th
// result corresponds to gammas[i].
//
// Errors: ErrBadGamma (any malformed Γ fails the whole sweep), ErrNoPairs.
//
// Complexity: O(G·P).
func AnalyzeRange(pairs []assign.Pair, gammas []float64, score ScoreFunc) ([]map[string]float64, error) {
	out := make([]map[string]float64, len(gammas))
	for i, g := range gammas {
		m, err := Analyze(pairs, g, score)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}

	return out, nil
}
