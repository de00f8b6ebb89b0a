// Package sensitivity bounds how fragile a matched comparison is to an
// unmeasured confounder (Rosenbaum-style sensitivity analysis).
//
// The bias strength Γ ≥ 1 states how many times more likely a hidden
// confounder could make one subject of a matched pair receive treatment over
// its partner versus chance. At Γ = 1 there is no hidden bias and assignment
// within a pair is a coin flip; as Γ grows, the apparent effect of the match
// could increasingly be an artifact of the confounder.
//
// Analyze maps each matched pair to a robustness score in (0, 1], monotone
// non-increasing in Γ — lower means the pair's comparison is easier to
// explain away. The scoring formula is deliberately a swappable policy
// (ScoreFunc): the shipped RosenbaumScore uses only Γ (the classical sign-test
// bound), while DistanceWeightedScore additionally discounts poorly matched
// pairs by their realized dissimilarity.
//
// The analyzer is pure: Γ and the realized matching are plain inputs, no
// solver state is consulted, and output is deterministic — so a range of Γ
// can be explored without re-matching (AnalyzeRange).
package sensitivity
