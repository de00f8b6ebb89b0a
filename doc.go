// Package riskmatch is a toolkit for observational-study design:
// risk-set-constrained optimal matching with sensitivity analysis.
//
// Given a cohort of treated and untreated subjects observed over time, it
// pairs each treated subject with a control that was still "at risk" at the
// moment treatment occurred, minimizing total covariate dissimilarity under
// one-to-one constraints, and then bounds how fragile the matched comparison
// is to an unmeasured confounder of strength Γ.
//
// Everything is organized under five subpackages:
//
//	cohort/      — subject table: records, configurable schema, covariance
//	riskset/     — eligibility sets (controls at risk at each treatment time)
//	mahalanobis/ — covariance-normalized dissimilarity (Σ factored once)
//	assign/      — binary integer program + branch-and-bound optimal pairing
//	sensitivity/ — Rosenbaum-style per-pair hidden-bias bounds
//
// Why choose riskmatch?
//
//   - Deterministic — stable orderings, no time-based randomness, stabilized costs
//   - Strict sentinels — every failure mode is a named error, matched via errors.Is
//   - Pure Go — no cgo; linear algebra via gonum
//   - Extensible — swappable solver backend and sensitivity scoring policy
//
// Typical flow:
//
//	subjects → riskset.Build → mahalanobis.NewContext → assign.Match → sensitivity.Analyze
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/riskmatch
package riskmatch
