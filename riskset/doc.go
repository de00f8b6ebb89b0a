// Package riskset builds eligibility sets for risk-set matching.
//
// For each treated subject t with treatment time τ(t), the risk set is the
// set of controls still "at risk" — not yet treated, still under observation —
// as of the index time:
//
//	R(t) = { c : treated(c) = false ∧ time(c) ≥ τ(t) }
//
// Ties are inclusive by design: a control observed at exactly the treatment
// instant is eligible (≥, not >).
//
// Risk sets are derived data: recomputed from the subject table on demand,
// holding no independent lifecycle. A treated subject with no eligible control
// still appears as a key with an empty set — it is later reported unmatched,
// never silently dropped.
package riskset
