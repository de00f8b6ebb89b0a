// Package assign formulates risk-set matching as a binary integer program and
// solves it to optimality.
//
// Formulation:
//   - one 0/1 decision variable per (treated, eligible-control) pair drawn
//     from the risk sets — value 1 means the pair is matched;
//   - objective: minimize the summed pair cost (Mahalanobis dissimilarity,
//     plus an optional balance-penalty term on each coefficient);
//   - constraints: every treated subject with a non-empty risk set is matched
//     exactly once; every control serves at most one treated subject. Treated
//     subjects with empty risk sets are excluded from the exactly-one rows
//     and reported as unmatched — forcing them would fabricate infeasibility.
//
// Solving is delegated through the Solver capability interface: the package's
// responsibility is correct problem construction and result extraction, not
// monopolizing the combinatorial backend. Two backends ship in-tree:
//
//   - BranchAndBound — deterministic DFS with an admissible lower bound,
//     incumbent upper bound, eps-guarded pruning and a soft time limit.
//     The default, and exact.
//   - Exhaustive — unpruned enumeration; the reference oracle for tests and
//     a worked example of plugging in an alternative backend.
//
// Failure semantics: a solver never passes off a degraded answer as optimal.
// Solutions carry a Status (optimal / time-limited / infeasible); time-limited
// incumbents are returned with StatusTimeLimited, genuine infeasibility (an
// over-subscribed control pool) is ErrInfeasible, and a deadline with no
// incumbent at all is ErrTimeLimit.
//
// The Match façade wires the full pipeline:
//
//	cohort table → riskset.Build → mahalanobis (Σ factored once, lazy cache)
//	            → BuildModel → Solver.Solve → Result
package assign
