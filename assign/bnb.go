// Package assign — Branch-and-Bound backend (exact search with admissible
// lower bounds).
//
// BranchAndBound enumerates one-to-one assignments via a depth-first search
// with deterministic branching, an admissible lower bound, and a soft time
// budget.
//
// Rationale (succinct):
//  1. The model is prefetched into flat buffers by BuildModel; rows arrive
//     with candidates pre-sorted by ascending cost, so the engine carries no
//     interface overhead in hot loops.
//  2. Row order: most-constrained-first (fewest candidates, row-index
//     tiebreak). Tight rows fail early, cutting the tree near the root.
//  3. Lower bound: in any completion, every unassigned row r pays at least
//     minCost[r] — the cheapest candidate in the row, availability ignored.
//     LB = costSoFar + Σ minCost[remaining rows]. Ignoring availability only
//     lowers the bound, so LB ≤ OPT of the subtree: admissible. Prune
//     whenever LB ≥ UB − eps.
//  4. Branching: within a row, candidates in ascending (cost, column) order.
//     Cheap candidates first tightens UB early and keeps runs reproducible.
//  5. Soft time limit: rare deadline checks (every 1024 node events) keep
//     overhead negligible. On expiry the incumbent (if any) is surfaced as
//     StatusTimeLimited — never passed off as optimal.
//
// Complexity:
//   - Worst case exponential in the number of rows (exact search); practical
//     speed comes from pruning and the constrained-first row order.
//   - Per node: O(1) bound update + O(1) state updates.
//   - Memory: O(R + C) search state + O(R) precomputed row minima.
package assign

import (
	"math"
	"sort"
	"time"
)

// BranchAndBound is the default exact backend.
type BranchAndBound struct{}

// bnbEngine holds all search data and policies. A dedicated engine struct
// (instead of anonymous closures) keeps dependencies explicit, testing
// simpler, and hot-path state predictable.
type bnbEngine struct {
	m   *Model
	eps float64

	// Time budget
	useDeadline bool
	deadline    time.Time
	expired     bool
	steps       int // sparse deadline checks counter

	// Precomputes
	rowOrder []int     // rows sorted by (len(candidates), row)
	tailMin  []float64 // tailMin[d] = Σ minCost over rowOrder[d:]

	// Current search state
	usedCol []bool
	pick    []int // pick[d] = chosen var index at depth d

	// Incumbent (UB)
	bestPick []int
	bestCost float64
	foundAny bool
}

// deadlineCheck performs a rare deadline test (every 1024 node events).
func (e *bnbEngine) deadlineCheck() bool {
	if e.expired {
		return true
	}
	e.steps++
	if !e.useDeadline || (e.steps&1023) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.expired = true
	}

	return e.expired
}

// precompute fixes the row visit order and the suffix lower-bound table.
//
// tailMin[d] is the admissible remainder for depths ≥ d: each remaining row
// pays at least its cheapest candidate, availability ignored.
func (e *bnbEngine) precompute() {
	n := len(e.m.Rows)
	e.rowOrder = make([]int, n)
	for i := range e.rowOrder {
		e.rowOrder[i] = i
	}
	// Most-constrained-first, deterministic tiebreak by row index.
	sort.Slice(e.rowOrder, func(i, j int) bool {
		ri, rj := e.rowOrder[i], e.rowOrder[j]
		if len(e.m.Rows[ri]) == len(e.m.Rows[rj]) {
			return ri < rj
		}

		return len(e.m.Rows[ri]) < len(e.m.Rows[rj])
	})

	e.tailMin = make([]float64, n+1)
	for d := n - 1; d >= 0; d-- {
		row := e.m.Rows[e.rowOrder[d]]
		// Rows arrive cost-sorted from BuildModel: row[0] is the minimum.
		e.tailMin[d] = e.tailMin[d+1] + e.m.Vars[row[0]].Cost
	}
}

// commit records a new incumbent (UB) with stabilized cost.
func (e *bnbEngine) commit(total float64) {
	copy(e.bestPick, e.pick)
	e.bestCost = round1e9(total)
	e.foundAny = true
}

// dfs performs the core search: deterministic branching + pruning by
// LB ≥ UB − eps.
func (e *bnbEngine) dfs(depth int, costSoFar float64) {
	// Sparse time check (practically free).
	if e.deadlineCheck() {
		return
	}

	// Prune by the admissible suffix bound.
	if costSoFar+e.tailMin[depth] >= e.bestCost-e.eps {
		return
	}

	// All rows assigned: new incumbent.
	if depth == len(e.rowOrder) {
		e.commit(costSoFar)

		return
	}

	// Branch: candidates of the current row in precomputed (cost, col) order.
	for _, vi := range e.m.Rows[e.rowOrder[depth]] {
		v := e.m.Vars[vi]
		if e.usedCol[v.Col] {
			continue
		}
		e.usedCol[v.Col] = true
		e.pick[depth] = vi
		e.dfs(depth+1, costSoFar+v.Cost)
		e.usedCol[v.Col] = false
		if e.expired {
			return
		}
	}
}

// Solve is the public entrypoint for the exact BnB backend.
//
// Errors:
//   - ErrNilModel / ErrBadOptions for malformed calls.
//   - ErrInfeasible when the search space holds no complete assignment
//     (possible only through an over-subscribed control pool, since empty
//     risk sets never become exactly-one rows).
//   - ErrTimeLimit when the budget expired before any incumbent existed.
//
// A budget expiring after an incumbent was found returns that incumbent with
// StatusTimeLimited.
func (BranchAndBound) Solve(m *Model, opts Options) (Solution, error) {
	if m == nil {
		return Solution{}, ErrNilModel
	}
	if err := opts.validate(); err != nil {
		return Solution{}, err
	}

	n := len(m.Rows)
	if n == 0 {
		// All-zero assignment: trivially optimal (nothing to match).
		return Solution{Assign: make([]bool, len(m.Vars)), Status: StatusOptimal}, nil
	}
	// An exactly-one row without candidates is a malformed constraint
	// (BuildModel never emits one): report it as infeasibility, per contract.
	for _, row := range m.Rows {
		if len(row) == 0 {
			return Solution{Status: StatusInfeasible}, ErrInfeasible
		}
	}

	var e bnbEngine
	e.m = m
	e.eps = opts.Eps
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	e.precompute()
	e.usedCol = make([]bool, len(m.ControlIDs))
	e.pick = make([]int, n)
	e.bestPick = make([]int, n)
	e.bestCost = math.Inf(1)

	e.dfs(0, 0)

	// Finalization: status reflects exactly what the search proved.
	switch {
	case !e.foundAny && e.expired:
		return Solution{Status: StatusTimeLimited}, ErrTimeLimit
	case !e.foundAny:
		return Solution{Status: StatusInfeasible}, ErrInfeasible
	}

	sol := Solution{
		Assign:    make([]bool, len(m.Vars)),
		Objective: e.bestCost,
		Status:    StatusOptimal,
	}
	if e.expired {
		// Incumbent exists but the proof of optimality was cut short.
		sol.Status = StatusTimeLimited
	}
	for _, vi := range e.bestPick {
		sol.Assign[vi] = true
	}

	return sol, nil
}
