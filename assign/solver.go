package assign

import "math"

// Solver is the capability interface for combinatorial backends: submit the
// abstract program, receive a per-variable binary assignment plus a status
// flag. Swapping the backend (network-simplex, a MILP bridge, BnB) never
// touches risk-set or distance logic.
//
// Implementations must honor Options.TimeLimit as a soft budget and must
// never report StatusOptimal for an assignment they cannot prove optimal.
type Solver interface {
	Solve(m *Model, opts Options) (Solution, error)
}

// Exhaustive is the reference backend: complete enumeration of all feasible
// assignments with no pruning. Exponential and deliberately so — it exists to
// certify other backends on small instances and to demonstrate the Solver
// seam. Ignores Options.TimeLimit (instances it is fit for finish instantly).
type Exhaustive struct{}

// Solve enumerates every assignment satisfying the exactly-one /
// at-most-one constraints and keeps the cheapest.
//
// Errors: ErrNilModel, ErrBadOptions, ErrInfeasible.
//
// Complexity: O(Π_r |Rows[r]|) worst case — small cohorts only.
func (Exhaustive) Solve(m *Model, opts Options) (Solution, error) {
	if m == nil {
		return Solution{}, ErrNilModel
	}
	if err := opts.validate(); err != nil {
		return Solution{}, err
	}

	var (
		nRows    = len(m.Rows)
		nCols    = len(m.ControlIDs)
		pick     = make([]int, nRows) // chosen var index per row
		used     = make([]bool, nCols)
		best     = math.Inf(1)
		bestPick []int
	)

	var walk func(row int, cost float64)
	walk = func(row int, cost float64) {
		if row == nRows {
			if cost < best {
				best = cost
				bestPick = append(bestPick[:0], pick[:nRows]...)
			}

			return
		}
		for _, vi := range m.Rows[row] {
			v := m.Vars[vi]
			if used[v.Col] {
				continue
			}
			used[v.Col] = true
			pick[row] = vi
			walk(row+1, cost+v.Cost)
			used[v.Col] = false
		}
	}
	walk(0, 0)

	if bestPick == nil && nRows > 0 {
		return Solution{Status: StatusInfeasible}, ErrInfeasible
	}

	sol := Solution{
		Assign:    make([]bool, len(m.Vars)),
		Objective: round1e9(best),
		Status:    StatusOptimal,
	}
	if nRows == 0 {
		sol.Objective = 0 // all-zero assignment: nothing to match
	}
	for _, vi := range bestPick {
		sol.Assign[vi] = true
	}

	return sol, nil
}
