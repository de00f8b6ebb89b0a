// Package assign - binary integer program construction.
//
// BuildModel translates risk sets + lazy distances into the abstract program
// a Solver consumes: variables with objective coefficients, exactly-one rows
// (treated), at-most-one columns (controls). Construction is deterministic:
// rows follow ascending treated id, in-row candidates follow ascending
// (cost, control index), so every backend sees an identical model and
// identical tie-breaking.
package assign

import (
	"errors"
	"sort"

	"github.com/katalvlaran/riskmatch/cohort"
	"github.com/katalvlaran/riskmatch/mahalanobis"
	"github.com/katalvlaran/riskmatch/riskset"
)

// ErrUnknownID indicates a risk set referencing a subject id absent from the
// cohort slice the model is built over.
var ErrUnknownID = errors.New("assign: risk set references an id absent from the cohort")

// Variable is one 0/1 decision: match TreatedIDs[Row] with ControlIDs[Col].
type Variable struct {
	Row int
	Col int

	// Cost is the objective coefficient: Distance + Penalty.
	Cost float64

	// Distance and Penalty decompose Cost for post-solve auditing.
	Distance float64
	Penalty  float64
}

// Model is the abstract integer program handed to Solver backends.
// All fields are read-only after BuildModel returns.
type Model struct {
	// TreatedIDs are the exactly-one rows: treated subjects with non-empty
	// risk sets, ascending. Row r of Rows matches TreatedIDs[r].
	TreatedIDs []string

	// ControlIDs are the at-most-one columns: the union of all risk sets,
	// ascending.
	ControlIDs []string

	// Vars holds every (treated, eligible-control) decision variable.
	Vars []Variable

	// Rows lists, per treated row, its variable indices sorted by ascending
	// (Cost, Col) — the deterministic branching order.
	Rows [][]int

	// Unmatchable are treated ids with empty risk sets, ascending. They are
	// deliberately excluded from the exactly-one rows (spectators, reported
	// as unmatched) rather than encoded as unsatisfiable constraints.
	Unmatchable []string
}

// BuildModel constructs the program from a cohort, its risk sets, and a lazy
// distance cache. Distances are evaluated only for (treated, eligible-control)
// pairs — never all-pairs.
//
// Contracts:
//   - sets was built over the same subjects slice (ids must resolve);
//   - cache shares the same cohort and a validly factored Σ.
//
// Errors: ErrUnknownID, plus mahalanobis sentinels surfaced from the cache.
//
// Complexity: O(V·K + V·log V) for V = Σ|risk set| variables with K
// covariates (distance + penalty per variable, then per-row sorts).
func BuildModel(subjects []cohort.Subject, sets riskset.Sets, cache *mahalanobis.Cache, opts Options) (*Model, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	byID := make(map[string]cohort.Subject, len(subjects))
	for _, s := range subjects {
		byID[s.ID] = s
	}

	var m Model
	m.Unmatchable = sets.Empty()

	// Rows: treated ids with work to do, ascending.
	for _, id := range sets.TreatedIDs() {
		if len(sets[id]) > 0 {
			m.TreatedIDs = append(m.TreatedIDs, id)
		}
	}

	// Columns: union of risk sets, ascending.
	colOf := make(map[string]int)
	for _, id := range m.TreatedIDs {
		for _, c := range sets[id] {
			if _, ok := colOf[c]; !ok {
				colOf[c] = -1 // placeholder; real index after sort
				m.ControlIDs = append(m.ControlIDs, c)
			}
		}
	}
	sort.Strings(m.ControlIDs)
	for i, c := range m.ControlIDs {
		colOf[c] = i
	}

	// Variables + per-row candidate order.
	var (
		penalty = opts.penalty()
		m2      = make([][]int, len(m.TreatedIDs))
	)
	for r, tid := range m.TreatedIDs {
		t, ok := byID[tid]
		if !ok {
			return nil, ErrUnknownID
		}
		row := make([]int, 0, len(sets[tid]))
		for _, cid := range sets[tid] {
			c, ok := byID[cid]
			if !ok {
				return nil, ErrUnknownID
			}
			d, err := cache.Between(tid, cid)
			if err != nil {
				return nil, err
			}
			v := Variable{Row: r, Col: colOf[cid], Distance: d}
			if penalty != nil {
				v.Penalty = penalty(t, c)
			}
			v.Cost = v.Distance + v.Penalty
			row = append(row, len(m.Vars))
			m.Vars = append(m.Vars, v)
		}
		// Deterministic branching order: cheapest first, column tiebreak.
		sort.Slice(row, func(i, j int) bool {
			vi, vj := m.Vars[row[i]], m.Vars[row[j]]
			if vi.Cost == vj.Cost {
				return vi.Col < vj.Col
			}

			return vi.Cost < vj.Cost
		})
		m2[r] = row
	}
	m.Rows = m2

	return &m, nil
}

// Extract turns a backend Solution into the engine's Result: matched pairs
// (sorted by treated id), the treated→control view, the unmatched report and
// the stabilized objective decomposition.
//
// Contracts: sol.Assign has len(m.Vars) entries; exactly one selected
// variable per row for optimal/time-limited solutions (backend invariant).
//
// Complexity: O(V).
func (m *Model) Extract(sol Solution) Result {
	res := Result{
		Matching:  make(map[string]string, len(m.TreatedIDs)),
		Unmatched: append([]string(nil), m.Unmatchable...),
		Status:    sol.Status,
	}
	for i, on := range sol.Assign {
		if !on {
			continue
		}
		v := m.Vars[i]
		p := Pair{
			Treated:  m.TreatedIDs[v.Row],
			Control:  m.ControlIDs[v.Col],
			Distance: v.Distance,
			Penalty:  v.Penalty,
		}
		res.Pairs = append(res.Pairs, p)
		res.Matching[p.Treated] = p.Control
		res.Distance += v.Distance
		res.Penalty += v.Penalty
	}
	sort.Slice(res.Pairs, func(i, j int) bool { return res.Pairs[i].Treated < res.Pairs[j].Treated })
	res.Distance = round1e9(res.Distance)
	res.Penalty = round1e9(res.Penalty)
	res.Objective = round1e9(res.Distance + res.Penalty)

	return res
}
