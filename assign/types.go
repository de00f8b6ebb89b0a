// Package assign: sentinel error set and result value types.
// All solver backends MUST return these sentinels and tests MUST check them
// via errors.Is. Panics are reserved for programmer errors in private helpers.

package assign

import "errors"

var (
	// ErrNilModel indicates a nil *Model handed to a solver.
	ErrNilModel = errors.New("assign: nil model")

	// ErrBadOptions indicates an internally inconsistent Options value
	// (negative penalty weight, negative time limit, negative eps).
	ErrBadOptions = errors.New("assign: invalid options")

	// ErrInfeasible is returned when no complete assignment exists for the
	// exactly-one rows (an over-subscribed control pool). Fatal: the study
	// design, not the data, is at fault.
	ErrInfeasible = errors.New("assign: model is infeasible")

	// ErrTimeLimit is returned when the time budget expired before any
	// feasible assignment was found. A time-limited run that did find an
	// incumbent returns it with StatusTimeLimited instead.
	ErrTimeLimit = errors.New("assign: time limit exceeded before a feasible assignment was found")
)

// Status reports how a solution should be interpreted. A non-optimal status
// is never silently presented as success.
type Status int

const (
	// StatusOptimal — the assignment is provably optimal for the model.
	StatusOptimal Status = iota

	// StatusTimeLimited — the time budget expired; the assignment is the best
	// incumbent found so far and may be suboptimal.
	StatusTimeLimited

	// StatusInfeasible — no assignment satisfies the exactly-one rows.
	StatusInfeasible
)

// String implements fmt.Stringer for log-friendly statuses.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusTimeLimited:
		return "time-limited"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Pair is one matched (treated, control) couple with its cost breakdown.
type Pair struct {
	Treated string
	Control string

	// Distance is the Mahalanobis dissimilarity of the pair.
	Distance float64

	// Penalty is the balance-penalty share of the pair's objective
	// coefficient (0 when the penalty term is disabled).
	Penalty float64
}

// Solution is a solver backend's raw answer: per-variable assignment plus
// objective and status. Extraction into Pairs happens in Model.Extract.
type Solution struct {
	// Assign has one entry per Model variable; true means matched.
	Assign []bool

	// Objective is the summed cost of the selected variables (stabilized).
	Objective float64

	// Status qualifies the assignment (optimal / time-limited / infeasible).
	Status Status
}

// Result is the engine's final output for one matching run.
type Result struct {
	// Pairs holds the matched couples, sorted by treated id.
	Pairs []Pair

	// Matching is the treated-id → control-id view of Pairs.
	Matching map[string]string

	// Unmatched lists treated ids with empty risk sets, sorted ascending.
	// Unmatched is a normal, explicitly reported outcome — not an error.
	Unmatched []string

	// Objective = Distance + Penalty, stabilized to 1e-9.
	Objective float64

	// Distance is the pure dissimilarity share of the objective.
	Distance float64

	// Penalty is the balance-penalty share of the objective.
	Penalty float64

	// Status is forwarded verbatim from the solver.
	Status Status
}
