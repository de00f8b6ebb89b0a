package riskset

import (
	"sort"

	"github.com/katalvlaran/riskmatch/cohort"
)

// Sets maps a treated subject's id to the ids of its eligible controls.
// Every treated subject appears as a key, empty-set treated included.
// Control id slices are sorted ascending for deterministic downstream
// iteration (model rows, branching order, test output).
type Sets map[string][]string

// Build computes the risk set of every treated subject in the cohort.
//
// Contracts:
//   - subjects must pass cohort.Validate (unique finite records); Build
//     revalidates rather than trusting callers, since a corrupt table here
//     would silently distort every downstream constraint.
//   - eligibility is time(control) ≥ τ(treated); exact ties are eligible.
//
// Errors: those of cohort.Validate.
//
// Complexity: O(T·C + C·log C) for T treated and C control subjects — one
// sort of controls by id, then a linear eligibility scan per treated subject.
func Build(subjects []cohort.Subject) (Sets, error) {
	if err := cohort.Validate(subjects); err != nil {
		return nil, err
	}

	// Split the table once; controls sorted by id so each risk set comes out
	// ascending without a per-set sort.
	var (
		controls []cohort.Subject
		treated  []cohort.Subject
	)
	for _, s := range subjects {
		if s.Treated {
			treated = append(treated, s)
		} else {
			controls = append(controls, s)
		}
	}
	sort.Slice(controls, func(i, j int) bool { return controls[i].ID < controls[j].ID })

	sets := make(Sets, len(treated))
	for _, t := range treated {
		eligible := make([]string, 0, len(controls))
		for _, c := range controls {
			if c.Time >= t.Time {
				eligible = append(eligible, c.ID)
			}
		}
		// Empty risk sets are kept: unmatchable is an outcome, not an error.
		sets[t.ID] = eligible
	}

	return sets, nil
}

// TreatedIDs returns the treated ids present in s, sorted ascending.
// Helper for deterministic iteration over the map.
func (s Sets) TreatedIDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Empty returns the treated ids whose risk sets are empty, sorted ascending.
// These subjects are structurally unmatchable and must be reported, not
// folded into solver constraints.
func (s Sets) Empty() []string {
	var ids []string
	for id, controls := range s {
		if len(controls) == 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}
