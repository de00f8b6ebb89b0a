package cohort

// Schema names the recognized columns of an external rectangular table.
// Column names are configuration, not fixed literals: callers describe their
// table, the ingester adapts.
//
// Fields:
//   - IDColumn         — unique subject identifier (string, non-empty).
//   - TreatmentColumn  — binary indicator; recognized states are "0"/"1" and
//     case-insensitive "true"/"false".
//   - TimeColumn       — numeric event/observation time.
//   - CovariateColumns — ordered list of numeric covariate columns; order
//     fixes the dimension ordering of every Subject.Covariates vector.
type Schema struct {
	IDColumn         string
	TreatmentColumn  string
	TimeColumn       string
	CovariateColumns []string
}

// resolved holds header positions for every Schema column after validation.
type resolved struct {
	id   int
	trt  int
	time int
	cov  []int
}

// resolve maps Schema column names onto header positions.
//
// Contracts:
//   - every named column must exist in header exactly once across the Schema
//     (id, treatment, time and covariates are pairwise distinct columns);
//   - at least one covariate column is required.
//
// Errors: ErrNoCovariates, ErrUnknownColumn, ErrDuplicateColumn.
//
// Complexity: O(H + C) for H header cells and C schema columns.
func (s Schema) resolve(header []string) (resolved, error) {
	if len(s.CovariateColumns) == 0 {
		return resolved{}, ErrNoCovariates
	}

	// Header name → position (first occurrence wins; duplicate header names
	// are tolerated as long as the Schema does not reference them).
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := pos[name]; !ok {
			pos[name] = i
		}
	}

	var (
		r    resolved
		used = make(map[int]struct{}, 3+len(s.CovariateColumns))
		err  error
	)
	claim := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, ErrUnknownColumn
		}
		if _, dup := used[i]; dup {
			return 0, ErrDuplicateColumn
		}
		used[i] = struct{}{}

		return i, nil
	}

	if r.id, err = claim(s.IDColumn); err != nil {
		return resolved{}, err
	}
	if r.trt, err = claim(s.TreatmentColumn); err != nil {
		return resolved{}, err
	}
	if r.time, err = claim(s.TimeColumn); err != nil {
		return resolved{}, err
	}
	r.cov = make([]int, len(s.CovariateColumns))
	for k, name := range s.CovariateColumns {
		if r.cov[k], err = claim(name); err != nil {
			return resolved{}, err
		}
	}

	return r, nil
}
