// Package cohort - rectangular-table ingestion.
//
// This file turns an external (header, rows) table into []Subject under a
// caller-supplied Schema. Validation is staged and strict:
//  1. Schema ↔ header resolution (names, uniqueness).
//  2. Per-row shape (width), identifier (non-empty, unique).
//  3. Per-cell parsing (treatment states, finite time, finite covariates).
//
// Design principles:
//   - Deterministic, side-effect free; output order mirrors input order.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Whole-run rejection: a single malformed record fails ingestion, because
//     a silently shrunken cohort would distort every downstream risk set.
package cohort

import (
	"math"
	"strconv"
	"strings"
)

// FromTable ingests a rectangular table into immutable Subject records.
//
// Contracts:
//   - header must contain every column the Schema names (see Schema.resolve);
//   - each row must have exactly len(header) cells;
//   - treatment cells must be one of "0", "1", "true", "false" (case-insensitive);
//   - time and covariate cells must parse to finite float64.
//
// Errors: ErrEmptyCohort, ErrNoCovariates, ErrUnknownColumn,
// ErrDuplicateColumn, ErrRaggedRow, ErrEmptyID, ErrDuplicateID,
// ErrBadTreatment, ErrBadTime, ErrBadCovariate.
//
// Complexity: O(R·W) for R rows of width W.
func FromTable(header []string, rows [][]string, schema Schema) ([]Subject, error) {
	// Stage 1: schema resolution.
	r, err := schema.resolve(header)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyCohort
	}

	// Stage 2+3: row-by-row shape, identity and cell parsing.
	var (
		subjects = make([]Subject, 0, len(rows))
		seen     = make(map[string]struct{}, len(rows))
		row      []string
		s        Subject
		k        int
	)
	for _, row = range rows {
		if len(row) != len(header) {
			return nil, ErrRaggedRow
		}

		s.ID = row[r.id]
		if s.ID == "" {
			return nil, ErrEmptyID
		}
		if _, dup := seen[s.ID]; dup {
			return nil, ErrDuplicateID
		}
		seen[s.ID] = struct{}{}

		if s.Treated, err = parseTreatment(row[r.trt]); err != nil {
			return nil, err
		}
		if s.Time, err = parseFinite(row[r.time], ErrBadTime); err != nil {
			return nil, err
		}
		s.Covariates = make([]float64, len(r.cov))
		for k = range r.cov {
			if s.Covariates[k], err = parseFinite(row[r.cov[k]], ErrBadCovariate); err != nil {
				return nil, err
			}
		}

		subjects = append(subjects, s)
	}

	return subjects, nil
}

// Validate checks invariants of a hand-built subject slice: non-empty, unique
// non-blank ids, finite times/covariates, uniform covariate dimensionality.
//
// Errors: ErrEmptyCohort, ErrEmptyID, ErrDuplicateID, ErrBadTime,
// ErrBadCovariate, ErrCovariateLength.
//
// Complexity: O(N·K) for N subjects with K covariates.
func Validate(subjects []Subject) error {
	if len(subjects) == 0 {
		return ErrEmptyCohort
	}
	var (
		dim  = len(subjects[0].Covariates)
		seen = make(map[string]struct{}, len(subjects))
	)
	for _, s := range subjects {
		if s.ID == "" {
			return ErrEmptyID
		}
		if _, dup := seen[s.ID]; dup {
			return ErrDuplicateID
		}
		seen[s.ID] = struct{}{}
		if math.IsNaN(s.Time) || math.IsInf(s.Time, 0) {
			return ErrBadTime
		}
		if len(s.Covariates) != dim {
			return ErrCovariateLength
		}
		for _, x := range s.Covariates {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return ErrBadCovariate
			}
		}
	}

	return nil
}

// parseTreatment maps the two recognized treatment states onto bool.
// Anything else (including empty cells) is ErrBadTreatment.
func parseTreatment(cell string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	default:
		return false, ErrBadTreatment
	}
}

// parseFinite parses a cell into a finite float64, returning the supplied
// sentinel on empty, non-numeric, NaN or ±Inf cells.
func parseFinite(cell string, sentinel error) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, sentinel
	}

	return x, nil
}
