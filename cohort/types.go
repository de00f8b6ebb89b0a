// Package cohort: sentinel error set and the Subject record.
// This file defines ONLY the package-level sentinels and the core value type.
// All ingestion/validation routines MUST return these sentinels and tests MUST
// check them via errors.Is. No routine panics on user-triggered conditions.

package cohort

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cohort: ..." so failures grep cleanly across
// logs. Do not %w-wrap these sentinels when returning directly; wrap with
// fmt.Errorf("ctx: %w", ErrX) only at outer boundaries.

var (
	// ErrEmptyCohort is returned when the table contains no subject rows.
	ErrEmptyCohort = errors.New("cohort: empty subject table")

	// ErrUnknownColumn indicates a Schema column name absent from the header.
	ErrUnknownColumn = errors.New("cohort: schema names a column missing from header")

	// ErrDuplicateColumn indicates a Schema column referenced more than once
	// (e.g., the time column also listed among covariates).
	ErrDuplicateColumn = errors.New("cohort: schema references a column twice")

	// ErrNoCovariates indicates a Schema with an empty covariate list.
	ErrNoCovariates = errors.New("cohort: schema must name at least one covariate column")

	// ErrRaggedRow indicates a row whose width differs from the header's.
	ErrRaggedRow = errors.New("cohort: ragged row (width differs from header)")

	// ErrDuplicateID indicates two rows sharing the same subject identifier.
	ErrDuplicateID = errors.New("cohort: duplicate subject id")

	// ErrEmptyID indicates a row with a blank subject identifier.
	ErrEmptyID = errors.New("cohort: empty subject id")

	// ErrBadTreatment is returned when the treatment column holds a value
	// other than the two recognized states ("0"/"1", case-insensitive
	// "true"/"false").
	ErrBadTreatment = errors.New("cohort: unrecognized treatment indicator")

	// ErrBadTime is returned when the time column is missing, non-numeric,
	// NaN or ±Inf.
	ErrBadTime = errors.New("cohort: time value missing or non-numeric")

	// ErrBadCovariate is returned when a covariate cell is non-numeric,
	// NaN or ±Inf.
	ErrBadCovariate = errors.New("cohort: covariate value missing or non-numeric")

	// ErrCovariateLength indicates subjects with differing covariate
	// dimensionality (only reachable via hand-built []Subject).
	ErrCovariateLength = errors.New("cohort: covariate vectors differ in length")
)

// Subject is one immutable row of the cohort table.
type Subject struct {
	// ID is unique within the cohort.
	ID string

	// Covariates is the fixed-length ordered measurement vector used for
	// distance. All subjects share the same dimensionality and ordering.
	Covariates []float64

	// Treated reports the treatment indicator.
	Treated bool

	// Time is the treatment time for treated subjects, or the last
	// observation time for controls. Always finite.
	Time float64
}
