// Package cohort defines the subject table that every other riskmatch
// component consumes: immutable Subject records, a configurable Schema that
// names the identifier / treatment / time / covariate columns, strict
// rectangular-table ingestion, and cohort covariance estimation.
//
// Design principles:
//   - Immutable records: a Subject is never mutated after ingestion; all
//     downstream artifacts (risk sets, distances, matchings) are pure
//     transformations of the table.
//   - Strict sentinels: malformed input never produces a partial cohort.
//     Validation rejects the whole run with a named error (errors.Is-able);
//     matching on corrupted data is worse than no matching.
//   - Column names are configuration, not literals: Schema carries them.
//
// Use FromTable to ingest an external rectangular table (header + string
// rows), or construct []Subject directly when records already live in Go.
package cohort
