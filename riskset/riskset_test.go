package riskset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riskmatch/cohort"
	"github.com/katalvlaran/riskmatch/riskset"
)

// subject is a test shorthand; covariates are irrelevant to eligibility.
func subject(id string, treated bool, time float64) cohort.Subject {
	return cohort.Subject{ID: id, Covariates: []float64{0}, Treated: treated, Time: time}
}

// TestBuild_Eligibility verifies the core rule: a control is eligible iff its
// observation time is ≥ the treated subject's treatment time, ties included.
func TestBuild_Eligibility(t *testing.T) {
	subjects := []cohort.Subject{
		subject("t1", true, 5),
		subject("c-early", false, 4), // before τ: ineligible
		subject("c-tie", false, 5),   // exactly τ: eligible (≥, not >)
		subject("c-late", false, 9),  // after τ: eligible
	}

	sets, err := riskset.Build(subjects)
	require.NoError(t, err)
	require.Contains(t, sets, "t1")

	assert.Equal(t, []string{"c-late", "c-tie"}, sets["t1"],
		"tie included, early control excluded, ids ascending")
}

// TestBuild_PerTreatedTimes verifies that each treated subject gets its own
// risk set, evaluated at its own treatment time.
func TestBuild_PerTreatedTimes(t *testing.T) {
	subjects := []cohort.Subject{
		subject("t1", true, 3),
		subject("t2", true, 8),
		subject("c1", false, 4),
		subject("c2", false, 8),
		subject("c3", false, 10),
	}

	sets, err := riskset.Build(subjects)
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "c2", "c3"}, sets["t1"])
	assert.Equal(t, []string{"c2", "c3"}, sets["t2"])
	assert.Equal(t, []string{"t1", "t2"}, sets.TreatedIDs())
}

// TestBuild_EmptySetKept ensures a treated subject with no eligible control
// still appears as a key — unmatchable is an outcome, not a dropped record.
func TestBuild_EmptySetKept(t *testing.T) {
	subjects := []cohort.Subject{
		subject("t-late", true, 100), // later than every observation
		subject("c1", false, 4),
		subject("c2", false, 9),
	}

	sets, err := riskset.Build(subjects)
	require.NoError(t, err)

	require.Contains(t, sets, "t-late")
	assert.Empty(t, sets["t-late"])
	assert.Equal(t, []string{"t-late"}, sets.Empty())
}

// TestBuild_NoTimeViolations is the property check: no risk set may contain
// a control observed before the treatment time.
func TestBuild_NoTimeViolations(t *testing.T) {
	subjects := []cohort.Subject{
		subject("t1", true, 2), subject("t2", true, 6), subject("t3", true, 11),
		subject("c1", false, 1), subject("c2", false, 5), subject("c3", false, 7),
		subject("c4", false, 11), subject("c5", false, 20),
	}
	timeOf := make(map[string]float64, len(subjects))
	for _, s := range subjects {
		timeOf[s.ID] = s.Time
	}

	sets, err := riskset.Build(subjects)
	require.NoError(t, err)

	for _, tid := range sets.TreatedIDs() {
		for _, cid := range sets[tid] {
			assert.GreaterOrEqual(t, timeOf[cid], timeOf[tid],
				"control %s in risk set of %s violates at-risk rule", cid, tid)
		}
	}
}

// TestBuild_InvalidCohort ensures cohort invariants are re-checked.
func TestBuild_InvalidCohort(t *testing.T) {
	dup := []cohort.Subject{
		subject("x", true, 1),
		subject("x", false, 2),
	}

	_, err := riskset.Build(dup)
	assert.ErrorIs(t, err, cohort.ErrDuplicateID)
}
