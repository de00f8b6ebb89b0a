package riskset_test

import (
	"fmt"

	"github.com/katalvlaran/riskmatch/cohort"
	"github.com/katalvlaran/riskmatch/riskset"
)

// ExampleBuild shows eligibility at a treatment time of 5: the control
// observed at exactly 5 is in (ties count), the earlier one is out.
func ExampleBuild() {
	subjects := []cohort.Subject{
		{ID: "t1", Covariates: []float64{1}, Treated: true, Time: 5},
		{ID: "c0", Covariates: []float64{2}, Time: 2},
		{ID: "c1", Covariates: []float64{3}, Time: 5},
		{ID: "c2", Covariates: []float64{4}, Time: 9},
	}

	sets, err := riskset.Build(subjects)
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}
	fmt.Println(sets["t1"])
	// Output:
	// [c1 c2]
}
