package assign_test

import (
	"fmt"

	"github.com/katalvlaran/riskmatch/assign"
	"github.com/katalvlaran/riskmatch/cohort"
)

// ExampleMatch runs the full pipeline on a three-subject cohort: the treated
// subject takes the covariate-closest control that was still at risk.
func ExampleMatch() {
	subjects := []cohort.Subject{
		{ID: "t1", Covariates: []float64{0}, Treated: true, Time: 5},
		{ID: "c1", Covariates: []float64{0.5}, Time: 6},
		{ID: "c2", Covariates: []float64{5}, Time: 7},
	}

	res, err := assign.Match(subjects, assign.DefaultOptions())
	if err != nil {
		fmt.Println("match failed:", err)

		return
	}
	fmt.Printf("t1 → %s (%s)\n", res.Matching["t1"], res.Status)
	// Output:
	// t1 → c1 (optimal)
}
