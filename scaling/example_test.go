package scaling_test

import (
	"fmt"

	"github.com/katalvlaran/mapgraph/scaling"
)

// ExampleNormalizeToRange rescales engineered scores onto the [1,10] band
// used by the feature pipeline.
func ExampleNormalizeToRange() {
	raw := []float64{2, 4, 6}
	fmt.Println(scaling.NormalizeToRange(raw, 1, 10))

	// Constant input collapses to the midpoint.
	flat := []float64{3, 3, 3}
	fmt.Println(scaling.NormalizeToRange(flat, 1, 10))

	// Output:
	// [1 5.5 10]
	// [5.5 5.5 5.5]
}
