package ingredients_test

import (
	"fmt"

	"github.com/katalvlaran/advent/ingredients"
)

// ExampleMerge joins overlapping fresh ranges.
func ExampleMerge() {
	ranges := []ingredients.Range{{3, 5}, {10, 14}, {16, 20}, {12, 18}}
	fmt.Println(ingredients.Merge(ranges))
	fmt.Println(ingredients.TotalFresh(ranges))
	// Output:
	// [{3 5} {10 20}]
	// 14
}
