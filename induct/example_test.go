package induct_test

import (
	"fmt"

	"github.com/katalvlaran/induction/induct"
)

// ExampleUnfold builds the powers-of-two ladder {1}, {1,2}, {1,2,4}, ...
// where each level appends twice the last element of the previous one.
func ExampleUnfold() {
	step := func(k int, prev []int) []int {
		out := make([]int, len(prev), len(prev)+1)
		copy(out, prev)
		return append(out, 2*prev[len(prev)-1])
	}

	res, err := induct.Unfold([]int{1}, 0, 4, step,
		induct.WithOnLevel(func(level, size int) {
			fmt.Printf("level %d: %d items\n", level, size)
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	// Output:
	// level 0: 1 items
	// level 1: 2 items
	// level 2: 3 items
	// level 3: 4 items
	// level 4: 5 items
	// [1 2 4 8 16]
}
