package binary_test

import (
	"fmt"

	"github.com/katalvlaran/induction/binary"
)

// ExampleGenerate lists every 3-bit string, the rows of a 3-input truth table.
func ExampleGenerate() {
	rows, err := binary.Generate(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rows)
	// Output:
	// [000 001 010 011 100 101 110 111]
}

// ExampleCount sizes a 40-input truth table without building it.
func ExampleCount() {
	fmt.Println(binary.Count(40))
	// Output:
	// 1099511627776
}
