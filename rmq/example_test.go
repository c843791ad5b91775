// SPDX-License-Identifier: MIT

package rmq_test

import (
	"fmt"

	"github.com/katalvlaran/phylotree/rmq"
)

// ExampleIndex_Query finds minima in subranges, leftmost on ties.
func ExampleIndex_Query() {
	ix := rmq.New([]int{5, 2, 8, 2, 9, 1, 7})

	pos, _ := ix.Query(0, 6)
	fmt.Println(pos) // the global minimum 1

	pos, _ = ix.Query(0, 4)
	fmt.Println(pos) // 2 appears twice; the leftmost wins

	pos, _ = ix.Query(2, 4)
	fmt.Println(pos)

	// Output:
	// 5
	// 1
	// 3
}
